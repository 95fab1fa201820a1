package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonemaro/hashfinder/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Zeros:      0,
		Results:    2,
		Workers:    2,
		Strategy:   config.StrategyCounter,
		QueueSize:  config.DefaultQueueSize,
		Output:     "text",
		NoProgress: true,
		NoColor:    true,
	}
}

func TestAppRunToStdout(t *testing.T) {
	cfg := testConfig()

	application := New(cfg)
	defer application.Shutdown()

	var buf bytes.Buffer
	application.stdout = &buf

	require.NoError(t, application.Run())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Regexp(t, `^\d+, "[0-9a-f]{64}"$`, line)
	}
}

func TestAppRunWritesOutputFile(t *testing.T) {
	cfg := testConfig()
	cfg.OutputFile = "results.txt"

	application := New(cfg)
	defer application.Shutdown()

	application.fs = afero.NewMemMapFs()

	require.NoError(t, application.Run())

	data, err := afero.ReadFile(application.fs, "results.txt")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(string(data), "\n"), "\n"), 2)
}

func TestAppRunChannelStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy = config.StrategyChannel

	application := New(cfg)
	defer application.Shutdown()

	var buf bytes.Buffer
	application.stdout = &buf

	require.NoError(t, application.Run())
	assert.NotEmpty(t, buf.String())
}
