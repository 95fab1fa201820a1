package config

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	cleanup := func() {
		envVars := []string{
			"HASHFINDER_ZEROS",
			"HASHFINDER_RESULTS",
			"HASHFINDER_WORKERS",
			"HASHFINDER_STRATEGY",
			"HASHFINDER_QUEUE_SIZE",
			"HASHFINDER_RATE_LIMIT",
			"HASHFINDER_OUTPUT",
			"HASHFINDER_OUTPUT_FILE",
			"HASHFINDER_NO_PROGRESS",
			"HASHFINDER_NO_COLOR",
			"HASHFINDER_VERBOSE",
		}
		for _, env := range envVars {
			os.Unsetenv(env)
		}
	}

	tests := []struct {
		name     string
		envVars  map[string]string
		expected Config
		wantErr  bool
		errMsg   string
	}{
		{
			name: "default configuration",
			expected: Config{
				Zeros:     1,
				Results:   1,
				Workers:   runtime.NumCPU(),
				Strategy:  "counter",
				QueueSize: 100,
				Output:    "text",
			},
		},
		{
			name: "configuration from environment variables",
			envVars: map[string]string{
				"HASHFINDER_ZEROS":       "4",
				"HASHFINDER_RESULTS":     "10",
				"HASHFINDER_WORKERS":     "4",
				"HASHFINDER_STRATEGY":    "channel",
				"HASHFINDER_QUEUE_SIZE":  "50",
				"HASHFINDER_RATE_LIMIT":  "1000",
				"HASHFINDER_OUTPUT":      "json",
				"HASHFINDER_OUTPUT_FILE": "results.json",
				"HASHFINDER_NO_PROGRESS": "true",
				"HASHFINDER_NO_COLOR":    "true",
				"HASHFINDER_VERBOSE":     "vv",
			},
			expected: Config{
				Zeros:      4,
				Results:    10,
				Workers:    4,
				Strategy:   "channel",
				QueueSize:  50,
				RateLimit:  1000,
				Output:     "json",
				OutputFile: "results.json",
				NoProgress: true,
				NoColor:    true,
				Verbose:    2,
			},
		},
		{
			name: "zero zeros is a valid degenerate search",
			envVars: map[string]string{
				"HASHFINDER_ZEROS": "0",
			},
			expected: Config{
				Zeros:     0,
				Results:   1,
				Workers:   runtime.NumCPU(),
				Strategy:  "counter",
				QueueSize: 100,
				Output:    "text",
			},
		},
		{
			name: "negative zeros rejected",
			envVars: map[string]string{
				"HASHFINDER_ZEROS": "-1",
			},
			wantErr: true,
			errMsg:  "zeros must be non-negative",
		},
		{
			name: "zeros beyond digest length rejected",
			envVars: map[string]string{
				"HASHFINDER_ZEROS": "65",
			},
			wantErr: true,
			errMsg:  "cannot exceed the digest length",
		},
		{
			name: "zero results rejected",
			envVars: map[string]string{
				"HASHFINDER_RESULTS": "0",
			},
			wantErr: true,
			errMsg:  "results must be greater than 0",
		},
		{
			name: "zero workers defaults to CPU count",
			envVars: map[string]string{
				"HASHFINDER_WORKERS": "0",
			},
			expected: Config{
				Zeros:     1,
				Results:   1,
				Workers:   runtime.NumCPU(),
				Strategy:  "counter",
				QueueSize: 100,
				Output:    "text",
			},
		},
		{
			name: "invalid strategy rejected",
			envVars: map[string]string{
				"HASHFINDER_STRATEGY": "actor",
			},
			wantErr: true,
			errMsg:  "invalid strategy",
		},
		{
			name: "invalid output format rejected",
			envVars: map[string]string{
				"HASHFINDER_OUTPUT": "xml",
			},
			wantErr: true,
			errMsg:  "invalid output format",
		},
		{
			name: "negative rate limit rejected",
			envVars: map[string]string{
				"HASHFINDER_RATE_LIMIT": "-5",
			},
			wantErr: true,
			errMsg:  "rate limit must be non-negative",
		},
		{
			name: "zero queue size rejected",
			envVars: map[string]string{
				"HASHFINDER_QUEUE_SIZE": "0",
			},
			wantErr: true,
			errMsg:  "queue size must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup()
			defer cleanup()

			for k, v := range tt.envVars {
				require.NoError(t, os.Setenv(k, v))
			}

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := Config{Zeros: 3, Results: 5, Workers: 4, Strategy: "channel"}
	s := cfg.String()
	assert.Contains(t, s, "Zeros: 3")
	assert.Contains(t, s, "Strategy: channel")
}
