/*
Package config provides configuration management for the hashfinder
application. It handles environment variables and validation of all
configuration parameters; command-line flags override the loaded values in
the cmd layer.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Environment Variables:

	HASHFINDER_ZEROS        Required trailing zero characters
	HASHFINDER_RESULTS      Number of matches to collect
	HASHFINDER_WORKERS      Number of concurrent workers
	HASHFINDER_STRATEGY     Coordination strategy: counter|channel
	HASHFINDER_QUEUE_SIZE   Bounded queue capacity (channel strategy)
	HASHFINDER_RATE_LIMIT   Hashes per second (0 for unlimited)
	HASHFINDER_OUTPUT       Output format: text|json|yaml|table
	HASHFINDER_OUTPUT_FILE  Output file path
	HASHFINDER_NO_PROGRESS  Disable progress reporting
	HASHFINDER_NO_COLOR     Disable colored output
	HASHFINDER_VERBOSE      Verbosity level (number of 'v's)

Default Values:

	Workers:    Number of CPU cores
	Strategy:   counter
	QueueSize:  100
	Output:     text
	RateLimit:  0 (unlimited)
*/
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Zeros is the required number of trailing '0' characters in a
	// matching digest
	Zeros int

	// Results is the number of matches to collect
	Results int

	// Workers is the number of concurrent search workers
	Workers int

	// Strategy selects the coordination mechanism (counter or channel)
	Strategy string

	// QueueSize is the bounded queue capacity for the channel strategy
	QueueSize int

	// RateLimit is the maximum number of hashes per second (0 for unlimited)
	RateLimit int

	// Output specifies the output format (text, json, yaml, or table)
	Output string

	// OutputFile is the path to write the output (empty for stdout)
	OutputFile string

	// NoProgress disables progress reporting
	NoProgress bool

	// NoColor disables colored output
	NoColor bool

	// Verbose sets the verbosity level
	Verbose int
}

// validOutputFormats contains the list of supported output formats
var validOutputFormats = map[string]bool{
	"text":  true,
	"json":  true,
	"yaml":  true,
	"table": true,
}

// validStrategies contains the list of supported coordination strategies
var validStrategies = map[string]bool{
	StrategyCounter: true,
	StrategyChannel: true,
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("zeros", 1)
	v.SetDefault("results", 1)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("strategy", StrategyCounter)
	v.SetDefault("queue_size", DefaultQueueSize)
	v.SetDefault("rate_limit", 0)
	v.SetDefault("output", "text")
	v.SetDefault("no_progress", false)
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", 0)

	v.SetEnvPrefix("HASHFINDER")
	v.AutomaticEnv()

	v.BindEnv("zeros")
	v.BindEnv("results")
	v.BindEnv("workers")
	v.BindEnv("strategy")
	v.BindEnv("queue_size")
	v.BindEnv("rate_limit")
	v.BindEnv("output")
	v.BindEnv("output_file")
	v.BindEnv("no_progress")
	v.BindEnv("no_color")
	v.BindEnv("verbose")

	// Verbosity can be given as a string of 'v's, mirroring repeated -v
	if verboseStr := v.GetString("verbose"); strings.Contains(verboseStr, "v") {
		v.Set("verbose", strings.Count(verboseStr, "v"))
	}

	cfg := Config{
		Zeros:      v.GetInt("zeros"),
		Results:    v.GetInt("results"),
		Workers:    v.GetInt("workers"),
		Strategy:   v.GetString("strategy"),
		QueueSize:  v.GetInt("queue_size"),
		RateLimit:  v.GetInt("rate_limit"),
		Output:     v.GetString("output"),
		OutputFile: v.GetString("output_file"),
		NoProgress: v.GetBool("no_progress"),
		NoColor:    v.GetBool("no_color"),
		Verbose:    v.GetInt("verbose"),
	}

	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Zeros < 0 {
		return fmt.Errorf("zeros must be non-negative")
	}
	if c.Zeros > MaxZeros {
		return fmt.Errorf("zeros cannot exceed the digest length of %d characters", MaxZeros)
	}

	if c.Results < 1 {
		return fmt.Errorf("results must be greater than 0")
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers count must be positive")
	}
	maxWorkers := runtime.NumCPU() * MaxWorkerMultiplier
	if c.Workers > maxWorkers {
		return fmt.Errorf("workers count cannot exceed system CPU count * %d", MaxWorkerMultiplier)
	}

	if !validStrategies[c.Strategy] {
		return fmt.Errorf("invalid strategy: must be one of [counter channel]")
	}

	if c.QueueSize < 1 {
		return fmt.Errorf("queue size must be positive")
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}

	if !validOutputFormats[c.Output] {
		return fmt.Errorf("invalid output format: must be one of [text json yaml table]")
	}

	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Zeros: %d, Results: %d, Workers: %d, Strategy: %s, "+
			"QueueSize: %d, RateLimit: %d, Output: %s, OutputFile: %s, "+
			"NoProgress: %v, NoColor: %v, Verbose: %d}",
		c.Zeros, c.Results, c.Workers, c.Strategy,
		c.QueueSize, c.RateLimit, c.Output, c.OutputFile,
		c.NoProgress, c.NoColor, c.Verbose,
	)
}
