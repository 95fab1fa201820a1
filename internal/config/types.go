package config

// Strategy names accepted by the configuration
const (
	// StrategyCounter selects the atomic-counter coordination mechanism
	StrategyCounter = "counter"

	// StrategyChannel selects the bounded-queue coordination mechanism
	StrategyChannel = "channel"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	// OutputFormatText represents the plain "candidate, digest" line format
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON represents the JSON report format
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML represents the YAML report format
	OutputFormatYAML OutputFormat = "yaml"

	// OutputFormatTable represents the aligned, optionally colored table
	OutputFormatTable OutputFormat = "table"
)

// Constants for configuration limits and defaults
const (
	// MaxZeros is the digest length in hex characters, the largest suffix
	// that could ever match
	MaxZeros = 64

	// DefaultQueueSize is the default bounded queue capacity for the
	// channel strategy
	DefaultQueueSize = 100

	// MaxWorkerMultiplier is the maximum multiple of CPU cores for worker
	// count
	MaxWorkerMultiplier = 4
)
