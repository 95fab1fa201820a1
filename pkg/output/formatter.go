/*
Package output provides formatters for search results in various formats:
plain text lines, JSON, YAML, and an aligned table with optional color.

The text format reproduces the canonical report form, one match per line:

	4163, "95d4362bd3cd4315d0bbe38dfa5d7fb8f0aed5f1a31d98d510907279194e3000"

Basic usage:

	formatter := output.NewFormatter(output.Config{
		Format:     output.FormatText,
		WithColors: true,
	}, log)

	text, err := formatter.Format(report)
*/
package output

import (
	"fmt"

	"github.com/sonemaro/hashfinder/pkg/logger"
	"github.com/sonemaro/hashfinder/pkg/search"
)

// Format represents the output format type
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Report is the complete outcome of a search handed to a formatter.
type Report struct {
	// Matches is the collected result list in the order the coordination
	// mechanism produced it
	Matches []search.Match `json:"matches" yaml:"matches"`

	// Zeros is the trailing-zero requirement the search ran with
	Zeros int `json:"zeros" yaml:"zeros"`

	// Results is the requested number of matches
	Results int `json:"results" yaml:"results"`

	// Strategy is the coordination mechanism used
	Strategy string `json:"strategy" yaml:"strategy"`

	// Workers is the worker count the search ran with
	Workers int `json:"workers" yaml:"workers"`

	// CandidatesExamined is the total number of candidates evaluated
	CandidatesExamined uint64 `json:"candidatesExamined" yaml:"candidatesExamined"`

	// ElapsedSeconds is the wall-clock duration of the search
	ElapsedSeconds float64 `json:"elapsedSeconds" yaml:"elapsedSeconds"`
}

// Config holds formatter configuration
type Config struct {
	Format     Format
	WithStats  bool
	WithColors bool
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(*Report) (string, error)
}

// formatter implements the Formatter interface
type formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a new formatter instance
func NewFormatter(config Config, log logger.Logger) Formatter {
	return &formatter{
		config: config,
		log:    log,
	}
}

// Format renders the report according to the configured format
func (f *formatter) Format(report *Report) (string, error) {
	if report == nil {
		return "", fmt.Errorf("nil report")
	}

	switch f.config.Format {
	case FormatText:
		return f.formatText(report), nil
	case FormatJSON:
		return f.formatJSON(report)
	case FormatYAML:
		return f.formatYAML(report)
	case FormatTable:
		return f.formatTable(report), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", f.config.Format)
	}
}
