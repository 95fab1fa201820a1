package progress

import (
	"io"
	"time"
)

// Config holds the configuration for progress reporting
type Config struct {
	// Writer is where the progress line is written (defaults to os.Stderr)
	Writer io.Writer

	// Width is the maximum line width (0 = auto-detect from the terminal)
	Width int

	// NoColor disables colored output
	NoColor bool

	// RefreshRate defines how often the display updates
	// (defaults to 100ms)
	RefreshRate time.Duration
}

// Status is a point-in-time snapshot of the search, supplied by the caller
// on every refresh.
type Status struct {
	// CandidatesExamined is the number of candidates evaluated so far
	CandidatesExamined uint64

	// MatchesFound is the number of matches collected so far
	MatchesFound int

	// Target is the requested number of matches
	Target int
}

// Progress defines the interface for live search progress reporting
type Progress interface {
	// Start begins rendering; snapshot is polled on every refresh
	Start(snapshot func() Status)

	// Stop halts rendering and clears the progress line
	Stop()
}
