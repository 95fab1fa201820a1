// Package progress renders a single live status line for a running search:
// candidates examined, matches found against the target, and the hash rate.
// Rendering degrades to nothing when the writer is not a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/sonemaro/hashfinder/pkg/logger"
	"golang.org/x/term"
)

type progress struct {
	config Config
	log    logger.Logger
	writer io.Writer

	startTime time.Time
	width     int
	isTTY     bool

	mu       sync.Mutex
	active   bool
	stopChan chan struct{}
	doneChan chan struct{}
}

// New creates a new progress reporter
func New(config Config, log logger.Logger) Progress {
	if config.RefreshRate == 0 {
		config.RefreshRate = 100 * time.Millisecond
	}
	if config.Writer == nil {
		config.Writer = os.Stderr
	}

	p := &progress{
		config: config,
		log:    log,
		writer: config.Writer,
	}

	if f, ok := config.Writer.(*os.File); ok {
		p.isTTY = term.IsTerminal(int(f.Fd()))
	}

	if config.Width > 0 {
		p.width = config.Width
	} else {
		p.width = p.terminalWidth()
	}

	return p
}

// Start begins the render loop
func (p *progress) Start(snapshot func() Status) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active || !p.isTTY {
		return
	}

	p.log.Debug("Starting progress reporting")

	p.active = true
	p.startTime = time.Now()
	p.stopChan = make(chan struct{})
	p.doneChan = make(chan struct{})

	go p.renderLoop(snapshot)
}

// Stop halts the render loop and clears the line
func (p *progress) Stop() {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return
	}
	p.active = false
	close(p.stopChan)
	done := p.doneChan
	p.mu.Unlock()

	<-done
	p.clearLine()
}

func (p *progress) renderLoop(snapshot func() Status) {
	defer close(p.doneChan)

	ticker := time.NewTicker(p.config.RefreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopChan:
			return
		case <-ticker.C:
			p.render(snapshot())
		}
	}
}

func (p *progress) render(status Status) {
	elapsed := time.Since(p.startTime).Seconds()
	rate := float64(status.CandidatesExamined) / elapsed

	line := fmt.Sprintf("searching: %d examined | %d/%d found | %.0f hashes/s",
		status.CandidatesExamined, status.MatchesFound, status.Target, rate)

	if len(line) > p.width {
		line = line[:p.width]
	}
	if !p.config.NoColor {
		line = color.New(color.FgCyan).Sprint(line)
	}

	fmt.Fprintf(p.writer, "\r%s", line)
}

func (p *progress) clearLine() {
	fmt.Fprint(p.writer, "\r\033[2K")
}

func (p *progress) terminalWidth() int {
	if f, ok := p.writer.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
