package app

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/sonemaro/hashfinder/pkg/logger"
)

// signalState tracks the state of signal handling
type signalState struct {
	shutdownInitiated atomic.Bool
}

// setupSignalHandling installs handlers for graceful shutdown. A first
// SIGINT/SIGTERM cancels the search, which then reports the matches found
// so far; a second one exits immediately.
func (a *App) setupSignalHandling() {
	state := &signalState{}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan,
		syscall.SIGINT,
		syscall.SIGTERM,
	)

	go a.handleSignals(sigChan, state)
}

// handleSignals processes incoming system signals
func (a *App) handleSignals(sigChan chan os.Signal, state *signalState) {
	for sig := range sigChan {
		a.log.WithFields(logger.Fields{
			"signal": sig.String(),
		}).Debug("Received system signal")

		if state.shutdownInitiated.Swap(true) {
			a.log.Warn("Forced shutdown")
			os.Exit(130)
		}

		a.log.Warn("Interrupt received, stopping search with partial results")
		a.cancel()
	}
}
