/*
Package app provides the main application container and orchestration for
the hashfinder CLI. It wires the components together, runs the search, and
handles graceful shutdown.

The application container initializes and manages all core components:
- Logger for structured logging
- Search engine (generator, worker pool, coordination mechanism)
- Progress reporting
- Output formatting

Usage:

	application := app.New(cfg)
	defer application.Shutdown()
	if err := application.Run(); err != nil {
	    log.Fatal(err)
	}
*/
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/afero"

	"github.com/sonemaro/hashfinder/internal/config"
	"github.com/sonemaro/hashfinder/pkg/logger"
	"github.com/sonemaro/hashfinder/pkg/output"
	"github.com/sonemaro/hashfinder/pkg/progress"
	"github.com/sonemaro/hashfinder/pkg/search"
)

// App represents the main application container
type App struct {
	config *config.Config
	log    logger.Logger

	engine    *search.Engine
	formatter output.Formatter
	progress  progress.Progress
	fs        afero.Fs
	stdout    io.Writer

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new application instance
func New(cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		config: cfg,
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		ctx:    ctx,
		cancel: cancel,
	}

	a.initLogger()
	a.initComponents()
	a.setupSignalHandling()

	a.log.WithFields(logger.Fields{
		"zeros":    cfg.Zeros,
		"results":  cfg.Results,
		"workers":  cfg.Workers,
		"strategy": cfg.Strategy,
	}).Debug("Application initialized")

	return a
}

func (a *App) initLogger() {
	a.log = logger.NewLogger(logger.Config{
		Verbosity: a.config.Verbose,
		Output:    os.Stderr,
	})
}

func (a *App) initComponents() {
	a.engine = search.New(search.Config{
		Zeros:     a.config.Zeros,
		Results:   a.config.Results,
		Workers:   a.config.Workers,
		Strategy:  search.Strategy(a.config.Strategy),
		QueueSize: a.config.QueueSize,
		RateLimit: a.config.RateLimit,
	}, a.log)

	a.formatter = output.NewFormatter(output.Config{
		Format:     output.Format(a.config.Output),
		WithStats:  a.config.Verbose > 0,
		WithColors: !a.config.NoColor && a.config.OutputFile == "",
	}, a.log)

	a.progress = progress.New(progress.Config{
		NoColor: a.config.NoColor,
	}, a.log)
}

// Run executes the search and writes the formatted results
func (a *App) Run() error {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithFields(logger.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")
		}
	}()

	if !a.config.NoProgress {
		target := a.config.Results
		a.progress.Start(func() progress.Status {
			stats := a.engine.Stats()
			return progress.Status{
				CandidatesExamined: stats.CandidatesExamined,
				MatchesFound:       stats.MatchesFound,
				Target:             target,
			}
		})
	}

	start := time.Now()
	matches, err := a.engine.Run(a.ctx)
	a.progress.Stop()

	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	stats := a.engine.Stats()
	report := &output.Report{
		Matches:            matches,
		Zeros:              a.config.Zeros,
		Results:            a.config.Results,
		Strategy:           a.config.Strategy,
		Workers:            a.config.Workers,
		CandidatesExamined: stats.CandidatesExamined,
		ElapsedSeconds:     time.Since(start).Seconds(),
	}

	formatted, err := a.formatter.Format(report)
	if err != nil {
		return fmt.Errorf("formatting results: %w", err)
	}

	return a.writeOutput(formatted)
}

func (a *App) writeOutput(formatted string) error {
	if a.config.OutputFile == "" {
		_, err := fmt.Fprint(a.stdout, formatted)
		return err
	}

	if err := afero.WriteFile(a.fs, a.config.OutputFile, []byte(formatted), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	a.log.WithFields(logger.Fields{
		"file": a.config.OutputFile,
	}).Info("Results written")
	return nil
}

// Shutdown releases application resources
func (a *App) Shutdown() {
	a.cancel()
	a.progress.Stop()
}
