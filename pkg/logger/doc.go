/*
Package logger provides structured logging for the hashfinder application.
It wraps uber-go/zap behind a small interface with verbosity levels that map
onto the CLI's repeatable -v flag.

Verbosity Levels:

	0: Info, Warn, Error (default)
	1: Debug + Level 0
	2: Trace + Level 1

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 1,
	})

	log.WithFields(logger.Fields{
	    "zeros":   3,
	    "results": 5,
	}).Info("Search started")

Output is JSON, one entry per line, written to stderr unless another writer
is configured. The logger is safe for concurrent use; search workers log
matches through it without additional synchronization.
*/
package logger
