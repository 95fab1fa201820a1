package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/sonemaro/hashfinder/cmd/hashfinder/app"
	"github.com/sonemaro/hashfinder/internal/config"
	"github.com/sonemaro/hashfinder/internal/version"
	"github.com/sonemaro/hashfinder/pkg/logger"
)

var (
	// Search flags
	zeros     int
	results   int
	workers   int
	strategy  string
	queueSize int
	rateLimit int

	// Output flags
	outputType string
	outputFile string

	// Global flags
	verbosity  int
	noProgress bool
	noColor    bool

	// Global logger instance
	log logger.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hashfinder [flags]",
	Short: "A concurrent brute-force hash search",
	Long: `hashfinder v` + version.Version + `
========================================

Searches the positive integers for values whose SHA-256 digest, rendered as
lowercase hexadecimal, ends in a configurable number of '0' characters, and
reports the first matches it finds as (integer, digest) pairs.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger.NewLogger(logger.Config{
			Verbosity: verbosity,
			Output:    os.Stderr,
		})
	},
	RunE: runSearch,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flag("full").Value.String() == "true" {
			fmt.Println(version.FullVersion())
		} else {
			fmt.Println(version.Version)
		}
	},
}

func init() {
	rootCmd.Flags().IntVarP(&zeros, "zeros", "N", 1, "required number of trailing zero characters")
	rootCmd.Flags().IntVarP(&results, "results", "F", 1, "number of matches to collect")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of concurrent workers")
	rootCmd.Flags().StringVarP(&strategy, "strategy", "s", config.StrategyCounter, "coordination strategy: counter|channel")
	rootCmd.Flags().IntVar(&queueSize, "queue-size", config.DefaultQueueSize, "bounded queue capacity (channel strategy)")
	rootCmd.Flags().IntVarP(&rateLimit, "rate-limit", "r", 0, "maximum hashes per second (0 for unlimited)")
	rootCmd.Flags().StringVarP(&outputType, "output", "o", "text", "output format: text|json|yaml|table")
	rootCmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "write output to file instead of stdout")

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "verbose output (can be used multiple times)")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable progress reporting")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	versionCmd.Flags().Bool("full", false, "show full version information")

	rootCmd.AddCommand(versionCmd)
}

// buildConfig starts from the environment-backed configuration and applies
// any flags the user set explicitly.
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("zeros") {
		cfg.Zeros = zeros
	}
	if flags.Changed("results") {
		cfg.Results = results
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("strategy") {
		cfg.Strategy = strategy
	}
	if flags.Changed("queue-size") {
		cfg.QueueSize = queueSize
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit = rateLimit
	}
	if flags.Changed("output") {
		cfg.Output = outputType
	}
	if flags.Changed("output-file") {
		cfg.OutputFile = outputFile
	}
	if noProgress {
		cfg.NoProgress = true
	}
	if noColor {
		cfg.NoColor = true
	}
	cfg.Verbose = verbosity

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	log.WithFields(logger.Fields{
		"zeros":    cfg.Zeros,
		"results":  cfg.Results,
		"workers":  cfg.Workers,
		"strategy": cfg.Strategy,
	}).Info("Hash finder starting")

	application := app.New(&cfg)
	defer application.Shutdown()

	return application.Run()
}
