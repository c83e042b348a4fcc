// Command collatz-verify samples Collatz sequences and writes the
// contraction ratio report.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alexshd/collatzbench"
)

type options struct {
	configPath      string
	sampleSize      int
	maxStart        uint64
	iterationCap    int
	seed            uint64
	workers         int
	output          string
	retainSequences bool
	logLevel        string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := collatzbench.DefaultConfig()
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "collatz-verify",
		Short: "Sample Collatz sequences and report contraction ratio statistics",
		Long: `collatz-verify draws random odd starting values, iterates the Collatz map
to 1 and compares the mean contraction ratio (halvings per 3n+1 step)
with log2(3). Results are printed and written as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.logLevel)

			err := run(cmd, opts, logger)
			switch {
			case err == nil:
				return nil
			case errors.Is(err, collatzbench.ErrEmptyResultSet):
				fmt.Fprintf(cmd.ErrOrStderr(), "❌ ERROR: %v\n", err)
			default:
				logger.Error("verification failed", "err", err)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	f.IntVar(&opts.sampleSize, "sample-size", defaults.SampleSize, "number of random starting values")
	f.Uint64Var(&opts.maxStart, "max-start", defaults.MaxStart, "exclusive upper bound for odd starting values")
	f.IntVar(&opts.iterationCap, "iteration-cap", defaults.IterationCap, "per-sequence safety bound on steps")
	f.Uint64Var(&opts.seed, "seed", defaults.Seed, "random seed (0 = unseeded)")
	f.IntVar(&opts.workers, "workers", defaults.Workers, "sequences evaluated in parallel")
	f.StringVar(&opts.output, "output", defaults.Output, "JSON report path")
	f.BoolVar(&opts.retainSequences, "retain-sequences", defaults.RetainSequences, "include per-sequence detail in the report")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func run(cmd *cobra.Command, opts *options, logger *slog.Logger) error {
	cfg := collatzbench.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := collatzbench.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Info("configuration loaded", "path", opts.configPath)
	}

	// Explicit flags override the file.
	f := cmd.Flags()
	if f.Changed("sample-size") {
		cfg.SampleSize = opts.sampleSize
	}
	if f.Changed("max-start") {
		cfg.MaxStart = opts.maxStart
	}
	if f.Changed("iteration-cap") {
		cfg.IterationCap = opts.iterationCap
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if f.Changed("output") {
		cfg.Output = opts.output
	}
	if f.Changed("retain-sequences") {
		cfg.RetainSequences = opts.retainSequences
	}

	v, err := collatzbench.NewVerifier(cfg, nil, logger)
	if err != nil {
		return err
	}
	v.Out = cmd.OutOrStdout()

	_, err = v.Run(cmd.Context())
	return err
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}
