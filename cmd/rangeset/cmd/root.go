package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/henderiw/rangeset/pkg/intervalset"
	"github.com/henderiw/rangeset/pkg/inventory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	file          string
	workers       int
	mergeAdjacent bool
	logLevel      string
	noColor       bool

	logger *zap.Logger
}

func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

// NewRootCmd returns the rangeset command with all its subcommands.
func NewRootCmd() *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:   "rangeset",
		Short: "Checks ids against a set of fresh id ranges",
		Long: `rangeset reads an inventory database: one "from-to" range of fresh ids
per line, a blank line, then one available id per line. Overlapping ranges are
merged before any id is checked.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.noColor {
				color.NoColor = true
			}
			logger, err := newLogger(o.logLevel)
			if err != nil {
				return err
			}
			o.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&o.file, "file", "f", "", "inventory database to read (defaults to stdin)")
	flags.IntVar(&o.workers, "workers", 0, "goroutines used to check ids (defaults to GOMAXPROCS)")
	flags.BoolVar(&o.mergeAdjacent, "merge-adjacent", false, "also merge ranges that touch, e.g. 3-5 and 6-8")
	flags.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.BoolVar(&o.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newFreshCmd(o))
	rootCmd.AddCommand(newCoverageCmd(o))
	rootCmd.AddCommand(newReportCmd(o))
	return rootCmd
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// evaluate reads the database from the configured file or from in and
// evaluates it.
func (o *options) evaluate(ctx context.Context, in io.Reader) (*inventory.Report, error) {
	if o.file != "" {
		f, err := os.Open(o.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	db, err := inventory.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("invalid inventory database: %w", err)
	}
	o.logger.Debug("parsed inventory database",
		zap.String("file", o.file),
		zap.Int("ranges", len(db.Ranges)),
		zap.Int("ids", len(db.IDs)),
	)

	evalOpts := []inventory.Option{
		inventory.WithLogger(o.logger),
		inventory.WithWorkers(o.workers),
	}
	if o.mergeAdjacent {
		evalOpts = append(evalOpts, inventory.WithSetOptions(intervalset.WithAdjacentMerge()))
	}
	return inventory.Evaluate(ctx, db, evalOpts...)
}
