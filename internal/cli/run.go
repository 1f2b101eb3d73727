package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/geomass"
	"github.com/aretw0/geomass/internal/config"
	"github.com/aretw0/geomass/internal/logging"
	"github.com/aretw0/geomass/internal/swap"
	"github.com/aretw0/geomass/pkg/adapters/file"
	"github.com/aretw0/geomass/pkg/observability"
)

// RunOptions contains everything the extract command needs.
type RunOptions struct {
	Config config.Config
	Stdout io.Writer // receives the output path on success
	Logger *slog.Logger
}

// SwapOptions contains everything the swap command needs.
type SwapOptions struct {
	Input  string
	Output string
	First  int
	Second int
	Logger *slog.Logger
}

// NewLogger builds the diagnostics logger for a --log value.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(w, lvl), nil
}

// RunExtract generates geometry.txt for opts.Config and prints its path.
// When a metrics file is configured it is written whether or not the run
// succeeded; a metrics failure is logged but never changes the outcome.
func RunExtract(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	table, err := cfg.MassTable()
	if err != nil {
		return err
	}

	extOpts := []geomass.Option{
		geomass.WithLogger(logger),
		geomass.WithStrict(cfg.Strict),
		geomass.WithMassTable(table),
	}

	var metrics *observability.Metrics
	if cfg.MetricsFile != "" {
		metrics = observability.NewMetrics()
		extOpts = append(extOpts, geomass.WithLifecycleHooks(metrics.Hooks()))
	}

	logger.Debug("effective config",
		"input", cfg.Input,
		"outdir", cfg.OutDir,
		"strict", cfg.Strict,
		"symbols", table.Len(),
	)

	path, runErr := geomass.New(extOpts...).Run(ctx, cfg.Input, cfg.OutDir)

	if metrics != nil {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("failed to write metrics", "path", cfg.MetricsFile, "error", err)
		}
	}

	if runErr != nil {
		return runErr
	}

	logger.Info("geometry saved", "path", path)
	if opts.Stdout != nil {
		fmt.Fprintln(opts.Stdout, path)
	}
	return nil
}

// RunSwap exchanges two lines of a file.
func RunSwap(ctx context.Context, opts SwapOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	fs := file.NewStore()
	if err := swap.File(ctx, fs, fs, opts.Input, opts.Output, opts.First, opts.Second); err != nil {
		return err
	}

	logger.Info("lines swapped",
		"input", opts.Input,
		"output", opts.Output,
		"first", opts.First,
		"second", opts.Second,
	)
	return nil
}
