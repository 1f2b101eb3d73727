package geomass

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/geomass/internal/locator"
	"github.com/aretw0/geomass/internal/transform"
	"github.com/aretw0/geomass/pkg/adapters/file"
	"github.com/aretw0/geomass/pkg/domain"
	"github.com/aretw0/geomass/pkg/ports"
)

// OutputName is the file name of the geometry artifact inside the output directory.
const OutputName = "geometry.txt"

// Extractor is the high-level entry point of the library.
// It reads an output artifact, rewrites its geometry block and writes the result.
type Extractor struct {
	source ports.LineSource
	sink   ports.LineSink
	table  domain.MassTable
	strict bool
	hooks  domain.Hooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Extractor.
type Option func(*Extractor)

// WithSource injects a custom LineSource, bypassing the filesystem.
func WithSource(s ports.LineSource) Option {
	return func(e *Extractor) {
		e.source = s
	}
}

// WithSink injects a custom LineSink, bypassing the filesystem.
func WithSink(s ports.LineSink) Option {
	return func(e *Extractor) {
		e.sink = s
	}
}

// WithMassTable replaces the default element table.
func WithMassTable(t domain.MassTable) Option {
	return func(e *Extractor) {
		e.table = t
	}
}

// WithStrict makes unknown symbols fail the run.
func WithStrict(strict bool) Option {
	return func(e *Extractor) {
		e.strict = strict
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.Hooks) Option {
	return func(e *Extractor) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// New creates an Extractor. Without options it works on the local filesystem
// with the default mass table in permissive mode.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}

	if e.source == nil || e.sink == nil {
		fs := file.NewStore()
		if e.source == nil {
			e.source = fs
		}
		if e.sink == nil {
			e.sink = fs
		}
	}
	if e.table.Len() == 0 {
		e.table = domain.DefaultMassTable()
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return e
}

// Run extracts the geometry block of input and writes it to OutputName
// inside outdir, returning the output path.
//
// Errors: domain.ErrInputNotFound when input is missing, domain.ErrBlockNotFound
// when there is no geometry block, *domain.UnrecognizedSymbolError in strict
// mode, or a wrapped I/O error. Nothing is written unless every earlier step
// succeeded.
func (e *Extractor) Run(ctx context.Context, input, outdir string) (out string, err error) {
	var count int
	defer func() {
		if e.hooks.OnRunFinish != nil {
			e.hooks.OnRunFinish(ctx, domain.NewRunEvent(input, out, count, err))
		}
	}()

	lines, err := e.source.ReadLines(ctx, input)
	if err != nil {
		return "", err
	}
	e.logger.Debug("read input", "path", input, "lines", len(lines))

	block, ok := locator.Locate(lines)
	if !ok {
		return "", fmt.Errorf("%w: expected rows %d lines after the 'CARTESIAN COORDINATES (ANGSTROEM)' header in %s",
			domain.ErrBlockNotFound, locator.HeaderSkip, input)
	}
	e.logger.Debug("located geometry block", "start", block.Start, "end", block.End)

	tr := transform.New(e.table,
		transform.WithStrict(e.strict),
		transform.WithLogger(e.logger),
		transform.WithHooks(e.hooks),
	)
	rows, err := tr.Transform(ctx, block)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(outdir, OutputName)
	if err := e.sink.WriteLines(ctx, path, domain.Render(rows)); err != nil {
		return "", err
	}
	count = len(rows)

	e.logger.Info("wrote geometry", "path", path, "lines", count)
	return path, nil
}
