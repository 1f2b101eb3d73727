// Package transform rewrites the element symbol column of geometry rows into
// integer masses without disturbing the rest of each row.
package transform

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/aretw0/geomass/pkg/domain"
)

// Transformer replaces the first token of each block row using a MassTable.
type Transformer struct {
	table  domain.MassTable
	strict bool
	logger *slog.Logger
	hooks  domain.Hooks
}

// Option defines a functional option for configuring the Transformer.
type Option func(*Transformer)

// WithStrict makes unknown symbols fail the transformation instead of
// passing through with a warning.
func WithStrict(strict bool) Option {
	return func(t *Transformer) {
		t.strict = strict
	}
}

// WithLogger sets the logger used for unknown-symbol warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transformer) {
		t.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(t *Transformer) {
		t.hooks = hooks
	}
}

// New creates a Transformer bound to table.
func New(table domain.MassTable, opts ...Option) *Transformer {
	t := &Transformer{table: table}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return t
}

// Strict reports whether unknown symbols are fatal.
func (t *Transformer) Strict() bool {
	return t.strict
}

// Transform rewrites every row of block in order.
// In strict mode the first unknown symbol aborts with a
// *domain.UnrecognizedSymbolError and no lines are returned.
// Row hooks fire only once the whole block has been rewritten, so observers
// never count rows that are not part of the result.
func (t *Transformer) Transform(ctx context.Context, block domain.Block) ([]domain.Line, error) {
	out := make([]domain.Line, 0, len(block.Lines))
	events := make([]*domain.RowEvent, 0, len(block.Lines))
	for i, raw := range block.Lines {
		line, ev, err := t.rewrite(raw, block.Start+i+1)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
		if ev != nil {
			events = append(events, ev)
		}
	}

	for _, ev := range events {
		t.fire(ctx, ev)
	}
	return out, nil
}

// TransformLine rewrites a single row. lineNo is the 1-based position of the
// row in the input and is only used for diagnostics.
func (t *Transformer) TransformLine(ctx context.Context, raw string, lineNo int) (domain.Line, error) {
	line, ev, err := t.rewrite(raw, lineNo)
	if err != nil {
		return domain.Line{}, err
	}
	if ev != nil {
		t.fire(ctx, ev)
	}
	return line, nil
}

// rewrite replaces the first token of raw and returns the event describing it.
// Whitespace-only rows yield no event.
func (t *Transformer) rewrite(raw string, lineNo int) (domain.Line, *domain.RowEvent, error) {
	line := Split(raw)
	if line.Token == "" {
		return line, nil, nil
	}

	if mass, ok := t.table.Lookup(line.Token); ok {
		replacement := strconv.Itoa(mass)
		ev := domain.NewRowEvent(domain.EventRowTransformed, lineNo, line.Token, replacement)
		line.Token = replacement
		return line, ev, nil
	}

	if t.strict {
		return domain.Line{}, nil, &domain.UnrecognizedSymbolError{
			Token:     line.Token,
			Line:      lineNo,
			Supported: t.table.Symbols(),
		}
	}

	t.logger.Warn("unrecognized first token in geometry row; leaving unchanged",
		"token", line.Token,
		"line", lineNo,
		"row", strings.TrimRight(raw, "\r\n"),
	)
	return line, domain.NewRowEvent(domain.EventUnrecognized, lineNo, line.Token, line.Token), nil
}

func (t *Transformer) fire(ctx context.Context, ev *domain.RowEvent) {
	switch ev.Type {
	case domain.EventRowTransformed:
		if t.hooks.OnRowTransformed != nil {
			t.hooks.OnRowTransformed(ctx, ev)
		}
	case domain.EventUnrecognized:
		if t.hooks.OnUnrecognized != nil {
			t.hooks.OnUnrecognized(ctx, ev)
		}
	}
}

// Split breaks raw into its leading whitespace, first token and remainder.
// Trailing line terminators are dropped; everything else is kept verbatim.
// A row without any token is returned entirely in Lead.
func Split(raw string) domain.Line {
	s := strings.TrimRight(raw, "\r\n")

	tokStart := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
	if tokStart < 0 {
		return domain.Line{Lead: s}
	}
	tokEnd := len(s)
	if n := strings.IndexFunc(s[tokStart:], unicode.IsSpace); n >= 0 {
		tokEnd = tokStart + n
	}

	return domain.Line{
		Lead:      s[:tokStart],
		Token:     s[tokStart:tokEnd],
		Remainder: s[tokEnd:],
	}
}
