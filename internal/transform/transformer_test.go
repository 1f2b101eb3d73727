package transform_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/geomass/internal/transform"
	"github.com/aretw0/geomass/pkg/domain"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.Line
	}{
		{"Simple", "N   0.000  0.000  0.000\n", domain.Line{Token: "N", Remainder: "   0.000  0.000  0.000"}},
		{"Leading Whitespace", "  \tC 1 2\n", domain.Line{Lead: "  \t", Token: "C", Remainder: " 1 2"}},
		{"Trailing Whitespace Kept", "O 1   \n", domain.Line{Token: "O", Remainder: " 1   "}},
		{"CRLF Stripped", "H 1.0\r\n", domain.Line{Token: "H", Remainder: " 1.0"}},
		{"No Terminator", "Xx 2.0", domain.Line{Token: "Xx", Remainder: " 2.0"}},
		{"Token Only", "C\n", domain.Line{Token: "C"}},
		{"Whitespace Only", "   \n", domain.Line{Lead: "   "}},
		{"Empty", "", domain.Line{}},
		{"Unicode Space", "\u00a0N\u00a01\n", domain.Line{Lead: "\u00a0", Token: "N", Remainder: "\u00a01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transform.Split(tt.raw))
		})
	}
}

func TestTransformer_KnownSymbols(t *testing.T) {
	tr := transform.New(domain.DefaultMassTable())
	block := domain.Block{
		Start: 8,
		End:   12,
		Lines: []string{
			"  N      0.000000    0.000000    0.000000\n",
			"  C      1.000000    0.000000    0.000000\n",
			"  O      2.000000    0.000000    0.000000\n",
			"  H      3.000000    0.000000    0.000000\n",
		},
	}

	lines, err := tr.Transform(context.Background(), block)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"  14      0.000000    0.000000    0.000000\n",
		"  12      1.000000    0.000000    0.000000\n",
		"  16      2.000000    0.000000    0.000000\n",
		"  1      3.000000    0.000000    0.000000\n",
	}, domain.Render(lines))
}

func TestTransformer_Permissive(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	var seen []*domain.RowEvent
	hooks := domain.Hooks{
		OnUnrecognized: func(_ context.Context, e *domain.RowEvent) {
			seen = append(seen, e)
		},
	}

	tr := transform.New(domain.DefaultMassTable(), transform.WithLogger(logger), transform.WithHooks(hooks))
	assert.False(t, tr.Strict())

	block := domain.Block{
		Start: 8,
		End:   10,
		Lines: []string{"N   0.000  0.000  0.000\n", "Xx  2.0 2.0 2.0\n"},
	}

	lines, err := tr.Transform(context.Background(), block)
	require.NoError(t, err)
	assert.Equal(t, []string{"14   0.000  0.000  0.000\n", "Xx  2.0 2.0 2.0\n"}, domain.Render(lines))

	out := logs.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "token=Xx")
	assert.Contains(t, out, "line=10")

	require.Len(t, seen, 1)
	assert.Equal(t, domain.EventUnrecognized, seen[0].Type)
	assert.Equal(t, "Xx", seen[0].Token)
	assert.Equal(t, 10, seen[0].Line)
}

func TestTransformer_Strict(t *testing.T) {
	var transformed int
	hooks := domain.Hooks{
		OnRowTransformed: func(context.Context, *domain.RowEvent) { transformed++ },
	}
	tr := transform.New(domain.DefaultMassTable(), transform.WithStrict(true), transform.WithHooks(hooks))
	assert.True(t, tr.Strict())

	block := domain.Block{
		Start: 8,
		End:   11,
		Lines: []string{"N 0 0 0\n", "Xx  2.0 2.0 2.0\n", "H 1 0 0\n"},
	}

	lines, err := tr.Transform(context.Background(), block)
	assert.Nil(t, lines)

	var symErr *domain.UnrecognizedSymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, "Xx", symErr.Token)
	assert.Equal(t, 10, symErr.Line)
	assert.Equal(t, []string{"C", "H", "N", "O"}, symErr.Supported)
	assert.Zero(t, transformed, "no row hooks fire when the block fails")
}

func TestTransformer_HooksFireInRowOrder(t *testing.T) {
	var seen []string
	record := func(_ context.Context, e *domain.RowEvent) {
		seen = append(seen, string(e.Type)+":"+e.Token)
	}
	tr := transform.New(domain.DefaultMassTable(), transform.WithHooks(domain.Hooks{
		OnRowTransformed: record,
		OnUnrecognized:   record,
	}))

	_, err := tr.Transform(context.Background(), domain.Block{
		Start: 0,
		End:   3,
		Lines: []string{"N 0 0 0\n", "Xx 1 1 1\n", "H 2 2 2\n"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"row_transformed:N",
		"unrecognized_symbol:Xx",
		"row_transformed:H",
	}, seen)
}

func TestTransformer_CaseSensitive(t *testing.T) {
	tr := transform.New(domain.DefaultMassTable(), transform.WithStrict(true))

	_, err := tr.TransformLine(context.Background(), "n 0 0 0\n", 1)
	var symErr *domain.UnrecognizedSymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, "n", symErr.Token)
}

func TestTransformer_WhitespaceOnlyRow(t *testing.T) {
	tr := transform.New(domain.DefaultMassTable(), transform.WithStrict(true))

	line, err := tr.TransformLine(context.Background(), "  \t\n", 3)
	require.NoError(t, err)
	assert.Equal(t, "  \t\n", line.String())
}

func TestTransformer_CustomTable(t *testing.T) {
	table, err := domain.NewMassTable(map[string]int{"Fe": 56, "C": 13})
	require.NoError(t, err)
	tr := transform.New(table, transform.WithStrict(true))

	lines, err := tr.Transform(context.Background(), domain.Block{
		Start: 0,
		End:   2,
		Lines: []string{"Fe 0 0 0\n", "C 1 1 1\n"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"56 0 0 0\n", "13 1 1 1\n"}, domain.Render(lines))

	_, err = tr.TransformLine(context.Background(), "N 0 0 0\n", 1)
	var symErr *domain.UnrecognizedSymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, []string{"C", "Fe"}, symErr.Supported)
}
