// Package swap exchanges two lines of a text artifact, leaving every other
// line in place.
package swap

import (
	"context"
	"fmt"

	"github.com/aretw0/geomass/pkg/ports"
)

// Default indices (0-based) of the lines exchanged by the swap command.
const (
	DefaultFirst  = 19
	DefaultSecond = 30
)

// RangeError reports an index that does not address a line of the input.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("line index %d out of range: input has %d lines (need at least %d)", e.Index, e.Len, e.Index+1)
}

// Lines returns a copy of lines with indices first and second exchanged.
func Lines(lines []string, first, second int) ([]string, error) {
	for _, idx := range []int{first, second} {
		if idx < 0 || idx >= len(lines) {
			return nil, &RangeError{Index: idx, Len: len(lines)}
		}
	}

	out := make([]string, len(lines))
	copy(out, lines)
	out[first], out[second] = lines[second], lines[first]
	return out, nil
}

// File reads input from src, swaps the two lines and writes the result to
// output through dst. Nothing is written when an index is out of range.
func File(ctx context.Context, src ports.LineSource, dst ports.LineSink, input, output string, first, second int) error {
	lines, err := src.ReadLines(ctx, input)
	if err != nil {
		return err
	}

	swapped, err := Lines(lines, first, second)
	if err != nil {
		return err
	}

	return dst.WriteLines(ctx, output, swapped)
}
