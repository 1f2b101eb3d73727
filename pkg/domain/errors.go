package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInputNotFound is returned when the input artifact does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrBlockNotFound is returned when no geometry block follows the header marker.
var ErrBlockNotFound = errors.New("geometry block not found")

// UnrecognizedSymbolError reports a block row whose first token has no mass
// while strict mode is enabled.
type UnrecognizedSymbolError struct {
	Token     string   // offending first token
	Line      int      // 1-based line number in the input artifact
	Supported []string // supported symbols, sorted
}

func (e *UnrecognizedSymbolError) Error() string {
	msg := fmt.Sprintf("unrecognized atomic symbol %q", e.Token)
	if e.Line > 0 {
		msg += fmt.Sprintf(" on line %d", e.Line)
	}
	return msg + "; supported: " + strings.Join(e.Supported, ", ")
}
