package domain

import (
	"fmt"
	"sort"
	"strings"
)

var defaultMasses = map[string]int{
	"N": 14,
	"C": 12,
	"O": 16,
	"H": 1,
}

// DefaultMasses returns a fresh copy of the element table used when no other
// table is configured. Changing the result does not affect DefaultMassTable.
func DefaultMasses() map[string]int {
	out := make(map[string]int, len(defaultMasses))
	for sym, mass := range defaultMasses {
		out[sym] = mass
	}
	return out
}

// MassTable maps element symbols to integer masses.
// A MassTable is immutable once built; lookups are exact and case-sensitive.
type MassTable struct {
	masses  map[string]int
	symbols []string
}

// NewMassTable copies entries into a new table.
// Symbols must be non-empty and free of whitespace, masses must be positive.
func NewMassTable(entries map[string]int) (MassTable, error) {
	if len(entries) == 0 {
		return MassTable{}, fmt.Errorf("mass table cannot be empty")
	}

	masses := make(map[string]int, len(entries))
	symbols := make([]string, 0, len(entries))
	for sym, mass := range entries {
		if sym == "" || strings.ContainsAny(sym, " \t\r\n\v\f") {
			return MassTable{}, fmt.Errorf("invalid element symbol %q", sym)
		}
		if mass <= 0 {
			return MassTable{}, fmt.Errorf("element %q: mass must be positive (got %d)", sym, mass)
		}
		masses[sym] = mass
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	return MassTable{masses: masses, symbols: symbols}, nil
}

// DefaultMassTable returns the N, C, O, H table.
func DefaultMassTable() MassTable {
	t, err := NewMassTable(defaultMasses)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the mass for symbol.
func (t MassTable) Lookup(symbol string) (int, bool) {
	m, ok := t.masses[symbol]
	return m, ok
}

// Symbols returns the supported symbols in sorted order.
func (t MassTable) Symbols() []string {
	out := make([]string, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// Len returns the number of entries.
func (t MassTable) Len() int {
	return len(t.masses)
}
