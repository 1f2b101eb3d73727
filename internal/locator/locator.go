// Package locator finds the Cartesian geometry block inside quantum-chemistry
// output text.
package locator

import (
	"regexp"
	"strings"

	"github.com/aretw0/geomass/pkg/domain"
)

// HeaderPattern matches the geometry header line, ignoring case and the
// amount of whitespace between words.
var HeaderPattern = regexp.MustCompile(`(?i)CARTESIAN\s+COORDINATES\s*\(ANGSTROEM\)`)

// HeaderSkip is the offset from the header line to the first data row.
// ORCA prints a dashed rule between the two.
const HeaderSkip = 2

// Locate returns the geometry block of lines.
// The block starts HeaderSkip lines after the first header match and runs up
// to, not including, the first line that is blank after trimming whitespace.
// The boolean result is false when there is no header or no data rows follow.
func Locate(lines []string) (domain.Block, bool) {
	header := FindHeader(lines)
	if header < 0 {
		return domain.Block{}, false
	}

	start := header + HeaderSkip
	if start >= len(lines) {
		return domain.Block{}, false
	}

	end := start
	for end < len(lines) && strings.TrimSpace(lines[end]) != "" {
		end++
	}
	if end <= start {
		return domain.Block{}, false
	}

	return domain.Block{
		Start: start,
		End:   end,
		Lines: append([]string(nil), lines[start:end]...),
	}, true
}

// FindHeader returns the index of the first header line, or -1.
func FindHeader(lines []string) int {
	for i, line := range lines {
		if HeaderPattern.MatchString(line) {
			return i
		}
	}
	return -1
}
