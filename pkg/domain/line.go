package domain

import "strings"

// Terminator is the line terminator used for every rewritten line.
const Terminator = "\n"

// Line is a block row after its first token has been rewritten.
// Lead and Remainder are kept byte-for-byte from the input row.
type Line struct {
	Lead      string
	Token     string
	Remainder string
}

// String renders the line with a single trailing terminator.
func (l Line) String() string {
	return l.Lead + l.Token + l.Remainder + Terminator
}

// Render converts rewritten lines into fully-formed output lines.
func Render(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

// SplitLines splits text into lines, keeping each line's terminator.
// "\n", "\r\n" and a lone "\r" all end a line. A final line without a
// terminator is kept as is; empty text yields no lines.
func SplitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			lines = append(lines, text)
			break
		}
		end := i + 1
		if text[i] == '\r' && end < len(text) && text[end] == '\n' {
			end++
		}
		lines = append(lines, text[:end])
		text = text[end:]
	}
	return lines
}
