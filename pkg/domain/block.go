package domain

// Block is the geometry block of an output artifact.
// Lines is the verbatim slice [Start, End) of the source line sequence.
type Block struct {
	Start int      // inclusive index of the first data line
	End   int      // exclusive index, one past the last data line
	Lines []string // raw lines, terminators included
}

// Len returns the number of data lines in the block.
func (b Block) Len() int {
	return b.End - b.Start
}
