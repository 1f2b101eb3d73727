package ports

import "context"

// LineSource defines how the pipeline retrieves the text of an artifact.
type LineSource interface {
	// ReadLines returns the lines of the named artifact in order.
	// Each line keeps the terminator it was read with.
	// Returns domain.ErrInputNotFound if the artifact does not exist.
	ReadLines(ctx context.Context, name string) ([]string, error)
}

// LineSink defines how the pipeline persists its output.
type LineSink interface {
	// WriteLines replaces the named artifact with lines.
	// Every line is expected to carry exactly one terminator.
	// Missing parent containers are created as needed.
	WriteLines(ctx context.Context, name string, lines []string) error
}
