package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/aretw0/geomass/pkg/domain"
)

// Store implements ports.LineSource and ports.LineSink using the local filesystem.
// Names are filesystem paths.
type Store struct {
	FileMode os.FileMode
	DirMode  os.FileMode
}

// NewStore creates a new Store with 0644 files and 0755 directories.
func NewStore() *Store {
	return &Store{FileMode: 0644, DirMode: 0755}
}

// ReadLines loads the file at name as UTF-8 text.
// Malformed byte sequences are replaced with U+FFFD instead of failing the read.
func (s *Store) ReadLines(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, name)
		}
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, unicode.UTF8.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return domain.SplitLines(string(data)), nil
}

// WriteLines replaces the file at name with lines, creating parent directories.
// Content goes to a temporary file in the target directory which is then
// renamed over name, so readers never observe a partially written file.
func (s *Store) WriteLines(ctx context.Context, name string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, s.DirMode); err != nil {
		return fmt.Errorf("failed to ensure output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".geomass-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := writeAll(tmp, lines); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Chmod(tmpPath, s.FileMode); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(tmpPath, name); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace output: %w", err)
	}

	return nil
}

func writeAll(f *os.File, lines []string) error {
	bw := bufio.NewWriter(f)
	for _, ln := range lines {
		// Fixed "\n" convention regardless of how the line was read.
		ln = strings.TrimSuffix(ln, "\r\n")
		ln = strings.TrimSuffix(ln, "\n")
		ln = strings.TrimSuffix(ln, "\r")
		if _, err := bw.WriteString(ln + domain.Terminator); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Sync()
}
