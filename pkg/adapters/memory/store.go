package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aretw0/geomass/pkg/domain"
)

// Store implements ports.LineSource and ports.LineSink in memory.
// Safe for concurrent use.
type Store struct {
	files map[string]string
	mu    sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		files: make(map[string]string),
	}
}

// NewFromFiles creates a store pre-populated with name to content entries.
func NewFromFiles(files map[string]string) *Store {
	s := NewStore()
	for name, content := range files {
		s.files[name] = content
	}
	return s
}

// Put stores raw content under name, replacing any previous content.
func (s *Store) Put(name, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = content
}

// Get returns the raw content stored under name.
func (s *Store) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[name]
	return content, ok
}

// ReadLines returns the lines stored under name.
func (s *Store) ReadLines(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, name)
	}
	return domain.SplitLines(content), nil
}

// WriteLines replaces the content stored under name.
func (s *Store) WriteLines(ctx context.Context, name string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = strings.Join(lines, "")
	return nil
}
