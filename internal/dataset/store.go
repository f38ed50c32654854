package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gocarina/gocsv"
)

// ErrNotFound is returned when a sample name is not present in the table.
var ErrNotFound = errors.New("sample not found")

// Store provides read access to the reference sample metadata.
type Store interface {
	Samples(ctx context.Context) ([]Sample, error)
	Sample(ctx context.Context, name string) (*Sample, error)
	Reload(ctx context.Context) error
}

// FileStore is a Store backed by a tab-separated metadata table on disk.
// The table is parsed once and cached; Reload re-reads it.
type FileStore struct {
	path string

	mu     sync.RWMutex
	rows   []Sample
	byName map[string]int
}

// NewFileStore creates a store for the given samples_data.tsv path.
// The file is not touched until the first read or an explicit Reload.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Samples returns all rows in file order.
func (s *FileStore) Samples(ctx context.Context) ([]Sample, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Sample, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

// Sample returns the row for the given sample name, or ErrNotFound.
func (s *FileStore) Sample(ctx context.Context, name string) (*Sample, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("sample %q: %w", name, ErrNotFound)
	}
	row := s.rows[idx]
	return &row, nil
}

// Reload re-reads the table from disk, replacing the cache. On failure the
// previous cache is kept.
func (s *FileStore) Reload(ctx context.Context) error {
	rows, err := readTable(s.path)
	if err != nil {
		return err
	}
	byName := make(map[string]int, len(rows))
	for i, r := range rows {
		byName[r.Name] = i
	}
	s.mu.Lock()
	s.rows = rows
	s.byName = byName
	s.mu.Unlock()
	slog.DebugContext(ctx, "Reloaded sample metadata table", "path", s.path, "rows", len(rows))
	return nil
}

func (s *FileStore) ensure(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.byName != nil
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.Reload(ctx)
}

func readTable(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true

	var rows []Sample
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, fmt.Errorf("parse sample table %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sample table %s has no rows", path)
	}
	return rows, nil
}
