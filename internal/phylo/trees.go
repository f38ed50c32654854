// Package phylo serves the pre-rendered phylogenetic tree pages. The trees
// are static HTML files produced by the phylogenetics pipeline; this package
// only catalogs and reads them.
package phylo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a tree's HTML file is missing on disk.
var ErrNotFound = errors.New("tree file not found")

// Tree identifies one pre-rendered lineage tree.
type Tree struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	File  string `json:"-"`
}

// Catalog lists the five lineage trees in display order.
func Catalog() []Tree {
	return []Tree{
		{ID: "1", Label: "Lineage 1", File: "lineage.1.tree.html"},
		{ID: "2", Label: "Lineage 2", File: "lineage.2.tree.html"},
		{ID: "3", Label: "Lineage 3", File: "lineage.3.tree.html"},
		{ID: "4", Label: "Lineage 4", File: "lineage.4.tree.html"},
		{ID: "5", Label: "Lineage 5-Animal", File: "lineage.5.Animal.tree.html"},
	}
}

// Library reads tree files from a directory.
type Library struct {
	dir string
}

func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

// Tree looks up a catalog entry by ID.
func (l *Library) Tree(id string) (Tree, bool) {
	for _, t := range Catalog() {
		if t.ID == id {
			return t, true
		}
	}
	return Tree{}, false
}

// HTML returns the raw page for a tree, or ErrNotFound when the file is
// absent so callers can show a warning instead of failing the whole page.
func (l *Library) HTML(id string) ([]byte, error) {
	t, ok := l.Tree(id)
	if !ok {
		return nil, fmt.Errorf("unknown tree %q: %w", id, ErrNotFound)
	}
	b, err := os.ReadFile(filepath.Join(l.dir, t.File))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("tree %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("read tree %q: %w", id, err)
	}
	return b, nil
}
