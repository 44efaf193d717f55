// Package catalog maps table names to tables.
//
// A Registry is owned by its caller; there is no process-wide registry.
// Several registries may coexist, for example one per test.
package catalog

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"
	"text/tabwriter"

	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/storage"
)

// Registry is a concurrency-safe name to table mapping.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*storage.Table
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tables: make(map[string]*storage.Table),
	}
}

// Add registers t under name.
// It fails with a *model.SchemaError if name is taken.
func (r *Registry) Add(name string, t *storage.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[name]; ok {
		return &model.SchemaError{Op: "add table", Reason: fmt.Sprintf("table %q already exists", name)}
	}
	r.tables[name] = t
	return nil
}

// Get returns the table registered under name.
func (r *Registry) Get(name string) (*storage.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[name]
	if !ok {
		return nil, &model.NotFoundError{What: "table", Name: name}
	}
	return t, nil
}

// Drop removes name from the registry.
// Tables referencing the dropped table keep it alive.
func (r *Registry) Drop(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[name]; !ok {
		return &model.NotFoundError{What: "table", Name: name}
	}
	delete(r.tables, name)
	return nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tables[name]
	return ok
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.tables))
}

// Len returns the number of registered tables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}

// Reset removes all tables.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.tables)
}

// Print writes one line per table with its column, row and chunk counts.
func (r *Registry) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "TABLE\tCOLUMNS\tROWS\tCHUNKS"); err != nil {
		return err
	}
	for _, name := range r.Names() {
		t, err := r.Get(name)
		if err != nil {
			// dropped concurrently
			continue
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", name, t.ColumnCount(), t.RowCount(), t.ChunkCount()); err != nil {
			return err
		}
	}
	return tw.Flush()
}
