package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/hupe1980/colstore/storage"
)

var (
	// ErrAlreadyExecuted is returned when Execute is called a second time.
	ErrAlreadyExecuted = errors.New("operator already executed")

	// ErrNotExecuted is returned when an operator consumes an input that has
	// not produced output.
	ErrNotExecuted = errors.New("input operator not executed")
)

// Operator produces a table.
type Operator interface {
	// Execute runs the operator. It may be called once; later calls fail
	// with ErrAlreadyExecuted.
	Execute(ctx context.Context) error

	// Output returns the result of a successful Execute, or nil.
	Output() *storage.Table
}

// state tracks the single execution of an operator.
type state struct {
	mu       sync.Mutex
	executed bool
	output   *storage.Table
}

// run executes fn once. The operator is terminal afterwards even if fn fails.
func (s *state) run(fn func() (*storage.Table, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.executed {
		return ErrAlreadyExecuted
	}
	s.executed = true

	out, err := fn()
	if err != nil {
		return err
	}
	s.output = out
	return nil
}

// Output returns the produced table, or nil.
func (s *state) Output() *storage.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.output
}

// TableWrapper makes an existing table available as an operator input.
type TableWrapper struct {
	state
	table *storage.Table
}

// NewTableWrapper wraps t.
func NewTableWrapper(t *storage.Table) *TableWrapper {
	return &TableWrapper{table: t}
}

// Execute publishes the wrapped table.
func (w *TableWrapper) Execute(context.Context) error {
	return w.run(func() (*storage.Table, error) {
		return w.table, nil
	})
}

// TableSource looks up tables by name.
// *catalog.Registry implements it.
type TableSource interface {
	Get(name string) (*storage.Table, error)
}

// GetTable outputs a named table from a TableSource.
type GetTable struct {
	state
	source TableSource
	name   string
}

// NewGetTable creates an operator that reads name from source.
func NewGetTable(source TableSource, name string) *GetTable {
	return &GetTable{source: source, name: name}
}

// Execute looks up the table. It fails with a *model.NotFoundError if the
// source has no table of that name.
func (g *GetTable) Execute(ctx context.Context) error {
	return g.run(func() (*storage.Table, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return g.source.Get(g.name)
	})
}

// TableName returns the name the operator looks up.
func (g *GetTable) TableName() string { return g.name }
