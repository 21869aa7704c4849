// Package table implements the table state engine: the canonical row store,
// the column registry, the pure view derivation pipeline, draft validation,
// and the mutation coordinator that owns all state changes.
package table

import (
	"fmt"
	"sort"

	"github.com/ofekshp/TableCore/pkg/types"
)

// searchColumnID is the preferred searchable column.
const searchColumnID = "name"

// Registry is the read-only column registry. Columns are held in ordinal
// order; lookups are by id.
type Registry struct {
	columns []types.Column
	byID    map[string]int
}

// NewRegistry builds a registry from the given columns, ordered by
// OrdinalNo. Returns ErrDuplicateColumn for repeated ids and the column's
// own validation error for a malformed definition.
func NewRegistry(columns []types.Column) (*Registry, error) {
	cols := make([]types.Column, len(columns))
	copy(cols, columns)
	sort.SliceStable(cols, func(i, j int) bool {
		return cols[i].OrdinalNo < cols[j].OrdinalNo
	})

	byID := make(map[string]int, len(cols))
	for i, c := range cols {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("column %q: %w", c.ID, err)
		}
		if _, ok := byID[c.ID]; ok {
			return nil, fmt.Errorf("column %q: %w", c.ID, types.ErrDuplicateColumn)
		}
		byID[c.ID] = i
	}
	return &Registry{columns: cols, byID: byID}, nil
}

// Columns returns the columns in ordinal order. The slice is a copy.
func (r *Registry) Columns() []types.Column {
	out := make([]types.Column, len(r.columns))
	copy(out, r.columns)
	return out
}

// Len returns the number of columns.
func (r *Registry) Len() int { return len(r.columns) }

// Lookup returns the column with the given id.
func (r *Registry) Lookup(id string) (types.Column, bool) {
	i, ok := r.byID[id]
	if !ok {
		return types.Column{}, false
	}
	return r.columns[i], true
}

// SearchColumn returns the designated searchable column: the column with id
// "name" when present, otherwise the first string column in ordinal order.
// ok is false when the registry has no string column at all.
func (r *Registry) SearchColumn() (types.Column, bool) {
	if c, ok := r.Lookup(searchColumnID); ok && c.Type == types.TypeString {
		return c, true
	}
	for _, c := range r.columns {
		if c.Type == types.TypeString {
			return c, true
		}
	}
	return types.Column{}, false
}

// IsNameColumn reports whether the column carries the letters-only
// validation rule applied to the designated name field.
func (r *Registry) IsNameColumn(id string) bool {
	c, ok := r.SearchColumn()
	return ok && c.ID == id
}
