package types

// Sort directions.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortOrder is the direction of a column sort.
type SortOrder string

// IsValidSortOrder reports whether o is "asc" or "desc".
func IsValidSortOrder(o SortOrder) bool {
	return o == SortAsc || o == SortDesc
}

// DefaultPageSize is the page size used when no configuration overrides it.
const DefaultPageSize = 10

// ViewSpec holds the ephemeral presentation parameters of a session: search
// term, sort column and direction, the set of visible columns, and the
// pagination cursor. It is owned by the mutation coordinator and consumed
// read-only by the view deriver. An empty SortColumn means unsorted.
type ViewSpec struct {
	SearchTerm     string
	SortColumn     string
	SortOrder      SortOrder
	VisibleColumns map[string]bool
	CurrentPage    int
	PageSize       int
}

// DefaultViewSpec returns a ViewSpec with every column visible, no search,
// no sort, and the first page of the given page size.
func DefaultViewSpec(columns []Column, pageSize int) ViewSpec {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	visible := make(map[string]bool, len(columns))
	for _, c := range columns {
		visible[c.ID] = true
	}
	return ViewSpec{
		SortOrder:      SortAsc,
		VisibleColumns: visible,
		CurrentPage:    1,
		PageSize:       pageSize,
	}
}

// IsVisible reports whether the column id is in the visible set.
func (v ViewSpec) IsVisible(colID string) bool {
	return v.VisibleColumns[colID]
}

// Clone returns a copy with an independent visible-column set.
func (v ViewSpec) Clone() ViewSpec {
	visible := make(map[string]bool, len(v.VisibleColumns))
	for k, vis := range v.VisibleColumns {
		visible[k] = vis
	}
	v.VisibleColumns = visible
	return v
}
