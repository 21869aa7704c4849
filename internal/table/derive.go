package table

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ofekshp/TableCore/pkg/types"
)

// Derive runs the full view pipeline over a row snapshot:
// filter by search term, stable-sort by the sort column, then slice the
// current page. It is pure: inputs are never mutated. totalPages is at
// least 1 even for an empty result set. Column visibility plays no part
// here; it only governs presentation.
func Derive(rows []types.Row, reg *Registry, spec types.ViewSpec) (pageRows []types.Row, totalPages int) {
	filtered := FilterSort(rows, reg, spec)
	return paginate(filtered, spec.CurrentPage, spec.PageSize)
}

// FilterSort applies the filter and sort stages only. Export encoders
// consume this: they receive the filtered, sorted, unpaginated row set.
func FilterSort(rows []types.Row, reg *Registry, spec types.ViewSpec) []types.Row {
	out := filterRows(rows, reg, spec.SearchTerm)
	sortRows(out, reg, spec)
	return out
}

func filterRows(rows []types.Row, reg *Registry, term string) []types.Row {
	out := make([]types.Row, 0, len(rows))
	if term == "" {
		return append(out, rows...)
	}
	col, ok := reg.SearchColumn()
	if !ok {
		return append(out, rows...)
	}
	needle := strings.ToLower(term)
	for _, r := range rows {
		hay := strings.ToLower(r.CellOrZero(col).Str())
		if strings.Contains(hay, needle) {
			out = append(out, r)
		}
	}
	return out
}

// sortRows stable-sorts in place by the spec's sort column. Descending order
// reverses the comparator rather than the sorted slice, so rows comparing
// equal keep their pre-sort relative order in both directions.
func sortRows(rows []types.Row, reg *Registry, spec types.ViewSpec) {
	if spec.SortColumn == "" {
		return
	}
	col, ok := reg.Lookup(spec.SortColumn)
	if !ok {
		return
	}
	cmp := comparatorFor(col)
	if spec.SortOrder == types.SortDesc {
		base := cmp
		cmp = func(a, b types.Row) int { return -base(a, b) }
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return cmp(rows[i], rows[j]) < 0
	})
}

// comparatorFor returns the ascending comparator for a column's declared
// type: numeric difference for numbers, true-before-false for booleans,
// locale-aware lexicographic order for strings and selects.
func comparatorFor(col types.Column) func(a, b types.Row) int {
	switch col.Type {
	case types.TypeNumber:
		return func(a, b types.Row) int {
			av, bv := a.CellOrZero(col).Num(), b.CellOrZero(col).Num()
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	case types.TypeBoolean:
		return func(a, b types.Row) int {
			return boolRank(a.CellOrZero(col).Bool()) - boolRank(b.CellOrZero(col).Bool())
		}
	default:
		coll := collate.New(language.English)
		return func(a, b types.Row) int {
			return coll.CompareString(a.CellOrZero(col).Str(), b.CellOrZero(col).Str())
		}
	}
}

// boolRank orders true before false ascending; ties are equal.
func boolRank(b bool) int {
	if b {
		return 0
	}
	return 1
}

func paginate(rows []types.Row, page, pageSize int) ([]types.Row, int) {
	if pageSize < 1 {
		pageSize = types.DefaultPageSize
	}
	totalPages := (len(rows) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []types.Row{}, totalPages
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], totalPages
}
