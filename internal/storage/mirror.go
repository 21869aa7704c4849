package storage

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ofekshp/TableCore/pkg/types"
)

// Session store keys. The data blob and each preference live under their
// own key; preferences are not nested in the blob.
const (
	keyTableData      = "tableData"
	keyVisibleColumns = "visibleColumns"
	keySortColumn     = "sortColumn"
	keySortOrder      = "sortOrder"
)

// Mirror serializes table state through the injected Store. Writes are
// synchronous from the caller's perspective and best-effort: the caller
// logs failures and keeps its in-memory state.
type Mirror struct {
	store Store
}

// NewMirror wraps a session store.
func NewMirror(store Store) *Mirror {
	return &Mirror{store: store}
}

// Load reads and normalizes the persisted TableData. ok is false when the
// blob is absent, malformed, or the store is unavailable; the caller then
// falls back to a seed dataset and persists it immediately.
func (m *Mirror) Load() (types.TableData, bool) {
	raw, ok, err := m.store.Get(keyTableData)
	if err != nil || !ok {
		return types.TableData{}, false
	}
	var td types.TableData
	if err := json.Unmarshal([]byte(raw), &td); err != nil {
		return types.TableData{}, false
	}
	if len(td.Columns) == 0 {
		return types.TableData{}, false
	}
	if err := td.Normalize(); err != nil {
		return types.TableData{}, false
	}
	return td, true
}

// Save writes the TableData blob.
func (m *Mirror) Save(td types.TableData) error {
	blob, err := json.Marshal(td)
	if err != nil {
		return fmt.Errorf("encoding table data: %w", err)
	}
	if err := m.store.Set(keyTableData, string(blob)); err != nil {
		return fmt.Errorf("persisting table data: %w", err)
	}
	return nil
}

// Preferences is the persisted partial ViewSpec. Each field is independent;
// a false Has* means the key was absent and the default applies.
type Preferences struct {
	VisibleColumns    []string
	HasVisibleColumns bool
	SortColumn        string
	SortOrder         types.SortOrder
}

// LoadPreferences reads the preference keys. Absent or malformed keys are
// skipped; defaults apply.
func (m *Mirror) LoadPreferences() Preferences {
	var p Preferences

	if raw, ok, err := m.store.Get(keyVisibleColumns); err == nil && ok {
		var cols []string
		if err := json.Unmarshal([]byte(raw), &cols); err == nil {
			p.VisibleColumns = cols
			p.HasVisibleColumns = true
		}
	}
	if raw, ok, err := m.store.Get(keySortColumn); err == nil && ok {
		p.SortColumn = raw
	}
	if raw, ok, err := m.store.Get(keySortOrder); err == nil && ok {
		if types.IsValidSortOrder(types.SortOrder(raw)) {
			p.SortOrder = types.SortOrder(raw)
		}
	}
	return p
}

// SavePreferences writes the preference keys from the view spec. The
// visible-column set is stored as a sorted JSON array of ids; the sort
// column and order are raw strings.
func (m *Mirror) SavePreferences(view types.ViewSpec) error {
	visible := make([]string, 0, len(view.VisibleColumns))
	for id, vis := range view.VisibleColumns {
		if vis {
			visible = append(visible, id)
		}
	}
	sort.Strings(visible)

	blob, err := json.Marshal(visible)
	if err != nil {
		return fmt.Errorf("encoding visible columns: %w", err)
	}
	if err := m.store.Set(keyVisibleColumns, string(blob)); err != nil {
		return fmt.Errorf("persisting visible columns: %w", err)
	}
	if err := m.store.Set(keySortColumn, view.SortColumn); err != nil {
		return fmt.Errorf("persisting sort column: %w", err)
	}
	if err := m.store.Set(keySortOrder, string(view.SortOrder)); err != nil {
		return fmt.Errorf("persisting sort order: %w", err)
	}
	return nil
}
