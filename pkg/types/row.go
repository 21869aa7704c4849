package types

import "encoding/json"

// Reserved row keys in the persisted JSON shape. Column ids may not use them.
const (
	rowKeyID   = "id"
	rowKeyNote = "note"
)

// Row is one record in the table. ID is stable and immutable once assigned.
// Note is free text independent of the column registry. Cells maps column id
// to the typed cell value; a committed row holds a cell for every column.
type Row struct {
	ID    string
	Note  string
	Cells map[string]Value
}

// Clone returns a deep copy of the row. Drafts edit clones so a cancelled
// edit never touches the stored row.
func (r Row) Clone() Row {
	cells := make(map[string]Value, len(r.Cells))
	for k, v := range r.Cells {
		cells[k] = v
	}
	return Row{ID: r.ID, Note: r.Note, Cells: cells}
}

// Cell returns the value stored for the column id.
func (r Row) Cell(colID string) (Value, bool) {
	v, ok := r.Cells[colID]
	return v, ok
}

// CellOrZero returns the cell value for the column, or the column type's
// zero value when the cell is absent or blank.
func (r Row) CellOrZero(c Column) Value {
	if v, ok := r.Cells[c.ID]; ok && !v.IsBlank() {
		return v
	}
	return ZeroValue(c.Type)
}

// MarshalJSON writes the row in the flat persisted shape:
// {"id": ..., "note": ..., "<columnId>": <scalar>, ...}.
// The note key is omitted when empty, matching the original blob.
func (r Row) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(r.Cells)+2)
	obj[rowKeyID] = r.ID
	if r.Note != "" {
		obj[rowKeyNote] = r.Note
	}
	for id, v := range r.Cells {
		obj[id] = v
	}
	return json.Marshal(obj)
}

// UnmarshalJSON reads the flat persisted shape. Cell kinds are inferred from
// the JSON scalar types; TableData.Normalize retags them per column.
func (r *Row) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	out := Row{Cells: make(map[string]Value, len(obj))}
	for key, raw := range obj {
		switch key {
		case rowKeyID:
			if err := json.Unmarshal(raw, &out.ID); err != nil {
				return err
			}
		case rowKeyNote:
			if err := json.Unmarshal(raw, &out.Note); err != nil {
				return err
			}
		default:
			var v Value
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			out.Cells[key] = v
		}
	}
	*r = out
	return nil
}
