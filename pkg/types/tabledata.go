package types

import "fmt"

// TableData is the persisted unit: the column registry plus the canonical
// ordered row collection.
type TableData struct {
	Columns []Column `json:"columns"`
	Data    []Row    `json:"data"`
}

// Normalize validates the columns and conforms every row to them: select
// cells decoded as plain strings are retagged, cells of an incompatible
// runtime kind are rejected, and missing cells are filled with the column
// type's zero value. Rows with empty or duplicate ids are rejected.
// Normalize is called after deserializing a persisted blob; a failure means
// the blob is malformed and the caller falls back to a seed dataset.
func (td *TableData) Normalize() error {
	seen := make(map[string]bool, len(td.Columns))
	for _, c := range td.Columns {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("column %q: %w", c.ID, err)
		}
		if c.ID == rowKeyID || c.ID == rowKeyNote {
			return fmt.Errorf("column %q: %w", c.ID, ErrInvalidID)
		}
		if seen[c.ID] {
			return fmt.Errorf("column %q: %w", c.ID, ErrDuplicateColumn)
		}
		seen[c.ID] = true
	}

	rowIDs := make(map[string]bool, len(td.Data))
	for i := range td.Data {
		row := &td.Data[i]
		if row.ID == "" {
			return fmt.Errorf("row %d: %w", i, ErrInvalidID)
		}
		if rowIDs[row.ID] {
			return fmt.Errorf("row %q: %w", row.ID, ErrDuplicateID)
		}
		rowIDs[row.ID] = true
		if row.Cells == nil {
			row.Cells = make(map[string]Value, len(td.Columns))
		}
		for _, c := range td.Columns {
			v, ok := row.Cells[c.ID]
			if !ok || v.IsBlank() {
				row.Cells[c.ID] = ZeroValue(c.Type)
				continue
			}
			coerced, err := v.Coerce(c)
			if err != nil {
				return fmt.Errorf("row %q column %q: %w", row.ID, c.ID, err)
			}
			row.Cells[c.ID] = coerced
		}
	}
	return nil
}
