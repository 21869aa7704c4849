package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumns() []Column {
	return []Column{
		{ID: "name", OrdinalNo: 1, Title: "Name", Type: TypeString, Visible: true},
		{ID: "age", OrdinalNo: 2, Title: "Age", Type: TypeNumber, Visible: true},
		{ID: "isActive", OrdinalNo: 3, Title: "Active", Type: TypeBoolean, Visible: true},
		{ID: "role", OrdinalNo: 4, Title: "Role", Type: TypeSelect, Options: []string{"User", "Admin", "Guest"}, Visible: true},
	}
}

func TestTableDataNormalize(t *testing.T) {
	td := TableData{
		Columns: testColumns(),
		Data: []Row{
			{ID: "1", Cells: map[string]Value{
				"name":     String("Ann"),
				"age":      Number(30),
				"isActive": Bool(true),
				// decoded blobs carry select values as plain strings
				"role": String("Admin"),
			}},
			// missing cells are filled with zero values
			{ID: "2", Cells: map[string]Value{"name": String("Bob")}},
		},
	}

	require.NoError(t, td.Normalize())

	role, ok := td.Data[0].Cell("role")
	require.True(t, ok)
	assert.Equal(t, TypeSelect, role.Kind())

	age, ok := td.Data[1].Cell("age")
	require.True(t, ok)
	assert.Equal(t, Number(0), age)
	assert.Equal(t, Bool(false), td.Data[1].Cells["isActive"])
	assert.Equal(t, Select(""), td.Data[1].Cells["role"])
}

func TestTableDataNormalizeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		td      TableData
		wantErr error
	}{
		{
			name: "duplicate column id",
			td: TableData{Columns: []Column{
				{ID: "name", Type: TypeString},
				{ID: "name", Type: TypeString},
			}},
			wantErr: ErrDuplicateColumn,
		},
		{
			name: "column shadowing reserved row key",
			td: TableData{Columns: []Column{
				{ID: "note", Type: TypeString},
			}},
			wantErr: ErrInvalidID,
		},
		{
			name: "duplicate row id",
			td: TableData{
				Columns: []Column{{ID: "name", Type: TypeString}},
				Data:    []Row{{ID: "1"}, {ID: "1"}},
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "row without id",
			td: TableData{
				Columns: []Column{{ID: "name", Type: TypeString}},
				Data:    []Row{{}},
			},
			wantErr: ErrInvalidID,
		},
		{
			name: "cell kind incompatible with column",
			td: TableData{
				Columns: []Column{{ID: "age", Type: TypeNumber}},
				Data:    []Row{{ID: "1", Cells: map[string]Value{"age": String("old")}}},
			},
			wantErr: ErrTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.td.Normalize(), tt.wantErr)
		})
	}
}

func TestRowJSONShape(t *testing.T) {
	row := Row{
		ID:   "r1",
		Note: "call back",
		Cells: map[string]Value{
			"name":     String("Ann"),
			"age":      Number(30),
			"isActive": Bool(true),
			"role":     Select("Admin"),
		},
	}

	blob, err := json.Marshal(row)
	require.NoError(t, err)

	// The persisted shape is flat: reserved keys plus one scalar per column.
	var flat map[string]any
	require.NoError(t, json.Unmarshal(blob, &flat))
	assert.Equal(t, "r1", flat["id"])
	assert.Equal(t, "call back", flat["note"])
	assert.Equal(t, float64(30), flat["age"])
	assert.Equal(t, true, flat["isActive"])
	assert.Equal(t, "Admin", flat["role"])

	var decoded Row
	require.NoError(t, json.Unmarshal(blob, &decoded))
	assert.Equal(t, row.ID, decoded.ID)
	assert.Equal(t, row.Note, decoded.Note)
	assert.Equal(t, "Ann", decoded.Cells["name"].Str())
}

func TestRowJSONOmitsEmptyNote(t *testing.T) {
	row := Row{ID: "r1", Cells: map[string]Value{"name": String("Bob")}}
	blob, err := json.Marshal(row)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(blob, &flat))
	_, hasNote := flat["note"]
	assert.False(t, hasNote)
}
