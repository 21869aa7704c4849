// Package integration exercises a session over real storage backends.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/ofekshp/TableCore/internal/storage"
	"github.com/ofekshp/TableCore/internal/table"
	"github.com/ofekshp/TableCore/pkg/types"
)

// backendFactory opens a fresh store over dir and returns it with its
// closer. Opening the same dir again after closing must see the same data.
type backendFactory func(t *testing.T, dir string) (storage.Store, func())

// backends lists every store implementation a session can run over.
var backends = map[string]backendFactory{
	"sqlite": func(t *testing.T, dir string) (storage.Store, func()) {
		t.Helper()
		s, err := storage.OpenSQLite(filepath.Join(dir, "session.db"))
		if err != nil {
			t.Fatalf("OpenSQLite: %v", err)
		}
		return s, func() { s.Close() }
	},
	"file": func(t *testing.T, dir string) (storage.Store, func()) {
		t.Helper()
		s, err := storage.OpenFile(filepath.Join(dir, "session.json"))
		if err != nil {
			t.Fatalf("OpenFile: %v", err)
		}
		return s, func() {}
	},
	"badger": func(t *testing.T, dir string) (storage.Store, func()) {
		t.Helper()
		s, err := storage.OpenBadger(filepath.Join(dir, "badger"))
		if err != nil {
			t.Fatalf("OpenBadger: %v", err)
		}
		return s, func() { s.Close() }
	},
}

// seedPeople is a small deterministic dataset for lifecycle tests.
func seedPeople() types.TableData {
	return types.TableData{
		Columns: []types.Column{
			{ID: "name", OrdinalNo: 1, Title: "Name", Type: types.TypeString, Visible: true},
			{ID: "age", OrdinalNo: 2, Title: "Age", Type: types.TypeNumber, Visible: true},
			{ID: "isActive", OrdinalNo: 3, Title: "Active", Type: types.TypeBoolean, Visible: true},
			{ID: "role", OrdinalNo: 4, Title: "Role", Type: types.TypeSelect, Options: []string{"User", "Admin", "Guest"}, Visible: true},
		},
		Data: []types.Row{
			{ID: "p1", Cells: map[string]types.Value{
				"name":     types.String("Ann"),
				"age":      types.Number(30),
				"isActive": types.Bool(true),
				"role":     types.Select("Admin"),
			}},
			{ID: "p2", Cells: map[string]types.Value{
				"name":     types.String("Bob"),
				"age":      types.Number(25),
				"isActive": types.Bool(false),
				"role":     types.Select("User"),
			}},
			{ID: "p3", Cells: map[string]types.Value{
				"name":     types.String("Carol"),
				"age":      types.Number(41),
				"isActive": types.Bool(true),
				"role":     types.Select("Guest"),
			}},
		},
	}
}

// openSession builds a session over the given store with the standard
// test seed and a two-row page.
func openSession(t *testing.T, store storage.Store) *table.Session {
	t.Helper()
	sess, err := table.NewSession(storage.NewMirror(store), table.Config{
		PageSize: 2,
		Seed:     seedPeople,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return sess
}

// rowNames extracts the name cell of each row, in order.
func rowNames(rows []types.Row) []string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Cells["name"].Str())
	}
	return names
}
