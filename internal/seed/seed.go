// Package seed produces the starter dataset a session falls back to when
// the persistence layer has nothing usable for it.
package seed

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/ofekshp/TableCore/internal/table"
	"github.com/ofekshp/TableCore/pkg/types"
)

// DefaultRows is how many rows Generate emits when the caller does not care.
const DefaultRows = 100

var roles = []string{"User", "Admin", "Guest"}

// Columns returns the stock column set: a searchable name, an age, an
// active flag and a role picker.
func Columns() []types.Column {
	return []types.Column{
		{ID: "name", OrdinalNo: 1, Title: "Name", Type: types.TypeString, Visible: true},
		{ID: "age", OrdinalNo: 2, Title: "Age", Type: types.TypeNumber, Visible: true},
		{ID: "isActive", OrdinalNo: 3, Title: "Active", Type: types.TypeBoolean, Visible: true},
		{ID: "role", OrdinalNo: 4, Title: "Role", Type: types.TypeSelect, Options: roles, Visible: true},
	}
}

// Generate builds a table of n fake people. Ages land between 18 and 65 so
// every generated row passes validation as-is.
func Generate(n int) types.TableData {
	if n <= 0 {
		n = DefaultRows
	}

	faker := gofakeit.New(0)

	rows := make([]types.Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, types.Row{
			ID: table.GenerateID(),
			Cells: map[string]types.Value{
				"name":     types.String(faker.FirstName()),
				"age":      types.Number(float64(faker.Number(18, 65))),
				"isActive": types.Bool(faker.Bool()),
				"role":     types.Select(roles[faker.Number(0, len(roles)-1)]),
			},
		})
	}

	return types.TableData{Columns: Columns(), Data: rows}
}
