package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofekshp/TableCore/internal/table"
)

func TestGenerate(t *testing.T) {
	td := Generate(40)
	require.Len(t, td.Data, 40)
	require.NoError(t, td.Normalize())

	reg, err := table.NewRegistry(td.Columns)
	require.NoError(t, err)

	for _, row := range td.Data {
		assert.NotEmpty(t, row.ID)
		assert.Empty(t, table.ValidateRow(row, reg), "seed rows must be valid")

		age := row.Cells["age"].Num()
		assert.GreaterOrEqual(t, age, 18.0)
		assert.LessOrEqual(t, age, 65.0)
		assert.Contains(t, []string{"User", "Admin", "Guest"}, row.Cells["role"].Str())
	}
}

func TestGenerateDefaultsRowCount(t *testing.T) {
	assert.Len(t, Generate(0).Data, DefaultRows)
	assert.Len(t, Generate(-5).Data, DefaultRows)
}

func TestGenerateUniqueIDs(t *testing.T) {
	td := Generate(200)
	seen := make(map[string]bool, len(td.Data))
	for _, row := range td.Data {
		assert.False(t, seen[row.ID], "duplicate id %s", row.ID)
		seen[row.ID] = true
	}
}
