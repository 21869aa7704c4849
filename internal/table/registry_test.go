package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofekshp/TableCore/pkg/types"
)

func TestNewRegistryOrdersByOrdinal(t *testing.T) {
	reg, err := NewRegistry([]types.Column{
		{ID: "role", OrdinalNo: 4, Type: types.TypeSelect, Options: []string{"User"}},
		{ID: "name", OrdinalNo: 1, Type: types.TypeString},
		{ID: "age", OrdinalNo: 2, Type: types.TypeNumber},
	})
	require.NoError(t, err)

	cols := reg.Columns()
	assert.Equal(t, []string{"name", "age", "role"},
		[]string{cols[0].ID, cols[1].ID, cols[2].ID})
}

func TestNewRegistryRejectsBadColumns(t *testing.T) {
	_, err := NewRegistry([]types.Column{
		{ID: "name", Type: types.TypeString},
		{ID: "name", Type: types.TypeString},
	})
	assert.ErrorIs(t, err, types.ErrDuplicateColumn)

	_, err = NewRegistry([]types.Column{{ID: "role", Type: types.TypeSelect}})
	assert.ErrorIs(t, err, types.ErrMissingOptions)
}

func TestRegistrySearchColumn(t *testing.T) {
	t.Run("prefers the name column", func(t *testing.T) {
		reg := testRegistry(t)
		col, ok := reg.SearchColumn()
		require.True(t, ok)
		assert.Equal(t, "name", col.ID)
		assert.True(t, reg.IsNameColumn("name"))
		assert.False(t, reg.IsNameColumn("age"))
	})

	t.Run("falls back to the first string column", func(t *testing.T) {
		reg, err := NewRegistry([]types.Column{
			{ID: "age", OrdinalNo: 1, Type: types.TypeNumber},
			{ID: "city", OrdinalNo: 2, Type: types.TypeString},
		})
		require.NoError(t, err)
		col, ok := reg.SearchColumn()
		require.True(t, ok)
		assert.Equal(t, "city", col.ID)
	})

	t.Run("absent when no string column exists", func(t *testing.T) {
		reg, err := NewRegistry([]types.Column{
			{ID: "age", OrdinalNo: 1, Type: types.TypeNumber},
		})
		require.NoError(t, err)
		_, ok := reg.SearchColumn()
		assert.False(t, ok)
	})
}
