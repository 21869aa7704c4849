package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofekshp/TableCore/pkg/types"
)

// TestSessionLifecycle runs a full seed, mutate, reopen cycle against each
// backend and checks that every mutation survives the restart.
func TestSessionLifecycle(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()

			// First run: the store is empty, so the session seeds it.
			store, closeStore := open(t, dir)
			sess := openSession(t, store)

			require.Len(t, sess.Rows(), 3)

			draft, err := sess.BeginAdd()
			require.NoError(t, err)
			require.NoError(t, sess.UpdateDraft("name", types.String("Dave")))
			require.NoError(t, sess.UpdateDraft("age", types.Number(52)))
			require.NoError(t, sess.UpdateDraft("isActive", types.Bool(true)))
			require.NoError(t, sess.UpdateDraft("role", types.Select("User")))
			require.NoError(t, sess.Commit())
			addedID := draft.ID

			require.NoError(t, sess.SaveNote("p1", "call back"))
			require.NoError(t, sess.DeleteRow("p2"))
			require.NoError(t, sess.SetSort("age"))
			require.NoError(t, sess.SetSort("age")) // flip to descending
			require.NoError(t, sess.ToggleColumnVisibility("role"))

			sess.Close()
			closeStore()

			// Second run: everything above must come back.
			store, closeStore = open(t, dir)
			defer closeStore()
			sess = openSession(t, store)
			defer sess.Close()

			rows := sess.Rows()
			require.Len(t, rows, 3)

			byID := make(map[string]types.Row, len(rows))
			for _, row := range rows {
				byID[row.ID] = row
			}
			assert.NotContains(t, byID, "p2")
			assert.Equal(t, "call back", byID["p1"].Note)

			added, ok := byID[addedID]
			require.True(t, ok, "committed row survives restart")
			assert.Equal(t, "Dave", added.Cells["name"].Str())
			assert.Equal(t, 52.0, added.Cells["age"].Num())

			view := sess.View()
			assert.Equal(t, "age", view.SortColumn)
			assert.Equal(t, types.SortDesc, view.SortOrder)
			assert.False(t, view.IsVisible("role"))
			assert.True(t, view.IsVisible("name"))

			assert.Equal(t, []string{"Dave", "Carol", "Ann"}, rowNames(sess.FilteredSorted()))
		})
	}
}

// TestSessionValidationBlocksCommit checks that an invalid draft leaves the
// persisted table untouched across a restart.
func TestSessionValidationBlocksCommit(t *testing.T) {
	open := backends["sqlite"]
	dir := t.TempDir()

	store, closeStore := open(t, dir)
	sess := openSession(t, store)

	_, err := sess.BeginAdd()
	require.NoError(t, err)
	require.NoError(t, sess.UpdateDraft("name", types.String("Bad99")))

	err = sess.Commit()
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")

	sess.Cancel()
	sess.Close()
	closeStore()

	store, closeStore = open(t, dir)
	defer closeStore()
	sess = openSession(t, store)
	defer sess.Close()

	assert.Len(t, sess.Rows(), 3, "rejected draft never reaches storage")
}

// TestSessionSearchAndPaging drives the derived view over a real backend.
func TestSessionSearchAndPaging(t *testing.T) {
	open := backends["file"]
	store, closeStore := open(t, t.TempDir())
	defer closeStore()
	sess := openSession(t, store)
	defer sess.Close()

	// Page size 2 over 3 rows gives 2 pages.
	rows, totalPages := sess.Page()
	assert.Len(t, rows, 2)
	assert.Equal(t, 2, totalPages)

	require.NoError(t, sess.SetPage(2))
	rows, _ = sess.Page()
	assert.Len(t, rows, 1)

	// Searching resets to the first page.
	sess.SetSearchTerm("ann")
	assert.Equal(t, 1, sess.View().CurrentPage)

	rows, totalPages = sess.Page()
	assert.Equal(t, 1, totalPages)
	assert.Equal(t, []string{"Ann"}, rowNames(rows))

	sess.SetSearchTerm("")
	assert.Len(t, sess.FilteredSorted(), 3)
}
