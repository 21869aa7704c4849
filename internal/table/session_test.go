package table

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofekshp/TableCore/internal/storage"
	"github.com/ofekshp/TableCore/pkg/types"
)

func seedTableData() types.TableData {
	return types.TableData{
		Columns: seedColumns(),
		Data: []types.Row{
			fullRow("1", "Ann", 30, true, "User"),
			fullRow("2", "Bob", 25, false, "Admin"),
		},
	}
}

func newTestSession(t *testing.T) (*Session, *storage.Mirror) {
	t.Helper()
	mirror := storage.NewMirror(storage.NewMemoryStore())
	s, err := NewSession(mirror, Config{
		PageSize: 10,
		Seed:     seedTableData,
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, mirror
}

func TestNewSessionSeedsAndPersists(t *testing.T) {
	mirror := storage.NewMirror(storage.NewMemoryStore())

	s, err := NewSession(mirror, Config{Seed: seedTableData})
	require.NoError(t, err)
	defer s.Close()
	assert.Len(t, s.Rows(), 2)

	// The seed was persisted immediately, so a second session rehydrates
	// the same data without calling the seeder.
	s2, err := NewSession(mirror, Config{})
	require.NoError(t, err)
	defer s2.Close()
	assert.Len(t, s2.Rows(), 2)
}

func TestNewSessionRejectsMissingSeed(t *testing.T) {
	mirror := storage.NewMirror(storage.NewMemoryStore())
	_, err := NewSession(mirror, Config{})
	assert.Error(t, err)
}

func TestNewSessionIgnoresMalformedBlob(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set("tableData", "{not json"))
	mirror := storage.NewMirror(store)

	s, err := NewSession(mirror, Config{Seed: seedTableData})
	require.NoError(t, err)
	defer s.Close()
	assert.Len(t, s.Rows(), 2, "malformed blob falls back to seed")
}

func TestSessionAddCommit(t *testing.T) {
	s, _ := newTestSession(t)

	draft, err := s.BeginAdd()
	require.NoError(t, err)
	assert.NotEmpty(t, draft.ID)

	_, err = s.BeginAdd()
	assert.ErrorIs(t, err, types.ErrEditingInProgress)

	require.NoError(t, s.UpdateDraft("name", types.String("Carol")))
	require.NoError(t, s.UpdateDraft("age", types.Number(41)))
	require.NoError(t, s.UpdateDraft("role", types.Select("Guest")))

	require.NoError(t, s.Commit())
	assert.Len(t, s.Rows(), 3)
	assert.True(t, s.NotificationVisible())

	_, ok := s.Draft()
	assert.False(t, ok, "commit returns to idle")
}

func TestSessionCommitValidationFailure(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.BeginAdd()
	require.NoError(t, err)
	// The untouched draft misses required fields.
	err = s.Commit()

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Fields)
	assert.Len(t, s.Rows(), 2, "failed commit leaves the store unchanged")
	assert.False(t, s.NotificationVisible())

	// Still editing: the errors are attached and the draft is fixable.
	assert.NotEmpty(t, s.FieldErrors())
	_, ok := s.Draft()
	assert.True(t, ok)

	require.NoError(t, s.UpdateDraft("name", types.String("Carol")))
	assert.NotContains(t, s.FieldErrors(), "name", "updating a field clears its error")

	require.NoError(t, s.UpdateDraft("age", types.Number(33)))
	require.NoError(t, s.UpdateDraft("role", types.Select("User")))
	require.NoError(t, s.Commit())
	assert.Len(t, s.Rows(), 3)
}

func TestSessionEditCommit(t *testing.T) {
	s, _ := newTestSession(t)

	draft, err := s.BeginEdit("1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", draft.Cells["name"].Str())

	require.NoError(t, s.UpdateDraft("age", types.Number(31)))
	require.NoError(t, s.Commit())

	rows := s.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0].ID, "replace preserves position")
	assert.Equal(t, float64(31), rows[0].Cells["age"].Num())
}

func TestSessionBeginEditNotFound(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.BeginEdit("99")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSessionCancel(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.BeginEdit("1")
	require.NoError(t, err)
	require.NoError(t, s.UpdateDraft("name", types.String("Changed")))
	s.Cancel()

	rows := s.Rows()
	assert.Equal(t, "Ann", rows[0].Cells["name"].Str(), "cancel discards the draft")

	// Cancel while idle is a no-op.
	s.Cancel()
	assert.ErrorIs(t, s.UpdateDraft("name", types.String("x")), types.ErrNotEditing)
	assert.ErrorIs(t, s.Commit(), types.ErrNotEditing)
}

func TestSessionCommitStaleDraft(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.BeginEdit("1")
	require.NoError(t, err)
	// The row disappears underneath the open draft.
	require.NoError(t, s.DeleteRow("1"))

	err = s.Commit()
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, ok := s.Draft()
	assert.False(t, ok, "stale draft is discarded")
	assert.Len(t, s.Rows(), 1)
}

func TestSessionDeleteRow(t *testing.T) {
	s, mirror := newTestSession(t)

	require.NoError(t, s.DeleteRow("1"))
	assert.Len(t, s.Rows(), 1)
	assert.ErrorIs(t, s.DeleteRow("1"), types.ErrNotFound)

	td, ok := mirror.Load()
	require.True(t, ok)
	assert.Len(t, td.Data, 1, "deletion is persisted")
}

func TestSessionNotes(t *testing.T) {
	s, mirror := newTestSession(t)

	err := s.SaveNote("1", "invalid % note")
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "note")

	err = s.SaveNote("1", "")
	require.ErrorAs(t, err, &verr, "an empty note fails a normal save")

	require.NoError(t, s.SaveNote("1", "Call back Monday."))
	td, ok := mirror.Load()
	require.True(t, ok)
	assert.Equal(t, "Call back Monday.", td.Data[0].Note)

	// The explicit clear bypasses the non-empty rule and persists.
	require.NoError(t, s.ClearNote("1"))
	td, ok = mirror.Load()
	require.True(t, ok)
	assert.Equal(t, "", td.Data[0].Note)

	assert.ErrorIs(t, s.SaveNote("99", "Hello"), types.ErrNotFound)
}

func TestSessionSortFlow(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.SetSort("age"))
	page, _ := s.Page()
	assert.Equal(t, []string{"2", "1"}, rowIDs(page), "ascending: Bob(25) before Ann(30)")

	// Re-invoking the same column flips the order.
	require.NoError(t, s.SetSort("age"))
	page, _ = s.Page()
	assert.Equal(t, []string{"1", "2"}, rowIDs(page))

	// A new column resets to ascending.
	require.NoError(t, s.SetSort("name"))
	assert.Equal(t, types.SortAsc, s.View().SortOrder)

	assert.ErrorIs(t, s.SetSort("bogus"), types.ErrUnknownColumn)
}

func TestSessionSearchResetsPage(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.SetPage(2))
	s.SetSearchTerm("ann")
	view := s.View()
	assert.Equal(t, 1, view.CurrentPage)
	assert.Equal(t, "ann", view.SearchTerm)

	assert.Error(t, s.SetPage(0))
	assert.Error(t, s.SetPage(-3))
}

func TestSessionVisibilityPreferences(t *testing.T) {
	s, mirror := newTestSession(t)

	require.NoError(t, s.ToggleColumnVisibility("age"))
	assert.False(t, s.View().IsVisible("age"))
	assert.ErrorIs(t, s.ToggleColumnVisibility("bogus"), types.ErrUnknownColumn)

	require.NoError(t, s.SetSort("age"))
	require.NoError(t, s.SetSort("age"))

	// A fresh session over the same store picks the preferences up.
	s2, err := NewSession(mirror, Config{})
	require.NoError(t, err)
	defer s2.Close()
	view := s2.View()
	assert.False(t, view.IsVisible("age"))
	assert.True(t, view.IsVisible("name"))
	assert.Equal(t, "age", view.SortColumn)
	assert.Equal(t, types.SortDesc, view.SortOrder)
}

func TestSessionHideShowAll(t *testing.T) {
	s, _ := newTestSession(t)

	s.HideAllColumns()
	for _, c := range s.Columns() {
		assert.False(t, s.View().IsVisible(c.ID))
	}

	s.ShowAllColumns()
	for _, c := range s.Columns() {
		assert.True(t, s.View().IsVisible(c.ID))
	}
}

// failingStore accepts reads but rejects every write.
type failingStore struct{ inner *storage.MemoryStore }

func (f *failingStore) Get(key string) (string, bool, error) { return f.inner.Get(key) }
func (f *failingStore) Set(key, value string) error          { return storage.ErrUnavailable }

func TestSessionSurvivesPersistenceFailure(t *testing.T) {
	inner := storage.NewMemoryStore()
	mirror := storage.NewMirror(inner)
	s, err := NewSession(mirror, Config{Seed: seedTableData})
	require.NoError(t, err)
	s.Close()

	// Same data, but every write now fails.
	failing := storage.NewMirror(&failingStore{inner: inner})
	s, err = NewSession(failing, Config{})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.DeleteRow("1"), "the in-memory mutation must stand")
	assert.Len(t, s.Rows(), 1)

	_, err = s.BeginEdit("2")
	require.NoError(t, err)
	require.NoError(t, s.UpdateDraft("age", types.Number(26)))
	require.NoError(t, s.Commit())
	assert.True(t, s.NotificationVisible())
}

func TestNotificationAutoClears(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the notification timer")
	}
	s, _ := newTestSession(t)

	_, err := s.BeginEdit("1")
	require.NoError(t, err)
	require.NoError(t, s.Commit())
	require.True(t, s.NotificationVisible())

	assert.Eventually(t, func() bool { return !s.NotificationVisible() },
		NotificationDuration+time.Second, 50*time.Millisecond)
}

func TestFilteredSortedIgnoresPagination(t *testing.T) {
	mirror := storage.NewMirror(storage.NewMemoryStore())
	td := seedTableData()
	for i := 0; i < 30; i++ {
		td.Data = append(td.Data, fullRow(GenerateID(), "Extra", 20, true, "User"))
	}
	s, err := NewSession(mirror, Config{PageSize: 5, Seed: func() types.TableData { return td }})
	require.NoError(t, err)
	defer s.Close()

	page, pages := s.Page()
	assert.Len(t, page, 5)
	assert.Equal(t, 7, pages)

	all := s.FilteredSorted()
	assert.Len(t, all, 32, "exports receive the unpaginated set")
}

func TestValidationErrorIsError(t *testing.T) {
	var err error = &types.ValidationError{Fields: map[string]string{"name": "This field is required"}}
	assert.Contains(t, err.Error(), "name")

	var verr *types.ValidationError
	assert.True(t, errors.As(err, &verr))
}
