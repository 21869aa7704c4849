package table

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ofekshp/TableCore/internal/storage"
	"github.com/ofekshp/TableCore/pkg/types"
)

// NotificationDuration is how long the success notification stays visible
// after a committed mutation before auto-clearing.
const NotificationDuration = 3 * time.Second

// Config carries session construction parameters.
type Config struct {
	// PageSize for the derived view; DefaultPageSize when zero.
	PageSize int
	// Seed produces the initial dataset when the mirror has none.
	Seed func() types.TableData
	// Logger receives non-fatal persistence warnings; slog.Default when nil.
	Logger *slog.Logger
}

// Session is the mutation coordinator: the single authority through which
// every row, note, visibility, sort, and pagination mutation passes. It owns
// the row store and the view spec, mirrors them to the session store after
// each successful mutation, and runs the add/edit draft state machine.
//
// All mutations are driven by discrete user actions and run to completion;
// the mutex exists only because the notification auto-clear timer fires on
// its own goroutine.
type Session struct {
	mu     sync.Mutex
	reg    *Registry
	store  *Store
	view   types.ViewSpec
	mirror *storage.Mirror
	logger *slog.Logger

	editing   bool
	isNew     bool
	draft     types.Row
	fieldErrs map[string]string

	notifyVisible bool
	notifyTimer   *time.Timer
}

// NewSession rehydrates a session from the mirror, falling back to the seed
// dataset (persisted immediately so subsequent loads are stable) when the
// persisted blob is absent or malformed. Persisted preferences are applied
// on top of the default view spec.
func NewSession(mirror *storage.Mirror, cfg Config) (*Session, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	td, ok := mirror.Load()
	if !ok {
		if cfg.Seed == nil {
			return nil, fmt.Errorf("no persisted table data and no seed generator")
		}
		td = cfg.Seed()
		if err := td.Normalize(); err != nil {
			return nil, fmt.Errorf("seed dataset: %w", err)
		}
		if err := mirror.Save(td); err != nil {
			logger.Warn("persisting seed dataset", "error", err)
		}
	}

	reg, err := NewRegistry(td.Columns)
	if err != nil {
		return nil, fmt.Errorf("building column registry: %w", err)
	}
	store, err := NewStore(td.Data)
	if err != nil {
		return nil, fmt.Errorf("building row store: %w", err)
	}

	view := types.DefaultViewSpec(reg.Columns(), cfg.PageSize)
	applyPreferences(&view, reg, mirror.LoadPreferences())

	return &Session{
		reg:    reg,
		store:  store,
		view:   view,
		mirror: mirror,
		logger: logger,
	}, nil
}

// applyPreferences overlays persisted preferences onto the default view.
// Unknown column ids are dropped; an unknown sort column clears the sort.
func applyPreferences(view *types.ViewSpec, reg *Registry, p storage.Preferences) {
	if p.HasVisibleColumns {
		visible := make(map[string]bool, reg.Len())
		for _, c := range reg.Columns() {
			visible[c.ID] = false
		}
		for _, id := range p.VisibleColumns {
			if _, ok := reg.Lookup(id); ok {
				visible[id] = true
			}
		}
		view.VisibleColumns = visible
	}
	if p.SortColumn != "" {
		if _, ok := reg.Lookup(p.SortColumn); ok {
			view.SortColumn = p.SortColumn
			if types.IsValidSortOrder(p.SortOrder) {
				view.SortOrder = p.SortOrder
			}
		}
	}
}

// Close stops the notification timer.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notifyTimer != nil {
		s.notifyTimer.Stop()
		s.notifyTimer = nil
	}
}

// Registry returns the column registry.
func (s *Session) Registry() *Registry { return s.reg }

// Columns returns the columns in ordinal order.
func (s *Session) Columns() []types.Column { return s.reg.Columns() }

// Rows returns a snapshot of the canonical row collection.
func (s *Session) Rows() []types.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Rows()
}

// View returns a copy of the current view spec.
func (s *Session) View() types.ViewSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Clone()
}

// Page derives the current page: filtered, sorted, paginated.
func (s *Session) Page() ([]types.Row, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Derive(s.store.Rows(), s.reg, s.view)
}

// FilteredSorted derives the filtered, sorted, unpaginated row set for the
// export collaborators.
func (s *Session) FilteredSorted() []types.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FilterSort(s.store.Rows(), s.reg, s.view)
}

// NotificationVisible reports whether the transient success notification is
// currently shown.
func (s *Session) NotificationVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifyVisible
}

// Editing state machine: Idle -> Editing(draft, isNew) -> Idle.

// BeginAdd constructs a draft row with a freshly generated id and
// per-column zero values (number cells start blank so the required check
// fires on an untouched draft) and enters the editing state.
// Returns ErrEditingInProgress when a draft is already open.
func (s *Session) BeginAdd() (types.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing {
		return types.Row{}, types.ErrEditingInProgress
	}
	draft := types.Row{ID: GenerateID(), Cells: make(map[string]types.Value, s.reg.Len())}
	for _, c := range s.reg.Columns() {
		if c.Type == types.TypeNumber {
			continue
		}
		draft.Cells[c.ID] = types.ZeroValue(c.Type)
	}
	s.editing = true
	s.isNew = true
	s.draft = draft
	s.fieldErrs = nil
	return draft.Clone(), nil
}

// BeginEdit loads the existing row as the draft and enters the editing
// state. Returns ErrNotFound for an unknown id and ErrEditingInProgress
// when a draft is already open.
func (s *Session) BeginEdit(rowID string) (types.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing {
		return types.Row{}, types.ErrEditingInProgress
	}
	row, err := s.store.Get(rowID)
	if err != nil {
		return types.Row{}, err
	}
	s.editing = true
	s.isNew = false
	s.draft = row
	s.fieldErrs = nil
	return row.Clone(), nil
}

// UpdateDraft sets one field of the open draft and clears that field's
// previous error. Returns ErrNotEditing outside an editing session and
// ErrUnknownColumn for an id the registry does not know.
func (s *Session) UpdateDraft(colID string, v types.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return types.ErrNotEditing
	}
	if _, ok := s.reg.Lookup(colID); !ok {
		return types.ErrUnknownColumn
	}
	s.draft.Cells[colID] = v
	delete(s.fieldErrs, colID)
	return nil
}

// Draft returns a copy of the open draft.
func (s *Session) Draft() (types.Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return types.Row{}, false
	}
	return s.draft.Clone(), true
}

// Cancel discards the draft and returns to idle without touching the store.
// Safe to call when no draft is open.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = false
	s.draft = types.Row{}
	s.fieldErrs = nil
}

// Commit validates the draft and, on success, inserts (new) or replaces
// (existing) the row, persists the data blob, shows the success
// notification, and returns to idle. On validation failure the session
// stays in the editing state with the field errors attached and a
// *types.ValidationError is returned; the store is untouched.
func (s *Session) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return types.ErrNotEditing
	}

	errs := ValidateRow(s.draft, s.reg)
	if len(errs) > 0 {
		s.fieldErrs = errs
		return &types.ValidationError{Fields: errs}
	}

	row := normalizeDraft(s.draft, s.reg)
	var err error
	if s.isNew {
		err = s.store.Insert(row)
	} else {
		err = s.store.Replace(row.ID, row)
	}
	if err != nil {
		// Stale draft against a concurrently removed or re-added row.
		// Discard the attempt; the caller refreshes from the store.
		s.editing = false
		s.draft = types.Row{}
		s.fieldErrs = nil
		return err
	}

	s.editing = false
	s.draft = types.Row{}
	s.fieldErrs = nil
	s.persistData()
	s.showNotification()
	return nil
}

// FieldErrors returns a copy of the field errors from the last failed
// commit attempt of the open draft.
func (s *Session) FieldErrors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.fieldErrs))
	for k, v := range s.fieldErrs {
		out[k] = v
	}
	return out
}

// DeleteRow removes the row and persists. Independent of the editing state
// machine; the caller is responsible for its confirm step.
// Returns ErrNotFound for an unknown id.
func (s *Session) DeleteRow(rowID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Remove(rowID); err != nil {
		return err
	}
	s.persistData()
	return nil
}

// SaveNote validates and sets the row's note, then persists. A failed
// validation returns a *types.ValidationError keyed by "note".
func (s *Session) SaveNote(rowID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg := ValidateNote(text); msg != "" {
		return &types.ValidationError{Fields: map[string]string{"note": msg}}
	}
	if err := s.store.SetNote(rowID, text); err != nil {
		return err
	}
	s.persistData()
	return nil
}

// ClearNote sets the row's note to the empty string unconditionally and
// persists. This is a distinct entry point from SaveNote: the user's intent
// is deletion of the note, so the non-empty rule does not apply.
func (s *Session) ClearNote(rowID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SetNote(rowID, ""); err != nil {
		return err
	}
	s.persistData()
	return nil
}

// View-spec mutations. These touch no row data and persist only the
// preference keys.

// ToggleColumnVisibility flips one column's visibility.
// Returns ErrUnknownColumn for an id the registry does not know.
func (s *Session) ToggleColumnVisibility(colID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reg.Lookup(colID); !ok {
		return types.ErrUnknownColumn
	}
	s.view.VisibleColumns[colID] = !s.view.VisibleColumns[colID]
	s.persistPreferences()
	return nil
}

// ShowAllColumns marks every column visible.
func (s *Session) ShowAllColumns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.reg.Columns() {
		s.view.VisibleColumns[c.ID] = true
	}
	s.persistPreferences()
}

// HideAllColumns marks every column hidden.
func (s *Session) HideAllColumns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.reg.Columns() {
		s.view.VisibleColumns[c.ID] = false
	}
	s.persistPreferences()
}

// SetSort sorts by the column. Re-invoking on the current sort column flips
// the direction; a new column resets to ascending.
// Returns ErrUnknownColumn for an id the registry does not know.
func (s *Session) SetSort(colID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reg.Lookup(colID); !ok {
		return types.ErrUnknownColumn
	}
	if s.view.SortColumn == colID {
		if s.view.SortOrder == types.SortAsc {
			s.view.SortOrder = types.SortDesc
		} else {
			s.view.SortOrder = types.SortAsc
		}
	} else {
		s.view.SortColumn = colID
		s.view.SortOrder = types.SortAsc
	}
	s.persistPreferences()
	return nil
}

// SetSearchTerm filters by the term and resets pagination to page 1.
func (s *Session) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.SearchTerm = term
	s.view.CurrentPage = 1
	s.persistPreferences()
}

// SetPage moves the pagination cursor. Pages below 1 are rejected; pages
// past the end are clamped at derivation time.
func (s *Session) SetPage(page int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		return fmt.Errorf("page must be positive, got %d", page)
	}
	s.view.CurrentPage = page
	return nil
}

// persistData mirrors the data blob. Best-effort: failure is logged and the
// in-memory mutation stands. Callers hold s.mu.
func (s *Session) persistData() {
	td := types.TableData{Columns: s.reg.Columns(), Data: s.store.Rows()}
	if err := s.mirror.Save(td); err != nil {
		s.logger.Warn("persisting table data", "error", err)
	}
}

// persistPreferences mirrors the preference keys. Best-effort, like
// persistData. Callers hold s.mu.
func (s *Session) persistPreferences() {
	if err := s.mirror.SavePreferences(s.view); err != nil {
		s.logger.Warn("persisting view preferences", "error", err)
	}
}

// showNotification makes the success notification visible and schedules its
// auto-clear. A new commit replaces the previous timer rather than stacking,
// so an earlier timer never clips a later notification. Callers hold s.mu.
func (s *Session) showNotification() {
	s.notifyVisible = true
	if s.notifyTimer != nil {
		s.notifyTimer.Stop()
	}
	s.notifyTimer = time.AfterFunc(NotificationDuration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.notifyVisible = false
	})
}
