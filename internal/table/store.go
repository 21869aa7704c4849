package table

import (
	"github.com/google/uuid"

	"github.com/ofekshp/TableCore/pkg/types"
)

// Store is the canonical ordered row collection. It exclusively owns the
// rows; callers receive snapshots. The engine is single-threaded by design,
// so the store itself carries no locking.
type Store struct {
	rows  []types.Row
	index map[string]int
}

// NewStore builds a store from the given rows, preserving their order.
// Returns ErrDuplicateID if two rows share an id and ErrInvalidID for an
// empty one.
func NewStore(rows []types.Row) (*Store, error) {
	s := &Store{
		rows:  make([]types.Row, 0, len(rows)),
		index: make(map[string]int, len(rows)),
	}
	for _, r := range rows {
		if err := s.Insert(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// GenerateID produces a new row identifier: a UUID v7, whose millisecond
// timestamp prefix keeps ids time-ordered while the random tail prevents
// collisions between calls within the same millisecond.
func GenerateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}

// Len returns the number of rows.
func (s *Store) Len() int { return len(s.rows) }

// Rows returns a snapshot of the row collection in canonical order.
func (s *Store) Rows() []types.Row {
	out := make([]types.Row, len(s.rows))
	for i, r := range s.rows {
		out[i] = r.Clone()
	}
	return out
}

// Get returns a copy of the row with the given id.
// Returns ErrNotFound if absent and ErrInvalidID for an empty id.
func (s *Store) Get(id string) (types.Row, error) {
	if id == "" {
		return types.Row{}, types.ErrInvalidID
	}
	i, ok := s.index[id]
	if !ok {
		return types.Row{}, types.ErrNotFound
	}
	return s.rows[i].Clone(), nil
}

// Insert appends the row. Returns ErrDuplicateID if the id is already
// present and ErrInvalidID for an empty id.
func (s *Store) Insert(row types.Row) error {
	if row.ID == "" {
		return types.ErrInvalidID
	}
	if _, ok := s.index[row.ID]; ok {
		return types.ErrDuplicateID
	}
	s.index[row.ID] = len(s.rows)
	s.rows = append(s.rows, row.Clone())
	return nil
}

// Replace overwrites the row with the given id in place, preserving its
// position. The replacement keeps the id regardless of what the new row
// carries. Returns ErrNotFound if absent.
func (s *Store) Replace(id string, row types.Row) error {
	if id == "" {
		return types.ErrInvalidID
	}
	i, ok := s.index[id]
	if !ok {
		return types.ErrNotFound
	}
	row = row.Clone()
	row.ID = id
	s.rows[i] = row
	return nil
}

// Remove deletes the row with the given id, preserving the relative order
// of the remaining rows. Returns ErrNotFound if absent.
func (s *Store) Remove(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	i, ok := s.index[id]
	if !ok {
		return types.ErrNotFound
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.rows); j++ {
		s.index[s.rows[j].ID] = j
	}
	return nil
}

// SetNote updates only the note of the row with the given id.
// Returns ErrNotFound if absent.
func (s *Store) SetNote(id, note string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	i, ok := s.index[id]
	if !ok {
		return types.ErrNotFound
	}
	s.rows[i].Note = note
	return nil
}
