package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Row store errors.
var (
	ErrNotFound    = errors.New("row not found")
	ErrDuplicateID = errors.New("duplicate row id")
	ErrInvalidID   = errors.New("invalid row id")
)

// Column registry errors.
var (
	ErrDuplicateColumn   = errors.New("duplicate column id")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrInvalidColumnType = errors.New("invalid column type")
	ErrMissingOptions    = errors.New("select column requires options")
	ErrTypeMismatch      = errors.New("value type does not match column type")
)

// Editing session errors.
var (
	ErrNotEditing        = errors.New("no editing session in progress")
	ErrEditingInProgress = errors.New("editing session already in progress")
)

// ValidationError carries field-level validation failures keyed by column id.
// Note validation uses the reserved key "note". A commit that produces a
// non-empty Fields map is rejected atomically; no partial row update occurs.
type ValidationError struct {
	Fields map[string]string
}

// Error returns the field errors joined in key order.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
