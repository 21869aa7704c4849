package table

import (
	"math"
	"regexp"
	"strings"

	"github.com/ofekshp/TableCore/pkg/types"
)

// Validation limits.
const (
	maxStringLen = 25
	maxNoteLen   = 100
	minNumber    = 0
	maxNumber    = 140
)

// Field error messages, keyed to match what the edit panel displays.
var (
	msgRequired     = "This field is required"
	msgLettersOnly  = "Only English letters allowed"
	msgTooLong      = "Must be 25 characters or less"
	msgNumberRange  = "Must be between 0 and 140"
	msgSelectOption = "Please select a value"

	msgNoteEmpty   = "Note cannot be empty."
	msgNoteCharset = "Only English letters, numbers and punctuation allowed."
	msgNoteTooLong = "Note cannot exceed 100 characters."
)

var (
	lettersOnlyPattern = regexp.MustCompile(`^[a-zA-Z\s]*$`)
	noteCharsetPattern = regexp.MustCompile(`^[a-zA-Z0-9\s.,!?'"()-]*$`)
)

// ValidateRow checks a draft row against the registry and returns at most
// one error per column, keyed by column id. An empty map means the draft
// may be committed.
func ValidateRow(draft types.Row, reg *Registry) map[string]string {
	errs := make(map[string]string)
	for _, col := range reg.Columns() {
		if msg := validateCell(draft, col, reg); msg != "" {
			errs[col.ID] = msg
		}
	}
	return errs
}

func validateCell(draft types.Row, col types.Column, reg *Registry) string {
	cell, ok := draft.Cell(col.ID)

	switch col.Type {
	case types.TypeString:
		val := cell.Str()
		if !ok || strings.TrimSpace(val) == "" {
			return msgRequired
		}
		if reg.IsNameColumn(col.ID) && !lettersOnlyPattern.MatchString(val) {
			return msgLettersOnly
		}
		if len(val) > maxStringLen {
			return msgTooLong
		}

	case types.TypeNumber:
		if !ok || cell.Kind() != types.TypeNumber {
			return msgRequired
		}
		n := cell.Num()
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return msgRequired
		}
		if n < minNumber || n > maxNumber {
			return msgNumberRange
		}

	case types.TypeBoolean:
		// Always valid.

	case types.TypeSelect:
		val := cell.Str()
		if !ok || val == "" {
			return msgSelectOption
		}
		if !col.HasOption(val) {
			return msgSelectOption
		}
	}
	return ""
}

// ValidateNote checks free-text note content: non-empty after trimming,
// the restricted charset, and the length cap. The explicit clear action
// bypasses this entirely; see Session.ClearNote.
func ValidateNote(text string) string {
	if strings.TrimSpace(text) == "" {
		return msgNoteEmpty
	}
	if !noteCharsetPattern.MatchString(text) {
		return msgNoteCharset
	}
	if len(text) > maxNoteLen {
		return msgNoteTooLong
	}
	return ""
}

// normalizeDraft conforms a validated draft to the registry before it is
// stored: cells are retagged to their column types and blank number cells
// become 0. Validation has already required numeric values, so the coercion
// is a defensive normalization, not a bypass.
func normalizeDraft(draft types.Row, reg *Registry) types.Row {
	out := draft.Clone()
	for _, col := range reg.Columns() {
		cell, ok := out.Cells[col.ID]
		if !ok || cell.IsBlank() {
			out.Cells[col.ID] = types.ZeroValue(col.Type)
			continue
		}
		if coerced, err := cell.Coerce(col); err == nil {
			out.Cells[col.ID] = coerced
		} else {
			out.Cells[col.ID] = types.ZeroValue(col.Type)
		}
	}
	return out
}
