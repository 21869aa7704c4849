package types

// Column value types determine what values a column's cells accept.
const (
	TypeString  ColumnType = "string"
	TypeNumber  ColumnType = "number"
	TypeBoolean ColumnType = "boolean"
	TypeSelect  ColumnType = "select"
)

// ColumnType is the declared value type of a column.
type ColumnType string

// validColumnTypes is the set of recognized column types.
var validColumnTypes = map[ColumnType]bool{
	TypeString:  true,
	TypeNumber:  true,
	TypeBoolean: true,
	TypeSelect:  true,
}

// IsValidColumnType reports whether t is a recognized column type.
func IsValidColumnType(t ColumnType) bool {
	return validColumnTypes[t]
}

// Column describes one field of a row: its stable id, display metadata,
// declared value type, and presentation visibility. Options is the ordered
// set of accepted values and is present exactly when Type is "select".
type Column struct {
	ID        string     `json:"id"`
	OrdinalNo int        `json:"ordinalNo"`
	Title     string     `json:"title"`
	Type      ColumnType `json:"type"`
	Options   []string   `json:"options,omitempty"`
	Width     float64    `json:"width,omitempty"`
	Visible   bool       `json:"visible"`
}

// Validate checks that the column is well-formed.
// Returns ErrInvalidID for an empty id, ErrInvalidColumnType for an
// unrecognized type, and ErrMissingOptions for a select column without
// options.
func (c Column) Validate() error {
	if c.ID == "" {
		return ErrInvalidID
	}
	if !IsValidColumnType(c.Type) {
		return ErrInvalidColumnType
	}
	if c.Type == TypeSelect && len(c.Options) == 0 {
		return ErrMissingOptions
	}
	return nil
}

// HasOption reports whether v is a member of the column's options.
func (c Column) HasOption(v string) bool {
	for _, opt := range c.Options {
		if opt == v {
			return true
		}
	}
	return false
}
