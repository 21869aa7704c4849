package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Value is a tagged cell value. The zero Value is "blank": it has no kind,
// marshals as JSON null, and fails required-field validation. Committed rows
// never hold blank values; drafts may.
type Value struct {
	kind ColumnType
	str  string
	num  float64
	b    bool
}

// String returns a string-kinded value.
func String(s string) Value { return Value{kind: TypeString, str: s} }

// Number returns a number-kinded value.
func Number(f float64) Value { return Value{kind: TypeNumber, num: f} }

// Bool returns a boolean-kinded value.
func Bool(b bool) Value { return Value{kind: TypeBoolean, b: b} }

// Select returns a select-kinded value holding one option name.
func Select(s string) Value { return Value{kind: TypeSelect, str: s} }

// ZeroValue returns the zero value for a column type: "" for string and
// select, 0 for number, false for boolean. An unrecognized type yields a
// blank Value.
func ZeroValue(t ColumnType) Value {
	switch t {
	case TypeString:
		return String("")
	case TypeNumber:
		return Number(0)
	case TypeBoolean:
		return Bool(false)
	case TypeSelect:
		return Select("")
	default:
		return Value{}
	}
}

// Kind returns the value's type tag, or "" for a blank value.
func (v Value) Kind() ColumnType { return v.kind }

// IsBlank reports whether the value is the blank (unset) value.
func (v Value) IsBlank() bool { return v.kind == "" }

// Str returns the string payload of a string or select value.
func (v Value) Str() string { return v.str }

// Num returns the numeric payload of a number value.
func (v Value) Num() float64 { return v.num }

// Bool returns the boolean payload of a boolean value.
func (v Value) Bool() bool { return v.b }

// Matches reports whether the value's runtime kind is acceptable for the
// column's declared type. A string-kinded value satisfies a select column
// (and vice versa); option membership is the validator's concern.
func (v Value) Matches(c Column) bool {
	switch c.Type {
	case TypeString, TypeSelect:
		return v.kind == TypeString || v.kind == TypeSelect
	case TypeNumber:
		return v.kind == TypeNumber
	case TypeBoolean:
		return v.kind == TypeBoolean
	default:
		return false
	}
}

// Coerce retags the value to the column's declared type.
// Returns ErrTypeMismatch when the runtime kind is incompatible.
func (v Value) Coerce(c Column) (Value, error) {
	if !v.Matches(c) {
		return Value{}, ErrTypeMismatch
	}
	v.kind = c.Type
	return v, nil
}

// Display renders the value for presentation and export: the string payload
// for string/select, "true"/"false" for booleans, and a minimal decimal form
// for numbers. Blank values render as "".
func (v Value) Display() string {
	switch v.kind {
	case TypeString, TypeSelect:
		return v.str
	case TypeNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case TypeBoolean:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// MarshalJSON writes the value as a native JSON scalar. Blank values and
// non-finite numbers marshal as null so the blob stays valid JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case TypeString, TypeSelect:
		return json.Marshal(v.str)
	case TypeNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.num)
	case TypeBoolean:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON infers the kind from the JSON scalar type. Select values
// decode as string-kinded; TableData.Normalize retags them against the
// column registry.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = Value{}
	case string:
		*v = String(x)
	case float64:
		*v = Number(x)
	case bool:
		*v = Bool(x)
	default:
		return fmt.Errorf("unsupported cell value %s", data)
	}
	return nil
}
