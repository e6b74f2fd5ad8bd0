package property

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mesh-intelligence/quick/pkg/debugstream"
	"github.com/mesh-intelligence/quick/pkg/variant"
)

// Category is the value of a categorical property: the name of one of the
// property's categories.
type Category string

// Catalog lists the Go types backing each value type, in the order of the
// ValueType constants.
type Catalog = variant.Of6[Category, string, int64, bool, time.Time, []string]

var catalog Catalog

// Value holds at most one typed property value. The zero Value is unset.
type Value struct {
	v variant.Variant[Catalog]
}

// DefaultValue returns the type-based default for a value type: unset for
// categorical and timestamp, "" for text, 0 for integer, false for boolean
// and an empty list for list.
// Returns ErrInvalidValueType if the type is not recognized.
func DefaultValue(valueType string) (*Value, error) {
	val := &Value{}
	switch valueType {
	case ValueTypeCategorical, ValueTypeTimestamp:
	case ValueTypeText:
		val.SetText("")
	case ValueTypeInteger:
		val.SetInteger(0)
	case ValueTypeBoolean:
		val.SetBoolean(false)
	case ValueTypeList:
		val.SetList([]string{})
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidValueType, valueType)
	}
	return val, nil
}

// Parse converts raw text into a value of the given type. Timestamps use
// RFC 3339; lists are comma separated with surrounding spaces trimmed.
func Parse(valueType, raw string) (*Value, error) {
	val := &Value{}
	switch valueType {
	case ValueTypeCategorical:
		if raw == "" {
			return nil, fmt.Errorf("%w: empty category", ErrInvalidValue)
		}
		val.SetCategory(Category(raw))
	case ValueTypeText:
		val.SetText(raw)
	case ValueTypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		val.SetInteger(n)
	case ValueTypeBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		val.SetBoolean(b)
	case ValueTypeTimestamp:
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		val.SetTimestamp(ts)
	case ValueTypeList:
		items := []string{}
		for item := range strings.SplitSeq(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		val.SetList(items)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidValueType, valueType)
	}
	return val, nil
}

// ValueType returns the value type currently held, or "" when unset.
func (val *Value) ValueType() string {
	if val == nil || !val.v.Initialized() {
		return ""
	}
	return valueTypes[val.v.Active()]
}

// IsSet reports whether the value holds anything.
func (val *Value) IsSet() bool {
	return val != nil && val.v.Initialized()
}

// Any returns the held value, or nil when unset. Lists are copied.
func (val *Value) Any() any {
	if val == nil {
		return nil
	}
	x, _ := val.v.Value()
	if items, ok := x.([]string); ok {
		return append([]string{}, items...)
	}
	return x
}

// Unset clears the value.
func (val *Value) Unset() {
	val.v.Clear()
}

// Setters switch the value type when needed and overwrite the held value.

func (val *Value) SetCategory(c Category) { *variant.Emplace(&val.v, catalog.I0(), nil) = c }
func (val *Value) SetText(s string)       { *variant.Emplace(&val.v, catalog.I1(), nil) = s }
func (val *Value) SetInteger(n int64)     { *variant.Emplace(&val.v, catalog.I2(), nil) = n }
func (val *Value) SetBoolean(b bool)      { *variant.Emplace(&val.v, catalog.I3(), nil) = b }
func (val *Value) SetTimestamp(t time.Time) {
	*variant.Emplace(&val.v, catalog.I4(), nil) = t
}

// SetList stores a copy of items.
func (val *Value) SetList(items []string) {
	*variant.Emplace(&val.v, catalog.I5(), nil) = append([]string{}, items...)
}

// AppendList appends to the list, converting an unset or differently typed
// value into an empty list first.
func (val *Value) AppendList(items ...string) {
	list := variant.Emplace(&val.v, catalog.I5(), func() []string { return []string{} })
	*list = append(*list, items...)
}

// Getters return ErrTypeMismatch when a different type, or nothing, is held.

func (val *Value) Category() (Category, error) { return get(val, catalog.I0()) }
func (val *Value) Text() (string, error)       { return get(val, catalog.I1()) }
func (val *Value) Integer() (int64, error)     { return get(val, catalog.I2()) }
func (val *Value) Boolean() (bool, error)      { return get(val, catalog.I3()) }
func (val *Value) Timestamp() (time.Time, error) {
	return get(val, catalog.I4())
}

// List returns a copy of the held list.
func (val *Value) List() ([]string, error) {
	items, err := get(val, catalog.I5())
	if err != nil {
		return nil, err
	}
	return append([]string{}, items...), nil
}

func get[T any](val *Value, i variant.Index[Catalog, T]) (T, error) {
	x, err := variant.Get(&val.v, i)
	if err != nil {
		held := val.ValueType()
		if held == "" {
			held = "unset"
		}
		return x, fmt.Errorf("%w: want %s, have %s: %w", ErrTypeMismatch, valueTypes[i.Pos()], held, err)
	}
	return x, nil
}

// DebugStream writes the value type and value.
func (val *Value) DebugStream(s *debugstream.Stream) {
	if !val.IsSet() {
		s.WriteString("type: unset")
		return
	}
	s.WriteString("type: " + val.ValueType() + ",\nvalue: ")
	if val.ValueType() == ValueTypeTimestamp {
		ts, _ := val.Timestamp()
		s.WriteString(ts.Format(time.RFC3339))
		return
	}
	s.Write(val.Any())
}
