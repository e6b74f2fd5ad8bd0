package property

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Property value types determine what values a property accepts.
const (
	ValueTypeCategorical = "categorical"
	ValueTypeText        = "text"
	ValueTypeInteger     = "integer"
	ValueTypeBoolean     = "boolean"
	ValueTypeTimestamp   = "timestamp"
	ValueTypeList        = "list"
)

// valueTypes lists the value types in catalog order.
var valueTypes = []string{
	ValueTypeCategorical,
	ValueTypeText,
	ValueTypeInteger,
	ValueTypeBoolean,
	ValueTypeTimestamp,
	ValueTypeList,
}

// validValueTypes is the set of recognized property value types.
var validValueTypes = map[string]bool{
	ValueTypeCategorical: true,
	ValueTypeText:        true,
	ValueTypeInteger:     true,
	ValueTypeBoolean:     true,
	ValueTypeTimestamp:   true,
	ValueTypeList:        true,
}

// Property errors.
var (
	ErrInvalidName      = errors.New("invalid name")
	ErrInvalidValueType = errors.New("invalid value type")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrInvalidValue     = errors.New("invalid value")
)

// Property defines a named attribute with a fixed value type.
type Property struct {
	PropertyID  string    // UUID v7, generated on creation.
	Name        string    // Human-readable name (required, non-empty).
	Description string    // Optional explanation of the property's purpose.
	ValueType   string    // One of the ValueType constants.
	CreatedAt   time.Time // Timestamp of creation.
}

// New creates a property with a fresh UUID v7 identifier.
// Returns ErrInvalidName if name is empty and ErrInvalidValueType if the
// value type is not recognized.
func New(name, valueType, description string) (*Property, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if !IsValidValueType(valueType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValueType, valueType)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate property id: %w", err)
	}
	return &Property{
		PropertyID:  id.String(),
		Name:        name,
		Description: description,
		ValueType:   valueType,
		CreatedAt:   time.Now(),
	}, nil
}

// IsValidValueType reports whether the given string is a recognized value type.
func IsValidValueType(vt string) bool {
	return validValueTypes[vt]
}

// Check reports whether val may be stored in this property. An unset value
// is accepted for every type; a set value must match ValueType.
func (p *Property) Check(val *Value) error {
	vt := val.ValueType()
	if vt == "" || vt == p.ValueType {
		return nil
	}
	return fmt.Errorf("%w: property %q is %s, value is %s", ErrTypeMismatch, p.Name, p.ValueType, vt)
}

// Default returns the type-based default value for this property.
func (p *Property) Default() (*Value, error) {
	return DefaultValue(p.ValueType)
}
