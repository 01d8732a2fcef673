package track

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFeatureFlag = errors.New("missing feature flag")
	ErrMissingAttribute   = errors.New("missing attribute")
	ErrUninitializedField = errors.New("uninitialized field")
	ErrDuplicateID        = errors.New("duplicate id")
	ErrInvalidValue       = errors.New("invalid value")
)

// MissingFeatureFlagError is returned when an attribute or group is used
// without its feature being enabled first.
type MissingFeatureFlagError struct {
	Feature fmt.Stringer
}

func (e *MissingFeatureFlagError) Error() string {
	return fmt.Sprintf("expected feature to be registered: %v", e.Feature)
}

func (e *MissingFeatureFlagError) Is(target error) bool {
	return target == ErrMissingFeatureFlag
}

// MissingAttributeError is returned when a feature was enabled but the
// attribute it gates was never set.
type MissingAttributeError struct {
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("expected attribute to be set because feature was enabled: %s", e.Attribute)
}

func (e *MissingAttributeError) Is(target error) bool {
	return target == ErrMissingAttribute
}

type UninitializedFieldError struct {
	Entity string
	Field  string
}

func (e *UninitializedFieldError) Error() string {
	return fmt.Sprintf("%s: field %q was never set", e.Entity, e.Field)
}

func (e *UninitializedFieldError) Is(target error) bool {
	return target == ErrUninitializedField
}

type DuplicateIDError struct {
	Kind string
	ID   uint32
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s id: %d", e.Kind, e.ID)
}

func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

type InvalidValueError struct {
	Name  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for `%s`: %s", e.Name, e.Value)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// SubBuilderError tags a failure from a nested builder with the group and
// field it came from. Index is the position inside a collection, or -1.
type SubBuilderError struct {
	Group string
	Field string
	Index int
	Err   error
}

func (e *SubBuilderError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s.%s[%d]: %v", e.Group, e.Field, e.Index, e.Err)
	}
	return fmt.Sprintf("%s.%s: %v", e.Group, e.Field, e.Err)
}

func (e *SubBuilderError) Unwrap() error {
	return e.Err
}

func subError(group, field string, index int, err error) error {
	return &SubBuilderError{Group: group, Field: field, Index: index, Err: err}
}
