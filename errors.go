package instantiate

import "errors"

var (
	// ErrTypeNotFound is returned when neither the unqualified nor the
	// scope-qualified identifier is registered.
	ErrTypeNotFound = errors.New("type not found")

	// ErrNotInstantiable is returned when a type is registered under the
	// requested identifier but does not implement [Instantiable] or has no
	// constructor.
	ErrNotInstantiable = errors.New("type is not instantiable")

	// ErrDuplicateType is returned when an identifier or alias is registered
	// more than once.
	ErrDuplicateType = errors.New("duplicate type")

	// ErrInvalidName is returned when a type or alias name is empty.
	ErrInvalidName = errors.New("invalid type name")

	// ErrInvalidConstructor is returned when a constructor does not have the
	// signature func() T or func() (T, error).
	ErrInvalidConstructor = errors.New("invalid constructor")
)
