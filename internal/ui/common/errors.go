package common

import "errors"

var (
	// ErrInvalidArgument is returned by widget constructors given unusable input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when an index falls outside a widget's items.
	ErrOutOfRange = errors.New("index out of range")
)
