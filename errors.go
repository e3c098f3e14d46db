package graphhopper

import (
	"github.com/pkg/errors"
)

var (
	// ErrRange is returned when a value does not fit into the bit range of an encoded field
	ErrRange = errors.New("value is out of field range")
	// ErrLayoutConflict is returned when registered encoded fields can not share single flags storage
	ErrLayoutConflict = errors.New("encoded fields conflict in bit layout")
	// ErrVersionMismatch is returned when stored flags were produced by an incompatible encoder version
	ErrVersionMismatch = errors.New("encoder version mismatch")
)
