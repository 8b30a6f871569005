package timenode

import "errors"

// ErrInvalidConstruction is returned when a node cannot be built from the
// given source.
var ErrInvalidConstruction = errors.New("invalid time node construction")
