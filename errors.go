package bluenoise

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfig implies the field cannot be built with the given
	// dimensions, radius or attempt budget.
	ErrInvalidConfig = errors.New("invalid sample field config")

	// ErrOutOfBounds implies a seed was placed outside of [0,width) x [0,height)
	ErrOutOfBounds = errors.New("point is out of bounds")
)
