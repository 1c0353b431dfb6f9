package color

import "errors"

var (
	// ErrInvalidColorFormat is returned when a string is not a 6-digit hex color.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidPercent is returned when a shade percent is outside [-1, 1].
	ErrInvalidPercent = errors.New("invalid shade percent")
)
