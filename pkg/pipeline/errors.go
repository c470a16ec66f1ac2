package pipeline

import "errors"

var (
	// ErrMalformedTexture is returned when texture dimensions do not fit the skin grid.
	ErrMalformedTexture = errors.New("malformed texture")

	// ErrInvalidParameter is returned for non-positive sizes and unknown enum values.
	ErrInvalidParameter = errors.New("invalid parameter")
)
