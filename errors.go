package userbar

import "errors"

// Sentinel errors returned by userbar.
var (
	// ErrInvalidSize is returned when the output width or height is not positive.
	ErrInvalidSize = errors.New("userbar: invalid output size")

	// ErrInvalidSpacing is returned when a stripe pattern has spacing below 1.
	ErrInvalidSpacing = errors.New("userbar: stripe spacing must be at least 1")

	// ErrBgImageData is returned when a background image buffer does not
	// match its declared dimensions.
	ErrBgImageData = errors.New("userbar: background image data does not match its size")

	// ErrInvalidColor is returned for malformed hex colors.
	ErrInvalidColor = errors.New("userbar: invalid color")

	// ErrInvalidPlacement is returned for malformed placement strings.
	ErrInvalidPlacement = errors.New("userbar: invalid placement")
)
