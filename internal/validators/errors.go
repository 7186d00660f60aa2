package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidCUI covers every rejected CUI candidate: bad characters,
	// out-of-range length and check digit mismatch alike.
	ErrInvalidCUI = errors.New("invalid CUI")
)
