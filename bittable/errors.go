package bittable

import "errors"

// Sentinel errors for bittable operations.
var (
	// ErrInvalidBitWidth indicates a cell width that is not a power of two
	// in {1,2,4,8,16,32,64}.
	ErrInvalidBitWidth = errors.New("bittable: bit width must be a power of two no larger than 64")
	// ErrZeroDimension indicates a table constructed with zero width or height.
	ErrZeroDimension = errors.New("bittable: width and height must be non-zero")
	// ErrValueOutOfRange indicates a value that does not fit in the table's bit width.
	ErrValueOutOfRange = errors.New("bittable: value does not fit in cell bit width")
	// ErrSpanTooWide indicates a span read request wider than 57 bits.
	ErrSpanTooWide = errors.New("bittable: span read supports at most 57 bits")
	// ErrSpanRequiresSingleBit indicates a span read attempted on a table whose
	// bit width is not 1 — span reads only make sense bit-by-bit.
	ErrSpanRequiresSingleBit = errors.New("bittable: span read requires a 1-bit table")
)
