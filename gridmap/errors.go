package gridmap

import "errors"

// Sentinel errors for gridmap construction and loading.
var (
	// ErrZeroDimension indicates a map with zero width or height.
	ErrZeroDimension = errors.New("gridmap: width and height must be non-zero")
	// ErrBadHeader indicates a map file whose header is missing a required field.
	ErrBadHeader = errors.New("gridmap: malformed header")
	// ErrUnknownType indicates a map file declaring an unsupported type.
	ErrUnknownType = errors.New("gridmap: unsupported map type")
	// ErrRowCount indicates the map body has a different number of rows than declared.
	ErrRowCount = errors.New("gridmap: row count does not match declared height")
	// ErrRowWidth indicates a map row whose length does not match declared width.
	ErrRowWidth = errors.New("gridmap: row width does not match declared width")
	// ErrUnknownTerrain indicates a character in the map body that is neither
	// a known traversable nor a known blocker glyph.
	ErrUnknownTerrain = errors.New("gridmap: unrecognised terrain character")
)
