package weightedgrid

import "errors"

// Sentinel errors for weightedgrid construction, loading, and cost resolution.
var (
	ErrZeroDimension   = errors.New("weightedgrid: width and height must be non-zero")
	ErrBadHeader       = errors.New("weightedgrid: malformed header")
	ErrRowCount        = errors.New("weightedgrid: row count does not match declared height")
	ErrRowWidth        = errors.New("weightedgrid: row width does not match declared width")
	ErrBadCostLine     = errors.New("weightedgrid: malformed cost table line")
	ErrCostUnspecified = errors.New("weightedgrid: terrain code has no specified cost (NaN)")
	ErrNoTraversable   = errors.New("weightedgrid: map references no traversable terrain")
)
