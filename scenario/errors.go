package scenario

import "errors"

// Sentinel errors for scenario-file parsing and map-path resolution.
var (
	// ErrBadVersion indicates a missing or unrecognised "version" header line.
	ErrBadVersion = errors.New("scenario: unsupported or missing version header")
	// ErrBadRecord indicates a record line with the wrong field count or
	// a field that fails to parse as its expected type.
	ErrBadRecord = errors.New("scenario: malformed record")
	// ErrMapNotFound indicates none of the map-path resolution rules (§6)
	// produced a file that exists.
	ErrMapNotFound = errors.New("scenario: could not resolve map path")
)
