package scanreport

import "errors"

// Load errors.
// Callers distinguish them with errors.Is; the wrapped message carries the
// path and the underlying cause.
var (
	// ErrNotFound is returned when the report file does not exist.
	ErrNotFound = errors.New("scan report not found")

	// ErrRead is returned when the report file exists but cannot be read,
	// for example because of permissions or because the path is a directory.
	ErrRead = errors.New("cannot read scan report")

	// ErrParse is returned when the report contents are not well-formed JSON
	// or the top-level value is not a JSON object.
	ErrParse = errors.New("malformed scan report")
)
