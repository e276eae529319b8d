package descfile

import "errors"

var (
	// ErrMissingHeader indicates a required header key was absent.
	ErrMissingHeader = errors.New("descfile: missing required header")

	// ErrBadHeaderValue indicates a header line without '=', a header
	// value that could not be parsed as the type its key requires, or a
	// data row whose x or y column is not a number.
	ErrBadHeaderValue = errors.New("descfile: malformed header value")

	// ErrColumnMismatch indicates a data row's column count, or a tag
	// introduced after the column it first appeared at, disagrees with
	// its peers.
	ErrColumnMismatch = errors.New("descfile: column count mismatch")

	// ErrMalformedFrame indicates a row's first column is not an
	// integer-valued float, per spec.md §7.
	ErrMalformedFrame = errors.New("descfile: malformed frame index")
)
