package meshio

import (
	"github.com/pkg/errors"
)

// Sentinel errors for OFF decoding.
var (
	// ErrBadHeader indicates a missing OFF keyword, a lexical error, or
	// negative element counts.
	ErrBadHeader = errors.New("meshio: malformed OFF header")

	// ErrTruncated indicates the body ended before all declared elements
	// were read.
	ErrTruncated = errors.New("meshio: truncated OFF body")

	// ErrBadFace indicates a face with fewer than three corners, a corner
	// that is not a non-negative integer, or values after the last face.
	ErrBadFace = errors.New("meshio: malformed OFF face")
)
