package pdf

import "errors"

// Load failures are fatal to the pipeline and surfaced to the caller.
// Per-page extraction failures are local and reported as absent pages.
var (
	// ErrUnreadable means the input bytes are not a valid PDF structure.
	ErrUnreadable = errors.New("not a readable PDF document")

	// ErrUnavailable means the byte source could not be retrieved.
	ErrUnavailable = errors.New("document source unavailable")
)
