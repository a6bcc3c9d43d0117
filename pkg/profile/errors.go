package profile

import "errors"

// Error kinds. Only ErrManifestMalformed and ErrOutputWriteFailed ever reach
// the caller of a run; the per-entry kinds are recovered locally and logged.
var (
	// ErrManifestMalformed indicates the input could not be decoded or a
	// required field is missing. Nothing is extracted.
	ErrManifestMalformed = errors.New("manifest malformed")

	// ErrFileUnreadable indicates a file_path could not be read or decoded.
	// Recovered by substituting empty text.
	ErrFileUnreadable = errors.New("file unreadable")

	// ErrUnknownFileType indicates a type tag outside the closed set.
	// Recovered by substituting empty text.
	ErrUnknownFileType = errors.New("unknown file type")

	// ErrOutputWriteFailed indicates the result stream could not be
	// serialized or written.
	ErrOutputWriteFailed = errors.New("output write failed")

	// ErrInvalidConfig indicates a configuration value failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Process exit codes.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitManifestMalformed = 2
	ExitOutputWriteFailed = 3
)

// ExitCode maps an error returned by a run to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrManifestMalformed):
		return ExitManifestMalformed
	case errors.Is(err, ErrOutputWriteFailed):
		return ExitOutputWriteFailed
	default:
		return ExitFailure
	}
}
