// Package errs defines the sentinel errors returned by shox.
//
// Errors are wrapped with fmt.Errorf("%w: ...") at the point of failure, so
// callers should compare with errors.Is rather than equality.
package errs

import "errors"

var (
	// ErrInvalidInput is returned when an argument has the wrong type or holds
	// invalid scalar values. It is always detected before encoding or decoding begins.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTruncatedStream is returned when the payload ends before the terminator code.
	ErrTruncatedStream = errors.New("truncated stream: terminator not found")

	// ErrBufferTooSmall is returned when the decoded text would exceed the size hint.
	ErrBufferTooSmall = errors.New("buffer too small for decoded text")

	// ErrRoundTripMismatch is returned by the optional round-trip check when the
	// decoded text differs from the input.
	ErrRoundTripMismatch = errors.New("round trip mismatch")

	// ErrUnexpectedEndOfStream is returned by the bit reader when fewer bits remain
	// than were requested.
	ErrUnexpectedEndOfStream = errors.New("unexpected end of bit stream")

	// ErrCorruptStream is returned when the payload holds a structurally invalid code.
	ErrCorruptStream = errors.New("corrupt stream")

	ErrInvalidOption          = errors.New("invalid option")
	ErrUnknownPreset          = errors.New("unknown preset")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
