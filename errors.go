package flint

import "errors"

// Errors returned from public boundaries that receive user data.
// Malformed geometry inside well-formed calls is never an error; it
// silently produces no visible effect.
var (
	// ErrPathNoMoveTo records a segment command appended to a path
	// before any MoveTo.
	ErrPathNoMoveTo = errors.New("flint: path command before MoveTo")

	// ErrMisalignedBuffer reports pixel storage that is not 16-byte
	// aligned.
	ErrMisalignedBuffer = errors.New("flint: pixel buffer is not 16-byte aligned")

	// ErrBadStride reports a stride that is not a positive multiple
	// of 4 pixels, or storage too small for the declared dimensions.
	ErrBadStride = errors.New("flint: bad stride or undersized pixel storage")
)
