// Package errs defines the sentinel errors shared across the sacio module.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is after they have been wrapped with additional context.
package errs

import "errors"

// Record codec errors.
var (
	// ErrTruncatedInput indicates the input holds fewer bytes than the
	// header or the declared data section requires.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrUnknownField indicates a field name that is not part of the SAC
	// header schema.
	ErrUnknownField = errors.New("unknown header field")

	// ErrUnmappedOffset indicates a header word offset that falls in
	// reserved/unused header space.
	ErrUnmappedOffset = errors.New("unmapped header offset")

	// ErrHeaderLayout indicates a structurally implausible header, such as
	// a negative sample count or non-printable content in a string field.
	ErrHeaderLayout = errors.New("implausible header layout")

	// ErrTypeMismatch indicates a numeric accessor used on a string field
	// or vice versa.
	ErrTypeMismatch = errors.New("field type mismatch")

	// ErrStringTooLong indicates a string value wider than the field's
	// declared byte width. Overlong values are rejected, never truncated.
	ErrStringTooLong = errors.New("string exceeds field width")

	// ErrPointCountMismatch indicates the two data components have
	// different lengths.
	ErrPointCountMismatch = errors.New("data point count mismatch")
)

// Derived-value errors.
var (
	// ErrMissingCoordinate indicates a geodetic computation needs a
	// station or event coordinate that is unset.
	ErrMissingCoordinate = errors.New("missing station or event coordinate")

	ErrBadLatitude  = errors.New("latitude out of range")
	ErrBadLongitude = errors.New("longitude out of range")

	// ErrNoReferenceTime indicates one or more of the nz* reference time
	// fields is unset.
	ErrNoReferenceTime = errors.New("reference time not set")
)

// Archive container errors.
var (
	ErrInvalidHeaderSize     = errors.New("invalid archive header size")
	ErrInvalidMagicNumber    = errors.New("invalid archive magic number")
	ErrInvalidHeaderFlags    = errors.New("invalid archive header flags")
	ErrInvalidTraceCount     = errors.New("invalid archive trace count")
	ErrInvalidIndexOffsets   = errors.New("invalid archive index offsets")
	ErrInvalidIndexEntrySize = errors.New("invalid archive index entry size")
	ErrDuplicateTrace        = errors.New("duplicate trace key")
	ErrTraceNotFound         = errors.New("trace not found in archive")
	ErrEncoderFinished       = errors.New("archive encoder already finished")
)
