// Package errs collects the sentinel errors returned by the ast, compress,
// and date packages.
//
// Callers should compare against these values with errors.Is rather than
// matching on error strings; functions that add context wrap a sentinel
// with fmt.Errorf("...: %w", errs.ErrXxx).
package errs

import "errors"

// AST errors.
var (
	// ErrUnknownTag is returned when a tag byte does not match any entry in
	// the schema table.
	ErrUnknownTag = errors.New("ast: unknown tag")
	// ErrSkipIndexOutOfRange is returned when a caller references a skip
	// slot that the tag's schema entry does not define.
	ErrSkipIndexOutOfRange = errors.New("ast: skip index out of range for tag")
	// ErrSkipOverflow is returned when a skip delta does not fit in 16 bits.
	ErrSkipOverflow = errors.New("ast: skip delta exceeds 65535 bytes")
	// ErrSkipBeforeSlot is returned when a skip target precedes its own slot.
	ErrSkipBeforeSlot = errors.New("ast: skip target precedes its skip slot")
	// ErrTruncatedBuffer is returned when a reader runs past the end of the
	// underlying buffer while decoding a node.
	ErrTruncatedBuffer = errors.New("ast: truncated buffer")
	// ErrStringTooLong is returned by get_num when the inlined payload
	// exceeds the fixed scratch size used for numeric parsing.
	ErrStringTooLong = errors.New("ast: inlined string exceeds numeric scratch size")
	// ErrInvalidContainerMagic is returned when a byte slice does not begin
	// with the container magic "KAST".
	ErrInvalidContainerMagic = errors.New("ast: invalid container magic")
	// ErrUnsupportedFormatVersion is returned when a container's major
	// format version does not match the running binary's.
	ErrUnsupportedFormatVersion = errors.New("ast: unsupported container format version")
	// ErrSchemaDrift is returned when a container's embedded schema hash
	// does not match the running binary's schema table.
	ErrSchemaDrift = errors.New("ast: schema hash mismatch between writer and reader")
	// ErrTruncatedContainer is returned when a container is shorter than
	// its declared header or payload length.
	ErrTruncatedContainer = errors.New("ast: truncated container")

	// ErrUnsupportedCodec is returned when a container names a codec ID
	// this build does not implement.
	ErrUnsupportedCodec = errors.New("compress: unsupported codec")
)

// Date errors.
var (
	// ErrInvalidTime is returned by operations that require a valid instant
	// (non-NaN) when given an invalid one, mirroring the ECMAScript
	// TypeError thrown by toISOString and friends on an Invalid Date.
	ErrInvalidTime = errors.New("date: invalid time value")
	// ErrUnparseableDate is returned when none of the parser strategies in
	// date.Parse recognize the input string.
	ErrUnparseableDate = errors.New("date: unrecognized date string")
	// ErrFieldOutOfRange is returned when a broken-down time field parsed
	// from a string falls outside its ECMAScript-mandated range.
	ErrFieldOutOfRange = errors.New("date: field out of range")
)

// Config errors.
var (
	// ErrInvalidConfig is returned when a loaded configuration document
	// fails validation (unknown codec name, malformed locale tag, etc).
	ErrInvalidConfig = errors.New("kestrel: invalid configuration")
)
