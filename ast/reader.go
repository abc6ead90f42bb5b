package ast

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/kestrel-engine/kestrel/ast/schema"
	"github.com/kestrel-engine/kestrel/errs"
)

// maxInlineNumLen bounds the inlined payload get_num will parse, mirroring
// the fixed NUL-terminated scratch buffer the spec describes (§4.3).
const maxInlineNumLen = 511

// Reader walks a packed node buffer produced by Writer (or received over
// the wire). It holds no state of its own beyond the buffer: callers carry
// their own cursor, letting many readers share one immutable buffer (§5).
type Reader struct {
	buf []byte
}

// NewReader wraps buf for reading. buf is not copied; it must not be
// mutated while the Reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the length of the underlying buffer.
func (r *Reader) Len() int { return len(r.buf) }

// FetchTag reads one tag byte at *cursor and advances it by one.
func (r *Reader) FetchTag(cursor *int) (schema.Tag, error) {
	if *cursor < 0 || *cursor >= len(r.buf) {
		return 0, fmt.Errorf("ast: fetch_tag at %d: %w", *cursor, errs.ErrTruncatedBuffer)
	}

	tag := schema.Tag(r.buf[*cursor])
	*cursor++

	return tag, nil
}

// MoveToChildren takes a payload_start (the cursor position immediately
// after a tag byte) and the node's tag, and returns the offset of the first
// child: past the skip slots, the varint length and the inline payload, if
// any (§4.3).
func (r *Reader) MoveToChildren(payloadStart int, tag schema.Tag) (int, error) {
	e, err := schema.Lookup(tag)
	if err != nil {
		return 0, err
	}

	offset := payloadStart + e.NumSkips*2
	if e.HasVarintLength {
		l, n, err := r.readVarint(offset)
		if err != nil {
			return 0, err
		}

		offset += n
		if e.HasInlineString {
			offset += int(l)
		}
	}

	if offset > len(r.buf) {
		return 0, fmt.Errorf("ast: move_to_children past %s payload: %w", e.Name, errs.ErrTruncatedBuffer)
	}

	return offset, nil
}

// GetSkip decodes the big-endian skip value at slot which (relative to
// payloadStart) and returns the absolute buffer offset it denotes.
func (r *Reader) GetSkip(payloadStart int, tag schema.Tag, which int) (int, error) {
	e, err := schema.Lookup(tag)
	if err != nil {
		return 0, err
	}
	if which < 0 || which >= e.NumSkips {
		return 0, fmt.Errorf("ast: skip %d for %s: %w", which, e.Name, errs.ErrSkipIndexOutOfRange)
	}

	slot := payloadStart + which*2
	if slot+2 > len(r.buf) {
		return 0, fmt.Errorf("ast: skip %d for %s: %w", which, e.Name, errs.ErrTruncatedBuffer)
	}

	delta := binary.BigEndian.Uint16(r.buf[slot : slot+2])

	return payloadStart + int(delta), nil
}

// GetInlinedData decodes the varint length at payloadStart's inline slot
// and returns a read-only view of the raw bytes that follow. The returned
// slice aliases the reader's buffer and is only valid while it is not
// mutated.
func (r *Reader) GetInlinedData(payloadStart int, tag schema.Tag) ([]byte, error) {
	e, err := schema.Lookup(tag)
	if err != nil {
		return nil, err
	}
	if !e.HasInlineString {
		return nil, nil
	}

	offset := payloadStart + e.NumSkips*2
	l, n, err := r.readVarint(offset)
	if err != nil {
		return nil, err
	}

	start := offset + n
	end := start + int(l)
	if end > len(r.buf) {
		return nil, fmt.Errorf("ast: inline payload for %s: %w", e.Name, errs.ErrTruncatedBuffer)
	}

	return r.buf[start:end], nil
}

// GetNum interprets the inlined payload at payloadStart (bounded to
// maxInlineNumLen bytes) as a base-10 decimal.
func (r *Reader) GetNum(payloadStart int, tag schema.Tag) (float64, error) {
	data, err := r.GetInlinedData(payloadStart, tag)
	if err != nil {
		return 0, err
	}
	if len(data) > maxInlineNumLen {
		return 0, fmt.Errorf("ast: get_num: %w", errs.ErrStringTooLong)
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return 0, fmt.Errorf("ast: get_num %q: %w", data, err)
	}

	return v, nil
}

// SkipTree advances *cursor past one complete node: fetch tag, descend into
// fixed subtrees, then walk trailing sequence nodes until the node's END
// offset, landing exactly on the first byte after the node regardless of
// whether it carries trailing children (§3.1, §4.3).
func (r *Reader) SkipTree(cursor *int) error {
	tag, err := r.FetchTag(cursor)
	if err != nil {
		return err
	}

	payloadStart := *cursor

	e, err := schema.Lookup(tag)
	if err != nil {
		return err
	}

	child, err := r.MoveToChildren(payloadStart, tag)
	if err != nil {
		return err
	}
	*cursor = child

	for i := 0; i < e.NumSubtrees; i++ {
		if err := r.SkipTree(cursor); err != nil {
			return err
		}
	}

	if e.NumSkips == 0 {
		return nil
	}

	end, err := r.GetSkip(payloadStart, tag, 0)
	if err != nil {
		return err
	}
	if end > len(r.buf) {
		return fmt.Errorf("ast: end skip for %s: %w", e.Name, errs.ErrTruncatedBuffer)
	}

	for *cursor < end {
		if err := r.SkipTree(cursor); err != nil {
			return err
		}
	}
	// Defensive: a malformed trailing sequence that overshoots END is
	// clamped back rather than left to desynchronize the caller's walk.
	*cursor = end

	return nil
}

func (r *Reader) readVarint(offset int) (uint64, int, error) {
	if offset >= len(r.buf) {
		return 0, 0, fmt.Errorf("ast: varint at %d: %w", offset, errs.ErrTruncatedBuffer)
	}

	v, n := uvarint(r.buf[offset:])
	if n <= 0 {
		return 0, 0, fmt.Errorf("ast: varint at %d: %w", offset, errs.ErrTruncatedBuffer)
	}

	return v, n, nil
}
