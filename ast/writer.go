// Package ast implements the packed, position-independent binary node
// encoding described in §3.1: a byte buffer built up node-by-node under a
// table-driven schema, readable by Reader without any auxiliary index.
package ast

import (
	"encoding/binary"
	"fmt"

	"github.com/kestrel-engine/kestrel/ast/schema"
	"github.com/kestrel-engine/kestrel/errs"
	"github.com/kestrel-engine/kestrel/internal/options"
	"github.com/kestrel-engine/kestrel/internal/pool"
)

// WriterConfig holds Writer construction parameters.
type WriterConfig struct {
	initialCapacity int
}

// WriterOption configures a Writer at construction time.
type WriterOption = options.Option[*WriterConfig]

// WithInitialCapacity sizes the writer's backing buffer up front, avoiding
// early reallocation when the caller has a size estimate (e.g. source file
// length).
func WithInitialCapacity(n int) WriterOption {
	return options.NoError[*WriterConfig](func(c *WriterConfig) {
		c.initialCapacity = n
	})
}

// Writer builds a packed AST buffer via append-dominant node emission
// (§4.2). It is not safe for concurrent use: an AST buffer is mutably owned
// by exactly one writer at a time (§5).
type Writer struct {
	buf    *pool.ByteBuffer
	pooled bool
}

// NewWriter creates a Writer with its own, non-pooled buffer.
func NewWriter(opts ...WriterOption) *Writer {
	cfg := &WriterConfig{initialCapacity: pool.NodeBufferDefaultSize}
	_ = options.Apply(cfg, opts...)

	return &Writer{buf: pool.NewByteBuffer(cfg.initialCapacity)}
}

// NewPooledWriter creates a Writer backed by a buffer drawn from the shared
// node buffer pool. Call Release when done to return it.
func NewPooledWriter() *Writer {
	return &Writer{buf: pool.GetNodeBuffer(), pooled: true}
}

// Release returns the writer's buffer to the pool it came from. A no-op for
// writers created with NewWriter.
func (w *Writer) Release() {
	if w.pooled {
		pool.PutNodeBuffer(w.buf)
		w.buf = nil
	}
}

// Len returns the current buffer length in bytes.
func (w *Writer) Len() int { return w.buf.Len() }

// Bytes returns the writer's buffer contents. The returned slice aliases
// the writer's storage and is only valid until the next write.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// tagAt recovers the tag byte immediately preceding a payload start offset.
// Every payload_start is, by construction, the byte right after a tag
// (§3.1), so the tag never needs a side table to look back up.
func (w *Writer) tagAt(payloadStart int) schema.Tag {
	return schema.Tag(w.buf.Bytes()[payloadStart-1])
}

// BeginNode appends a tag byte and zeroed skip slots, returning the
// payload_start offset: the anchor every later GetSkip/SetSkip call for
// this node is measured from.
func (w *Writer) BeginNode(tag schema.Tag) int {
	e := schema.MustLookup(tag)

	w.buf.MustWriteByte(byte(tag))
	payloadStart := w.buf.Len()

	for i := 0; i < e.NumSkips; i++ {
		w.buf.MustWriteByte(0)
		w.buf.MustWriteByte(0)
	}

	return payloadStart
}

// InsertNode splices a node at an earlier offset, shifting everything from
// at onward to the right. The new node's END skip is immediately set to the
// buffer length as it stands right after the splice, so the node is
// well-formed even if the caller appends nothing further to it (§4.2).
//
// Any payload_start offset the caller is holding for content at or after at
// is invalidated by this call; offsets before at remain valid.
func (w *Writer) InsertNode(at int, tag schema.Tag) int {
	e := schema.MustLookup(tag)

	header := make([]byte, 1+2*e.NumSkips)
	header[0] = byte(tag)
	w.buf.InsertAt(at, header)

	payloadStart := at + 1
	if e.NumSkips > 0 {
		binary.BigEndian.PutUint16(w.buf.Bytes()[payloadStart:payloadStart+2], uint16(w.buf.Len()-payloadStart))
	}

	return payloadStart
}

// SetSkip patches the skip slot which (0 is always END) for the node at
// payloadStart to the current buffer length. It panics on a skip index out
// of range for the node's tag, a delta that would precede the slot itself,
// or a delta that overflows 16 bits: per §7 these are programmer errors,
// not conditions a caller recovers from at runtime.
func (w *Writer) SetSkip(payloadStart, which int) {
	w.patchSkip(payloadStart, which, w.buf.Len())
}

// ModifySkip is SetSkip with an explicit target offset instead of the
// current buffer length.
func (w *Writer) ModifySkip(payloadStart, target, which int) {
	w.patchSkip(payloadStart, which, target)
}

func (w *Writer) patchSkip(payloadStart, which, target int) {
	tag := w.tagAt(payloadStart)
	e := schema.MustLookup(tag)

	if which < 0 || which >= e.NumSkips {
		panic(fmt.Errorf("ast: skip %d for %s: %w", which, e.Name, errs.ErrSkipIndexOutOfRange))
	}
	slot := payloadStart + which*2
	if target < slot {
		panic(fmt.Errorf("ast: skip %d for %s: %w", which, e.Name, errs.ErrSkipBeforeSlot))
	}

	delta := target - payloadStart
	if delta > 0xFFFF {
		panic(fmt.Errorf("ast: skip %d for %s: %w", which, e.Name, errs.ErrSkipOverflow))
	}

	binary.BigEndian.PutUint16(w.buf.Bytes()[slot:slot+2], uint16(delta))
}

// AddInlined begins a node and appends a varint-prefixed raw byte payload
// (identifier text, numeric literal text, string contents, regex source, or
// label name) immediately after its skip slots.
func (w *Writer) AddInlined(tag schema.Tag, data []byte) int {
	payloadStart := w.BeginNode(tag)
	w.writeInlined(data)

	return payloadStart
}

// InsertInlined is the insert variant of AddInlined. No inline-string tag
// in the schema table also carries skips, so unlike InsertNode there is no
// END slot to re-anchor once the payload is in place.
func (w *Writer) InsertInlined(at int, tag schema.Tag, data []byte) int {
	payloadStart := w.InsertNode(at, tag)
	w.insertInlinedAt(payloadStart, data)

	return payloadStart
}

func (w *Writer) writeInlined(data []byte) {
	var scratch [maxVarintLen]byte
	n := putUvarint(scratch[:], uint64(len(data)))
	w.buf.MustWrite(scratch[:n])
	w.buf.MustWrite(data)
}

func (w *Writer) insertInlinedAt(at int, data []byte) {
	var scratch [maxVarintLen]byte
	n := putUvarint(scratch[:], uint64(len(data)))

	combined := make([]byte, 0, n+len(data))
	combined = append(combined, scratch[:n]...)
	combined = append(combined, data...)
	w.buf.InsertAt(at, combined)
}
