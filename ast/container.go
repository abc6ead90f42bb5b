package ast

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/kestrel-engine/kestrel/ast/schema"
	"github.com/kestrel-engine/kestrel/compress"
	"github.com/kestrel-engine/kestrel/errs"
)

// containerMagic opens every container produced by WriteContainer (§3.3).
var containerMagic = [4]byte{'K', 'A', 'S', 'T'}

// WriteContainer wraps a packed node buffer (typically a SCRIPT root's full
// bytes) in the self-describing container format: magic, format version,
// schema hash, codec ID, the uncompressed length, and the compressed
// payload. A reader needs only the schema table to validate and unpack it.
func WriteContainer(nodeBytes []byte, codecID compress.ID) ([]byte, error) {
	codec, err := compress.Get(codecID)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(nodeBytes)
	if err != nil {
		return nil, fmt.Errorf("ast: compress container payload: %w", err)
	}

	var lenBuf [maxVarintLen]byte
	lenN := putUvarint(lenBuf[:], uint64(len(nodeBytes)))

	out := make([]byte, 0, 4+3+8+1+lenN+len(payload))
	out = append(out, containerMagic[:]...)
	out = append(out, byte(schema.FormatVersion.Major), byte(schema.FormatVersion.Minor), byte(schema.FormatVersion.Patch))

	var hashBuf [8]byte
	binary.BigEndian.PutUint64(hashBuf[:], schema.Hash())
	out = append(out, hashBuf[:]...)

	out = append(out, byte(codecID))
	out = append(out, lenBuf[:lenN]...)
	out = append(out, payload...)

	return out, nil
}

// ReadContainer validates a container's header and returns the decompressed
// node bytes ready for a Reader. It detects a magic mismatch, an
// incompatible major format version, and schema drift (the writer's schema
// hash not matching this binary's) before touching the payload.
func ReadContainer(data []byte) ([]byte, error) {
	const headerMin = 4 + 3 + 8 + 1 + 1 // magic+version+hash+codec+min varint
	if len(data) < headerMin {
		slog.Warn("ast: container shorter than header", "len", len(data), "want", headerMin)
		return nil, fmt.Errorf("ast: container shorter than header: %w", errs.ErrTruncatedContainer)
	}

	if [4]byte(data[0:4]) != containerMagic {
		slog.Warn("ast: invalid container magic", "got", data[0:4])
		return nil, errs.ErrInvalidContainerMagic
	}

	major := data[4]
	if uint64(major) != uint64(schema.FormatVersion.Major) {
		slog.Warn("ast: unsupported container format version", "containerMajor", major, "runningMajor", schema.FormatVersion.Major)
		return nil, fmt.Errorf("ast: container major version %d, running %d: %w", major, schema.FormatVersion.Major, errs.ErrUnsupportedFormatVersion)
	}

	wantHash := binary.BigEndian.Uint64(data[7:15])
	if wantHash != schema.Hash() {
		slog.Warn("ast: schema hash mismatch between writer and reader", "containerHash", wantHash, "runningHash", schema.Hash())
		return nil, errs.ErrSchemaDrift
	}

	codecID := compress.ID(data[15])

	rawLen, n := uvarint(data[16:])
	if n <= 0 {
		slog.Warn("ast: container truncated before raw length varint")
		return nil, fmt.Errorf("ast: container raw length: %w", errs.ErrTruncatedContainer)
	}

	payload := data[16+n:]

	codec, err := compress.Get(codecID)
	if err != nil {
		return nil, err
	}

	nodeBytes, err := codec.Decompress(payload, int(rawLen))
	if err != nil {
		return nil, fmt.Errorf("ast: decompress container payload: %w", err)
	}
	if len(nodeBytes) != int(rawLen) {
		slog.Warn("ast: decompressed length does not match header", "got", len(nodeBytes), "want", rawLen)
		return nil, fmt.Errorf("ast: decompressed %d bytes, header declared %d: %w", len(nodeBytes), rawLen, errs.ErrTruncatedContainer)
	}

	return nodeBytes, nil
}
