// Package compress provides the compression codecs a container (§3.3) may
// name in its one-byte codec field. A container is self-describing: the
// codec ID travels with the data, so a reader never needs out-of-band
// configuration to decompress a payload it receives.
package compress

import (
	"fmt"

	"github.com/kestrel-engine/kestrel/errs"
)

// ID identifies a codec on the wire. It is the container format's codec
// byte (§3.3); the zero value, IDNone, always means "payload is stored
// uncompressed".
type ID uint8

const (
	IDNone ID = iota
	IDZstd
	IDLZ4
)

// String renders the codec ID the way container dumps and error messages
// want it.
func (id ID) String() string {
	switch id {
	case IDNone:
		return "none"
	case IDZstd:
		return "zstd"
	case IDLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("ID(%d)", uint8(id))
	}
}

// Compressor compresses a byte slice.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice. rawLen is the original,
// uncompressed length, carried in the container header (§3.3) so
// decompressors that need a size hint (or an exact output buffer) never
// have to guess and grow.
type Decompressor interface {
	Decompress(data []byte, rawLen int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var registry = map[ID]Codec{
	IDNone: NoopCodec{},
	IDZstd: ZstdCodec{},
	IDLZ4:  LZ4Codec{},
}

// Get returns the codec registered for id.
func Get(id ID) (Codec, error) {
	c, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("compress: codec %s: %w", id, errs.ErrUnsupportedCodec)
	}

	return c, nil
}
