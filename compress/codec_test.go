package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, c Codec, data []byte) {
	t.Helper()

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestNoopCodec_RoundTrip(t *testing.T) {
	roundTrip(t, NoopCodec{}, []byte("the quick brown fox jumps over the lazy dog"))
}

func TestZstdCodec_RoundTrip(t *testing.T) {
	roundTrip(t, ZstdCodec{}, []byte("the quick brown fox jumps over the lazy dog, repeated, repeated, repeated"))
}

func TestLZ4Codec_RoundTrip(t *testing.T) {
	roundTrip(t, LZ4Codec{}, []byte("the quick brown fox jumps over the lazy dog, repeated, repeated, repeated"))
}

func TestLZ4Codec_Empty(t *testing.T) {
	out, err := LZ4Codec{}.Compress(nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestGet_KnownCodecs(t *testing.T) {
	for _, id := range []ID{IDNone, IDZstd, IDLZ4} {
		c, err := Get(id)
		require.NoError(t, err)
		assert.NotNil(t, c)
	}
}

func TestGet_UnknownCodec(t *testing.T) {
	_, err := Get(ID(99))
	require.Error(t, err)
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "zstd", IDZstd.String())
	assert.Equal(t, "none", IDNone.String())
	assert.Contains(t, ID(42).String(), "42")
}
