package ast

import (
	"testing"

	"github.com/kestrel-engine/kestrel/ast/schema"
	"github.com/kestrel-engine/kestrel/compress"
	"github.com/kestrel-engine/kestrel/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSimpleScript(t *testing.T) []byte {
	t.Helper()

	w := NewWriter()
	scriptStart := w.BeginNode(schema.SCRIPT)
	w.AddInlined(schema.NUM, []byte("42"))
	w.SetSkip(scriptStart, 1)
	w.SetSkip(scriptStart, 0)

	return w.Bytes()
}

func TestContainer_RoundTrip(t *testing.T) {
	for _, codecID := range []compress.ID{compress.IDNone, compress.IDZstd, compress.IDLZ4} {
		src := buildSimpleScript(t)

		out, err := WriteContainer(src, codecID)
		require.NoError(t, err)

		got, err := ReadContainer(out)
		require.NoError(t, err)
		assert.Equal(t, src, got)
	}
}

func TestContainer_InvalidMagic(t *testing.T) {
	src := buildSimpleScript(t)
	out, err := WriteContainer(src, compress.IDNone)
	require.NoError(t, err)

	out[0] = 'X'
	_, err = ReadContainer(out)
	assert.ErrorIs(t, err, errs.ErrInvalidContainerMagic)
}

func TestContainer_Truncated(t *testing.T) {
	_, err := ReadContainer([]byte("KA"))
	assert.ErrorIs(t, err, errs.ErrTruncatedContainer)
}

func TestContainer_SchemaDrift(t *testing.T) {
	src := buildSimpleScript(t)
	out, err := WriteContainer(src, compress.IDNone)
	require.NoError(t, err)

	// Flip a byte in the embedded schema hash to simulate a writer built
	// against a different schema table.
	out[8] ^= 0xFF
	_, err = ReadContainer(out)
	assert.ErrorIs(t, err, errs.ErrSchemaDrift)
}

func TestContainer_UnsupportedFormatVersion(t *testing.T) {
	src := buildSimpleScript(t)
	out, err := WriteContainer(src, compress.IDNone)
	require.NoError(t, err)

	out[4] = 255
	_, err = ReadContainer(out)
	assert.ErrorIs(t, err, errs.ErrUnsupportedFormatVersion)
}
