package ast

import (
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/kestrel-engine/kestrel/ast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump_LeafNode(t *testing.T) {
	w := NewWriter()
	w.AddInlined(schema.IDENT, []byte("x"))

	var sb strings.Builder
	require.NoError(t, Dump(&sb, w.Bytes(), 0, DumpOptions{}))
	assert.Contains(t, sb.String(), `IDENT "x"`)
}

func TestDump_NamesDisabled(t *testing.T) {
	w := NewWriter()
	w.BeginNode(schema.THIS)

	var sb strings.Builder
	require.NoError(t, Dump(&sb, w.Bytes(), 0, DumpOptions{NamesDisabled: true}))
	assert.Contains(t, sb.String(), "TAG_")
}

func TestDump_IfWithEmptyElse(t *testing.T) {
	w, ifStart := buildIf(t)
	_ = ifStart

	var sb strings.Builder
	require.NoError(t, Dump(&sb, w.Bytes(), 0, DumpOptions{}))

	out := sb.String()
	assert.Contains(t, out, "IF")
	assert.Contains(t, out, "RETURN")
}

func TestDump_TrailingSequenceMarker(t *testing.T) {
	w := NewWriter()
	start := w.BeginNode(schema.SEQ)
	w.AddInlined(schema.NUM, []byte("1"))
	w.AddInlined(schema.NUM, []byte("2"))
	w.SetSkip(start, 0)

	var sb strings.Builder
	require.NoError(t, Dump(&sb, w.Bytes(), 0, DumpOptions{}))
	assert.Contains(t, sb.String(), "/* ... */")
}

// TestDump_StructuralShape compares the dumped tree's lines against the
// exact expected shape rather than a handful of substring checks, using
// deep.Equal so a mismatch shows the structural diff (which line moved or
// changed) instead of two opaque strings.
func TestDump_StructuralShape(t *testing.T) {
	w := NewWriter()
	start := w.BeginNode(schema.SEQ)
	w.AddInlined(schema.NUM, []byte("1"))
	w.AddInlined(schema.NUM, []byte("2"))
	w.SetSkip(start, 0)

	var sb strings.Builder
	require.NoError(t, Dump(&sb, w.Bytes(), 0, DumpOptions{}))

	got := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	want := []string{
		`SEQ`,
		`  /* ... */`,
		`  NUM "1"`,
		`  NUM "2"`,
	}

	if diff := deep.Equal(want, got); diff != nil {
		t.Errorf("dumped tree shape differs: %v", diff)
	}
}
