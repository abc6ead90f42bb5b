package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_StringKnown(t *testing.T) {
	assert.Equal(t, "SCRIPT", SCRIPT.String())
	assert.Equal(t, "CALL", CALL.String())
	assert.Equal(t, "USE_STRICT", USE_STRICT.String())
}

func TestTag_StringUnknown(t *testing.T) {
	bogus := Tag(255)
	assert.False(t, bogus.Valid())
	assert.Equal(t, "TAG_255", bogus.String())
}

func TestLookup_AllTagsResolve(t *testing.T) {
	for tag := Tag(0); tag < numTags; tag++ {
		e, err := Lookup(tag)
		require.NoError(t, err)
		assert.NotEmpty(t, e.Name, "tag %d missing a schema name", tag)
	}
}

func TestLookup_UnknownTag(t *testing.T) {
	_, err := Lookup(Tag(200))
	require.Error(t, err)
}

func TestMustLookup_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { MustLookup(Tag(200)) })
}

func TestEntry_InlineTagsHaveBothFlags(t *testing.T) {
	// Every tag in this catalogue either carries both the varint length and
	// the inline payload, or neither; the schema never declares one without
	// the other.
	for tag, e := range All() {
		assert.Equal(t, e.HasVarintLength, e.HasInlineString, "tag %d (%s): length/inline flags disagree", tag, e.Name)
	}
}

func TestEntry_SkipNamesNeverExceedNumSkips(t *testing.T) {
	for tag, e := range All() {
		assert.LessOrEqual(t, len(e.SkipNames), e.NumSkips, "tag %d (%s): more skip names than skips", tag, e.Name)
	}
}

func TestEntry_ShapeSamples(t *testing.T) {
	cases := []struct {
		tag         Tag
		numSkips    int
		numSubtrees int
		inline      bool
	}{
		{SCRIPT, 2, 0, false},
		{VAR_DECL, 0, 1, true},
		{IF, 2, 1, false},
		{FUNC, 3, 1, false},
		{COND, 0, 3, false},
		{TRY, 3, 1, false},
		{FOR, 2, 3, false},
		{CALL, 1, 1, false},
		{MEMBER, 0, 1, true},
		{ADD, 0, 2, false},
		{NEG, 0, 1, false},
		{THIS, 0, 0, false},
	}

	for _, c := range cases {
		e := MustLookup(c.tag)
		assert.Equal(t, c.numSkips, e.NumSkips, "%s NumSkips", e.Name)
		assert.Equal(t, c.numSubtrees, e.NumSubtrees, "%s NumSubtrees", e.Name)
		assert.Equal(t, c.inline, e.HasInlineString, "%s HasInlineString", e.Name)
	}
}

func TestHash_Deterministic(t *testing.T) {
	assert.Equal(t, Hash(), Hash())
}

func TestHash_Nonzero(t *testing.T) {
	assert.NotZero(t, Hash())
}

func TestFormatVersion_MajorIsStable(t *testing.T) {
	assert.EqualValues(t, 1, FormatVersion.Major)
}
