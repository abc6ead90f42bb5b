package date

import (
	"math"
	"testing"

	"github.com/kestrel-engine/kestrel/date/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISOString_Epoch(t *testing.T) {
	s, err := ISOString(0)
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T00:00:00.000Z", s)
}

func TestISOString_NaN(t *testing.T) {
	_, err := ISOString(math.NaN())
	require.Error(t, err)
}

func TestISOString_WideYear(t *testing.T) {
	f := Fields{Year: 10000, Month: 0, Day: 1}
	s, err := ISOString(f.Instant())
	require.NoError(t, err)
	assert.Equal(t, "+010000-01-01T00:00:00.000Z", s)
}

func TestDateString_Epoch(t *testing.T) {
	s, err := DateString(0)
	require.NoError(t, err)
	assert.Equal(t, "Thu Jan 01 1970", s)
}

func TestUTCString_Epoch(t *testing.T) {
	s, err := UTCString(0)
	require.NoError(t, err)
	assert.Equal(t, "Thu, 01 Jan 1970 00:00:00 GMT", s)
}

func TestTimeString_NoOffset(t *testing.T) {
	s, err := TimeString(0, fixedProvider{})
	require.NoError(t, err)
	assert.Equal(t, "00:00:00 GMT+0000", s)
}

func TestString_InvalidDate(t *testing.T) {
	s, err := String(math.NaN(), fixedProvider{})
	require.NoError(t, err)
	assert.Equal(t, "Invalid Date", s)
}

func TestLocaleString_RestoresCurrent(t *testing.T) {
	fr, err := locale.Parse("fr")
	require.NoError(t, err)

	before := locale.Current()
	s, err := LocaleString(0, fr)
	require.NoError(t, err)
	assert.Contains(t, s, "1970-01-01")
	assert.Equal(t, before, locale.Current())
}
