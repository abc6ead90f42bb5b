package date

import (
	"math"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromComponents_TwoDigitYear(t *testing.T) {
	d := NewFromComponents(99, 0, 1)
	assert.Equal(t, 1999.0, d.GetUTCFullYear())
	assert.Equal(t, 0.0, d.GetUTCMonth())
	assert.Equal(t, 1.0, d.GetUTCDate())
}

func TestNewFromComponents_DefaultsDayToOne(t *testing.T) {
	d := NewFromComponents(2020, 5)
	assert.Equal(t, 1.0, d.GetUTCDate())
	assert.Equal(t, 0.0, d.GetUTCHours())
}

func TestUTCComponents_FullYearNotLifted(t *testing.T) {
	d := UTCComponents(2020, 0, 1)
	assert.Equal(t, 2020.0, d.GetUTCFullYear())
}

func TestNewFromString_Invalid(t *testing.T) {
	d := NewFromString("nonsense", nil, fixedProvider{})
	assert.False(t, d.Valid())
	assert.True(t, math.IsNaN(d.GetTime()))
}

func TestNewFromString_Valid(t *testing.T) {
	d := NewFromString("2015-03-05T10:20:30.400Z", nil, fixedProvider{})
	require.True(t, d.Valid())
	assert.Equal(t, 2015.0, d.GetUTCFullYear())
}

func TestToInstant_Number(t *testing.T) {
	v, err := ToInstant(3.7)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = ToInstant(-3.7)
	require.NoError(t, err)
	assert.Equal(t, -3.0, v)
}

func TestToInstant_InfiniteNumber(t *testing.T) {
	_, err := ToInstant(math.Inf(1))
	require.Error(t, err)
}

func TestToInstant_Boolean(t *testing.T) {
	v, err := ToInstant(true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = ToInstant(false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestToInstant_String(t *testing.T) {
	v, err := ToInstant("12345")
	require.NoError(t, err)
	assert.Equal(t, 12345.0, v)

	_, err = ToInstant("12345x")
	require.Error(t, err)
}

func TestToInstant_ExistingDate(t *testing.T) {
	src := New(555)
	v, err := ToInstant(src)
	require.NoError(t, err)
	assert.Equal(t, 555.0, v)
}

type fakeObject struct{ inner Value }

func (o fakeObject) DateValue() Value { return o.inner }

func TestToInstant_ValuerRecurses(t *testing.T) {
	v, err := ToInstant(fakeObject{inner: "42"})
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

func TestToInstant_UnsupportedType(t *testing.T) {
	_, err := ToInstant(struct{}{})
	require.Error(t, err)
}

func TestSetUTCFullYear_PatchesOnlyYear(t *testing.T) {
	d := NewFromComponents(2000, 5, 15, 10, 30, 0, 0)
	d.SetUTCFullYear(2010)

	assert.Equal(t, 2010.0, d.GetUTCFullYear())
	assert.Equal(t, 5.0, d.GetUTCMonth())
	assert.Equal(t, 15.0, d.GetUTCDate())
	assert.Equal(t, 10.0, d.GetUTCHours())
}

func TestSetHours_LocalRoundTrip(t *testing.T) {
	p := fixedProvider{}
	d := NewFromComponents(2000, 0, 1, 5, 0, 0, 0)
	d.SetHours(p, 12)

	assert.Equal(t, 12.0, d.GetHours(p))
}

func TestGetTimezoneOffset_NaNOnInvalid(t *testing.T) {
	d := New(math.NaN())
	assert.True(t, math.IsNaN(d.GetTimezoneOffset(fixedProvider{})))
}

// TestFieldsFromInstant_StructuralDiff compares the full decomposed Fields
// struct against what is expected in one shot, using deep.Equal so a
// mismatch names exactly which field(s) drifted instead of one assertion
// per field.
func TestFieldsFromInstant_StructuralDiff(t *testing.T) {
	d := NewFromComponents(2016, 1, 29, 12, 30, 15, 250)

	got := FieldsFromInstant(d.GetTime())
	want := Fields{
		Year: 2016, Month: 1, Day: 29,
		Hour: 12, Min: 30, Sec: 15, Ms: 250,
		Weekday: got.Weekday,
	}

	if diff := deep.Equal(want, got); diff != nil {
		t.Errorf("decomposed fields differ: %v", diff)
	}
}

func TestDate_ToISOString(t *testing.T) {
	d := New(0)
	s, err := d.ToISOString()
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T00:00:00.000Z", s)
}

func TestDate_ToJSON_MatchesToISOString(t *testing.T) {
	d := New(0)
	iso, err := d.ToISOString()
	require.NoError(t, err)
	json, err := d.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, iso, json)
}

func TestDate_ToDateString(t *testing.T) {
	d := New(0)
	s, err := d.ToDateString(fixedProvider{})
	require.NoError(t, err)
	assert.Equal(t, "Thu Jan 01 1970", s)
}
