package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearFromTime_Epoch(t *testing.T) {
	assert.Equal(t, 1970.0, YearFromTime(0))
}

func TestWeekDay_Epoch(t *testing.T) {
	assert.Equal(t, 4.0, WeekDay(0)) // 1970-01-01 was a Thursday
}

func TestMakeDay_LeapFebruary(t *testing.T) {
	// 2016 is a leap year; 2016-02-29 is day 16_860 from epoch.
	assert.Equal(t, 16860.0, MakeDay(2016, 1, 29))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.True(t, IsLeapYear(2016))
	assert.False(t, IsLeapYear(2015))
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366.0, DaysInYear(2016))
	assert.Equal(t, 365.0, DaysInYear(2015))
}

func TestMakeTime(t *testing.T) {
	assert.Equal(t, 0.0, MakeTime(0, 0, 0, 0))
	assert.Equal(t, float64(MsPerHour+MsPerMinute+1000+5), MakeTime(1, 1, 1, 5))
}

func TestDateInverse(t *testing.T) {
	// gmtime(MakeDate(MakeDay(y,m,d), MakeTime(h,mn,s,ms))) recovers the
	// same fields, for a representative spread of years including a leap
	// and a non-leap year, and both halves of the month range.
	cases := []struct {
		y, m, d, h, mn, s, ms float64
	}{
		{1970, 0, 1, 0, 0, 0, 0},
		{1999, 11, 31, 23, 59, 59, 999},
		{2016, 1, 29, 12, 30, 15, 250},
		{2015, 1, 28, 0, 0, 0, 1},
		{2400, 0, 1, 0, 0, 0, 0},
		{1, 0, 1, 0, 0, 0, 0},
	}

	for _, c := range cases {
		day := MakeDay(c.y, c.m, c.d)
		tm := MakeTime(c.h, c.mn, c.s, c.ms)
		instant := MakeDate(day, tm)

		assert.Equal(t, c.y, YearFromTime(instant), "year for %+v", c)
		assert.Equal(t, c.m, MonthFromTime(instant), "month for %+v", c)
		assert.Equal(t, c.d, DateFromTime(instant), "date for %+v", c)
		assert.Equal(t, c.h, HourFromTime(instant), "hour for %+v", c)
		assert.Equal(t, c.mn, MinFromTime(instant), "min for %+v", c)
		assert.Equal(t, c.s, SecFromTime(instant), "sec for %+v", c)
		assert.Equal(t, c.ms, MsFromTime(instant), "ms for %+v", c)
	}
}

func TestDayFromYear_TimeFromYear_Inverse(t *testing.T) {
	for y := 1900.0; y < 2100.0; y++ {
		assert.Equal(t, y, YearFromTime(TimeFromYear(y)), "year %v", y)
	}
}

func TestMakeTime_NonFiniteInputPropagates(t *testing.T) {
	assert.True(t, isNaN(MakeTime(nan(), 0, 0, 0)))
}

func nan() float64 { var z float64; return z / z }
func isNaN(f float64) bool { return f != f }
