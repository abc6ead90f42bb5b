// Package calendar implements the ECMA-262 calendar algorithms that map a
// millisecond instant onto broken-down date and time fields, and back.
// Every function here is a pure mathematical mapping: no host state, no
// timezones, no locale — that belongs to the packages built on top (§4.5).
package calendar

import "math"

const (
	// MsPerSecond, MsPerMinute, ... are the fixed conversion factors the
	// whole kernel is built from.
	MsPerSecond = 1000
	MsPerMinute = 60 * MsPerSecond
	MsPerHour   = 60 * MsPerMinute
	MsPerDay    = 24 * MsPerHour
)

// firstDayOfMonth[leap][month] is the cumulative day count, within a year,
// at the start of month (0-based).
var firstDayOfMonth = [2][12]float64{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335},
}

var daysInMonth = [2][12]float64{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

// Day returns the number of whole days from the epoch to t, truncated
// toward negative infinity.
func Day(t float64) float64 {
	return math.Floor(t / MsPerDay)
}

// TimeWithinDay returns the millisecond-of-day component of t.
func TimeWithinDay(t float64) float64 {
	m := math.Mod(t, MsPerDay)
	if m < 0 {
		m += MsPerDay
	}

	return m
}

// IsLeapYear reports whether y is a leap year under the proleptic
// Gregorian calendar.
func IsLeapYear(y float64) bool {
	yi := int64(y)

	return (yi%4 == 0 && yi%100 != 0) || yi%400 == 0
}

func leapIndex(y float64) int {
	if IsLeapYear(y) {
		return 1
	}

	return 0
}

// DaysInYear returns 366 for a leap year, 365 otherwise.
func DaysInYear(y float64) float64 {
	if IsLeapYear(y) {
		return 366
	}

	return 365
}

// DayFromYear returns the day number (from the epoch) of January 1st of
// year y.
func DayFromYear(y float64) float64 {
	return 365*(y-1970) +
		math.Floor((y-1969)/4) -
		math.Floor((y-1901)/100) +
		math.Floor((y-1601)/400)
}

// TimeFromYear returns the instant of January 1st, 00:00:00.000 UTC of
// year y.
func TimeFromYear(y float64) float64 {
	return MsPerDay * DayFromYear(y)
}

// YearFromTime recovers the calendar year containing instant t by
// bisection between a lower and upper bound, converging on the unique y
// with TimeFromYear(y) <= t < TimeFromYear(y+1).
func YearFromTime(t float64) float64 {
	if math.IsNaN(t) {
		return math.NaN()
	}

	day := Day(t)
	lo := math.Floor(day/366) + 1970
	hi := math.Floor(day/365) + 1970
	if hi < lo {
		lo, hi = hi, lo
	}

	for lo < hi {
		mid := math.Floor((lo + hi) / 2)
		if TimeFromYear(mid) <= t {
			if mid == lo {
				break
			}
			lo = mid
		} else {
			hi = mid
		}
	}

	for TimeFromYear(lo+1) <= t {
		lo++
	}
	for TimeFromYear(lo) > t {
		lo--
	}

	return lo
}

// DayWithinYear returns the zero-based day number of t within its year.
func DayWithinYear(t float64) float64 {
	return Day(t) - DayFromYear(YearFromTime(t))
}

// MonthFromTime returns the zero-based month (0-11) of instant t.
func MonthFromTime(t float64) float64 {
	y := YearFromTime(t)
	doy := DayWithinYear(t)
	table := firstDayOfMonth[leapIndex(y)]

	month := 11
	for m := 0; m < 12; m++ {
		if doy < table[m] {
			month = m - 1
			break
		}
	}

	return float64(month)
}

// DateFromTime returns the one-based day-of-month (1-31) of instant t.
func DateFromTime(t float64) float64 {
	y := YearFromTime(t)
	doy := DayWithinYear(t)
	m := int(MonthFromTime(t))

	return doy - firstDayOfMonth[leapIndex(y)][m] + 1
}

// DaysInMonth returns the number of days in month (0-11) of year y.
func DaysInMonth(y float64, month float64) float64 {
	return daysInMonth[leapIndex(y)][int(month)]
}

// WeekDay returns the day of the week (0 = Sunday ... 6 = Saturday) of
// instant t. 1970-01-01 was a Thursday.
func WeekDay(t float64) float64 {
	d := math.Mod(Day(t)+4, 7)
	if d < 0 {
		d += 7
	}

	return d
}

// HourFromTime returns the hour-of-day (0-23) of instant t.
func HourFromTime(t float64) float64 {
	h := math.Mod(math.Floor(t/MsPerHour), 24)
	if h < 0 {
		h += 24
	}

	return h
}

// MinFromTime returns the minute-of-hour (0-59) of instant t.
func MinFromTime(t float64) float64 {
	m := math.Mod(math.Floor(t/MsPerMinute), 60)
	if m < 0 {
		m += 60
	}

	return m
}

// SecFromTime returns the second-of-minute (0-59) of instant t.
func SecFromTime(t float64) float64 {
	s := math.Mod(math.Floor(t/MsPerSecond), 60)
	if s < 0 {
		s += 60
	}

	return s
}

// MsFromTime returns the millisecond-of-second (0-999) of instant t.
func MsFromTime(t float64) float64 {
	m := math.Mod(t, MsPerSecond)
	if m < 0 {
		m += MsPerSecond
	}

	return m
}

// MakeTime combines broken-down time-of-day fields into a millisecond
// offset. Any non-finite input propagates to a NaN result.
func MakeTime(hour, min, sec, ms float64) float64 {
	if !finite(hour, min, sec, ms) {
		return math.NaN()
	}

	return ((hour*60+min)*60+sec)*1000 + ms
}

// MakeDay combines a year, zero-based month (which may be out of [0,11]
// and is normalized by flooring), and day-of-month into a day number from
// the epoch.
func MakeDay(year, month, date float64) float64 {
	if !finite(year, month, date) {
		return math.NaN()
	}

	y := year + math.Floor(month/12)
	m := math.Mod(month, 12)
	if m < 0 {
		m += 12
	}

	return math.Floor(TimeFromYear(y)/MsPerDay) + firstDayOfMonth[leapIndex(y)][int(m)] + date - 1
}

// MakeDate combines a day number and a time-of-day offset into an instant.
func MakeDate(day, timeOfDay float64) float64 {
	if !finite(day, timeOfDay) {
		return math.NaN()
	}

	return day*MsPerDay + timeOfDay
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
