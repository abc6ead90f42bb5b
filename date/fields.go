package date

import (
	"math"

	"github.com/kestrel-engine/kestrel/date/calendar"
)

// Fields is the calendar decomposition of an instant (§3.2). Year may be
// negative or exceed four digits; Month is zero-based.
type Fields struct {
	Year    float64
	Month   float64
	Day     float64
	Hour    float64
	Min     float64
	Sec     float64
	Ms      float64
	Weekday float64
}

// FieldsFromInstant decomposes t into broken-down fields. A NaN t yields a
// Fields value whose every field is NaN.
func FieldsFromInstant(t float64) Fields {
	if math.IsNaN(t) {
		return Fields{Year: t, Month: t, Day: t, Hour: t, Min: t, Sec: t, Ms: t, Weekday: t}
	}

	return Fields{
		Year:    calendar.YearFromTime(t),
		Month:   calendar.MonthFromTime(t),
		Day:     calendar.DateFromTime(t),
		Hour:    calendar.HourFromTime(t),
		Min:     calendar.MinFromTime(t),
		Sec:     calendar.SecFromTime(t),
		Ms:      calendar.MsFromTime(t),
		Weekday: calendar.WeekDay(t),
	}
}

// Instant rebuilds the instant these fields denote via MakeDate(MakeDay(...), MakeTime(...)).
func (f Fields) Instant() float64 {
	day := calendar.MakeDay(f.Year, f.Month, f.Day)
	tod := calendar.MakeTime(f.Hour, f.Min, f.Sec, f.Ms)

	return calendar.MakeDate(day, tod)
}

// WithYear returns a copy of f with Year replaced, for partial setters that
// patch only the field the caller supplied (§4.9).
func (f Fields) WithYear(y float64) Fields { f.Year = y; return f }

// WithMonth returns a copy of f with Month replaced.
func (f Fields) WithMonth(m float64) Fields { f.Month = m; return f }

// WithDay returns a copy of f with Day replaced.
func (f Fields) WithDay(d float64) Fields { f.Day = d; return f }

// WithHour returns a copy of f with Hour replaced.
func (f Fields) WithHour(h float64) Fields { f.Hour = h; return f }

// WithMin returns a copy of f with Min replaced.
func (f Fields) WithMin(m float64) Fields { f.Min = m; return f }

// WithSec returns a copy of f with Sec replaced.
func (f Fields) WithSec(s float64) Fields { f.Sec = s; return f }

// WithMs returns a copy of f with Ms replaced.
func (f Fields) WithMs(ms float64) Fields { f.Ms = ms; return f }
