package date

import (
	"fmt"
	"math"

	"github.com/kestrel-engine/kestrel/date/calendar"
	"github.com/kestrel-engine/kestrel/date/locale"
	"github.com/kestrel-engine/kestrel/errs"
)

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ISOString renders t as "YYYY-MM-DDTHH:MM:SS.sssZ" (§4.8). Years outside
// [0, 9999] are rendered with an explicit sign and six digits, matching the
// extended ISO-8601 year grammar.
func ISOString(t float64) (string, error) {
	if math.IsNaN(t) {
		return "", fmt.Errorf("date: format NaN instant: %w", errs.ErrInvalidTime)
	}

	f := FieldsFromInstant(t)

	return fmt.Sprintf("%sT%02d:%02d:%02d.%03dZ",
		isoDatePart(f), int(f.Hour), int(f.Min), int(f.Sec), int(f.Ms)), nil
}

func isoDatePart(f Fields) string {
	y := int(f.Year)
	if y < 0 || y > 9999 {
		sign := "+"
		if y < 0 {
			sign = "-"
			y = -y
		}

		return fmt.Sprintf("%s%06d-%02d-%02d", sign, y, int(f.Month)+1, int(f.Day))
	}

	return fmt.Sprintf("%04d-%02d-%02d", y, int(f.Month)+1, int(f.Day))
}

// DateString renders the date-only portion in the "Www Mmm DD YYYY" form
// toString/toDateString use.
func DateString(t float64) (string, error) {
	if math.IsNaN(t) {
		return "", fmt.Errorf("date: format NaN instant: %w", errs.ErrInvalidTime)
	}

	f := FieldsFromInstant(t)

	return fmt.Sprintf("%s %s %02d %04d", weekdayNames[int(f.Weekday)], monthNames[int(f.Month)], int(f.Day), int(f.Year)), nil
}

// TimeString renders the time-of-day portion in the "HH:MM:SS GMT±HHMM"
// form toString/toTimeString use, local to p. The offset is always
// printed, including +0000; no zone name is appended.
func TimeString(t float64, p Provider) (string, error) {
	if math.IsNaN(t) {
		return "", fmt.Errorf("date: format NaN instant: %w", errs.ErrInvalidTime)
	}

	local := LocalTime(p, t)
	f := FieldsFromInstant(local)

	offsetMinutes := int((LocalTZA(p) + DaylightSavingTA(p, t-LocalTZA(p))) / calendar.MsPerMinute)
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}

	return fmt.Sprintf("%02d:%02d:%02d GMT%s%02d%02d",
		int(f.Hour), int(f.Min), int(f.Sec), sign, offsetMinutes/60, offsetMinutes%60), nil
}

// UTCString renders t in the "Www, DD Mmm YYYY HH:MM:SS GMT" form
// toUTCString uses.
func UTCString(t float64) (string, error) {
	if math.IsNaN(t) {
		return "", fmt.Errorf("date: format NaN instant: %w", errs.ErrInvalidTime)
	}

	f := FieldsFromInstant(t)

	return fmt.Sprintf("%s, %02d %s %04d %02d:%02d:%02d GMT",
		weekdayNames[int(f.Weekday)], int(f.Day), monthNames[int(f.Month)], int(f.Year),
		int(f.Hour), int(f.Min), int(f.Sec)), nil
}

// String renders t in the combined "Www Mmm DD YYYY HH:MM:SS GMT±HHMM"
// form toString uses; no zone name is appended.
func String(t float64, p Provider) (string, error) {
	if math.IsNaN(t) {
		return "Invalid Date", nil
	}

	ds, err := DateString(LocalTime(p, t))
	if err != nil {
		return "", err
	}

	ts, err := TimeString(t, p)
	if err != nil {
		return "", err
	}

	return ds + " " + ts, nil
}

// LocaleString renders t under loc's conventions, restoring the
// process-wide current locale afterward (§5, date/locale.WithLocale). The
// rendering itself stays minimal: a locale-tagged ISO-like date, since no
// full CLDR pattern table exists in this module.
func LocaleString(t float64, loc locale.Handle) (string, error) {
	if math.IsNaN(t) {
		return "", fmt.Errorf("date: format NaN instant: %w", errs.ErrInvalidTime)
	}

	var out string
	err := locale.WithLocale(loc, func() error {
		f := FieldsFromInstant(t)
		out = fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d (%s)",
			int(f.Year), int(f.Month)+1, int(f.Day), int(f.Hour), int(f.Min), int(f.Sec), locale.Current().String())

		return nil
	})

	return out, err
}
