package date

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/kestrel-engine/kestrel/errs"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func monthIndex(name string) (int, bool) {
	name = strings.ToLower(name[:min(3, len(name))])
	for i, m := range monthNames {
		if strings.ToLower(m) == name {
			return i, true
		}
	}

	return 0, false
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

var (
	isoRE = regexp.MustCompile(`^(-?\d{4,6})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(?:\.(\d{1,3}))?Z$`)
	rfcRE = regexp.MustCompile(`^\w{3} (\w{3}) (\d{2}) (-?\d{4,6}) (\d{2}):(\d{2}):(\d{2}) GMT([+-]\d{4})?$`)
	// Fallback grammar: date with one of three separators, optional time,
	// optional trailing GMT offset (§4.7 strategy 4).
	fallbackRE = regexp.MustCompile(`^(\d{1,6})([/.\-])(\d{1,2})[/.\-](\d{1,6})(?:[ T](\d{1,2}):(\d{2})(?::(\d{2}))?)?(?:\s*GMT([+-]\d{1,4}))?$`)
)

// HostParser is a best-effort, platform-specific parsing hook tried as
// strategy 2 (§4.7). It is nil by default; most builds rely on the ISO,
// RFC and fallback grammars alone.
type HostParser func(s string) (f Fields, tzOffset float64, ok bool)

// Parse tries each strategy in order and returns the instant the first
// match denotes. month is decremented to 0-based and fields are validated
// before the instant is built.
func Parse(s string, host HostParser, local Provider) (float64, error) {
	s = strings.TrimSpace(s)

	if f, tz, ok := parseISO(s); ok {
		return finishParse(f, tz, local)
	}

	if host != nil {
		if f, tz, ok := host(s); ok {
			return finishParse(f, tz, local)
		}
	}

	if f, tz, ok := parseRFC(s); ok {
		return finishParse(f, tz, local)
	}

	if f, tz, ok := parseFallback(s); ok {
		return finishParse(f, tz, local)
	}

	return math.NaN(), fmt.Errorf("date: parse %q: %w", s, errs.ErrUnparseableDate)
}

func finishParse(f Fields, tzMinutesOrAbsent float64, local Provider) (float64, error) {
	if err := validateFields(f); err != nil {
		return math.NaN(), err
	}

	instant := f.Instant()
	if math.IsNaN(tzMinutesOrAbsent) {
		return UTC(local, instant), nil
	}

	return instant - tzMinutesOrAbsent*60000, nil
}

func validateFields(f Fields) error {
	if f.Day < 1 || f.Day > 31 {
		return fmt.Errorf("date: day %v: %w", f.Day, errs.ErrFieldOutOfRange)
	}
	if f.Month < 0 || f.Month > 11 {
		return fmt.Errorf("date: month %v: %w", f.Month, errs.ErrFieldOutOfRange)
	}
	if f.Hour < 0 || f.Hour > 23 {
		return fmt.Errorf("date: hour %v: %w", f.Hour, errs.ErrFieldOutOfRange)
	}
	if f.Min < 0 || f.Min > 59 {
		return fmt.Errorf("date: min %v: %w", f.Min, errs.ErrFieldOutOfRange)
	}
	if f.Sec < 0 || f.Sec > 59 {
		return fmt.Errorf("date: sec %v: %w", f.Sec, errs.ErrFieldOutOfRange)
	}

	return nil
}

func atof(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)

	return v
}

// parseISO matches strategy 1: strict ISO-8601, always UTC.
func parseISO(s string) (Fields, float64, bool) {
	m := isoRE.FindStringSubmatch(s)
	if m == nil {
		return Fields{}, 0, false
	}

	ms := m[7]
	for len(ms) < 3 {
		ms += "0"
	}

	f := Fields{
		Year:  atof(m[1]),
		Month: atof(m[2]) - 1,
		Day:   atof(m[3]),
		Hour:  atof(m[4]),
		Min:   atof(m[5]),
		Sec:   atof(m[6]),
		Ms:    atof(ms),
	}

	return f, 0, true
}

// parseRFC matches strategy 3: "Www Mmm DD YYYY HH:MM:SS GMT[+-HHMM]".
func parseRFC(s string) (Fields, float64, bool) {
	m := rfcRE.FindStringSubmatch(s)
	if m == nil {
		return Fields{}, 0, false
	}

	month, ok := monthIndex(m[1])
	if !ok {
		return Fields{}, 0, false
	}

	f := Fields{
		Year:  atof(m[3]),
		Month: float64(month),
		Day:   atof(m[2]),
		Hour:  atof(m[4]),
		Min:   atof(m[5]),
		Sec:   atof(m[6]),
	}

	tz, ok := parseTZOffsetMinutes(m[7])
	if !ok {
		return Fields{}, 0, false
	}

	return f, tz, true
}

// parseFallback matches strategy 4: three separators with permuted field
// order, inferred by which position looks like a 4+-digit year.
func parseFallback(s string) (Fields, float64, bool) {
	m := fallbackRE.FindStringSubmatch(s)
	if m == nil {
		return Fields{}, 0, false
	}

	a, sep, b, c := m[1], m[2], m[3], m[4]
	_ = sep

	var year, month, day float64

	switch {
	case len(a) >= 4: // Y-M-D
		year, month, day = atof(a), atof(b)-1, atof(c)
	case len(c) >= 4 && sep == "/": // M/D/Y
		month, day, year = atof(a)-1, atof(b), atof(c)
	case len(c) >= 4 && sep == ".": // D.M.Y
		day, month, year = atof(a), atof(b)-1, atof(c)
	default:
		return Fields{}, 0, false
	}

	f := Fields{Year: year, Month: month, Day: day}
	if m[5] != "" {
		f.Hour, f.Min = atof(m[5]), atof(m[6])
	}
	if m[7] != "" {
		f.Sec = atof(m[7])
	}

	tz, ok := parseTZOffsetMinutes(m[8])
	if !ok {
		return Fields{}, 0, false
	}

	return f, tz, true
}

// parseTZOffsetMinutes turns an optional "+HHMM"/"-HHMM" (or absent)
// capture into signed minutes, or (NaN, true) if absent (meaning: apply
// the host's local timezone instead). A value whose magnitude exceeds 12
// hours when read as a plain number is reinterpreted as hhmm and divided
// by 100, matching the spec's liberal tz grammar (§4.7). The resulting
// offset is then re-checked against the spec's |tz| <= 12 hours bound;
// ok is false when it still falls outside that range, signaling the
// caller to reject the match rather than silently accept a bogus offset.
func parseTZOffsetMinutes(raw string) (float64, bool) {
	if raw == "" {
		return math.NaN(), true
	}

	sign := 1.0
	digits := raw
	if digits[0] == '+' || digits[0] == '-' {
		if digits[0] == '-' {
			sign = -1
		}
		digits = digits[1:]
	}

	v := atof(digits)
	if v > 12 {
		v = math.Floor(v/100)*60 + math.Mod(v, 100)
	} else {
		v *= 60
	}

	if v > 12*60 {
		return 0, false
	}

	return sign * v, true
}
