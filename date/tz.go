package date

import (
	"time"

	"github.com/kestrel-engine/kestrel/date/calendar"
)

// Provider supplies the host's timezone data (§3.2, §4.6). The standard
// offset is treated as fixed across instants; only DST activity varies with
// t.
type Provider interface {
	// StandardOffsetSeconds returns the non-DST offset from UTC, in
	// seconds, east-positive.
	StandardOffsetSeconds() float64
	// DSTActive reports whether daylight saving is in effect at instant t
	// (milliseconds since the epoch, host-local interpretation).
	DSTActive(t float64) bool
}

// HostProvider implements Provider using the Go runtime's local zoneinfo
// database (time.Local). No third-party timezone library appears anywhere
// in the example corpus, and time.Local's zoneinfo is the canonical,
// already-correct source for this data on every platform Go targets, so
// reaching past it would mean re-deriving what the standard library already
// gets right.
type HostProvider struct{}

var _ Provider = HostProvider{}

// StandardOffsetSeconds reports the offset in effect on January 1st of the
// current year, a month DST is never active in the hemispheres that
// observe it.
func (HostProvider) StandardOffsetSeconds() float64 {
	ref := time.Date(time.Now().Year(), time.January, 1, 0, 0, 0, 0, time.Local)
	_, offset := ref.Zone()

	return float64(offset)
}

// DSTActive reports whether t's zone offset differs from the standard
// offset.
func (HostProvider) DSTActive(t float64) bool {
	tm := time.UnixMilli(int64(t)).In(time.Local)
	_, offset := tm.Zone()

	return float64(offset) != HostProvider{}.StandardOffsetSeconds()
}

// LocalTZA returns p's standard offset in milliseconds.
func LocalTZA(p Provider) float64 {
	return p.StandardOffsetSeconds() * 1000
}

// DaylightSavingTA returns the DST adjustment in milliseconds: one hour if
// p reports DST active at t, else zero.
func DaylightSavingTA(p Provider, t float64) float64 {
	if p.DSTActive(t) {
		return calendar.MsPerHour
	}

	return 0
}

// LocalTime converts a UTC instant to local time under p.
func LocalTime(p Provider, t float64) float64 {
	return t + LocalTZA(p) + DaylightSavingTA(p, t)
}

// UTC converts a local instant back to UTC under p. DST is probed at the
// pre-adjusted instant (t - LocalTZA) rather than at t, which is what keeps
// UTC(LocalTime(t)) == t outside DST transitions (§4.6, §9).
func UTC(p Provider, t float64) float64 {
	return t - LocalTZA(p) - DaylightSavingTA(p, t-LocalTZA(p))
}
