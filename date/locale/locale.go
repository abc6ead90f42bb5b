// Package locale carries the process-wide current formatting locale that
// date's toLocaleString family consults. It is deliberately tiny: a single
// mutex-guarded language.Tag, saved and restored around each locale-
// sensitive call (§5, §9).
package locale

import (
	"sync"

	"golang.org/x/text/language"
)

// Handle is an opaque carrier for a formatting locale. The zero value is
// not valid; use English or Parse.
type Handle struct {
	tag language.Tag
}

// English is the default locale new date.Date values format under.
var English = Handle{tag: language.English}

// Parse resolves a BCP 47 language tag (e.g. "fr-FR", "ja-JP") into a
// Handle.
func Parse(tag string) (Handle, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return Handle{}, err
	}

	return Handle{tag: t}, nil
}

// String returns the BCP 47 form of the locale, e.g. "en-US".
func (h Handle) String() string {
	return h.tag.String()
}

var (
	mu      sync.Mutex
	current = English

	// withMu serializes whole WithLocale brackets against each other.
	withMu sync.Mutex
)

// Current returns the process-wide current locale.
func Current() Handle {
	mu.Lock()
	defer mu.Unlock()

	return current
}

// set installs h as the process-wide current locale.
func set(h Handle) {
	mu.Lock()
	current = h
	mu.Unlock()
}

// WithLocale saves the current locale, installs h, runs fn, then restores
// the saved locale — including when fn panics. WithLocale calls are
// serialized by a package mutex, so two brackets (and their fn calls) never
// interleave (§5). fn must not call WithLocale itself.
//
// The source this module traces to saved and restored in the wrong order;
// the fix is to always read the old locale before installing the new one.
func WithLocale(h Handle, fn func() error) error {
	withMu.Lock()
	defer withMu.Unlock()

	saved := Current()
	set(h)
	defer set(saved)

	return fn()
}
