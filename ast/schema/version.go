package schema

import "github.com/maloquacious/semver"

// FormatVersion is the container wire-format version (§3.3), independent of
// kestrel's own module version. The major component gates compatibility: a
// reader refuses a container stamped with any major other than its own
// (errs.ErrUnsupportedFormatVersion). Minor bumps are additive (new codec
// IDs, new optional header fields a reader may ignore).
var FormatVersion = semver.Version{
	Major: 1,
	Minor: 0,
	Patch: 0,
}
