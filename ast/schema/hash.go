package schema

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash digests the schema table into a single 64-bit fingerprint, stamped
// into every container's header (§3.3). A reader whose own table hashes to
// a different value is decoding against a different schema than the one
// that wrote the container; returning errs.ErrSchemaDrift there is cheaper
// and safer than trusting byte offsets computed under a different shape.
//
// The digest covers name, flags and counts for every tag in table order, so
// reordering the Tag enum, renaming a tag, or changing a single node's
// shape all change the hash. It does not cover SkipNames: those are purely
// diagnostic and carry no wire-format weight.
func Hash() uint64 {
	d := xxhash.New()

	var scratch [7]byte
	for tag, e := range table {
		_, _ = d.WriteString(e.Name)

		var flags byte
		if e.HasVarintLength {
			flags |= 1 << 0
		}
		if e.HasInlineString {
			flags |= 1 << 1
		}

		scratch[0] = 0 // name terminator
		scratch[1] = flags
		binary.BigEndian.PutUint16(scratch[2:4], uint16(tag))
		binary.BigEndian.PutUint16(scratch[4:6], uint16(e.NumSkips))
		scratch[6] = byte(e.NumSubtrees)
		_, _ = d.Write(scratch[:])
	}

	return d.Sum64()
}
