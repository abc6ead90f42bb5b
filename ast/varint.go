package ast

import "encoding/binary"

// putUvarint and uvarint are thin names over encoding/binary's LEB128-style
// unsigned varint, which is exactly the "engine's shared helper" the format
// assumes (§6.2): a base-128 encoding with the continuation bit in the MSB
// of each byte. Kept as package-local wrappers so call sites read as AST
// operations rather than reaching into encoding/binary directly.

const maxVarintLen = binary.MaxVarintLen64

func putUvarint(buf []byte, v uint64) int {
	return binary.PutUvarint(buf, v)
}

func uvarint(buf []byte) (uint64, int) {
	return binary.Uvarint(buf)
}
