package compress

// NoopCodec bypasses compression entirely, returning its input unchanged.
// Useful for small payloads where compression overhead would exceed the
// savings, or for debugging a container round-trip without the compressed
// path in the loop.
type NoopCodec struct{}

var _ Codec = NoopCodec{}

func (c NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoopCodec) Decompress(data []byte, rawLen int) ([]byte, error) {
	return data, nil
}
