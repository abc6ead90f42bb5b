package compress

// ZstdCodec compresses with Zstandard. Its Compress/Decompress methods live
// in zstd_pure.go (klauspost/compress/zstd, used by default) and
// zstd_cgo.go (valyala/gozstd, used when built with cgo enabled) — both
// produce standard zstd frames, so a container compressed by one build can
// always be read by the other.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
