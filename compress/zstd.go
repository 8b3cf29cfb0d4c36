package compress

// ZstdCompressor wraps Zstandard frame compression. Each frame carries a
// magic number and header, so on strings under a few dozen bytes it usually
// expands its input; it is kept as the ratio baseline for longer text.
//
// The default build uses pooled klauspost/compress encoders and decoders;
// building with the gozstd tag and cgo switches to libzstd through gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with default settings.
//
// Example:
//
//	c := compress.NewZstdCompressor()
//	compressed, err := c.Compress([]byte(text))
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
