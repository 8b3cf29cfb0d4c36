package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/shox/errs"
)

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table
// between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// Block kinds. lz4 reports short or random inputs as incompressible, so those
// are stored raw behind the same one-byte header.
const (
	lz4BlockRaw        byte = 0
	lz4BlockCompressed byte = 1
)

// LZ4Compressor wraps LZ4 block compression with a one-byte block kind.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data with a pooled lz4.Compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, 1+lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, err
	}

	if n == 0 || n >= len(data) {
		dst[0] = lz4BlockRaw
		n = copy(dst[1:], data)
	} else {
		dst[0] = lz4BlockCompressed
	}

	return dst[:1+n], nil
}

// Decompress decompresses an LZ4 block. The decoded size is not stored, so
// the buffer starts at 4x the input and doubles on
// lz4.ErrInvalidSourceShortBuffer up to a 128MB limit.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	kind, body := data[0], data[1:]
	switch kind {
	case lz4BlockRaw:
		out := make([]byte, len(body))
		copy(out, body)

		return out, nil
	case lz4BlockCompressed:
	default:
		return nil, fmt.Errorf("%w: unknown lz4 block kind %d", errs.ErrCorruptStream, kind)
	}

	bufSize := max(len(body)*4, 64)
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(body, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
