package compress

import (
	"bytes"
	"fmt"
	"time"

	"github.com/arloliu/shox/errs"
	"github.com/arloliu/shox/format"
)

// Compressor compresses one self-contained buffer.
//
// Memory management:
//   - The returned slice is owned by the caller unless documented otherwise
//   - The input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats accumulates sizes and timings of one codec over a set of
// inputs.
type CompressionStats struct {
	// Algorithm identifies the codec measured.
	Algorithm format.CompressionType

	// Inputs is the number of buffers measured.
	Inputs int

	// OriginalSize is the total size of the inputs.
	OriginalSize int64

	// CompressedSize is the total size of the compressed outputs.
	CompressedSize int64

	// Ratio is CompressedSize / OriginalSize.
	Ratio float64

	// CompressionTimeNs is the total time spent compressing.
	CompressionTimeNs int64

	// DecompressionTimeNs is the total time spent decompressing.
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size, or 0 when nothing
// was measured. Values above 1.0 mean the codec expanded its inputs, which is
// common for general-purpose codecs on short strings.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage. It is negative when
// the codec expanded its inputs.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses and decompresses every input with c and returns the
// totals. An input that does not survive the round trip fails with
// errs.ErrRoundTripMismatch.
func Measure(c Codec, algorithm format.CompressionType, inputs [][]byte) (CompressionStats, error) {
	stats := CompressionStats{Algorithm: algorithm}

	for i, in := range inputs {
		start := time.Now()
		compressed, err := c.Compress(in)
		stats.CompressionTimeNs += time.Since(start).Nanoseconds()
		if err != nil {
			return stats, fmt.Errorf("%s: compress input %d: %w", algorithm, i, err)
		}

		start = time.Now()
		out, err := c.Decompress(compressed)
		stats.DecompressionTimeNs += time.Since(start).Nanoseconds()
		if err != nil {
			return stats, fmt.Errorf("%s: decompress input %d: %w", algorithm, i, err)
		}
		if !bytes.Equal(out, in) {
			return stats, fmt.Errorf("%w: %s input %d", errs.ErrRoundTripMismatch, algorithm, i)
		}

		stats.Inputs++
		stats.OriginalSize += int64(len(in))
		stats.CompressedSize += int64(len(compressed))
	}
	stats.Ratio = stats.CompressionRatio()

	return stats, nil
}

// CreateCodec creates a new Codec of the given type. target names the caller's
// use in error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionShox:
		return NewShoxCompressor(DefaultShoxLimit)
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrUnsupportedCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
	format.CompressionShox: mustShoxCompressor(),
}

// GetCodec returns the shared built-in Codec for the given type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// Baselines lists the general-purpose codecs shox is compared against, in
// display order.
func Baselines() []format.CompressionType {
	return []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
}
