// Package compress puts shox and general-purpose codecs behind one interface
// so their output sizes can be compared on the same inputs.
//
// # Overview
//
// General-purpose codecs pay for headers, checksums or length prefixes on
// every buffer. On strings of a few dozen bytes that overhead usually exceeds
// the savings, which is the gap shox fills. This package makes the trade-off
// measurable:
//
//   - None: pass-through, the size baseline
//   - Zstd: best ratio on long text, largest fixed overhead
//   - S2: fast block codec with a varint length header
//   - LZ4: fast block codec, stored raw when incompressible
//   - Shox: the short-string codec from package codec
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// GetCodec returns shared built-in codecs, CreateCodec builds new ones.
//
// # Shox
//
// A shox payload has no length prefix, so the Codec adapter decodes into a
// bounded buffer. The built-in codec allows DefaultShoxLimit bytes; use
// NewShoxCompressor for another limit or for codec options:
//
//	c, err := compress.NewShoxCompressor(4096, codec.WithPreset(format.PresetJSON))
//	if err != nil {
//	    return err
//	}
//	payload, err := c.Compress([]byte(`{"id":"42"}`))
//
// # Measuring
//
// Measure runs every input through a codec and back and sums sizes and times:
//
//	inputs := [][]byte{[]byte("Hello World"), []byte("2020-12-31")}
//	for _, t := range append(compress.Baselines(), format.CompressionShox) {
//	    c, _ := compress.GetCodec(t)
//	    stats, err := compress.Measure(c, t, inputs)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("%s: %.1f%% saved\n", t, stats.SpaceSavings())
//	}
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Zstd and LZ4 keep their encoder
// state in sync.Pool instances.
package compress
