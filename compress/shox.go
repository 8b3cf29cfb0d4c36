package compress

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/shox/codec"
	"github.com/arloliu/shox/errs"
)

// DefaultShoxLimit is the decode ceiling of the built-in shox codec. Payloads
// carry no length, so a byte-oriented Decompress needs an upper bound.
const DefaultShoxLimit = 1 << 20

// ShoxCompressor adapts codec.Encoder and codec.Decoder to the Codec
// interface. Compress takes UTF-8 text; Decompress fails with
// errs.ErrBufferTooSmall when the text exceeds the limit.
type ShoxCompressor struct {
	enc   *codec.Encoder
	dec   *codec.Decoder
	limit int
}

var _ Codec = (*ShoxCompressor)(nil)

// NewShoxCompressor creates a shox codec that decodes at most limit bytes.
// The options apply to both the encoder and the decoder.
func NewShoxCompressor(limit int, opts ...codec.Option) (*ShoxCompressor, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative decode limit %d", errs.ErrInvalidOption, limit)
	}

	enc, err := codec.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	dec, err := codec.NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return &ShoxCompressor{enc: enc, dec: dec, limit: limit}, nil
}

func mustShoxCompressor() *ShoxCompressor {
	c, err := NewShoxCompressor(DefaultShoxLimit)
	if err != nil {
		panic(fmt.Sprintf("failed to create shox codec: %v", err))
	}

	return c
}

// Limit returns the decode ceiling in bytes.
func (c *ShoxCompressor) Limit() int {
	return c.limit
}

// Compress encodes data, which must be valid UTF-8. Unlike the other codecs,
// empty input still produces a one-byte payload holding the terminator.
func (c *ShoxCompressor) Compress(data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: shox input is not valid UTF-8", errs.ErrInvalidInput)
	}

	payload, _, err := c.enc.Compress(string(data))

	return payload, err
}

// Decompress decodes a payload of at most Limit bytes of text.
func (c *ShoxCompressor) Decompress(data []byte) ([]byte, error) {
	return c.dec.DecompressBytes(data, c.limit)
}
