package bitstream

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/shox/errs"
)

// Reader consumes bit fields MSB-first from a byte slice.
//
// Up to eight bytes are buffered at a time and bits are taken from the most
// significant end of the buffer.
type Reader struct {
	data     []byte
	bytePos  int    // next byte to load into bitBuf
	bitBuf   uint64 // left-aligned buffered bits
	bitCount int    // valid bits in bitBuf
}

// NewReader creates a Reader over data. The slice is not copied or modified.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (uint64, error) {
	if r.bitCount == 0 && !r.fill() {
		return 0, errs.ErrUnexpectedEndOfStream
	}

	bit := r.bitBuf >> 63
	r.bitBuf <<= 1
	r.bitCount--

	return bit, nil
}

// ReadBits reads numBits bits (0 to 64) and returns them right-aligned.
func (r *Reader) ReadBits(numBits int) (uint64, error) {
	if numBits == 0 {
		return 0, nil
	}

	if numBits <= r.bitCount {
		result := r.bitBuf >> (64 - numBits)
		r.bitBuf <<= numBits
		r.bitCount -= numBits

		return result, nil
	}

	if numBits > r.Remaining() {
		return 0, fmt.Errorf("%w: need %d bits, %d left", errs.ErrUnexpectedEndOfStream, numBits, r.Remaining())
	}

	var result uint64
	for numBits > 0 {
		if r.bitCount == 0 {
			r.fill()
		}

		n := min(numBits, r.bitCount)
		result = (result << n) | (r.bitBuf >> (64 - n))
		r.bitBuf <<= n
		r.bitCount -= n
		numBits -= n
	}

	return result, nil
}

// Remaining returns the number of unread bits, padding included.
func (r *Reader) Remaining() int {
	return r.bitCount + (len(r.data)-r.bytePos)*8
}

// Consumed returns the number of bits read so far.
func (r *Reader) Consumed() int {
	return r.bytePos*8 - r.bitCount
}

// fill loads up to eight bytes into the empty bit buffer.
func (r *Reader) fill() bool {
	avail := len(r.data) - r.bytePos
	if avail <= 0 {
		return false
	}

	if avail >= 8 {
		r.bitBuf = binary.BigEndian.Uint64(r.data[r.bytePos:])
		r.bytePos += 8
		r.bitCount = 64

		return true
	}

	r.bitBuf = 0
	for i := 0; i < avail; i++ {
		r.bitBuf = (r.bitBuf << 8) | uint64(r.data[r.bytePos])
		r.bytePos++
	}
	r.bitBuf <<= uint(8-avail) * 8
	r.bitCount = avail * 8

	return true
}
