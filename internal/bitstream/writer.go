// Package bitstream provides the MSB-first bit writer and reader shared by the
// shox encoder and decoder.
package bitstream

import (
	"encoding/binary"

	"github.com/arloliu/shox/internal/pool"
)

// Sink receives bit fields. Writer produces bytes, Counter only measures.
type Sink interface {
	WriteBits(value uint64, numBits int)
}

// Writer appends bit fields MSB-first to a pooled byte buffer.
//
// Bits collect in a 64-bit accumulator that is flushed eight bytes at a time.
// A Writer is not safe for concurrent use and must be finished exactly once.
type Writer struct {
	buf      *pool.ByteBuffer
	bitBuf   uint64
	bitCount int // valid bits in bitBuf
	total    int // bits written since creation
}

var _ Sink = (*Writer)(nil)

// NewWriter creates a Writer backed by a buffer from the payload pool.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetPayloadBuffer()}
}

// WriteBits appends the low numBits bits of value, most significant bit first.
//
// numBits must be in [0, 64]; a zero count is a no-op.
func (w *Writer) WriteBits(value uint64, numBits int) {
	if numBits == 0 {
		return
	}

	if numBits < 64 {
		value &= (1 << numBits) - 1
	}
	w.total += numBits

	available := 64 - w.bitCount
	if numBits <= available {
		w.bitBuf = (w.bitBuf << numBits) | value
		w.bitCount += numBits
		if w.bitCount == 64 {
			w.flush()
		}

		return
	}

	// split across the accumulator boundary
	rest := numBits - available
	w.bitBuf = (w.bitBuf << available) | (value >> rest)
	w.bitCount = 64
	w.flush()

	w.bitBuf = value & ((1 << rest) - 1)
	w.bitCount = rest
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(bit bool) {
	if bit {
		w.WriteBits(1, 1)
	} else {
		w.WriteBits(0, 1)
	}
}

// Len returns the number of bits written so far, padding excluded.
func (w *Writer) Len() int {
	return w.total
}

// Finish pads the stream with zero bits to the next byte boundary and returns
// an owned copy of the bytes. The pooled buffer is released; the Writer must
// not be used afterwards.
func (w *Writer) Finish() []byte {
	w.flush()

	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())

	pool.PutPayloadBuffer(w.buf)
	w.buf = nil

	return out
}

// flush moves the accumulated bits into the byte buffer, left-aligning a
// partial final byte so the unused low bits become zero padding.
func (w *Writer) flush() {
	if w.bitCount == 0 {
		return
	}

	numBytes := (w.bitCount + 7) / 8
	aligned := w.bitBuf << (64 - w.bitCount)
	bs := w.buf.ExtendOrGrow(numBytes)

	if numBytes == 8 {
		binary.BigEndian.PutUint64(bs, aligned)
	} else {
		for i := range numBytes {
			bs[i] = byte(aligned >> (56 - i*8))
		}
	}

	w.bitBuf = 0
	w.bitCount = 0
}

// Counter is a Sink that only counts bits. The encoder uses it to price
// alternative encodings of the same span.
type Counter struct {
	n int
}

var _ Sink = (*Counter)(nil)

// WriteBits adds numBits to the running total.
func (c *Counter) WriteBits(_ uint64, numBits int) {
	c.n += numBits
}

// Len returns the number of bits counted.
func (c *Counter) Len() int {
	return c.n
}

// Reset sets the count back to zero.
func (c *Counter) Reset() {
	c.n = 0
}
