package pool

import "sync"

const (
	// PayloadBufferDefaultSize is the starting capacity of buffers handed to the bit writer.
	PayloadBufferDefaultSize = 256
	// PayloadBufferMaxThreshold bounds the capacity of buffers returned to the payload pool.
	PayloadBufferMaxThreshold = 1024 * 64 // 64KiB

	// TextBufferDefaultSize is the starting capacity of decoder output buffers.
	TextBufferDefaultSize = 1024
	// TextBufferMaxThreshold bounds the capacity of buffers returned to the text pool.
	TextBufferMaxThreshold = 1024 * 256 // 256KiB
)

type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow makes room for n more bytes without a further reallocation.
//
// Small buffers double, larger ones (over 16KiB) grow by 25% of their capacity,
// and the result always fits at least n more bytes.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := cap(bb.B)
	if growBy > 16*1024 {
		growBy /= 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// GrowCapped behaves like Grow but never raises the capacity above limit.
// It reports false when n more bytes cannot fit under limit.
func (bb *ByteBuffer) GrowCapped(n, limit int) bool {
	if len(bb.B)+n > limit {
		return false
	}
	if cap(bb.B)-len(bb.B) >= n {
		return true
	}

	newCap := cap(bb.B) * 2
	if newCap < len(bb.B)+n {
		newCap = len(bb.B) + n
	}
	if newCap > limit {
		newCap = limit
	}

	newBuf := make([]byte, len(bb.B), newCap)
	copy(newBuf, bb.B)
	bb.B = newBuf

	return true
}

// ExtendOrGrow extends the buffer by n bytes, growing it if necessary, and
// returns the newly exposed tail.
func (bb *ByteBuffer) ExtendOrGrow(n int) []byte {
	bb.Grow(n)
	start := len(bb.B)
	bb.B = bb.B[:start+n]

	return bb.B[start:]
}

// ByteBufferPool is a sync.Pool of ByteBuffers that drops buffers whose
// capacity grew past maxThreshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	payloadPool = NewByteBufferPool(PayloadBufferDefaultSize, PayloadBufferMaxThreshold)
	textPool    = NewByteBufferPool(TextBufferDefaultSize, TextBufferMaxThreshold)
)

// GetPayloadBuffer retrieves a ByteBuffer from the payload pool.
func GetPayloadBuffer() *ByteBuffer {
	return payloadPool.Get()
}

// PutPayloadBuffer returns a ByteBuffer to the payload pool.
func PutPayloadBuffer(bb *ByteBuffer) {
	payloadPool.Put(bb)
}

// GetTextBuffer retrieves a ByteBuffer from the decoder text pool.
func GetTextBuffer() *ByteBuffer {
	return textPool.Get()
}

// PutTextBuffer returns a ByteBuffer to the decoder text pool.
func PutTextBuffer(bb *ByteBuffer) {
	textPool.Put(bb)
}
