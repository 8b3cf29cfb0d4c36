package codeset

import (
	"fmt"

	"github.com/arloliu/shox/errs"
	"github.com/arloliu/shox/internal/bitstream"
)

const maxCodeLen = 16

// Code is a bit pattern of Len bits, written MSB-first.
type Code struct {
	Bits uint64
	Len  int
}

// Append returns c followed by o.
func (c Code) Append(o Code) Code {
	return Code{Bits: c.Bits<<o.Len | o.Bits, Len: c.Len + o.Len}
}

// Write emits the code to w.
func (c Code) Write(w bitstream.Sink) {
	w.WriteBits(c.Bits, c.Len)
}

// prefixCode is a canonical prefix code built from per-symbol code lengths.
type prefixCode struct {
	codes   []Code
	counts  [maxCodeLen + 1]int // number of codes per length
	symbols []int               // symbols ordered by (length, index)
	maxLen  int
}

// newPrefixCode assigns canonical codes to the given lengths, shortest first
// and in symbol order within a length (RFC 1951, section 3.2.2).
// It panics if the lengths do not describe a complete prefix code.
func newPrefixCode(lengths ...int) prefixCode {
	pc := prefixCode{codes: make([]Code, len(lengths))}

	for _, l := range lengths {
		if l < 1 || l > maxCodeLen {
			panic(fmt.Sprintf("codeset: code length %d out of range", l))
		}
		pc.counts[l]++
		pc.maxLen = max(pc.maxLen, l)
	}

	// Kraft sum must be exactly one for a complete code
	var kraft uint32
	for l := 1; l <= maxCodeLen; l++ {
		kraft += uint32(pc.counts[l]) << (maxCodeLen - l)
	}
	if kraft != 1<<maxCodeLen {
		panic("codeset: code lengths do not form a complete prefix code")
	}

	var next [maxCodeLen + 1]uint64
	code := uint64(0)
	for l := 1; l <= maxCodeLen; l++ {
		code = (code + uint64(pc.counts[l-1])) << 1
		next[l] = code
	}

	for sym, l := range lengths {
		pc.codes[sym] = Code{Bits: next[l], Len: l}
		next[l]++
	}

	for l := 1; l <= pc.maxLen; l++ {
		for sym, sl := range lengths {
			if sl == l {
				pc.symbols = append(pc.symbols, sym)
			}
		}
	}

	return pc
}

func (pc *prefixCode) code(sym int) Code {
	return pc.codes[sym]
}

// decode walks the code one bit at a time until a complete code matches.
func (pc *prefixCode) decode(r *bitstream.Reader) (int, error) {
	code, first, index := 0, 0, 0
	for l := 1; l <= pc.maxLen; l++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		code |= int(bit)

		count := pc.counts[l]
		if code-first < count {
			return pc.symbols[index+code-first], nil
		}

		index += count
		first = (first + count) << 1
		code <<= 1
	}

	// unreachable for complete codes
	return 0, fmt.Errorf("%w: no code matched", errs.ErrCorruptStream)
}
