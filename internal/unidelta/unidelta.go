// Package unidelta encodes runes outside the ASCII code tables as deltas
// against the previously delta-coded rune.
//
// A rune within 32 of the previous one is in the same script window and costs
// 7 bits; within 1024 it is in the same block and costs 13 bits. Anything
// further away is written as an absolute 21-bit code point, which also resets
// the window.
package unidelta

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/shox/errs"
	"github.com/arloliu/shox/internal/bitstream"
	"github.com/arloliu/shox/internal/codeset"
)

const (
	smallBits    = 6
	smallRange   = 1 << (smallBits - 1)
	mediumBits   = 11
	mediumRange  = 1 << (mediumBits - 1)
	absoluteBits = 21
	literalBits  = 7
)

// LiteralCost is the bit length of an ASCII literal inside the Delta set.
var LiteralCost = codeset.DeltaClassCode(codeset.DeltaLiteral).Len + literalBits

// State is the previous delta-coded rune. The zero value is the initial state
// of every call.
type State struct {
	prev rune
}

// Prev returns the rune deltas are currently measured from.
func (s *State) Prev() rune {
	return s.prev
}

// Class returns the class Encode would use for r.
func (s *State) Class(r rune) codeset.DeltaClass {
	d := r - s.prev
	switch {
	case d >= -smallRange && d < smallRange:
		return codeset.DeltaSmall
	case d >= -mediumRange && d < mediumRange:
		return codeset.DeltaMedium
	default:
		return codeset.DeltaAbsolute
	}
}

// Encode writes r, class code included, and makes it the new reference.
func (s *State) Encode(w bitstream.Sink, r rune) {
	c := s.Class(r)
	codeset.DeltaClassCode(c).Write(w)

	switch c {
	case codeset.DeltaSmall:
		w.WriteBits(uint64(r-s.prev+smallRange), smallBits) //nolint: gosec
	case codeset.DeltaMedium:
		w.WriteBits(uint64(r-s.prev+mediumRange), mediumBits) //nolint: gosec
	default:
		w.WriteBits(uint64(r), absoluteBits) //nolint: gosec
	}
	s.prev = r
}

// Cost returns the bit length Encode would write for r.
func (s *State) Cost(r rune) int {
	c := s.Class(r)
	n := codeset.DeltaClassCode(c).Len

	switch c {
	case codeset.DeltaSmall:
		return n + smallBits
	case codeset.DeltaMedium:
		return n + mediumBits
	default:
		return n + absoluteBits
	}
}

// Decode reads the payload of a small, medium or absolute class whose class
// code has already been consumed, and makes the result the new reference.
func (s *State) Decode(r *bitstream.Reader, c codeset.DeltaClass) (rune, error) {
	var cp rune

	switch c {
	case codeset.DeltaSmall:
		v, err := r.ReadBits(smallBits)
		if err != nil {
			return 0, err
		}
		cp = s.prev + rune(v) - smallRange //nolint: gosec
	case codeset.DeltaMedium:
		v, err := r.ReadBits(mediumBits)
		if err != nil {
			return 0, err
		}
		cp = s.prev + rune(v) - mediumRange //nolint: gosec
	case codeset.DeltaAbsolute:
		v, err := r.ReadBits(absoluteBits)
		if err != nil {
			return 0, err
		}
		cp = rune(v) //nolint: gosec
	default:
		return 0, fmt.Errorf("%w: delta class %d carries no code point", errs.ErrCorruptStream, c)
	}

	if !utf8.ValidRune(cp) {
		return 0, fmt.Errorf("%w: code point %#x", errs.ErrCorruptStream, cp)
	}
	s.prev = cp

	return cp, nil
}

// WriteLiteral writes an ASCII byte inside the Delta set without touching the
// reference rune.
func WriteLiteral(w bitstream.Sink, b byte) {
	codeset.DeltaClassCode(codeset.DeltaLiteral).Write(w)
	w.WriteBits(uint64(b), literalBits)
}

// ReadLiteral reads the payload of a literal class.
func ReadLiteral(r *bitstream.Reader) (byte, error) {
	v, err := r.ReadBits(literalBits)

	return byte(v), err
}
