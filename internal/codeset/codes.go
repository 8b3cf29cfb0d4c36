package codeset

import (
	"fmt"

	"github.com/arloliu/shox/errs"
	"github.com/arloliu/shox/internal/bitstream"
)

// InTable reports whether r has a slot in Lower, Upper, Digit or Symbol.
// Every other rune goes through the Delta set.
func InTable(r rune) bool {
	return r >= 0 && r < 128 && inTable[r]
}

// Lookup returns the code of r within set. Only Lower, Upper, Digit and
// Symbol hold characters.
func Lookup(set Set, r rune) (Code, bool) {
	if set > Symbol || r < 0 || r >= 128 {
		return Code{}, false
	}

	i := index[set][r]
	if i < 0 {
		return Code{}, false
	}

	return vertical.code(int(i)), true
}

// Decode reads one slot of set and returns its entry.
func Decode(set Set, r *bitstream.Reader) (Entry, error) {
	if set > Symbol {
		return Entry{}, fmt.Errorf("%w: set %s has no slots", errs.ErrCorruptStream, set)
	}

	i, err := vertical.decode(r)
	if err != nil {
		return Entry{}, err
	}

	return slots[set][i], nil
}

// Slot returns the entry at slot i of set.
func Slot(set Set, i int) Entry {
	return slots[set][i]
}

// SlotCode returns the vertical code of slot i.
func SlotCode(i int) Code {
	return vertical.code(i)
}

// HorizontalCode returns the code that selects h after a switch.
func HorizontalCode(h Horizontal) Code {
	return horizontal.code(int(h))
}

// DecodeHorizontal reads a horizontal code.
func DecodeHorizontal(r *bitstream.Reader) (Horizontal, error) {
	h, err := horizontal.decode(r)

	return Horizontal(h), err //nolint: gosec
}

// DeltaClassCode returns the class code of c.
func DeltaClassCode(c DeltaClass) Code {
	return deltaClasses.code(int(c))
}

// DecodeDeltaClass reads a Delta class code.
func DecodeDeltaClass(r *bitstream.Reader) (DeltaClass, error) {
	c, err := deltaClasses.decode(r)

	return DeltaClass(c), err //nolint: gosec
}

// Escape returns the switch code of a sticky set.
func Escape(from Set) Code {
	if from == Delta {
		return DeltaClassCode(DeltaEscape)
	}

	return vertical.code(0)
}

// Shift returns the one-shot upper-case code. It is only valid from Lower.
func Shift() Code {
	return Escape(Lower).Append(HorizontalCode(HAlpha))
}

// Transition returns the code that moves the encoder from one sticky set to
// another, or into a one-shot Symbol or the Terminator.
//
// The code for Digit only makes the set sticky when the next slot written is
// a decimal digit. Moving to Upper from anywhere but Lower passes through Lower.
func Transition(from, to Set) (Code, bool) {
	if !from.Sticky() {
		return Code{}, false
	}
	if from == to {
		return Code{}, true
	}

	esc := Escape(from)
	switch to {
	case Lower:
		return esc.Append(HorizontalCode(HAlpha)), true
	case Upper:
		lock := Shift().Append(vertical.code(0)).Append(HorizontalCode(HAlpha))
		if from == Lower {
			return lock, true
		}

		return esc.Append(HorizontalCode(HAlpha)).Append(lock), true
	case Digit:
		return esc.Append(HorizontalCode(HNumber)), true
	case Symbol:
		return esc.Append(HorizontalCode(HSymbol)), true
	case Delta:
		return esc.Append(HorizontalCode(HDelta)), true
	case Terminator:
		return TerminatorCode(from), true
	default:
		return Code{}, false
	}
}

// TransitionCost returns the length in bits of Transition(from, to), or -1
// when no such transition exists.
func TransitionCost(from, to Set) int {
	c, ok := Transition(from, to)
	if !ok {
		return -1
	}

	return c.Len
}

// SpecialCode returns the code of a Symbol special as written from a sticky set.
func SpecialCode(from Set, sp Special) Code {
	i := specialSlot(sp)

	return Escape(from).Append(HorizontalCode(HSymbol)).Append(vertical.code(i))
}

// TerminatorCode returns the end-of-payload code as written from a sticky set.
func TerminatorCode(from Set) Code {
	return SpecialCode(from, End)
}

// BackRefCode returns the back-reference prefix as written from a sticky set.
func BackRefCode(from Set) Code {
	return Escape(from).Append(HorizontalCode(HBackRef))
}

func specialSlot(sp Special) int {
	for i, e := range slots[Symbol] {
		if e.Special == sp {
			return i
		}
	}
	panic(fmt.Sprintf("codeset: special %d has no symbol slot", sp))
}
