// Package codeset holds the static code tables shared by the shox encoder and
// decoder.
//
// # Sets
//
// Four sets share one 28-slot vertical prefix code:
//
//   - Lower and Upper: space and the 26 letters ordered by English frequency.
//   - Digit: digits and the punctuation that usually surrounds numbers.
//   - Symbol: the remaining printable ASCII, tab, newline, carriage return and
//     the special codes (frequent sequence, template, repeat, terminator).
//
// Slot 0 of Lower, Upper and Digit is the switch code. A switch is followed by
// a horizontal code naming the target: Alpha, Symbol, Number, BackRef or Delta.
// Delta has its own class code whose escape class plays the role of the switch.
//
// Lower, Upper, Digit and Delta are sticky. Symbol is one-shot: one slot is
// read and the previous sticky set stays active. A Number switch becomes sticky
// only when its first slot is a decimal digit.
//
// All tables are built once at package initialization and never modified.
package codeset

// Set identifies a code set.
type Set uint8

const (
	Lower Set = iota
	Upper
	Digit
	Symbol
	Delta
	Terminator
)

func (s Set) String() string {
	switch s {
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	case Digit:
		return "Digit"
	case Symbol:
		return "Symbol"
	case Delta:
		return "Delta"
	case Terminator:
		return "Terminator"
	default:
		return "Unknown"
	}
}

// Sticky reports whether s stays active until an explicit switch.
func (s Set) Sticky() bool {
	return s == Lower || s == Upper || s == Digit || s == Delta
}

// Special marks slots that do not stand for a single character.
type Special uint8

const (
	NoSpecial Special = iota
	Switch
	FreqSeq
	Template
	Repeat
	End
)

// Entry is the meaning of one slot.
type Entry struct {
	Rune    rune
	Special Special
}

// Horizontal names the target of a switch.
type Horizontal uint8

const (
	HAlpha Horizontal = iota
	HSymbol
	HNumber
	HBackRef
	HDelta
)

// DeltaClass is the leading code of every symbol in the Delta set.
type DeltaClass uint8

const (
	DeltaSmall DeltaClass = iota
	DeltaMedium
	DeltaAbsolute
	DeltaLiteral
	DeltaEscape
)

// SlotCount is the number of slots in the vertical code.
const SlotCount = 28

var (
	vertical     = newPrefixCode(2, 3, 3, 4, 4, 4, 4, 4, 5, 5, 6, 6, 6, 7, 7, 7, 7, 7, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8)
	horizontal   = newPrefixCode(2, 2, 2, 3, 3)
	deltaClasses = newPrefixCode(1, 2, 3, 4, 4)
)

var (
	switchEntry = Entry{Special: Switch}

	slots [Symbol + 1][SlotCount]Entry
	index [Symbol + 1][128]int8
	// inTable marks runes that have a slot in at least one set
	inTable [128]bool
)

func init() {
	letters := []rune(" etaoinsrlcdhupmbgwfyvkqjxz")
	slots[Lower][0] = switchEntry
	slots[Upper][0] = switchEntry
	for i, r := range letters {
		slots[Lower][i+1] = Entry{Rune: r}
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		slots[Upper][i+1] = Entry{Rune: r}
	}

	slots[Digit][0] = switchEntry
	for i, r := range []rune(",.01925-/34678() =+$%#:_*@&") {
		slots[Digit][i+1] = Entry{Rune: r}
	}

	slots[Symbol] = [SlotCount]Entry{
		{Rune: '"'}, {Rune: '{'}, {Rune: '}'}, {Rune: '_'},
		{Rune: '<'}, {Rune: '>'}, {Rune: ':'}, {Rune: '\n'},
		{Special: FreqSeq}, {Special: Template},
		{Rune: '['}, {Rune: ']'}, {Rune: '\\'},
		{Rune: ';'}, {Rune: '\''}, {Rune: '\t'}, {Rune: '@'}, {Rune: '*'},
		{Rune: '&'}, {Rune: '?'}, {Rune: '!'}, {Rune: '^'}, {Rune: '|'},
		{Rune: '\r'}, {Rune: '~'}, {Rune: '`'},
		{Special: Repeat}, {Special: End},
	}

	for set := Lower; set <= Symbol; set++ {
		for r := range index[set] {
			index[set][r] = -1
		}
		for i, e := range slots[set] {
			if e.Special != NoSpecial {
				continue
			}
			if index[set][e.Rune] < 0 {
				index[set][e.Rune] = int8(i) //nolint: gosec
			}
			inTable[e.Rune] = true
		}
	}
}
