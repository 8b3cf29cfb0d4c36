package codec

import "github.com/arloliu/shox/format"

// Stats describes how one payload was built.
type Stats struct {
	// OriginalLength is the UTF-8 length of the input.
	OriginalLength int
	// CompressedLength is the payload length in bytes.
	CompressedLength int
	// Bits is the payload length in bits before padding.
	Bits int
	// Patterns counts committed matches per kind.
	Patterns map[format.PatternKind]int
	// DeltaRunes counts runes written through the Delta set.
	DeltaRunes int
}

// Ratio returns CompressedLength / OriginalLength, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalLength == 0 {
		return 0
	}

	return float64(s.CompressedLength) / float64(s.OriginalLength)
}

func (s *Stats) addPattern(k format.PatternKind) {
	if s == nil {
		return
	}
	s.Patterns[k]++
}
