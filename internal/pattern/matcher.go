// Package pattern finds spans of input that have a cheaper encoding than one
// slot per character: fixed-layout templates (timestamps, dates, times, UUIDs,
// phone numbers), runs of a repeated rune, digit runs, back-references into
// the text already encoded, and frequent multi-byte sequences.
//
// The matcher only reports candidates. Pricing them against plain encoding and
// choosing one is the encoder's job.
package pattern

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/shox/errs"
	"github.com/arloliu/shox/format"
	"github.com/arloliu/shox/internal/bitstream"
	"github.com/arloliu/shox/internal/codeset"
)

const (
	// MinRepeat is the shortest run a repeat code can carry.
	MinRepeat = 3
	// MinBackRef is the shortest back-reference in bytes.
	MinBackRef = 5
	// MaxBackRefWindow is the farthest a back-reference can reach.
	MaxBackRefWindow = codeset.MaxCount + 1
	// DefaultBackRefWindow is the search window used unless configured otherwise.
	DefaultBackRefWindow = 2048
)

// Match is one candidate encoding of in[pos:pos+Len].
type Match struct {
	Kind format.PatternKind
	Len  int // bytes consumed

	template int  // index into templates
	upper    bool // hex case of a UUID
	count    int  // repeat runes, digit-run digits or back-reference bytes
	distance int  // back-reference distance in bytes
	seq      int  // frequent sequence index
}

// Special returns the Symbol special that introduces the match, or NoSpecial
// for a back-reference, which has its own horizontal code.
func (m Match) Special() codeset.Special {
	switch m.Kind {
	case format.PatternRepeat:
		return codeset.Repeat
	case format.PatternFreqSeq:
		return codeset.FreqSeq
	case format.PatternBackRef:
		return codeset.NoSpecial
	default:
		return codeset.Template
	}
}

// WritePayload writes the bits that follow the match's introducing code.
func (m Match) WritePayload(w bitstream.Sink, in string, pos int) {
	switch m.Kind {
	case format.PatternRepeat:
		codeset.WriteCount(w, m.count-MinRepeat)
	case format.PatternDigitRun:
		writeDigitRun(w, in, pos, m.count)
	case format.PatternBackRef:
		codeset.WriteCount(w, m.count-MinBackRef)
		codeset.WriteCount(w, m.distance-1)
	case format.PatternFreqSeq:
		w.WriteBits(uint64(m.seq), seqIndexBits) //nolint: gosec
	default:
		templates[m.template].writeFields(w, m.template, in, pos, m.upper)
	}
}

// Config selects which candidate kinds a Matcher reports.
type Config struct {
	Templates bool // structural templates, digit runs and repeats
	BackRefs  bool
	FreqSeqs  bool
	Window    int // back-reference window in bytes
	Sequences *Sequences
}

// Matcher reports candidates at a cursor. It holds no per-call state and is
// safe for concurrent use.
type Matcher struct {
	cfg Config
}

// NewMatcher creates a Matcher. A zero or oversized window is clamped to the
// valid range.
func NewMatcher(cfg Config) *Matcher {
	if cfg.Window <= 0 {
		cfg.Window = DefaultBackRefWindow
	}
	cfg.Window = min(cfg.Window, MaxBackRefWindow)
	if cfg.Sequences == nil {
		cfg.FreqSeqs = false
	}

	return &Matcher{cfg: cfg}
}

// Candidates appends every candidate starting at in[pos:] to dst, in priority
// order, and returns the extended slice.
func (m *Matcher) Candidates(in string, pos int, dst []Match) []Match {
	if m.cfg.Templates {
		for i := range templates {
			t := &templates[i]
			if upper, ok := t.match(in, pos); ok {
				dst = append(dst, Match{Kind: t.Kind, Len: len(t.Layout), template: i, upper: upper})
			}
		}
		if mt, ok := matchRepeat(in, pos); ok {
			dst = append(dst, mt)
		}
		if n := digitRunLen(in, pos); n >= MinDigitRun {
			dst = append(dst, Match{Kind: format.PatternDigitRun, Len: n, count: n})
		}
	}

	if m.cfg.BackRefs {
		if mt, ok := m.matchBackRef(in, pos); ok {
			dst = append(dst, mt)
		}
	}

	if m.cfg.FreqSeqs {
		for i, seq := range m.cfg.Sequences {
			if seq != "" && strings.HasPrefix(in[pos:], seq) {
				dst = append(dst, Match{Kind: format.PatternFreqSeq, Len: len(seq), seq: i})
			}
		}
	}

	return dst
}

// matchRepeat matches runes equal to the one just before pos.
func matchRepeat(in string, pos int) (Match, bool) {
	if pos == 0 {
		return Match{}, false
	}

	prev, size := utf8.DecodeLastRuneInString(in[:pos])
	unit := in[pos-size : pos]

	n, end := 0, pos
	for n < codeset.MaxCount+MinRepeat && strings.HasPrefix(in[end:], unit) {
		n++
		end += size
	}
	if n < MinRepeat || prev == utf8.RuneError && size == 1 {
		return Match{}, false
	}

	return Match{Kind: format.PatternRepeat, Len: end - pos, count: n}, true
}

// matchBackRef finds the longest earlier occurrence of the bytes at pos within
// the window, preferring the nearest on ties. The match may overlap pos and
// always ends on a rune boundary.
func (m *Matcher) matchBackRef(in string, pos int) (Match, bool) {
	limit := min(len(in)-pos, codeset.MaxCount+MinBackRef)
	if limit < MinBackRef {
		return Match{}, false
	}

	bestLen, bestDist := 0, 0
	for j := pos - 1; j >= 0 && pos-j <= m.cfg.Window; j-- {
		if in[j] != in[pos] {
			continue
		}

		n := 1
		for n < limit && in[j+n] == in[pos+n] {
			n++
		}
		if n > bestLen {
			bestLen, bestDist = n, pos-j
			if n == limit {
				break
			}
		}
	}

	for bestLen > 0 && pos+bestLen < len(in) && !utf8.RuneStart(in[pos+bestLen]) {
		bestLen--
	}
	if bestLen < MinBackRef {
		return Match{}, false
	}

	return Match{Kind: format.PatternBackRef, Len: bestLen, count: bestLen, distance: bestDist}, true
}

// ReadRepeat reads the payload of a repeat code and returns the rune count.
func ReadRepeat(r *bitstream.Reader) (int, error) {
	n, err := codeset.ReadCount(r)

	return n + MinRepeat, err
}

// ReadBackRef reads the payload of a back-reference code.
func ReadBackRef(r *bitstream.Reader) (length, distance int, err error) {
	n, err := codeset.ReadCount(r)
	if err != nil {
		return 0, 0, err
	}
	d, err := codeset.ReadCount(r)
	if err != nil {
		return 0, 0, err
	}

	return n + MinBackRef, d + 1, nil
}

// ReadSequence reads the payload of a frequent-sequence code.
func ReadSequence(r *bitstream.Reader, seqs *Sequences) (string, error) {
	i, err := r.ReadBits(seqIndexBits)
	if err != nil {
		return "", err
	}

	s := seqs[i]
	if s == "" {
		return "", fmt.Errorf("%w: empty frequent sequence %d", errs.ErrCorruptStream, i)
	}

	return s, nil
}
