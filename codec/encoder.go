package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/shox/errs"
	"github.com/arloliu/shox/format"
	"github.com/arloliu/shox/internal/bitstream"
	"github.com/arloliu/shox/internal/codeset"
	"github.com/arloliu/shox/internal/pattern"
	"github.com/arloliu/shox/internal/unidelta"
)

// capsLockRun is the shortest run of upper-case letters that locks Upper
// instead of shifting each letter.
const capsLockRun = 3

// Encoder compresses short strings. It is immutable after construction and
// safe for concurrent use; every call owns its own bit writer and state.
type Encoder struct {
	cfg     *Config
	matcher *pattern.Matcher
	decoder *Decoder // round-trip check only
}

// NewEncoder creates an Encoder with the given options.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	mcfg, err := cfg.matcherConfig()
	if err != nil {
		return nil, err
	}

	e := &Encoder{cfg: cfg, matcher: pattern.NewMatcher(mcfg)}
	if cfg.roundTrip {
		e.decoder = &Decoder{cfg: cfg, seqs: mcfg.Sequences}
	}

	return e, nil
}

// Compress encodes s and returns the payload with the UTF-8 length of s.
// Invalid UTF-8, which includes encoded surrogates, is rejected with
// errs.ErrInvalidInput before anything is encoded.
func (e *Encoder) Compress(s string) ([]byte, int, error) {
	if !utf8.ValidString(s) {
		return nil, 0, fmt.Errorf("%w: text is not valid UTF-8", errs.ErrInvalidInput)
	}

	payload, err := e.compress(s, nil)
	if err != nil {
		return nil, 0, err
	}

	return payload, len(s), nil
}

// CompressRunes encodes a sequence of code points. Surrogates and values
// outside the Unicode range are rejected with errs.ErrInvalidInput.
func (e *Encoder) CompressRunes(rs []rune) ([]byte, int, error) {
	buf := make([]byte, 0, len(rs))
	for i, r := range rs {
		if !utf8.ValidRune(r) {
			return nil, 0, fmt.Errorf("%w: invalid scalar value %#x at index %d", errs.ErrInvalidInput, r, i)
		}
		buf = utf8.AppendRune(buf, r)
	}

	return e.Compress(string(buf))
}

// CompressASCII encodes a byte sequence that must be 7-bit ASCII.
func (e *Encoder) CompressASCII(b []byte) ([]byte, int, error) {
	for i, c := range b {
		if c >= utf8.RuneSelf {
			return nil, 0, fmt.Errorf("%w: non-ASCII byte %#x at offset %d", errs.ErrInvalidInput, c, i)
		}
	}

	return e.Compress(string(b))
}

// CompressWithStats behaves like Compress and also reports how the payload
// was built.
func (e *Encoder) CompressWithStats(s string) ([]byte, Stats, error) {
	if !utf8.ValidString(s) {
		return nil, Stats{}, fmt.Errorf("%w: text is not valid UTF-8", errs.ErrInvalidInput)
	}

	stats := Stats{OriginalLength: len(s), Patterns: make(map[format.PatternKind]int)}
	payload, err := e.compress(s, &stats)
	if err != nil {
		return nil, Stats{}, err
	}
	stats.CompressedLength = len(payload)

	return payload, stats, nil
}

// state is everything the encoder and decoder carry between symbols.
type state struct {
	set   codeset.Set
	delta unidelta.State
}

func initialState() state {
	return state{set: codeset.Lower}
}

func (e *Encoder) compress(in string, stats *Stats) ([]byte, error) {
	w := bitstream.NewWriter()
	st := initialState()

	var cands []pattern.Match
	for pos := 0; pos < len(in); {
		var (
			m  pattern.Match
			ok bool
		)
		m, ok, cands = e.choose(in, pos, st, cands)
		if ok {
			writeMatch(w, st.set, m, in, pos)
			stats.addPattern(m.Kind)
			pos += m.Len

			continue
		}

		pos = plainStep(w, &st, in, pos, stats)
	}

	codeset.TerminatorCode(st.set).Write(w)
	if stats != nil {
		stats.Bits = w.Len()
	}
	payload := w.Finish()

	if e.decoder != nil {
		out, err := e.decoder.Decompress(payload, len(in))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrRoundTripMismatch, err)
		}
		if out != in {
			return nil, fmt.Errorf("%w: decoded %d bytes differ from input", errs.ErrRoundTripMismatch, len(out))
		}
	}

	return payload, nil
}

// choose returns the candidate at pos with the largest saving over plain
// encoding of the same span. A zero saving still wins; equal savings keep the
// earlier candidate in matcher priority order.
func (e *Encoder) choose(in string, pos int, st state, buf []pattern.Match) (pattern.Match, bool, []pattern.Match) {
	cands := e.matcher.Candidates(in, pos, buf[:0])

	var (
		best       pattern.Match
		bestSaving = -1
		counter    bitstream.Counter
	)
	for _, m := range cands {
		counter.Reset()
		writeMatch(&counter, st.set, m, in, pos)
		saving := plainCost(in, pos, pos+m.Len, st) - counter.Len()
		if saving > bestSaving {
			best, bestSaving = m, saving
		}
	}

	return best, bestSaving >= 0, cands
}

func writeMatch(w bitstream.Sink, from codeset.Set, m pattern.Match, in string, pos int) {
	if m.Kind == format.PatternBackRef {
		codeset.BackRefCode(from).Write(w)
	} else {
		codeset.SpecialCode(from, m.Special()).Write(w)
	}
	m.WritePayload(w, in, pos)
}

// plainCost prices in[from:to] encoded one rune at a time, starting from st.
func plainCost(in string, from, to int, st state) int {
	var counter bitstream.Counter
	for pos := from; pos < to; {
		pos = plainStep(&counter, &st, in, pos, nil)
	}

	return counter.Len()
}

// plainStep encodes the rune at pos, switching sets as needed, and returns the
// position after it.
func plainStep(w bitstream.Sink, st *state, in string, pos int, stats *Stats) int {
	r, size := utf8.DecodeRuneInString(in[pos:])
	next := pos + size

	if !codeset.InTable(r) {
		if st.set != codeset.Delta {
			transition(w, st, codeset.Delta)
		}
		st.delta.Encode(w, r)
		if stats != nil {
			stats.DeltaRunes++
		}

		return next
	}

	switch st.set {
	case codeset.Lower:
		fromLower(w, st, in, pos, r)
	case codeset.Upper:
		fromUpper(w, st, r)
	case codeset.Digit:
		fromDigit(w, st, in, pos, r)
	case codeset.Delta:
		fromDelta(w, st, in, pos, r)
	}

	return next
}

func fromLower(w bitstream.Sink, st *state, in string, pos int, r rune) {
	switch {
	case isLower(r) || r == ' ':
		emit(w, codeset.Lower, r)
	case isUpper(r):
		if upperRun(in, pos) >= capsLockRun {
			transition(w, st, codeset.Upper)
		} else {
			codeset.Shift().Write(w)
		}
		emit(w, codeset.Upper, r)
	case isDigit(r):
		enterDigit(w, st, r)
	default:
		oneShot(w, st.set, r)
	}
}

func fromUpper(w bitstream.Sink, st *state, r rune) {
	switch {
	case isUpper(r) || r == ' ':
		emit(w, codeset.Upper, r)
	case isLower(r):
		transition(w, st, codeset.Lower)
		emit(w, codeset.Lower, r)
	case isDigit(r):
		enterDigit(w, st, r)
	default:
		oneShot(w, st.set, r)
	}
}

func fromDigit(w bitstream.Sink, st *state, in string, pos int, r rune) {
	// a space before a word costs the same in Lower and leaves a better state
	if r == ' ' && pos+1 < len(in) && isLetter(rune(in[pos+1])) {
		transition(w, st, codeset.Lower)
		emit(w, codeset.Lower, r)

		return
	}

	if code, ok := codeset.Lookup(codeset.Digit, r); ok {
		code.Write(w)
		return
	}

	if isLetter(r) {
		transition(w, st, codeset.Lower)
		fromLower(w, st, in, pos, r)

		return
	}

	oneShot(w, st.set, r)
}

func fromDelta(w bitstream.Sink, st *state, in string, pos int, r rune) {
	// keep the delta window when non-table text resumes right after r
	if next, _ := utf8.DecodeRuneInString(in[pos+1:]); pos+1 < len(in) && !codeset.InTable(next) {
		if code, ok := oneShotCode(codeset.Delta, r); ok && code.Len < unidelta.LiteralCost {
			code.Write(w)
		} else {
			unidelta.WriteLiteral(w, byte(r))
		}

		return
	}

	switch {
	case isLetter(r) || r == ' ':
		transition(w, st, codeset.Lower)
		fromLower(w, st, in, pos, r)
	case isDigit(r):
		enterDigit(w, st, r)
	default:
		oneShot(w, st.set, r)
	}
}

func enterDigit(w bitstream.Sink, st *state, r rune) {
	transition(w, st, codeset.Digit)
	emit(w, codeset.Digit, r)
}

// oneShot writes r through a one-shot Number or Symbol switch, leaving the
// sticky set unchanged.
func oneShot(w bitstream.Sink, from codeset.Set, r rune) {
	code, ok := oneShotCode(from, r)
	if !ok {
		panic(fmt.Sprintf("codec: rune %q has no one-shot code", r))
	}
	code.Write(w)
}

// oneShotCode returns the cheaper of the Number and Symbol one-shot codes for
// r, preferring Number on ties. Digits are excluded since a digit makes
// Number sticky.
func oneShotCode(from codeset.Set, r rune) (codeset.Code, bool) {
	esc := codeset.Escape(from)

	var (
		best  codeset.Code
		found bool
	)
	if c, ok := codeset.Lookup(codeset.Digit, r); ok && !isDigit(r) {
		best = esc.Append(codeset.HorizontalCode(codeset.HNumber)).Append(c)
		found = true
	}
	if c, ok := codeset.Lookup(codeset.Symbol, r); ok {
		sym := esc.Append(codeset.HorizontalCode(codeset.HSymbol)).Append(c)
		if !found || sym.Len < best.Len {
			best = sym
			found = true
		}
	}

	return best, found
}

func transition(w bitstream.Sink, st *state, to codeset.Set) {
	code, ok := codeset.Transition(st.set, to)
	if !ok {
		panic(fmt.Sprintf("codec: no transition from %s to %s", st.set, to))
	}
	code.Write(w)
	st.set = to
}

func emit(w bitstream.Sink, set codeset.Set, r rune) {
	code, ok := codeset.Lookup(set, r)
	if !ok {
		panic(fmt.Sprintf("codec: rune %q not in %s", r, set))
	}
	code.Write(w)
}

func upperRun(in string, pos int) int {
	n := 0
	for pos+n < len(in) && isUpper(rune(in[pos+n])) {
		n++
	}

	return n
}

func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isLower(r) || isUpper(r) }
