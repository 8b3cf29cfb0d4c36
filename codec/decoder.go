package codec

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/shox/errs"
	"github.com/arloliu/shox/internal/bitstream"
	"github.com/arloliu/shox/internal/codeset"
	"github.com/arloliu/shox/internal/pattern"
	"github.com/arloliu/shox/internal/pool"
	"github.com/arloliu/shox/internal/unidelta"
)

// MinBufferSize is the smallest output buffer the decoder preallocates. It is
// not a lower bound on the size hint: any hint at least as large as the
// decoded text succeeds.
const MinBufferSize = 44

// Decoder decompresses payloads produced by an Encoder with the same preset.
// It is immutable and safe for concurrent use.
type Decoder struct {
	cfg  *Config
	seqs *pattern.Sequences
}

// NewDecoder creates a Decoder. Only WithPreset affects decoding.
func NewDecoder(opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	seqs, err := pattern.SequencesFor(cfg.preset)
	if err != nil {
		return nil, err
	}

	return &Decoder{cfg: cfg, seqs: seqs}, nil
}

// Decompress decodes payload into a string of at most sizeHint bytes.
//
// The terminator alone ends decoding, so any hint at least as large as the
// text works. A negative hint is errs.ErrInvalidInput, a text longer than the
// hint is errs.ErrBufferTooSmall, and a payload without terminator is
// errs.ErrTruncatedStream.
func (d *Decoder) Decompress(payload []byte, sizeHint int) (string, error) {
	var s string
	err := d.decode(payload, sizeHint, func(b []byte) {
		s = string(b)
	})

	return s, err
}

// DecompressBytes behaves like Decompress and returns the UTF-8 bytes.
func (d *Decoder) DecompressBytes(payload []byte, sizeHint int) ([]byte, error) {
	var out []byte
	err := d.decode(payload, sizeHint, func(b []byte) {
		out = make([]byte, len(b))
		copy(out, b)
	})

	return out, err
}

func (d *Decoder) decode(payload []byte, sizeHint int, take func([]byte)) error {
	if sizeHint < 0 {
		return fmt.Errorf("%w: negative size hint %d", errs.ErrInvalidInput, sizeHint)
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	buf.Grow(min(sizeHint, max(MinBufferSize, 4*len(payload))))

	dec := decodeRun{
		r:    bitstream.NewReader(payload),
		out:  output{buf: buf, limit: sizeHint},
		st:   initialState(),
		seqs: d.seqs,
	}

	if err := dec.run(); err != nil {
		if errors.Is(err, errs.ErrUnexpectedEndOfStream) {
			return fmt.Errorf("%w: %w", errs.ErrTruncatedStream, err)
		}

		return err
	}

	if !utf8.Valid(buf.B) {
		return fmt.Errorf("%w: decoded text is not valid UTF-8", errs.ErrCorruptStream)
	}
	take(buf.B)

	return nil
}

// decodeRun is the state of one Decompress call.
type decodeRun struct {
	r    *bitstream.Reader
	out  output
	st   state
	seqs *pattern.Sequences
}

func (d *decodeRun) run() error {
	for {
		var (
			done bool
			err  error
		)
		if d.st.set == codeset.Delta {
			done, err = d.deltaSymbol()
		} else {
			done, err = d.tableSymbol()
		}
		if err != nil || done {
			return err
		}
	}
}

func (d *decodeRun) tableSymbol() (bool, error) {
	e, err := codeset.Decode(d.st.set, d.r)
	if err != nil {
		return false, err
	}

	if e.Special == codeset.Switch {
		return d.switched()
	}

	return false, d.out.appendRune(e.Rune)
}

func (d *decodeRun) deltaSymbol() (bool, error) {
	c, err := codeset.DecodeDeltaClass(d.r)
	if err != nil {
		return false, err
	}

	switch c {
	case codeset.DeltaEscape:
		return d.switched()
	case codeset.DeltaLiteral:
		b, err := unidelta.ReadLiteral(d.r)
		if err != nil {
			return false, err
		}

		return false, d.out.appendByte(b)
	default:
		cp, err := d.st.delta.Decode(d.r, c)
		if err != nil {
			return false, err
		}

		return false, d.out.appendRune(cp)
	}
}

// switched handles the horizontal code after a switch or a Delta escape.
func (d *decodeRun) switched() (bool, error) {
	h, err := codeset.DecodeHorizontal(d.r)
	if err != nil {
		return false, err
	}

	switch h {
	case codeset.HAlpha:
		if d.st.set != codeset.Lower {
			d.st.set = codeset.Lower
			return false, nil
		}

		return false, d.shifted()
	case codeset.HNumber:
		e, err := codeset.Decode(codeset.Digit, d.r)
		if err != nil {
			return false, err
		}
		if e.Special != codeset.NoSpecial {
			return false, fmt.Errorf("%w: switch right after number switch", errs.ErrCorruptStream)
		}
		if isDigit(e.Rune) {
			d.st.set = codeset.Digit
		}

		return false, d.out.appendRune(e.Rune)
	case codeset.HSymbol:
		return d.symbol()
	case codeset.HBackRef:
		length, dist, err := pattern.ReadBackRef(d.r)
		if err != nil {
			return false, err
		}

		return false, d.out.copyBack(dist, length)
	default: // HDelta
		d.st.set = codeset.Delta
		return false, nil
	}
}

// shifted reads one Upper slot after a shift from Lower. A second switch to
// Alpha inside the shift locks Upper.
func (d *decodeRun) shifted() error {
	e, err := codeset.Decode(codeset.Upper, d.r)
	if err != nil {
		return err
	}

	if e.Special != codeset.Switch {
		return d.out.appendRune(e.Rune)
	}

	h, err := codeset.DecodeHorizontal(d.r)
	if err != nil {
		return err
	}
	if h != codeset.HAlpha {
		return fmt.Errorf("%w: horizontal code %d inside shift", errs.ErrCorruptStream, h)
	}
	d.st.set = codeset.Upper

	return nil
}

func (d *decodeRun) symbol() (bool, error) {
	e, err := codeset.Decode(codeset.Symbol, d.r)
	if err != nil {
		return false, err
	}

	switch e.Special {
	case codeset.End:
		return true, nil
	case codeset.Template:
		var scratch [64]byte
		text, _, err := pattern.ExpandTemplate(d.r, scratch[:0])
		if err != nil {
			return false, err
		}

		return false, d.out.appendBytes(text)
	case codeset.Repeat:
		n, err := pattern.ReadRepeat(d.r)
		if err != nil {
			return false, err
		}

		return false, d.out.repeatLast(n)
	case codeset.FreqSeq:
		s, err := pattern.ReadSequence(d.r, d.seqs)
		if err != nil {
			return false, err
		}

		return false, d.out.appendString(s)
	default:
		return false, d.out.appendRune(e.Rune)
	}
}

// output appends decoded text to a buffer whose length never exceeds limit.
type output struct {
	buf   *pool.ByteBuffer
	limit int
}

func (o *output) reserve(n int) error {
	if !o.buf.GrowCapped(n, o.limit) {
		return fmt.Errorf("%w: need more than %d bytes", errs.ErrBufferTooSmall, o.limit)
	}

	return nil
}

func (o *output) appendByte(b byte) error {
	if err := o.reserve(1); err != nil {
		return err
	}
	o.buf.B = append(o.buf.B, b)

	return nil
}

func (o *output) appendRune(r rune) error {
	if err := o.reserve(utf8.RuneLen(r)); err != nil {
		return err
	}
	o.buf.B = utf8.AppendRune(o.buf.B, r)

	return nil
}

func (o *output) appendBytes(b []byte) error {
	if err := o.reserve(len(b)); err != nil {
		return err
	}
	o.buf.B = append(o.buf.B, b...)

	return nil
}

func (o *output) appendString(s string) error {
	if err := o.reserve(len(s)); err != nil {
		return err
	}
	o.buf.B = append(o.buf.B, s...)

	return nil
}

// repeatLast appends n more copies of the last decoded rune.
func (o *output) repeatLast(n int) error {
	r, size := utf8.DecodeLastRune(o.buf.B)
	if size == 0 || r == utf8.RuneError && size == 1 {
		return fmt.Errorf("%w: repeat without a previous rune", errs.ErrCorruptStream)
	}
	if err := o.reserve(n * size); err != nil {
		return err
	}

	unit := o.buf.B[len(o.buf.B)-size:]
	for range n {
		o.buf.B = append(o.buf.B, unit...)
	}

	return nil
}

// copyBack appends length bytes starting dist bytes back. The ranges may
// overlap, in which case bytes written by this call are copied again.
func (o *output) copyBack(dist, length int) error {
	if dist > len(o.buf.B) {
		return fmt.Errorf("%w: back reference %d beyond %d decoded bytes", errs.ErrCorruptStream, dist, len(o.buf.B))
	}
	if err := o.reserve(length); err != nil {
		return err
	}

	start := len(o.buf.B) - dist
	for i := range length {
		o.buf.B = append(o.buf.B, o.buf.B[start+i])
	}

	return nil
}
