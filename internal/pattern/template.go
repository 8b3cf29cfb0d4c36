package pattern

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/shox/errs"
	"github.com/arloliu/shox/format"
	"github.com/arloliu/shox/internal/bitstream"
	"github.com/arloliu/shox/internal/codeset"
)

// Template is a fixed-width layout. In Layout, 'd' stands for a decimal digit,
// 'h' for a hex nibble, and every other byte must appear literally.
type Template struct {
	Kind    format.PatternKind
	Layout  string
	digits  int
	nibbles int
}

const (
	templateIDBits = 3
	digitRunID     = 6

	// MinDigitRun and MaxDigitRun bound the digits one digit-run code carries.
	MinDigitRun = 5
	MaxDigitRun = 19
)

var templates = [...]Template{
	newTemplate(format.PatternTimestampMillis, "dddd-dd-ddTdd:dd:dd.ddd"),
	newTemplate(format.PatternTimestamp, "dddd-dd-ddTdd:dd:dd"),
	newTemplate(format.PatternDate, "dddd-dd-dd"),
	newTemplate(format.PatternTime, "dd:dd:dd"),
	newTemplate(format.PatternUUID, "hhhhhhhh-hhhh-hhhh-hhhh-hhhhhhhhhhhh"),
	newTemplate(format.PatternPhone, "(ddd) ddd-dddd"),
}

var pow10 [MaxDigitRun + 1]uint64

func init() {
	pow10[0] = 1
	for i := 1; i < len(pow10); i++ {
		pow10[i] = pow10[i-1] * 10
	}
}

func newTemplate(kind format.PatternKind, layout string) Template {
	t := Template{Kind: kind, Layout: layout}
	for i := 0; i < len(layout); i++ {
		switch layout[i] {
		case 'd':
			t.digits++
		case 'h':
			t.nibbles++
		}
	}

	return t
}

// Templates returns the structural templates in priority order.
func Templates() []Template {
	return templates[:]
}

// decimalBits is the width of an integer holding k decimal digits.
func decimalBits(k int) int {
	return bits.Len64(pow10[k] - 1)
}

// match reports whether in[pos:] starts with the layout. For hex layouts all
// letters must share one case; upper reports which.
func (t *Template) match(in string, pos int) (upper bool, ok bool) {
	if len(in)-pos < len(t.Layout) {
		return false, false
	}

	var lower bool
	for i := 0; i < len(t.Layout); i++ {
		c := in[pos+i]
		switch t.Layout[i] {
		case 'd':
			if !isDigit(c) {
				return false, false
			}
		case 'h':
			switch {
			case isDigit(c):
			case c >= 'a' && c <= 'f':
				lower = true
			case c >= 'A' && c <= 'F':
				upper = true
			default:
				return false, false
			}
		default:
			if c != t.Layout[i] {
				return false, false
			}
		}
	}

	if lower && upper {
		return false, false
	}

	return upper, true
}

// writeFields writes the template id and the variable positions of
// in[pos:pos+len(Layout)]: the case bit and nibbles first, then all decimal
// digits as a single integer.
func (t *Template) writeFields(w bitstream.Sink, id int, in string, pos int, upper bool) {
	w.WriteBits(uint64(id), templateIDBits) //nolint: gosec

	if t.nibbles > 0 {
		if upper {
			w.WriteBits(1, 1)
		} else {
			w.WriteBits(0, 1)
		}
		for i := 0; i < len(t.Layout); i++ {
			if t.Layout[i] == 'h' {
				w.WriteBits(uint64(hexValue(in[pos+i])), 4)
			}
		}
	}

	if t.digits > 0 {
		var v uint64
		for i := 0; i < len(t.Layout); i++ {
			if t.Layout[i] == 'd' {
				v = v*10 + uint64(in[pos+i]-'0')
			}
		}
		w.WriteBits(v, decimalBits(t.digits))
	}
}

// expand reads the variable positions written by writeFields and appends the
// reconstructed text to dst.
func (t *Template) expand(r *bitstream.Reader, dst []byte) ([]byte, error) {
	var (
		upper   bool
		nibbles [32]byte
		digits  [MaxDigitRun]byte
	)

	if t.nibbles > 0 {
		b, err := r.ReadBit()
		if err != nil {
			return dst, err
		}
		upper = b == 1
		for i := 0; i < t.nibbles; i++ {
			v, err := r.ReadBits(4)
			if err != nil {
				return dst, err
			}
			nibbles[i] = hexDigit(byte(v), upper)
		}
	}

	if t.digits > 0 {
		if err := readDecimal(r, digits[:t.digits]); err != nil {
			return dst, err
		}
	}

	var ni, di int
	for i := 0; i < len(t.Layout); i++ {
		switch t.Layout[i] {
		case 'd':
			dst = append(dst, digits[di])
			di++
		case 'h':
			dst = append(dst, nibbles[ni])
			ni++
		default:
			dst = append(dst, t.Layout[i])
		}
	}

	return dst, nil
}

// readDecimal reads a len(dst)-digit integer and writes it zero-padded into dst.
func readDecimal(r *bitstream.Reader, dst []byte) error {
	k := len(dst)
	v, err := r.ReadBits(decimalBits(k))
	if err != nil {
		return err
	}
	if v >= pow10[k] {
		return fmt.Errorf("%w: %d does not fit %d digits", errs.ErrCorruptStream, v, k)
	}

	for i := k - 1; i >= 0; i-- {
		dst[i] = byte('0' + v%10)
		v /= 10
	}

	return nil
}

func digitRunLen(in string, pos int) int {
	n := 0
	for pos+n < len(in) && n < MaxDigitRun && isDigit(in[pos+n]) {
		n++
	}

	return n
}

func writeDigitRun(w bitstream.Sink, in string, pos, n int) {
	w.WriteBits(digitRunID, templateIDBits)
	codeset.WriteCount(w, n-MinDigitRun)

	var v uint64
	for i := 0; i < n; i++ {
		v = v*10 + uint64(in[pos+i]-'0')
	}
	w.WriteBits(v, decimalBits(n))
}

// ExpandTemplate reads a template id and its fields, following a template
// special code, and appends the text to dst.
func ExpandTemplate(r *bitstream.Reader, dst []byte) ([]byte, format.PatternKind, error) {
	id, err := r.ReadBits(templateIDBits)
	if err != nil {
		return dst, 0, err
	}

	switch {
	case int(id) < len(templates):
		t := &templates[id]
		dst, err = t.expand(r, dst)

		return dst, t.Kind, err
	case id == digitRunID:
		c, err := codeset.ReadCount(r)
		if err != nil {
			return dst, 0, err
		}
		n := c + MinDigitRun
		if n > MaxDigitRun {
			return dst, 0, fmt.Errorf("%w: digit run of %d", errs.ErrCorruptStream, n)
		}

		var digits [MaxDigitRun]byte
		if err := readDecimal(r, digits[:n]); err != nil {
			return dst, 0, err
		}

		return append(dst, digits[:n]...), format.PatternDigitRun, nil
	default:
		return dst, 0, fmt.Errorf("%w: reserved template id %d", errs.ErrCorruptStream, id)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexValue(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

func hexDigit(v byte, upper bool) byte {
	const lowerDigits, upperDigits = "0123456789abcdef", "0123456789ABCDEF"
	if upper {
		return upperDigits[v]
	}

	return lowerDigits[v]
}
