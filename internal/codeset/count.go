package codeset

import "github.com/arloliu/shox/internal/bitstream"

// Counts (repeat lengths, back-reference lengths and distances, digit run
// lengths) use a class prefix followed by a fixed number of payload bits.
var (
	countClasses = newPrefixCode(1, 2, 3, 4, 4)
	countBits    = [...]int{2, 4, 7, 11, 16}
	countBase    = [...]int{0, 4, 20, 148, 2196}
)

// MaxCount is the largest value a count code can carry.
const MaxCount = 2196 + 1<<16 - 1

// WriteCount writes n, which must be in [0, MaxCount].
func WriteCount(w bitstream.Sink, n int) {
	c := countClass(n)
	countClasses.code(c).Write(w)
	w.WriteBits(uint64(n-countBase[c]), countBits[c]) //nolint: gosec
}

// CountCost returns the bit length of the count code for n.
func CountCost(n int) int {
	c := countClass(n)

	return countClasses.code(c).Len + countBits[c]
}

// ReadCount reads a count code.
func ReadCount(r *bitstream.Reader) (int, error) {
	c, err := countClasses.decode(r)
	if err != nil {
		return 0, err
	}

	v, err := r.ReadBits(countBits[c])
	if err != nil {
		return 0, err
	}

	return countBase[c] + int(v), nil //nolint: gosec
}

func countClass(n int) int {
	if n < 0 || n > MaxCount {
		panic("codeset: count out of range")
	}

	c := len(countBase) - 1
	for c > 0 && n < countBase[c] {
		c--
	}

	return c
}
