package shox

import (
	"fmt"
	"math"

	"github.com/arloliu/shox/errs"
)

// CompressValue compresses a dynamically typed value, such as a field decoded
// from JSON. It accepts string, []byte (ASCII only) and []rune; every other
// type, nil included, is errs.ErrInvalidInput.
func CompressValue(v any) ([]byte, int, error) {
	switch t := v.(type) {
	case string:
		return Compress(t)
	case []byte:
		return CompressASCII(t)
	case []rune:
		return CompressRunes(t)
	default:
		return nil, 0, fmt.Errorf("%w: cannot compress %T", errs.ErrInvalidInput, v)
	}
}

// DecompressValue decompresses with dynamically typed arguments. payload must
// be a []byte; sizeHint must be a non-negative integer of any integer type or
// an integral float64 as produced by encoding/json.
func DecompressValue(payload any, sizeHint any) (string, error) {
	b, ok := payload.([]byte)
	if !ok {
		return "", fmt.Errorf("%w: payload must be []byte, got %T", errs.ErrInvalidInput, payload)
	}

	n, err := SizeHint(sizeHint)
	if err != nil {
		return "", err
	}

	return Decompress(b, n)
}

// SizeHint converts a dynamically typed size hint to an int. It accepts every
// integer type and integral float64 values, all non-negative and at most
// math.MaxInt32.
func SizeHint(v any) (int, error) {
	var n int64

	switch t := v.(type) {
	case int:
		n = int64(t)
	case int8:
		n = int64(t)
	case int16:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case uint:
		if uint64(t) > math.MaxInt32 {
			return 0, sizeHintRangeError(v)
		}
		n = int64(t) //nolint: gosec
	case uint8:
		n = int64(t)
	case uint16:
		n = int64(t)
	case uint32:
		n = int64(t)
	case uint64:
		if t > math.MaxInt32 {
			return 0, sizeHintRangeError(v)
		}
		n = int64(t) //nolint: gosec
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) || math.IsNaN(t) {
			return 0, fmt.Errorf("%w: size hint %v is not an integer", errs.ErrInvalidInput, t)
		}
		if t > math.MaxInt32 {
			return 0, sizeHintRangeError(v)
		}
		n = int64(t)
	default:
		return 0, fmt.Errorf("%w: size hint must be an integer, got %T", errs.ErrInvalidInput, v)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: negative size hint %d", errs.ErrInvalidInput, n)
	}
	if n > math.MaxInt32 {
		return 0, sizeHintRangeError(v)
	}

	return int(n), nil
}

func sizeHintRangeError(v any) error {
	return fmt.Errorf("%w: size hint %v out of range", errs.ErrInvalidInput, v)
}
