package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/shox/errs"
)

type (
	CompressionType uint8
	Preset          uint8
	PatternKind     uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone passes bytes through unchanged.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
	CompressionShox CompressionType = 0x5 // CompressionShox represents the shox short-string codec.
)

const (
	PresetDefault Preset = iota // PresetDefault favors general text with some JSON and markup.
	PresetJSON                  // PresetJSON favors JSON key/value punctuation.
	PresetURL                   // PresetURL favors URL schemes and host suffixes.
	PresetMarkup                // PresetMarkup favors HTML/XML tags and attributes.
)

// Pattern kinds, listed in matcher priority order.
const (
	PatternTimestampMillis PatternKind = iota + 1
	PatternTimestamp
	PatternDate
	PatternTime
	PatternUUID
	PatternPhone
	PatternRepeat
	PatternDigitRun
	PatternBackRef
	PatternFreqSeq
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionShox:
		return "Shox"
	default:
		return "Unknown"
	}
}

// ParseCompression looks up a compression type by its case-insensitive name.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	case "shox":
		return CompressionShox, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, name)
	}
}

func (p Preset) String() string {
	switch p {
	case PresetDefault:
		return "default"
	case PresetJSON:
		return "json"
	case PresetURL:
		return "url"
	case PresetMarkup:
		return "markup"
	default:
		return "unknown"
	}
}

// Valid reports whether p names a known preset.
func (p Preset) Valid() bool {
	return p <= PresetMarkup
}

// ParsePreset looks up a preset by its case-insensitive name.
// The empty string selects PresetDefault.
func ParsePreset(name string) (Preset, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return PresetDefault, nil
	case "json":
		return PresetJSON, nil
	case "url":
		return PresetURL, nil
	case "markup", "html", "xml":
		return PresetMarkup, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownPreset, name)
	}
}

func (k PatternKind) String() string {
	switch k {
	case PatternTimestampMillis:
		return "TimestampMillis"
	case PatternTimestamp:
		return "Timestamp"
	case PatternDate:
		return "Date"
	case PatternTime:
		return "Time"
	case PatternUUID:
		return "UUID"
	case PatternPhone:
		return "Phone"
	case PatternRepeat:
		return "Repeat"
	case PatternDigitRun:
		return "DigitRun"
	case PatternBackRef:
		return "BackRef"
	case PatternFreqSeq:
		return "FreqSeq"
	default:
		return "Unknown"
	}
}
