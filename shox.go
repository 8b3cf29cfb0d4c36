// Package shox compresses very short strings, from a few bytes to a few
// hundred, where general-purpose compressors lose to their own headers.
//
// A payload is a self-terminating bit stream. It packs text through small
// context-dependent prefix codes (lower case, upper case, digits, symbols),
// fixed-layout templates for timestamps, dates, times, UUIDs and phone numbers,
// back-references into the same string, and delta codes for Unicode text.
//
// # Core Features
//
//   - No header or length prefix: the terminator ends the payload
//   - Deterministic output, safe to cache or compare
//   - Decoding bounded by a caller-supplied size hint
//   - Any valid UTF-8 text round-trips, including mixed scripts and emoji
//   - Stateless, immutable encoders and decoders safe for concurrent use
//
// # Basic Usage
//
//	payload, n, err := shox.Compress("Hello World")
//	if err != nil {
//	    return err
//	}
//
//	text, err := shox.Decompress(payload, n)
//
// The size hint only has to be an upper bound:
//
//	text, err := shox.Decompress(payload, 1024)
//
// # Errors
//
// All errors wrap the sentinels in package errs:
//
//   - errs.ErrInvalidInput: invalid UTF-8, surrogates, non-ASCII bytes, wrong
//     argument types or a negative size hint
//   - errs.ErrTruncatedStream: the payload ends before its terminator
//   - errs.ErrBufferTooSmall: the text is longer than the size hint
//
// # Package Structure
//
// This package wraps a default codec.Encoder and codec.Decoder. Use package
// codec directly for presets and encoder options, package compress to compare
// with general-purpose codecs, and package cache to memoize payloads.
package shox

import (
	"github.com/arloliu/shox/codec"
)

var (
	defaultEncoder = mustEncoder()
	defaultDecoder = mustDecoder()
)

func mustEncoder() *codec.Encoder {
	enc, err := codec.NewEncoder()
	if err != nil {
		panic(err)
	}

	return enc
}

func mustDecoder() *codec.Decoder {
	dec, err := codec.NewDecoder()
	if err != nil {
		panic(err)
	}

	return dec
}

// MinBufferSize is the decoder's smallest preallocation. Size hints below it
// are still valid when they cover the decoded text.
const MinBufferSize = codec.MinBufferSize

// Compress encodes s with the default options and returns the payload and the
// UTF-8 length of s.
func Compress(s string) ([]byte, int, error) {
	return defaultEncoder.Compress(s)
}

// CompressASCII encodes a 7-bit ASCII byte sequence.
func CompressASCII(b []byte) ([]byte, int, error) {
	return defaultEncoder.CompressASCII(b)
}

// CompressRunes encodes a sequence of Unicode scalar values.
func CompressRunes(rs []rune) ([]byte, int, error) {
	return defaultEncoder.CompressRunes(rs)
}

// Decompress decodes a payload produced with the default options. sizeHint
// must be at least the UTF-8 length of the original text.
func Decompress(payload []byte, sizeHint int) (string, error) {
	return defaultDecoder.Decompress(payload, sizeHint)
}

// NewEncoder creates an encoder with custom options.
func NewEncoder(opts ...codec.Option) (*codec.Encoder, error) {
	return codec.NewEncoder(opts...)
}

// NewDecoder creates a decoder with custom options.
func NewDecoder(opts ...codec.Option) (*codec.Decoder, error) {
	return codec.NewDecoder(opts...)
}
