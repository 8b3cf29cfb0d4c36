// Package codec implements the shox short-string encoder and decoder.
//
// # Payload
//
// A payload is a bit stream with no header and no length prefix. It ends with
// a terminator code and is padded with zero bits to a whole byte. The decoder
// stops at the terminator and never interprets the padding.
//
// # Encoding
//
// The encoder walks the text left to right with a small state: the active code
// set and the previous delta-coded rune. At each position it asks the pattern
// matcher for candidates (timestamps, dates, times, UUIDs, phone numbers,
// repeated runes, digit runs, back-references, frequent sequences), prices
// each one and the plain encoding of the same span by writing them into a bit
// counter, and commits the cheaper. Plain encoding writes one rune at a time,
// switching code sets only when the rune needs it.
//
// Output is deterministic: the same text and options always give the same
// bytes.
//
// # Decoding
//
// The decoder replays the same state machine. The caller passes a size hint,
// an upper bound on the decoded length in bytes. It bounds the output buffer
// and is never treated as the text length.
//
//	enc, _ := codec.NewEncoder()
//	payload, n, _ := enc.Compress("Hello World")
//
//	dec, _ := codec.NewDecoder()
//	text, err := dec.Decompress(payload, n)
//
// # Options
//
// WithPreset changes the payload format and must match on both sides. The
// remaining options only change which encodings the encoder considers.
package codec
