package codec

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/shox/errs"
	"github.com/arloliu/shox/format"
)

func newCodec(t testing.TB, opts ...Option) (*Encoder, *Decoder) {
	t.Helper()

	enc, err := NewEncoder(opts...)
	require.NoError(t, err)
	dec, err := NewDecoder(opts...)
	require.NoError(t, err)

	return enc, dec
}

func requireRoundTrip(t *testing.T, enc *Encoder, dec *Decoder, s string) []byte {
	t.Helper()

	payload, n, err := enc.Compress(s)
	require.NoError(t, err, "compress %q", s)
	require.Equal(t, len(s), n)

	got, err := dec.Decompress(payload, n)
	require.NoError(t, err, "decompress %q", s)
	require.Equal(t, s, got)

	return payload
}

func TestRoundTrip_Corpus(t *testing.T) {
	enc, dec := newCodec(t, WithRoundTripCheck(true))

	for _, s := range corpus {
		requireRoundTrip(t, enc, dec, s)
	}
}

func TestRoundTrip_HighEntropy(t *testing.T) {
	enc, dec := newCodec(t)

	for _, s := range highEntropy {
		requireRoundTrip(t, enc, dec, s)
	}
}

func TestRoundTrip_ASCII(t *testing.T) {
	enc, dec := newCodec(t)

	for _, s := range asciiInputs {
		payload, n, err := enc.CompressASCII([]byte(s))
		require.NoError(t, err)

		want, _, err := enc.Compress(s)
		require.NoError(t, err)
		require.Equal(t, want, payload)

		got, err := dec.Decompress(payload, n)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestRoundTrip_Runes(t *testing.T) {
	enc, dec := newCodec(t)

	for _, s := range corpus {
		payload, n, err := enc.CompressRunes([]rune(s))
		require.NoError(t, err)
		require.Equal(t, len(s), n)

		got, err := dec.Decompress(payload, n)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestRoundTrip_Scenarios(t *testing.T) {
	enc, dec := newCodec(t)

	tests := []struct {
		name    string
		in      string
		pattern format.PatternKind
		opts    []Option
	}{
		{"plain text", "Hello World", 0, nil},
		{"digit run", "12345678", format.PatternDigitRun, nil},
		{"date", "2020-12-31", format.PatternDate, nil},
		{"timestamp", "2020-12-31T12:23:59.234Z", format.PatternTimestampMillis, nil},
		{"uuid", "fa01b51e-7ecc-4e3e-be7b-918a4c2c891c", format.PatternUUID, nil},
		{"phone", "call (993) 345-3495", format.PatternPhone, nil},
		// a back-reference at distance one is cheaper than a repeat
		{"repeat", "-----------------///", format.PatternRepeat, []Option{WithBackReferences(false)}},
		{"overlapping back reference", "-----------------///", format.PatternBackRef, nil},
		{"back reference", "shox encodes shox encodes", format.PatternBackRef, nil},
		{"frequent sequence", `{"key": "value"}`, format.PatternFreqSeq, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := enc
			if tt.opts != nil {
				enc = newEncoder(t, tt.opts...)
			}
			payload, stats, err := enc.CompressWithStats(tt.in)
			require.NoError(t, err)

			got, err := dec.Decompress(payload, len(tt.in))
			require.NoError(t, err)
			require.Equal(t, tt.in, got)

			if tt.pattern != 0 {
				assert.Positive(t, stats.Patterns[tt.pattern], "expected %s in %v", tt.pattern, stats.Patterns)
			}
		})
	}
}

func TestCompress_Empty(t *testing.T) {
	enc, dec := newCodec(t)

	payload, n, err := enc.Compress("")
	require.NoError(t, err)
	require.Zero(t, n)
	require.NotEmpty(t, payload, "empty text still carries a terminator")

	for _, hint := range []int{0, 1, MinBufferSize} {
		got, err := dec.Decompress(payload, hint)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

func TestCompress_ShorterThanInput(t *testing.T) {
	enc, _ := newCodec(t)

	for _, s := range []string{
		"Hello World",
		"The quick brown fox jumped over the lazy dog",
		"2020-12-31T12:23:59.234Z",
		"fa01b51e-7ecc-4e3e-be7b-918a4c2c891c",
		"🤣🤣🤣🤣🤣🤣🤣🤣🤣🤣🤣",
	} {
		payload, _, err := enc.Compress(s)
		require.NoError(t, err)
		assert.Less(t, len(payload), len(s), "%q", s)
	}
}

func TestCompress_Deterministic(t *testing.T) {
	enc, _ := newCodec(t)
	other, _ := newCodec(t)

	for _, s := range corpus {
		a, _, err := enc.Compress(s)
		require.NoError(t, err)
		b, _, err := enc.Compress(s)
		require.NoError(t, err)
		c, _, err := other.Compress(s)
		require.NoError(t, err)

		require.Equal(t, a, b)
		require.Equal(t, a, c)
	}
}

func TestCompress_InvalidInput(t *testing.T) {
	enc, _ := newCodec(t)

	t.Run("invalid UTF-8", func(t *testing.T) {
		_, _, err := enc.Compress("abc\xffdef")
		require.ErrorIs(t, err, errs.ErrInvalidInput)

		_, _, err = enc.CompressWithStats("\xed\xa0\x80") // encoded surrogate
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("surrogate rune", func(t *testing.T) {
		payload, _, err := enc.CompressRunes([]rune{'a', 0xD800, 'b'})
		require.ErrorIs(t, err, errs.ErrInvalidInput)
		require.Nil(t, payload)
	})

	t.Run("rune beyond unicode", func(t *testing.T) {
		_, _, err := enc.CompressRunes([]rune{utf8.MaxRune + 1})
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("non-ASCII bytes", func(t *testing.T) {
		_, _, err := enc.CompressASCII([]byte("caf\xc3\xa9"))
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestDecompress_SizeHint(t *testing.T) {
	enc, dec := newCodec(t)
	s := "The quick brown fox jumped over the lazy dog"
	payload, n, err := enc.Compress(s)
	require.NoError(t, err)

	t.Run("exact", func(t *testing.T) {
		got, err := dec.Decompress(payload, n)
		require.NoError(t, err)
		require.Equal(t, s, got)
	})

	t.Run("oversized", func(t *testing.T) {
		got, err := dec.Decompress(payload, 1<<30)
		require.NoError(t, err)
		require.Equal(t, s, got)
	})

	t.Run("one short", func(t *testing.T) {
		_, err := dec.Decompress(payload, n-1)
		require.ErrorIs(t, err, errs.ErrBufferTooSmall)
	})

	t.Run("below minimum buffer", func(t *testing.T) {
		short := "Hello"
		p, _, err := enc.Compress(short)
		require.NoError(t, err)

		got, err := dec.Decompress(p, len(short))
		require.NoError(t, err)
		require.Equal(t, short, got)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := dec.Decompress(payload, -1)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("multi-byte runes count bytes", func(t *testing.T) {
		jp := "美は顔にありません。"
		p, n, err := enc.Compress(jp)
		require.NoError(t, err)
		require.Equal(t, len(jp), n)

		_, err = dec.Decompress(p, utf8.RuneCountInString(jp))
		require.ErrorIs(t, err, errs.ErrBufferTooSmall)
	})
}

func TestDecompress_Idempotent(t *testing.T) {
	enc, dec := newCodec(t)

	for _, s := range corpus[:20] {
		payload, n, err := enc.Compress(s)
		require.NoError(t, err)
		orig := bytes.Clone(payload)

		first, err := dec.Decompress(payload, n)
		require.NoError(t, err)
		second, err := dec.Decompress(payload, n+100)
		require.NoError(t, err)
		third, err := dec.DecompressBytes(payload, 1<<20)
		require.NoError(t, err)

		require.Equal(t, first, second)
		require.Equal(t, first, string(third))
		require.Equal(t, orig, payload, "decoding must not modify the payload")
	}
}

func TestDecompress_Truncated(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		_, dec := newCodec(t)
		_, err := dec.Decompress(nil, 100)
		require.ErrorIs(t, err, errs.ErrTruncatedStream)
	})

	t.Run("cut inside lower-case text", func(t *testing.T) {
		// only single-slot codes, so every prefix decodes until the bits run out
		enc, dec := newCodec(t,
			WithTemplates(false), WithBackReferences(false), WithFrequentSequences(false))
		payload, _, err := enc.Compress("etetetetetetetet")
		require.NoError(t, err)

		got, err := dec.Decompress(payload[:2], 100)
		require.ErrorIs(t, err, errs.ErrTruncatedStream)
		require.Empty(t, got)
	})

	t.Run("any cut fails", func(t *testing.T) {
		enc, dec := newCodec(t)
		s := "Hello World 2020-12-31 顔にあり"
		payload, _, err := enc.Compress(s)
		require.NoError(t, err)

		for cut := range len(payload) {
			got, err := dec.Decompress(payload[:cut], len(s))
			if err == nil {
				require.NotEqual(t, s, got, "cut at %d", cut)
			}
		}
	})
}

func TestDecompress_DoesNotRetainBuffer(t *testing.T) {
	enc, dec := newCodec(t)
	a, _, err := enc.Compress("first text")
	require.NoError(t, err)
	b, _, err := enc.Compress("second")
	require.NoError(t, err)

	first, err := dec.DecompressBytes(a, 64)
	require.NoError(t, err)
	_, err = dec.DecompressBytes(b, 64)
	require.NoError(t, err)

	require.Equal(t, "first text", string(first))
}

func TestUUIDs(t *testing.T) {
	enc, dec := newCodec(t)

	for range 50 {
		id := uuid.New()
		for _, s := range []string{id.String(), strings.ToUpper(id.String()), "id=" + id.String() + ";"} {
			payload, stats, err := enc.CompressWithStats(s)
			require.NoError(t, err)
			require.Equal(t, 1, stats.Patterns[format.PatternUUID], s)
			assert.Less(t, len(payload), len(s)*2/3, s)

			got, err := dec.Decompress(payload, len(s))
			require.NoError(t, err)
			require.Equal(t, s, got)
		}
	}
}

func TestPresets(t *testing.T) {
	inputs := map[format.Preset]string{
		format.PresetJSON:   `{"id":"a1","tags":["x","y"],"ok": true}`,
		format.PresetURL:    "https://www.example.com/index.html?id=42",
		format.PresetMarkup: `<div class="note"><span>hi</span></div>`,
	}

	for preset, s := range inputs {
		t.Run(preset.String(), func(t *testing.T) {
			enc, dec := newCodec(t, WithPreset(preset))
			payload, stats, err := enc.CompressWithStats(s)
			require.NoError(t, err)
			assert.Positive(t, stats.Patterns[format.PatternFreqSeq])

			got, err := dec.Decompress(payload, len(s))
			require.NoError(t, err)
			require.Equal(t, s, got)
		})
	}
}

func newEncoder(t *testing.T, opts ...Option) *Encoder {
	t.Helper()

	enc, err := NewEncoder(opts...)
	require.NoError(t, err)

	return enc
}

func TestFeatureToggles(t *testing.T) {
	s := "2020-12-31 2020-12-31 ----------- \"key\": \"value\""

	full, dec := newCodec(t)
	bare := newEncoder(t, WithTemplates(false), WithBackReferences(false), WithFrequentSequences(false))

	fullPayload, fullStats, err := full.CompressWithStats(s)
	require.NoError(t, err)
	barePayload, bareStats, err := bare.CompressWithStats(s)
	require.NoError(t, err)

	assert.NotEmpty(t, fullStats.Patterns)
	assert.Empty(t, bareStats.Patterns)
	assert.Less(t, len(fullPayload), len(barePayload))

	// a decoder understands payloads regardless of encoder toggles
	for _, p := range [][]byte{fullPayload, barePayload} {
		got, err := dec.Decompress(p, len(s))
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestBackRefWindow(t *testing.T) {
	// no five-byte repeat within 16 bytes anywhere
	s := "a distinct phrase" + strings.Repeat("abcdefghijklmnopqrstuvwxyz", 4) + "a distinct phrase"

	narrow := newEncoder(t, WithBackRefWindow(16))
	wide := newEncoder(t, WithBackRefWindow(4096))

	_, narrowStats, err := narrow.CompressWithStats(s)
	require.NoError(t, err)
	_, wideStats, err := wide.CompressWithStats(s)
	require.NoError(t, err)

	assert.Zero(t, narrowStats.Patterns[format.PatternBackRef])
	assert.Positive(t, wideStats.Patterns[format.PatternBackRef])
}

func TestOptions_Invalid(t *testing.T) {
	_, err := NewEncoder(WithPreset(format.Preset(9)))
	require.ErrorIs(t, err, errs.ErrUnknownPreset)

	_, err = NewDecoder(WithPreset(format.Preset(9)))
	require.ErrorIs(t, err, errs.ErrUnknownPreset)

	for _, n := range []int{0, -1, 1 << 20} {
		_, err = NewEncoder(WithBackRefWindow(n))
		require.ErrorIs(t, err, errs.ErrInvalidOption, "window %d", n)
	}

	enc, err := NewEncoder(WithPreset(format.PresetURL))
	require.NoError(t, err)
	require.Equal(t, format.PresetURL, enc.cfg.Preset())
}

func TestStats(t *testing.T) {
	enc, _ := newCodec(t)

	t.Run("date", func(t *testing.T) {
		payload, st, err := enc.CompressWithStats("2020-12-31")
		require.NoError(t, err)
		require.Equal(t, 10, st.OriginalLength)
		require.Equal(t, len(payload), st.CompressedLength)
		require.Equal(t, (st.Bits+7)/8, st.CompressedLength)
		require.Equal(t, map[format.PatternKind]int{format.PatternDate: 1}, st.Patterns)
		require.Zero(t, st.DeltaRunes)
		assert.InDelta(t, float64(len(payload))/10, st.Ratio(), 1e-9)
	})

	t.Run("delta runes", func(t *testing.T) {
		_, st, err := enc.CompressWithStats("顔にあり")
		require.NoError(t, err)
		require.Equal(t, 4, st.DeltaRunes)
	})

	t.Run("empty", func(t *testing.T) {
		_, st, err := enc.CompressWithStats("")
		require.NoError(t, err)
		require.Zero(t, st.Ratio())
	})

	t.Run("matches plain compress", func(t *testing.T) {
		for _, s := range corpus[:30] {
			a, _, err := enc.Compress(s)
			require.NoError(t, err)
			b, _, err := enc.CompressWithStats(s)
			require.NoError(t, err)
			require.Equal(t, a, b)
		}
	})
}

func TestConcurrentUse(t *testing.T) {
	enc, dec := newCodec(t)

	want := make([][]byte, len(corpus))
	for i, s := range corpus {
		p, _, err := enc.Compress(s)
		require.NoError(t, err)
		want[i] = p
	}

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := g; i < len(corpus); i += 3 {
				p, n, err := enc.Compress(corpus[i])
				assert.NoError(t, err)
				assert.Equal(t, want[i], p)

				got, err := dec.Decompress(p, n)
				assert.NoError(t, err)
				assert.Equal(t, corpus[i], got)
			}
		}()
	}
	wg.Wait()
}

func FuzzRoundTrip(f *testing.F) {
	for _, s := range corpus {
		f.Add(s)
	}
	for _, s := range highEntropy {
		f.Add(s)
	}

	enc, err := NewEncoder()
	require.NoError(f, err)
	dec, err := NewDecoder()
	require.NoError(f, err)

	f.Fuzz(func(t *testing.T, s string) {
		payload, n, err := enc.Compress(s)
		if !utf8.ValidString(s) {
			require.ErrorIs(t, err, errs.ErrInvalidInput)
			return
		}
		require.NoError(t, err)

		got, err := dec.Decompress(payload, n)
		require.NoError(t, err)
		require.Equal(t, s, got)
	})
}

func FuzzDecompress(f *testing.F) {
	enc, err := NewEncoder()
	require.NoError(f, err)
	for _, s := range corpus[:20] {
		p, _, err := enc.Compress(s)
		require.NoError(f, err)
		f.Add(p)
	}

	dec, err := NewDecoder()
	require.NoError(f, err)

	f.Fuzz(func(t *testing.T, payload []byte) {
		got, err := dec.Decompress(payload, 4096)
		if err == nil {
			require.True(t, utf8.ValidString(got))
			require.LessOrEqual(t, len(got), 4096)
		}
	})
}

func BenchmarkCompress(b *testing.B) {
	enc, _ := newCodec(b)

	b.ReportAllocs()
	for b.Loop() {
		for _, s := range corpus {
			_, _, _ = enc.Compress(s)
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	enc, dec := newCodec(b)

	payloads := make([][]byte, len(corpus))
	for i, s := range corpus {
		p, _, err := enc.Compress(s)
		require.NoError(b, err)
		payloads[i] = p
	}

	b.ReportAllocs()
	for b.Loop() {
		for i, p := range payloads {
			_, _ = dec.Decompress(p, len(corpus[i]))
		}
	}
}
