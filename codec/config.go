package codec

import (
	"fmt"

	"github.com/arloliu/shox/errs"
	"github.com/arloliu/shox/format"
	"github.com/arloliu/shox/internal/options"
	"github.com/arloliu/shox/internal/pattern"
)

// Config holds the settings shared by Encoder and Decoder. Only the preset
// affects the payload format; the other fields steer the encoder's choices,
// and a Decoder understands every code regardless of them.
type Config struct {
	preset    format.Preset
	templates bool
	backRefs  bool
	freqSeqs  bool
	window    int
	roundTrip bool
}

// Option configures an Encoder or a Decoder.
type Option = options.Option[*Config]

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		preset:    format.PresetDefault,
		templates: true,
		backRefs:  true,
		freqSeqs:  true,
		window:    pattern.DefaultBackRefWindow,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Preset returns the configured frequent-sequence preset.
func (c *Config) Preset() format.Preset {
	return c.preset
}

func (c *Config) matcherConfig() (pattern.Config, error) {
	seqs, err := pattern.SequencesFor(c.preset)
	if err != nil {
		return pattern.Config{}, err
	}

	return pattern.Config{
		Templates: c.templates,
		BackRefs:  c.backRefs,
		FreqSeqs:  c.freqSeqs,
		Window:    c.window,
		Sequences: seqs,
	}, nil
}

// WithPreset selects the frequent-sequence table. Payloads must be decoded
// with the preset they were encoded with.
func WithPreset(p format.Preset) Option {
	return options.New("preset", func(c *Config) error {
		if !p.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrUnknownPreset, p)
		}
		c.preset = p

		return nil
	})
}

// WithTemplates enables or disables structural templates, digit runs and
// repeat runs. Enabled by default.
func WithTemplates(enabled bool) Option {
	return options.NoError("templates", func(c *Config) {
		c.templates = enabled
	})
}

// WithBackReferences enables or disables back-references. Enabled by default.
func WithBackReferences(enabled bool) Option {
	return options.NoError("back references", func(c *Config) {
		c.backRefs = enabled
	})
}

// WithFrequentSequences enables or disables frequent-sequence codes.
// Enabled by default.
func WithFrequentSequences(enabled bool) Option {
	return options.NoError("frequent sequences", func(c *Config) {
		c.freqSeqs = enabled
	})
}

// WithBackRefWindow sets how far back, in bytes, back-references are searched.
func WithBackRefWindow(n int) Option {
	return options.New("back reference window", func(c *Config) error {
		if n < 1 || n > pattern.MaxBackRefWindow {
			return fmt.Errorf("%w: window %d outside [1, %d]", errs.ErrInvalidOption, n, pattern.MaxBackRefWindow)
		}
		c.window = n

		return nil
	})
}

// WithRoundTripCheck makes the encoder decode every payload it produces and
// fail with errs.ErrRoundTripMismatch if the text differs.
func WithRoundTripCheck(enabled bool) Option {
	return options.NoError("round trip check", func(c *Config) {
		c.roundTrip = enabled
	})
}
