package pattern

import (
	"fmt"

	"github.com/arloliu/shox/errs"
	"github.com/arloliu/shox/format"
)

const seqIndexBits = 3

// Sequences is the frequent-sequence table of a preset. Encoder and decoder
// must use the same table.
type Sequences [1 << seqIndexBits]string

var presetSequences = map[format.Preset]*Sequences{
	format.PresetDefault: {`": "`, `": `, `</`, `="`, `":"`, `://`, "\r\n", `. `},
	format.PresetJSON:    {`": "`, `":"`, `", "`, `","`, `": `, `":`, `{"`, `"}`},
	format.PresetURL:     {`https://`, `http://`, `www.`, `.com`, `.org`, `://`, `.html`, `?id=`},
	format.PresetMarkup:  {`</`, `="`, `/>`, `">`, `<div`, `<span`, `class="`, `href="`},
}

// SequencesFor returns the frequent-sequence table of p.
func SequencesFor(p format.Preset) (*Sequences, error) {
	seqs, ok := presetSequences[p]
	if !ok {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownPreset, p)
	}

	return seqs, nil
}
