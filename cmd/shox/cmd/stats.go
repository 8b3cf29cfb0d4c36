package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/shox/codec"
	"github.com/arloliu/shox/compress"
	"github.com/arloliu/shox/format"
)

func init() {
	statsCmd.Flags().StringP("input", "i", "", "read one text per line from file (- for stdin)")
	statsCmd.Flags().Bool("per-line", false, "also print the shox encoding of every line")
	viper.BindPFlag("stats.input", statsCmd.Flags().Lookup("input"))
	viper.BindPFlag("stats.per-line", statsCmd.Flags().Lookup("per-line"))
}

var statsCmd = &cobra.Command{
	Use:   "stats [TEXT...]",
	Short: "Compare shox with general-purpose codecs",
	Example: `  shox stats "Hello World" "2020-12-31" "https://example.com/?id=42"
  shox stats -i names.txt --per-line`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := args
		if len(lines) == 0 {
			var err error
			if lines, err = readLines(viper.GetString("stats.input")); err != nil {
				return err
			}
		}
		if len(lines) == 0 {
			return fmt.Errorf("no input")
		}

		opts, err := codecOptions()
		if err != nil {
			return err
		}

		inputs := make([][]byte, len(lines))
		for i, l := range lines {
			inputs[i] = []byte(l)
		}
		log.WithField("inputs", len(inputs)).Debug("Measuring codecs")

		results, err := measureAll(inputs, opts)
		if err != nil {
			return err
		}
		renderStats(cmd.OutOrStdout(), results)

		if viper.GetBool("stats.per-line") {
			enc, err := codec.NewEncoder(opts...)
			if err != nil {
				return err
			}

			return renderLines(cmd.OutOrStdout(), enc, lines)
		}

		return nil
	},
}

// measureAll measures the pass-through baseline, shox and every baseline
// codec on the same inputs.
func measureAll(inputs [][]byte, opts []codec.Option) ([]compress.CompressionStats, error) {
	limit := 0
	for _, in := range inputs {
		limit = max(limit, len(in))
	}

	shox, err := compress.NewShoxCompressor(limit, opts...)
	if err != nil {
		return nil, err
	}

	codecs := []struct {
		typ   format.CompressionType
		codec compress.Codec
	}{
		{format.CompressionNone, compress.NewNoOpCompressor()},
		{format.CompressionShox, shox},
	}
	for _, t := range compress.Baselines() {
		c, err := compress.GetCodec(t)
		if err != nil {
			return nil, err
		}
		codecs = append(codecs, struct {
			typ   format.CompressionType
			codec compress.Codec
		}{t, c})
	}

	results := make([]compress.CompressionStats, 0, len(codecs))
	for _, c := range codecs {
		s, err := compress.Measure(c.codec, c.typ, inputs)
		if err != nil {
			return nil, err
		}
		results = append(results, s)
	}

	return results, nil
}

func renderStats(out io.Writer, results []compress.CompressionStats) {
	bold := color.New(color.Bold).SprintFunc()
	good := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, bold("CODEC\tINPUTS\tORIGINAL\tCOMPRESSED\tRATIO\tSAVED\tENCODE\tDECODE"))
	for _, s := range results {
		saved := fmt.Sprintf("%.1f%%", s.SpaceSavings())
		if s.SpaceSavings() > 0 {
			saved = good(saved)
		} else if s.SpaceSavings() < 0 {
			saved = bad(saved)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.3f\t%s\t%s\t%s\n",
			s.Algorithm,
			humanize.Comma(int64(s.Inputs)),
			humanize.Bytes(uint64(s.OriginalSize)),   //nolint: gosec
			humanize.Bytes(uint64(s.CompressedSize)), //nolint: gosec
			s.CompressionRatio(),
			saved,
			time.Duration(s.CompressionTimeNs),
			time.Duration(s.DecompressionTimeNs),
		)
	}
	w.Flush()
}

func renderLines(out io.Writer, enc *codec.Encoder, lines []string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, color.New(color.Bold).Sprint("\nBYTES\tBITS\tRATIO\tPATTERNS\tTEXT"))
	for _, l := range lines {
		_, st, err := enc.CompressWithStats(l)
		if err != nil {
			return fmt.Errorf("line %q: %w", l, err)
		}

		fmt.Fprintf(w, "%d -> %d\t%d\t%.3f\t%s\t%q\n",
			st.OriginalLength, st.CompressedLength, st.Bits, st.Ratio(), patternSummary(st), l)
	}

	return w.Flush()
}

// patternSummary lists committed patterns in kind order, e.g. "Date×1 BackRef×2".
func patternSummary(st codec.Stats) string {
	kinds := make([]format.PatternKind, 0, len(st.Patterns))
	for k := range st.Patterns {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)

	parts := make([]string, 0, len(kinds)+1)
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s×%d", k, st.Patterns[k]))
	}
	if st.DeltaRunes > 0 {
		parts = append(parts, fmt.Sprintf("Delta×%d", st.DeltaRunes))
	}
	if len(parts) == 0 {
		return "-"
	}

	return strings.Join(parts, " ")
}
