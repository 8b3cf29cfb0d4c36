package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	compressCmd.Flags().StringP("input", "i", "", "read text from file (- for stdin)")
	compressCmd.Flags().StringP("output", "o", "", "write the raw payload to file")
	compressCmd.Flags().Bool("hex", false, "print the payload as hex instead of base64")
	compressCmd.Flags().Bool("verify", false, "decode every payload and compare with the input")
	viper.BindPFlag("compress.input", compressCmd.Flags().Lookup("input"))
	viper.BindPFlag("compress.output", compressCmd.Flags().Lookup("output"))
	viper.BindPFlag("compress.hex", compressCmd.Flags().Lookup("hex"))
	viper.BindPFlag("verify", compressCmd.Flags().Lookup("verify"))
}

var compressCmd = &cobra.Command{
	Use:   "compress [TEXT]",
	Short: "Compress a string",
	Example: `  shox compress "Hello World"
  shox compress --hex "2020-12-31T23:59:59"
  shox compress -i note.txt -o note.shox`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(args, viper.GetString("compress.input"))
		if err != nil {
			return err
		}

		enc, err := newEncoder()
		if err != nil {
			return err
		}

		payload, stats, err := enc.CompressWithStats(text)
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"original":   humanize.Bytes(uint64(stats.OriginalLength)),   //nolint: gosec
			"compressed": humanize.Bytes(uint64(stats.CompressedLength)), //nolint: gosec
			"bits":       stats.Bits,
			"ratio":      fmt.Sprintf("%.3f", stats.Ratio()),
		}).Info("Compressed")
		for kind, n := range stats.Patterns {
			log.WithFields(log.Fields{"pattern": kind, "count": n}).Debug("Pattern")
		}
		if stats.DeltaRunes > 0 {
			log.WithField("runes", stats.DeltaRunes).Debug("Delta coded")
		}

		if out := viper.GetString("compress.output"); out != "" && out != "-" {
			if err := writeOutput(cmd.OutOrStdout(), out, payload); err != nil {
				return err
			}
			log.WithFields(log.Fields{"file": out, "size": stats.OriginalLength}).Info("Payload written, decompress with --size")

			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), encodePayload(payload, viper.GetBool("compress.hex")))

		return nil
	},
}
