package cmd

import (
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/shox/compress"
)

func init() {
	decompressCmd.Flags().StringP("input", "i", "", "read the raw payload from file (default: encoded payload on stdin)")
	decompressCmd.Flags().IntP("size", "s", compress.DefaultShoxLimit, "upper bound on the decoded length in bytes")
	decompressCmd.Flags().Bool("hex", false, "parse the payload argument as hex instead of base64")
	viper.BindPFlag("decompress.input", decompressCmd.Flags().Lookup("input"))
	viper.BindPFlag("decompress.size", decompressCmd.Flags().Lookup("size"))
	viper.BindPFlag("decompress.hex", decompressCmd.Flags().Lookup("hex"))
}

var decompressCmd = &cobra.Command{
	Use:   "decompress [PAYLOAD]",
	Short: "Decompress a payload",
	Example: `  shox compress "Hello World" | shox decompress
  shox decompress --hex --size 11 <HEX>
  shox decompress -i note.shox --size 4096`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := readPayload(args, viper.GetString("decompress.input"), viper.GetBool("decompress.hex"))
		if err != nil {
			return err
		}

		dec, err := newDecoder()
		if err != nil {
			return err
		}

		size := viper.GetInt("decompress.size")
		log.WithFields(log.Fields{"payload": len(payload), "size": size}).Debug("Decompressing")

		text, err := dec.Decompress(payload, size)
		if err != nil {
			return fmt.Errorf("failed to decompress: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)

		return nil
	},
}

// readPayload takes an encoded payload from the argument or stdin, or the raw
// bytes of an input file.
func readPayload(args []string, input string, asHex bool) ([]byte, error) {
	if len(args) > 0 {
		return decodePayload(args[0], asHex)
	}

	r, err := openInput(input)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if input == "" || input == "-" {
		return decodePayload(string(b), asHex)
	}

	return b, nil
}
