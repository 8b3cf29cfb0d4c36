package cmd

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/arloliu/shox/codec"
	"github.com/arloliu/shox/format"
)

// codecOptions builds codec options from the bound preset and verify flags.
func codecOptions() ([]codec.Option, error) {
	preset, err := format.ParsePreset(viper.GetString("preset"))
	if err != nil {
		return nil, err
	}

	return []codec.Option{
		codec.WithPreset(preset),
		codec.WithRoundTripCheck(viper.GetBool("verify")),
	}, nil
}

func newEncoder() (*codec.Encoder, error) {
	opts, err := codecOptions()
	if err != nil {
		return nil, err
	}

	return codec.NewEncoder(opts...)
}

func newDecoder() (*codec.Decoder, error) {
	opts, err := codecOptions()
	if err != nil {
		return nil, err
	}

	return codec.NewDecoder(opts...)
}

// openInput opens path, or stdin for "" and "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}

// readText returns the first positional argument, or the whole input file
// without its final newline.
func readText(args []string, input string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	r, err := openInput(input)
	if err != nil {
		return "", err
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(strings.TrimSuffix(string(b), "\n"), "\r"), nil
}

// readLines returns every line of the input, without line endings.
func readLines(input string) ([]string, error) {
	r, err := openInput(input)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}

	return lines, sc.Err()
}

// encodePayload renders a payload for the terminal.
func encodePayload(p []byte, asHex bool) string {
	if asHex {
		return hex.EncodeToString(p)
	}

	return base64.StdEncoding.EncodeToString(p)
}

// decodePayload parses a payload printed by encodePayload.
func decodePayload(s string, asHex bool) ([]byte, error) {
	s = strings.TrimSpace(s)
	if asHex {
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex payload: %w", err)
		}

		return b, nil
	}

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}

	return b, nil
}

// writeOutput writes data to path, or to w for "" and "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644) //nolint: gosec
}
