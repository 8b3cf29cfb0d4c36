package cmd

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/shox"
	"github.com/arloliu/shox/cache"
	"github.com/arloliu/shox/codec"
)

func init() {
	batchCmd.Flags().StringP("input", "i", "-", "JSON lines file (- for stdin)")
	batchCmd.Flags().StringP("output", "o", "-", "output file (- for stdout)")
	batchCmd.Flags().BoolP("decompress", "d", false, `decompress {"payload","length"} lines instead`)
	batchCmd.Flags().Int("cache-size", 4096, "payload cache entries")
	viper.BindPFlag("batch.input", batchCmd.Flags().Lookup("input"))
	viper.BindPFlag("batch.output", batchCmd.Flags().Lookup("output"))
	viper.BindPFlag("batch.decompress", batchCmd.Flags().Lookup("decompress"))
	viper.BindPFlag("batch.cache-size", batchCmd.Flags().Lookup("cache-size"))
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Compress or decompress JSON lines",
	Long: `Each input line is a JSON object. When compressing, the "text" field is
compressed and written as {"payload": <base64>, "length": <bytes>}. When
decompressing, such lines are turned back into {"text": ...}.

A line that cannot be processed produces {"error": ...} and the batch
continues.`,
	Example: `  shox batch -i messages.jsonl -o payloads.jsonl
  shox batch -d -i payloads.jsonl`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(viper.GetString("batch.input"))
		if err != nil {
			return err
		}
		defer in.Close()

		var proc lineProcessor
		if viper.GetBool("batch.decompress") {
			dec, err := newDecoder()
			if err != nil {
				return err
			}
			proc = decompressLine(dec)
		} else {
			enc, err := newEncoder()
			if err != nil {
				return err
			}
			c, err := cache.New(viper.GetInt("batch.cache-size"), enc)
			if err != nil {
				return err
			}
			proc = compressLine(c)
			defer func() {
				st := c.Stats()
				log.WithFields(log.Fields{
					"hits":       st.Hits,
					"misses":     st.Misses,
					"collisions": st.Collisions,
					"hit_rate":   fmt.Sprintf("%.2f", st.HitRate()),
				}).Debug("Payload cache")
			}()
		}

		var out bytes.Buffer
		total, failed, err := runBatch(in, &out, proc)
		if err != nil {
			return err
		}
		if err := writeOutput(cmd.OutOrStdout(), viper.GetString("batch.output"), out.Bytes()); err != nil {
			return err
		}

		ctx := log.WithFields(log.Fields{"lines": total, "failed": failed})
		if failed > 0 {
			ctx.Warn("Batch finished with errors")
		} else {
			ctx.Info("Batch finished")
		}

		return nil
	},
}

type batchRecord struct {
	Text    *string `json:"text,omitempty"`
	Payload string  `json:"payload,omitempty"`
	Length  *int    `json:"length,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// lineProcessor turns one decoded input object into one output record.
type lineProcessor func(obj map[string]any) batchRecord

func compressLine(c *cache.Cache) lineProcessor {
	return func(obj map[string]any) batchRecord {
		v, ok := obj["text"]
		if !ok {
			return batchRecord{Error: `missing "text" field`}
		}

		var (
			payload []byte
			n       int
			err     error
		)
		if s, isString := v.(string); isString {
			payload, n, err = c.Compress(s)
		} else {
			payload, n, err = shox.CompressValue(v)
		}
		if err != nil {
			return batchRecord{Error: err.Error()}
		}

		return batchRecord{Payload: base64.StdEncoding.EncodeToString(payload), Length: &n}
	}
}

func decompressLine(dec *codec.Decoder) lineProcessor {
	return func(obj map[string]any) batchRecord {
		encoded, ok := obj["payload"].(string)
		if !ok {
			return batchRecord{Error: `"payload" must be a base64 string`}
		}
		payload, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return batchRecord{Error: fmt.Sprintf("invalid base64 payload: %v", err)}
		}

		hint, err := shox.SizeHint(obj["length"])
		if err != nil {
			return batchRecord{Error: err.Error()}
		}

		text, err := dec.Decompress(payload, hint)
		if err != nil {
			return batchRecord{Error: err.Error()}
		}

		return batchRecord{Text: &text}
	}
}

// runBatch applies proc to every non-empty line of in and writes one JSON
// record per line to out. Only I/O errors stop the batch.
func runBatch(in io.Reader, out io.Writer, proc lineProcessor) (total, failed int, err error) {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	for line := 1; sc.Scan(); line++ {
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		total++

		var rec batchRecord
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			rec = batchRecord{Error: fmt.Sprintf("line %d: invalid JSON: %v", line, err)}
		} else {
			rec = proc(obj)
		}

		if rec.Error != "" {
			failed++
			log.WithFields(log.Fields{"line": line, "error": rec.Error}).Debug("Skipped line")
		}
		if err := enc.Encode(rec); err != nil {
			return total, failed, err
		}
	}

	return total, failed, sc.Err()
}
