// Package logic implements the core flow behind the encrypt, decrypt and
// check subcommands.
package logic

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/avesov/cipherctl/internal/cipher"
	"github.com/avesov/cipherctl/internal/config"
)

// newCipher constructs the engine selected by the configuration.
func newCipher(cfg *config.Config) (cipher.Cipher, error) {
	switch cfg.Cipher {
	case config.CipherGronsfeld:
		return cipher.NewGronsfeld(cfg.Key)
	case config.CipherRoute:
		return cipher.NewRoute(cfg.Cols)
	default:
		return nil, fmt.Errorf("unknown cipher %q", cfg.Cipher)
	}
}

// Run transforms every positional text through the configured engine.
// Texts are processed by a bounded worker pool; results are printed in
// completion order by a single printer goroutine.
func Run(cfg *config.Config) error {
	start := time.Now()

	engine, err := newCipher(cfg)
	if err != nil {
		return fmt.Errorf("creating cipher: %w", err)
	}

	type result struct {
		input  string
		output string
		err    error
	}

	results := make(chan result, len(cfg.Texts))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	printed := make(chan struct{})

	var processed, errored int

	var totalSize int64

	go func() {
		defer close(printed)

		for res := range results {
			if res.err != nil {
				errored++

				log.Error().Str("text", res.input).Err(res.err).Msg("processing failed")

				continue
			}

			processed++

			totalSize += int64(len(res.output))

			if !cfg.Quiet {
				fmt.Printf("%s -> %s\n", res.input, res.output) //nolint:forbidigo
			}
		}
	}()

	for _, text := range cfg.Texts {
		text := text

		group.Go(func() error {
			out, err := transform(engine, text, cfg.Decrypt)
			if err != nil {
				results <- result{input: text, err: err}

				return err
			}

			results <- result{input: text, output: out}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-printed

	if cfg.Stats {
		printStats(processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("processing texts: %w", err)
	}

	return nil
}

func transform(engine cipher.Cipher, text string, decrypt bool) (string, error) {
	if decrypt {
		return engine.Decrypt(text)
	}

	return engine.Encrypt(text)
}

func printStats(processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of output lengths)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
