// Command stenodict loads a JSON steno dictionary and answers a single
// translate or strokes query against it, for local inspection and
// scripting. It supplements the engine's WASM-only host contract with a
// runnable CLI, wired through the same Load/Query entry points an
// embedder would use.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/opensteno/dictionary"
	"github.com/opensteno/dictionary/internal/wyhash"
)

type options struct {
	File       string `short:"f" long:"file" description:"Dictionary JSON file to load" value-name:"path" required:"true"`
	Mode       string `short:"m" long:"mode" description:"Query mode" value-name:"translate|strokes" default:"translate"`
	LoadFactor int    `long:"load-factor" description:"Target entries per hash bucket" value-name:"n" default:"10"`
	Hasher     string `long:"hasher" description:"Hash function backing the tables" value-name:"wyhash|xxhash" default:"wyhash"`
	Query      string `short:"q" long:"query" description:"Translation or '/'-separated stroke string to look up" value-name:"text" required:"true"`
}

func parseOptions(args []string) *options {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[option...]"
	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}
	return &opts
}

func newHasher(name string) (func() wyhash.Hasher, error) {
	switch name {
	case "wyhash":
		return func() wyhash.Hasher { return wyhash.New() }, nil
	case "xxhash":
		return func() wyhash.Hasher { return wyhash.NewXXH() }, nil
	default:
		return nil, fmt.Errorf("stenodict: unknown hasher %q", name)
	}
}

func main() {
	log := logrus.New()
	opts := parseOptions(os.Args[1:])

	input, err := os.ReadFile(opts.File)
	if err != nil {
		log.WithError(err).Fatal("reading dictionary file")
	}

	hasherFactory, err := newHasher(opts.Hasher)
	if err != nil {
		log.WithError(err).Fatal("resolving hasher")
	}

	host := dictionary.Host{
		LogError: func(message, details string, line int) {
			log.WithFields(logrus.Fields{"details": details, "line": line}).Error(message)
		},
	}

	img := dictionary.LoadWithHost(
		input,
		host,
		dictionary.WithLoadFactor(opts.LoadFactor),
		dictionary.WithHasher(hasherFactory),
	)
	if img == nil {
		os.Exit(1)
	}

	switch opts.Mode {
	case "translate":
		var hits int
		img.QueryTranslation([]byte(opts.Query), func(strokes []byte) {
			hits++
			fmt.Printf("%s\n", formatStrokes(strokes))
		})
		if hits == 0 {
			log.Warn("no results")
		}
	case "strokes":
		var hits int
		if err := img.QueryStrokes([]byte(opts.Query), func(translation []byte) {
			hits++
			fmt.Printf("%s\n", translation)
		}); err != nil {
			log.WithError(err).Fatal("strokes query")
		}
		if hits == 0 {
			log.Warn("no results")
		}
	default:
		log.Fatalf("unknown mode %q, want translate or strokes", opts.Mode)
	}
}

// formatStrokes renders a packed 3-byte-per-chord key as a hex dump; the
// codec has no inverse in the core, so this is as far as the CLI can
// print a strokes key without a real un-parser.
func formatStrokes(strokes []byte) string {
	out := make([]byte, 0, len(strokes)*2)
	const hex = "0123456789abcdef"
	for _, b := range strokes {
		out = append(out, hex[b>>4], hex[b&0xF])
	}
	return string(out)
}
