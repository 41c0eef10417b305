package dictionary

import (
	"github.com/opensteno/dictionary/internal/container"
	"github.com/opensteno/dictionary/internal/hashtable"
	"github.com/opensteno/dictionary/internal/link"
	"github.com/opensteno/dictionary/internal/record"
	"github.com/opensteno/dictionary/internal/transcode"
)

// Image is the packed, position-independent result of Load: a word
// buffer holding both tables' bucket arrays, a byte buffer holding both
// tables' entry data, and two hashtable.Table views over them. Every
// reference inside an Image is an offset into one of these two buffers,
// which is what makes it relocatable.
type Image struct {
	c       *container.Container
	strokes *hashtable.Table
	strings *hashtable.Table
}

// Load parses input as a JSON object mapping stroke strings to
// translations, transcoding it in place, and builds an Image from it.
// input is mutated; the caller must not read it again after Load returns.
func Load(input []byte, opts ...Option) (*Image, error) {
	cfg := newConfig(opts)
	return build(input, cfg)
}

// LoadWithHost is Load wrapped in the host-shim error contract: on
// failure it reports through host.LogError and returns a nil Image
// instead of an error value.
func LoadWithHost(input []byte, host Host, opts ...Option) *Image {
	img, err := Load(input, opts...)
	if err != nil {
		message, details, line := detailOf(err)
		host.LogError(message, details, line)
		return nil
	}
	return img
}

func build(input []byte, cfg config) (*Image, error) {
	n, err := transcode.Rewrite(input)
	if err != nil {
		return nil, err
	}
	stream := input[:n]

	var strokesKeys, stringsKeys [][]byte
	pairs := record.NewPairs(stream)
	for {
		strokesRaw, translation, ok := pairs.Next()
		if !ok {
			break
		}
		strokesKeys = append(strokesKeys, record.NewChordIterator(strokesRaw).Bytes())
		stringsKeys = append(stringsKeys, append([]byte(nil), translation...))
	}

	strokesTable, err := hashtable.Build(strokesKeys, cfg.tableOpts()...)
	if err != nil {
		return nil, err
	}
	stringsTable, err := hashtable.Build(stringsKeys, cfg.tableOpts()...)
	if err != nil {
		return nil, err
	}

	if err := link.CrossLink(strokesTable, stringsTable, record.NewPairs(stream)); err != nil {
		return nil, err
	}

	return assemble(strokesTable, stringsTable, cfg), nil
}

// assemble copies two freshly built, cross-linked Tables into a single
// container.Container laid out as the image's word buffer
// ([strokes_buckets_count, strokes_data_count, strokes_buckets...,
// strings_buckets...]) and byte buffer ([strokes_data..., strings_data...]),
// then returns an Image whose Tables are views back into that one
// container, exactly as a relocated, reloaded Image would be.
func assemble(strokesTable, stringsTable *hashtable.Table, cfg config) *Image {
	c := container.Allocate(0, 0)
	c.AppendWords(uint32(len(strokesTable.Buckets)), uint32(len(strokesTable.Data)))
	strokesBucketsOffset := c.AppendWords(strokesTable.Buckets...)
	stringsBucketsOffset := c.AppendWords(stringsTable.Buckets...)
	strokesDataOffset := c.AppendBytes(strokesTable.Data)
	stringsDataOffset := c.AppendBytes(stringsTable.Data)

	words, bytes := c.Borrow()
	strokes := hashtable.FromParts(
		words[strokesBucketsOffset:stringsBucketsOffset],
		bytes[strokesDataOffset:stringsDataOffset],
		hashtable.WithHasher(cfg.newHasher()),
	)
	strings := hashtable.FromParts(
		words[stringsBucketsOffset:],
		bytes[stringsDataOffset:],
		hashtable.WithHasher(cfg.newHasher()),
	)
	return &Image{c: c, strokes: strokes, strings: strings}
}
