package dictionary

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/opensteno/dictionary/internal/container"
	"github.com/opensteno/dictionary/internal/hashtable"
)

// MarshalBinary serializes the Image's word buffer and byte buffer as two
// little-endian length-prefixed regions. The wire format is: u32 word
// count, that many little-endian u32 words, u32 byte count, that many
// bytes.
func (img *Image) MarshalBinary() ([]byte, error) {
	words, data := img.c.Borrow()

	out := make([]byte, 0, 8+4*len(words)+len(data))
	out = appendUint32(out, uint32(len(words)))
	for _, w := range words {
		out = appendUint32(out, w)
	}
	out = appendUint32(out, uint32(len(data)))
	out = append(out, data...)
	return out, nil
}

// UnmarshalBinary reconstructs an Image from bytes produced by
// MarshalBinary, re-deriving the strokes/strings table views from the
// [strokes_buckets_count, strokes_data_count, ...] word-buffer header.
// The Hasher used to query the reconstructed Image defaults to WyHash;
// pass the same WithHasher Option the Image was originally loaded with if
// it used one.
func (img *Image) UnmarshalBinary(data []byte, opts ...Option) error {
	cfg := newConfig(opts)

	words, rest, err := readUint32Slice(data)
	if err != nil {
		return err
	}
	byteBuf, rest, err := readByteSlice(rest)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return errors.New("dictionary: trailing bytes after image payload")
	}
	if len(words) < 2 {
		return errors.New("dictionary: image word buffer missing header")
	}

	strokesBucketsCount := int(words[0])
	strokesDataCount := int(words[1])
	if strokesBucketsCount < 0 || strokesBucketsCount > len(words)-2 {
		return errors.New("dictionary: image header names more strokes buckets than are present")
	}
	if strokesDataCount < 0 || strokesDataCount > len(byteBuf) {
		return errors.New("dictionary: image header names more strokes data than is present")
	}

	c := container.Allocate(0, 0)
	c.AppendWords(words...)
	c.AppendBytes(byteBuf)
	allWords, allBytes := c.Borrow()

	strokesBuckets := allWords[2 : 2+strokesBucketsCount]
	stringsBuckets := allWords[2+strokesBucketsCount:]
	strokesData := allBytes[:strokesDataCount]
	stringsData := allBytes[strokesDataCount:]

	img.c = c
	img.strokes = hashtable.FromParts(strokesBuckets, strokesData, hashtable.WithHasher(cfg.newHasher()))
	img.strings = hashtable.FromParts(stringsBuckets, stringsData, hashtable.WithHasher(cfg.newHasher()))
	return nil
}

func appendUint32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

func readUint32Slice(data []byte) (values []uint32, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, errors.New("dictionary: truncated image (word count)")
	}
	count := binary.LittleEndian.Uint32(data)
	data = data[4:]
	need := int(count) * 4
	if len(data) < need {
		return nil, nil, errors.New("dictionary: truncated image (words)")
	}
	values = make([]uint32, count)
	for i := range values {
		values[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return values, data[need:], nil
}

func readByteSlice(data []byte) (values []byte, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, errors.New("dictionary: truncated image (byte count)")
	}
	count := binary.LittleEndian.Uint32(data)
	data = data[4:]
	if len(data) < int(count) {
		return nil, nil, errors.New("dictionary: truncated image (bytes)")
	}
	return data[:count], data[count:], nil
}
