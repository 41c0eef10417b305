// Package dictionary is a compact, read-only steno dictionary engine.
//
// # Overview
//
// It turns a JSON map of stroke strings to translations into a packed,
// position-independent Image, then answers two kinds of query against
// that Image: given a translation, enumerate the stroke-keys that produce
// it; given a stroke-key, enumerate its translations.
//
// # Basic Usage
//
//	input := []byte(`{"KPWHRE":"hi","HEL/LOE":"hello"}`)
//	img, err := dictionary.Load(input)
//	if err != nil {
//	    // handle a malformed dictionary
//	}
//	img.QueryTranslation([]byte("hi"), func(strokes []byte) {
//	    // strokes is the packed 3-byte-per-chord key for "KPWHRE"
//	})
//	img.QueryStrokes([]byte("KPWHRE"), func(translation []byte) {
//	    // translation is []byte("hi")
//	})
//
// # Host shim
//
// LoadWithHost wraps Load for embedders whose failure model is a
// fire-and-forget log call rather than a returned error, modeled on the
// log_error/yield_result host contract this engine was originally built
// against: a failed load logs through Host.LogError and returns a nil
// Image instead of propagating an error value.
//
// # Memory discipline
//
// Load mutates its input buffer in place while transcoding it into the
// intermediate record stream; the caller must not read from or reuse
// input after Load returns. The returned Image owns its own storage and
// is independent of input from that point on.
package dictionary
