package dictionary

import "github.com/opensteno/dictionary/internal/dicterr"

// Host is the set of collaborators LoadWithHost reports failures through,
// standing in for the out-of-scope host-provided logging hook described by
// the engine's original embedding contract. Query results are not routed
// through Host; they go to the yield callback passed to each query method.
type Host struct {
	// LogError is called at most once, with a short message, a more
	// precise detail string, and the source line the failure was raised
	// from. It must not be nil.
	LogError func(message, details string, line int)
}

// detailOf extracts a (message, details, line) triple from err regardless
// of whether it carries a *dicterr.Detail; errors that don't are reported
// with their Error() string as message and line 0.
func detailOf(err error) (message, details string, line int) {
	if d, ok := dicterr.As(err); ok {
		return d.Message, d.Details, d.Line
	}
	return err.Error(), "", 0
}
