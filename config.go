package dictionary

import (
	"github.com/opensteno/dictionary/internal/hashtable"
	"github.com/opensteno/dictionary/internal/wyhash"
)

// Option configures Load and LoadWithHost.
type Option func(*config)

type config struct {
	loadFactor int
	newHasher  func() wyhash.Hasher
}

func newConfig(opts []Option) config {
	cfg := config{
		loadFactor: hashtable.DefaultLoadFactor,
		newHasher:  func() wyhash.Hasher { return wyhash.New() },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// tableOpts returns a fresh hashtable.Option set, with its own Hasher
// instance, suitable for exactly one hashtable.Build call. Each of the two
// tables an Image builds gets its own Hasher so the two builds never
// share mutable hasher state.
func (c config) tableOpts() []hashtable.Option {
	return []hashtable.Option{
		hashtable.WithLoadFactor(c.loadFactor),
		hashtable.WithHasher(c.newHasher()),
	}
}

// WithLoadFactor overrides the default target of hashtable.DefaultLoadFactor
// entries per bucket. A higher load factor trades larger buckets for a
// smaller hash table.
func WithLoadFactor(n int) Option {
	return func(c *config) { c.loadFactor = n }
}

// WithHasher overrides the default WyHash hasher (seed 1) with another
// wyhash.Hasher implementation, such as wyhash.NewXXH. The same choice
// must be used for every Load of a given dictionary's bytes if the
// resulting Images are expected to be byte-identical.
func WithHasher(newHasher func() wyhash.Hasher) Option {
	return func(c *config) { c.newHasher = newHasher }
}
