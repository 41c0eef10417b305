// Package wyhash implements the streaming hash discipline the hash table
// builder and query engine share: the same hash function must produce the
// same bucket index during sizing, placement, and lookup.
//
// The default Hasher is a from-scratch WyHash (seed 1, processed in 32-byte
// blocks). No existing Go package implements WyHash with this exact
// seed and streaming behavior, so it is implemented directly here instead
// of imported. An alternate Hasher backed by github.com/cespare/xxhash/v2 is
// also exposed for callers that would rather not carry a hand-rolled hash;
// hashtable.Build can be pointed at either one via WithHasher.
package wyhash
