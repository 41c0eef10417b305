// Package container is the host-supplied allocator: it owns a word buffer
// (32-bit machine words, used for bucket tables and counts) and a byte
// buffer (bucket data), whose initial capacity is rounded up to coarse
// pages the way a sandboxed host would provide memory. No general
// allocator package fits this two-buffer shape, so it is hand-rolled.
// Tables are not built inside a Container: image assembly copies each
// built Table's buckets and data into one Container, then wraps views of
// its buffers with hashtable.FromParts.
package container
