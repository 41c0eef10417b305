// Package hashtable implements the packed-per-bucket hash table: a
// two-phase builder that sizes bucket regions in one pass and places
// entries in a second pass, producing stable byte offsets that the linker
// package then cross-links between a strokes table and a strings table.
//
// Open addressing is deliberately not used: packed-per-bucket arrays allow
// an entirely offline sizing/layout pass and give every entry a stable
// offset, which cross-linking depends on. A zero-length header already
// marks an empty slot, since Data starts zero-filled, so there is no need
// for a separate empty-bucket sentinel value.
package hashtable
