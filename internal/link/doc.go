// Package link cross-links two fully populated hashtable.Tables: given the
// same (strokes, translation) pairs that built them, it fills every
// entry's value field with the byte offset of its partner entry in the
// other table, so the query engine can hop from one table into the other.
package link
