// Package value implements the tree builder layered on top of scan: it
// drives a scan.Scanner to exhaustion and assembles a typed, ordered,
// non-recursively torn-down document graph from a caller-supplied
// Allocator.
package value
