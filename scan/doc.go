// Package scan implements a non-recursive, resumable JSON and JSON5
// scanner: a pushdown automaton that turns a byte slice into a stream of
// Tokens without recursing on input nesting and without allocating on
// its hot path.
package scan
