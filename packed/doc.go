// Package packed provides the bit-field codecs used throughout the router:
// half-open Range values packed into a uint32, the shared 24/8-bit join
// those ranges are built from, and the 64-bit Criteria tuple the Pareto
// frontier and router operate on directly rather than through a struct.
package packed
