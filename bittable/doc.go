// Package bittable provides a dense rectangular array of fixed-width cells
// packed into a flat word buffer.
//
// A Table packs W×H cells of B bits each (B one of 1, 2, 4, 8, 16, 32, 64)
// into a []byte backing store addressed in little-endian bit order. New
// allocates a Table with its own buffer; Setup instead points a Table at a
// caller-owned buffer, which may be shared between two Tables (they alias).
package bittable
