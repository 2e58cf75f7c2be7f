// Package gridmap implements the bit-packed, padded uniform-cost grid
// described by the engine's core data model: a rectangular W×H map of
// traversable/blocked cells, stored with a fixed row/column padding scheme
// so that neighbourhood reads never need a bounds check.
//
// Two id spaces name a cell: packed ids index the logical W×H grid used at
// external interfaces; padded ids index the stored W'×H' grid used by every
// internal search data structure. Map.ToPadded/ToPacked convert between
// them; both wrap a plain uint64 so conversions are always explicit.
package gridmap
