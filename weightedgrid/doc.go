// Package weightedgrid implements the byte-per-cell padded terrain grid
// and its cost table. Each cell stores an 8-bit terrain code; code 0 is the
// out-of-bounds sentinel (cost 0, impassable). A CostTable resolves codes
// to real-valued costs.
package weightedgrid
