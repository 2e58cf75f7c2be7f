package gridmap

// PackedID names a cell by its position in the logical W×H grid:
// id = y*W + x. This is the id space every external interface — queries,
// emitted paths, scenario records — uses.
type PackedID uint64

// PaddedID names a cell by its position in the stored, padded W'×H' grid.
// Every internal search data structure (NodePool, PriorityQueue,
// ExpansionPolicy) is keyed by PaddedID.
type PaddedID uint64

// NoPackedID is the sentinel "none" packed id.
const NoPackedID PackedID = ^PackedID(0)

// NoPaddedID is the sentinel "none" padded id.
const NoPaddedID PaddedID = ^PaddedID(0)

// PaddingRows is the fixed number of zeroed rows added above and below the
// real map (P_rows in the spec).
const PaddingRows = 3
