// Package coloring maintains a partial proper coloring of a bitgraph.Graph with a
// fixed palette of k colors and answers "may vertex u take color c right now?"
// in O(1).
//
// For every (vertex u, color c) pair the State keeps an attack count: the number
// of colored neighbours of u currently using c. A color is legal for u exactly
// when its attack count is zero. Assign and Unassign update the counts of all
// neighbours in O(deg(u)) and are exact inverses, which is what lets a search
// explore a child position and restore the parent bit for bit.
//
// Uncolored is the companion bitmask of vertices without a color. It is a cache
// owned by the caller: the State's per-vertex color slot is the ground truth and
// the caller keeps the two in lockstep (one Remove per Assign, one Add per
// Unassign).
//
// Errors:
//
//   - ErrNilGraph, ErrPaletteSize: returned by New.
//   - ErrVertexOutOfRange, ErrColorOutOfRange, ErrAlreadyColored, ErrColorMismatch:
//     programmer-contract violations; Assign and Unassign panic with an error
//     wrapping one of these, since continuing would corrupt every later query.
//   - ErrInvariant: reported by CheckInvariants.
package coloring
