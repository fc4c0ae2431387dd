// Package builder provides reusable “functional-options”-style constructors for
// canonical bitgraph.Graph topologies used as fixtures, examples and corpus seeds
// for the coloring game.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(n, bopts, cons...): allocate an n-vertex graph, resolve options,
//     apply constructors in order.
//     – Constructor: func(g *bitgraph.Graph, cfg builderConfig) error.
//   - Topologies (each laid onto vertices [0, size) of the target graph):
//     – Complete(n), Cycle(n), Star(n), Path(n), Wheel(n),
//     CompleteBipartite(n1, n2), Grid(rows, cols), RandomSparse(n, p).
//   - Convenience factories: CompleteGraph, CycleGraph, StarGraph, PathGraph.
//   - Configuration primitives:
//     – BuilderOption: WithSeed, WithRand.
//
// Guarantees:
//
//   - Idempotent composition: an edge already present is skipped, never
//     double-counted, so constructors overlap safely (e.g. Cycle then Star).
//   - Deterministic emission order; deterministic RandomSparse for a fixed seed.
//   - Structured runtime errors wrapping sentinels (ErrTooFewVertices,
//     ErrTooManyVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed); callers branch with errors.Is.
//   - Fast-fail panics are confined to option constructors (WithRand(nil)).
package builder
