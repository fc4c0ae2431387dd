// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodBuildGraph        = "BuildGraph"
	methodComplete          = "Complete"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodPath              = "Path"
	methodWheel             = "Wheel"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCompleteNodes is the smallest complete graph K_1.
const MinCompleteNodes = 1

// MinCycleNodes is the smallest cycle built here. C_3 coincides with K_3,
// which Complete already covers.
const MinCycleNodes = 4

// MinStarNodes is the smallest star: a hub plus two leaves.
const MinStarNodes = 3

// MinPathNodes is the smallest path with an edge.
const MinPathNodes = 2

// MinWheelNodes is a hub plus a rim of three.
const MinWheelNodes = 4

// MinPartition is the smallest side of a complete bipartite graph.
const MinPartition = 1

// MinGridDim is the smallest allowed grid dimension (1×1 has no edges but is valid).
const MinGridDim = 1

// HubVertex is the index of the hub in Star and Wheel.
const HubVertex = 0

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse's p.
const MaxProbability = 1.0
