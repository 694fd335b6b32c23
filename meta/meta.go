// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines evaluating placements.
const GO_ROUTINES = 4

// WORKERS defines the number of games played concurrently.
const WORKERS = 8

// GAMES defines the number of seeds each agent is evaluated on.
const GAMES = 20

// MAX_PIECES caps the length of a game.
const MAX_PIECES = 500

// BEAM_WIDTH and BEAM_DEPTH define the lookahead of the beam searcher.
const BEAM_WIDTH = 4
const BEAM_DEPTH = 2

// EVAL_LIMIT caps the boards evaluated per lookahead.
const EVAL_LIMIT = 400

// DefaultWeights follow searcher.DefaultHeuristic: aggregate height, complete
// lines, holes, hole distance, hole depth, bumpiness, max height, T-spin
// triple, diff.
var DefaultWeights = []float64{-0.510066, 0.760666, -0.35663, 0, 0, -0.184483, 0, 0, 0}
