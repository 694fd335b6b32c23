package searcher

import (
	"sort"
	"sync"

	"tetris/experiments/metrics"
	"tetris/game"
)

type Option func(s *Searcher)

// Decision is the move a Searcher settles on: optionally swap with the hold
// slot, then lock the falling piece at Placement.
type Decision struct {
	Swap      bool
	Placement game.Placement
}

// Searcher picks placements by scoring the board each one leads to.
type Searcher struct {
	heuristic  Heuristic
	weights    []float64
	goroutines int
	beamWidth  int
	depth      int
	evalLimit  int
	hold       bool
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithBeam looks depth pieces ahead, keeping the best width children of
// every expanded board.
func WithBeam(width, depth int) Option {
	return func(s *Searcher) {
		if width > 0 && depth > 0 {
			s.beamWidth = width
			s.depth = depth
		}
	}
}

// WithEvalLimit caps the number of boards evaluated by each lookahead.
func WithEvalLimit(limit int) Option {
	return func(s *Searcher) {
		if limit > 0 {
			s.evalLimit = limit
		}
	}
}

// WithHold also considers swapping with the hold slot before placing.
func WithHold() Option {
	return func(s *Searcher) {
		s.hold = true
	}
}

func WithHeuristic(h Heuristic) Option {
	return func(s *Searcher) {
		if len(h) > 0 {
			s.heuristic = h
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// New returns a greedy, single-goroutine searcher unless options say otherwise.
func New(weights []float64, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		heuristic:  DefaultHeuristic(),
		weights:    weights,
		goroutines: 1,
		beamWidth:  1,
		depth:      1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if len(s.weights) != len(s.heuristic) {
		panic("Must specify one weight per heuristic feature")
	}
	return s
}

type candidate struct {
	decision Decision
	root     *game.Game
}

// FindMove returns the best decision for g and the search metrics. It
// returns false when the falling piece has nowhere to go. g is not modified.
func (s *Searcher) FindMove(g *game.Game) (Decision, metrics.SearchMetric, bool) {
	s.metrics.Start(s.goroutines, s.depth, s.beamWidth)

	roots := []candidate{{root: g}}
	if s.hold && g.CanSwap() {
		swapped := g.Clone()
		if swapped.Swap().OK() && !swapped.GameOver() {
			roots = append(roots, candidate{decision: Decision{Swap: true}, root: swapped})
		}
	}

	var candidates []candidate
	for _, r := range roots {
		for _, p := range r.root.FindPossiblePlacements() {
			candidates = append(candidates, candidate{
				decision: Decision{Swap: r.decision.Swap, Placement: p},
				root:     r.root,
			})
		}
	}
	s.metrics.SetCandidates(len(candidates))
	if len(candidates) == 0 {
		return Decision{}, s.metrics.Complete(), false
	}

	scores := s.evaluate(candidates)
	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return candidates[best].decision, s.metrics.Complete(), true
}

// evaluate scores every candidate on its own clone, spreading the work over
// the configured goroutines.
func (s *Searcher) evaluate(candidates []candidate) []float64 {
	scores := make([]float64, len(candidates))
	task := make(chan int, len(candidates))
	for i := range candidates {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				scores[idx] = s.score(candidates[idx])
			}
		}()
	}

	wg.Wait()
	return scores
}

// score ranks a candidate by the board it leaves. Greedy search uses the
// heuristic alone; the lookahead accumulates drop scores below it.
func (s *Searcher) score(c candidate) float64 {
	child := c.root.Clone()
	drop, ok := child.Place(c.decision.Placement)
	if !ok {
		panic("search returned a placement that does not lock")
	}
	if s.depth == 1 {
		return s.predict(child)
	}
	return s.lookahead(child, drop+s.predict(child))
}

func (s *Searcher) predict(g *game.Game) float64 {
	s.metrics.AddEvaluation()
	snap := g.Snapshot(0)
	return s.heuristic.Predict(s.weights, &snap)
}

type beamNode struct {
	game  *game.Game
	score float64
	depth int
}

// lookahead expands root breadth first, keeping the best beamWidth children
// of every expanded node, and returns the best accumulated score on the
// deepest level reached. Reaching the eval limit stops the search and
// discards the children of the node being expanded.
func (s *Searcher) lookahead(root *game.Game, score float64) float64 {
	best := make([]float64, s.depth)
	reached := make([]bool, s.depth)
	open := []beamNode{{game: root, score: score}}
	evaluated := 0

search:
	for len(open) > 0 {
		node := open[0]
		open = open[1:]

		if !reached[node.depth] || node.score > best[node.depth] {
			best[node.depth] = node.score
			reached[node.depth] = true
		}
		if s.evalLimit > 0 && evaluated >= s.evalLimit {
			break
		}
		if node.depth == s.depth-1 {
			continue
		}

		var children []beamNode
		for _, p := range node.game.FindPossiblePlacements() {
			child := node.game.Clone()
			drop, ok := child.Place(p)
			if !ok {
				continue
			}
			children = append(children, beamNode{game: child, score: node.score + drop + s.predict(child), depth: node.depth + 1})
			evaluated++
			if s.evalLimit > 0 && evaluated >= s.evalLimit {
				break search
			}
		}

		sort.SliceStable(children, func(i, j int) bool { return children[i].score > children[j].score })
		if len(children) > s.beamWidth {
			children = children[:s.beamWidth]
		}
		open = append(open, children...)
	}

	for d := s.depth - 1; d > 0; d-- {
		if reached[d] {
			return best[d]
		}
	}
	return score
}
