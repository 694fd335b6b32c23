package metrics

import (
	"sync/atomic"
	"time"
)

// AgentConfig describes one searcher setup taking part in an experiment.
type AgentConfig struct {
	ID         int
	Scorer     string // "classic" or "modern"
	Goroutines int
	BeamWidth  int
	Depth      int
	EvalLimit  int
	Hold       bool
	Weights    []float64
}

type SearchMetric struct {
	Goroutines int
	Depth      int
	BeamWidth  int
	Candidates int // placements considered for the falling piece
	Evaluated  int // placements evaluated, lookahead included
	Duration   time.Duration
}

type MoveMetric struct {
	Step  int
	Piece string
	Swap  bool
	Score float64
	SearchMetric
}

type GameMetric struct {
	Seed          uint64
	Score         float64
	Pieces        int
	Lines         int
	TSpins        int
	PerfectClears int
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}

type Collector interface {
	Start(goroutines, depth, beamWidth int)
	SetCandidates(n int)
	AddEvaluation()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	beamWidth  int
	startTime  time.Time
	candidates atomic.Int32
	evaluated  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth, beamWidth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.beamWidth = beamWidth
	m.candidates.Store(0)
	m.evaluated.Store(0)
}

func (m *collector) SetCandidates(n int) {
	m.candidates.Store(int32(n))
}

func (m *collector) AddEvaluation() {
	m.evaluated.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		BeamWidth:  m.beamWidth,
		Candidates: int(m.candidates.Load()),
		Evaluated:  int(m.evaluated.Load()),
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth, beamWidth int) {}
func (m *dummyCollector) SetCandidates(n int)                   {}
func (m *dummyCollector) AddEvaluation()                        {}
func (m *dummyCollector) Complete() SearchMetric                { return SearchMetric{} }
