package metrics

import (
	"time"
)

type SearchMetric struct {
	Duration    time.Duration
	Iterations  int
	Expansions  int // Nodes created
	Playouts    int
	MaxDepth    int // Deepest depth charge
	TreeSize    int // Live nodes when the search stopped
	IsTreeReset bool
}

type MoveMetric struct {
	Step int
	Role string
	Move string
	SearchMetric
}

type GameMetric struct {
	Goals     map[string]int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Turns     int
}

// Collector gathers the metrics of one search. The searcher is single
// threaded, so collectors need no synchronization.
type Collector interface {
	Start()
	SetTreeReset(value bool)
	SetTreeSize(size int)
	AddIteration()
	AddExpansion(nodes int)
	AddPlayout(depth int)
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.metric = SearchMetric{}
}

func (m *collector) SetTreeReset(value bool) {
	m.metric.IsTreeReset = value
}

func (m *collector) SetTreeSize(size int) {
	m.metric.TreeSize = size
}

func (m *collector) AddIteration() {
	m.metric.Iterations++
}

func (m *collector) AddExpansion(nodes int) {
	m.metric.Expansions += nodes
}

func (m *collector) AddPlayout(depth int) {
	m.metric.Playouts++
	m.metric.MaxDepth = max(m.metric.MaxDepth, depth)
}

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	if !m.startTime.IsZero() {
		metric.Duration = time.Since(m.startTime)
	}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) SetTreeReset(value bool) {}
func (m *dummyCollector) SetTreeSize(size int)    {}
func (m *dummyCollector) AddIteration()           {}
func (m *dummyCollector) AddExpansion(nodes int)  {}
func (m *dummyCollector) AddPlayout(depth int)    {}
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
