package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one best-move computation.
type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	Cutoffs   int64
	Depth     int
}

// Collector accumulates search counters. Complete is a snapshot and may
// be called repeatedly while the search is still running.
type Collector interface {
	Start()
	AddNode()
	AddCutoff()
	SetDepth(depth int)
	Complete() SearchMetrics
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	depth     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.cutoffs.Store(0)
	c.depth.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) SetDepth(depth int) {
	c.depth.Store(int64(depth))
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: c.startTime,
		Duration:  time.Since(c.startTime),
		Nodes:     c.nodes.Load(),
		Cutoffs:   c.cutoffs.Load(),
		Depth:     int(c.depth.Load()),
	}
}

type noCollector struct{}

func NewNoCollector() Collector {
	return noCollector{}
}

func (noCollector) Start()                  {}
func (noCollector) AddNode()                {}
func (noCollector) AddCutoff()              {}
func (noCollector) SetDepth(int)            {}
func (noCollector) Complete() SearchMetrics { return SearchMetrics{} }
