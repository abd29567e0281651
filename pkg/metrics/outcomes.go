package metrics

import (
	"sort"
	"sync"
)

// SourceCount reports how often a data source produced a given outcome.
type SourceCount struct {
	Source  string `json:"source"`
	Outcome string `json:"outcome"`
	Count   int64  `json:"count"`
}

// OutcomeCounter tallies upstream outcomes per data source.
type OutcomeCounter struct {
	mu     sync.Mutex
	counts map[string]map[string]int64
}

// NewOutcomeCounter constructs an empty counter.
func NewOutcomeCounter() *OutcomeCounter {
	return &OutcomeCounter{counts: make(map[string]map[string]int64)}
}

// Inc records one occurrence of outcome for source.
func (c *OutcomeCounter) Inc(source, outcome string) {
	if source == "" || outcome == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	bySource, ok := c.counts[source]
	if !ok {
		bySource = make(map[string]int64)
		c.counts[source] = bySource
	}
	bySource[outcome]++
}

// Snapshot returns the counters sorted by source then outcome.
func (c *OutcomeCounter) Snapshot() []SourceCount {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]SourceCount, 0, len(c.counts)*3)
	for source, outcomes := range c.counts {
		for outcome, count := range outcomes {
			out = append(out, SourceCount{Source: source, Outcome: outcome, Count: count})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source == out[j].Source {
			return out[i].Outcome < out[j].Outcome
		}
		return out[i].Source < out[j].Source
	})
	return out
}
