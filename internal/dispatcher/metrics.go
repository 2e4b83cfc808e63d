package dispatcher

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// CommandStats accumulates dispatches of one command name.
type CommandStats struct {
	Name   string
	Count  uint64
	Errors uint64
	Total  time.Duration
	Max    time.Duration
}

// Average returns the mean dispatch duration.
func (s CommandStats) Average() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// ErrorRate returns the fraction of dispatches that failed, in [0, 1].
func (s CommandStats) ErrorRate() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Errors) / float64(s.Count)
}

// Summary is a point-in-time report of a Metrics collector.
type Summary struct {
	Dispatches uint64
	Errors     uint64
	Panics     uint64
	Average    time.Duration

	// Busiest lists the most dispatched commands, most first.
	Busiest []CommandStats

	// Slowest lists commands by average duration, slowest first.
	Slowest []CommandStats
}

// Metrics collects dispatch counts and timings per command name.
// It is safe for concurrent use.
type Metrics struct {
	mu       sync.Mutex
	commands map[string]*CommandStats

	dispatches uint64
	errors     uint64
	panics     uint64
	total      time.Duration
}

// NewMetrics creates an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{commands: make(map[string]*CommandStats)}
}

// Record adds one dispatch of the named command.
func (m *Metrics) Record(name string, d time.Duration, status ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dispatches++
	m.total += d

	cs := m.stats(name)
	cs.Count++
	cs.Total += d
	cs.Max = max(cs.Max, d)
	if status == StatusError {
		m.errors++
		cs.Errors++
	}
}

// RecordPanic counts a recovered handler panic. The dispatch itself is
// recorded separately as an error.
func (m *Metrics) RecordPanic(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.panics++
	m.stats(name)
}

func (m *Metrics) stats(name string) *CommandStats {
	cs := m.commands[name]
	if cs == nil {
		cs = &CommandStats{Name: name}
		m.commands[name] = cs
	}
	return cs
}

// Command returns the stats for one command name.
func (m *Metrics) Command(name string) (CommandStats, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cs, ok := m.commands[name]
	if !ok {
		return CommandStats{}, false
	}
	return *cs, true
}

// Summary reports the totals and the top n commands by count and by
// average duration. Ties are broken by name.
func (m *Metrics) Summary(n int) Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Summary{
		Dispatches: m.dispatches,
		Errors:     m.errors,
		Panics:     m.panics,
	}
	if m.dispatches > 0 {
		s.Average = m.total / time.Duration(m.dispatches)
	}

	all := make([]CommandStats, 0, len(m.commands))
	for _, cs := range m.commands {
		if cs.Count > 0 {
			all = append(all, *cs)
		}
	}
	n = min(max(n, 0), len(all))

	slices.SortFunc(all, func(a, b CommandStats) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Name, b.Name))
	})
	s.Busiest = slices.Clone(all[:n])

	slices.SortFunc(all, func(a, b CommandStats) int {
		return cmp.Or(cmp.Compare(b.Average(), a.Average()), cmp.Compare(a.Name, b.Name))
	})
	s.Slowest = slices.Clone(all[:n])

	return s
}
