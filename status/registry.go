package status

import (
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// Registry holds the frame counters the loop publishes for the debug display
type Registry struct {
	Ints *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints: NewMetricMap[atomic.Int64](),
	}
}

// Format joins every counter as "key: value" in key order
func (r *Registry) Format(sep string) string {
	var parts []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, k+": "+strconv.FormatInt(v.Load(), 10))
	})
	return strings.Join(parts, sep)
}

// Stats is a named set of float resources such as credits or wood
type Stats struct {
	values *MetricMap[AtomicFloat]
}

// NewStats creates stats seeded with initial values
func NewStats(initial map[string]float64) *Stats {
	s := &Stats{values: NewMetricMap[AtomicFloat]()}
	for k, v := range initial {
		s.values.Get(k).Set(v)
	}
	return s
}

// Get returns the value of name, 0 if never set
func (s *Stats) Get(name string) float64 {
	if v, ok := s.values.Lookup(name); ok {
		return v.Get()
	}
	return 0
}

// Change applies fn to the value of name, starting from 0 for a new stat
func (s *Stats) Change(name string, fn func(float64) float64) float64 {
	return s.values.Get(name).Update(fn)
}

// Format joins every stat as "key: value" rounded to integers, in key order
func (s *Stats) Format(sep string) string {
	var parts []string
	s.values.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, k+": "+strconv.FormatFloat(math.Round(v.Get()), 'f', 0, 64))
	})
	return strings.Join(parts, sep)
}
