package main

import (
	"math/rand"

	"github.com/hyperbolic-timechamber/collections-go/src/list"
)

// Sample records the list's shape after one operation.
type Sample struct {
	Size int
	Cap  int
}

// Result holds the trace of a workload run against a single list.
type Result struct {
	Samples  []Sample
	Appends  int
	Pops     int
	Reallocs int
}

func (r *Result) record(l *list.List[int]) {
	if n := len(r.Samples); n > 0 && r.Samples[n-1].Cap != l.Cap() {
		r.Reallocs++
	}
	r.Samples = append(r.Samples, Sample{Size: l.Len(), Cap: l.Cap()})
}

func (r *Result) Final() Sample {
	if len(r.Samples) == 0 {
		return Sample{}
	}
	return r.Samples[len(r.Samples)-1]
}

// Overhead is the ratio of allocated slots to live elements at the end of
// the run.
func (r *Result) Overhead() float64 {
	f := r.Final()
	if f.Size == 0 {
		return 0
	}
	return float64(f.Cap) / float64(f.Size)
}

func (r *Result) CapSeries() []float64 {
	s := make([]float64, len(r.Samples))
	for i, smp := range r.Samples {
		s[i] = float64(smp.Cap)
	}
	return s
}

func (r *Result) SizeSeries() []float64 {
	s := make([]float64, len(r.Samples))
	for i, smp := range r.Samples {
		s[i] = float64(smp.Size)
	}
	return s
}

// RunGrow appends ops elements to a fresh list and traces the capacity
// staircase produced by the doubling policy.
func RunGrow(ops, initialCap int) *Result {
	l := list.NewWithCapacity[int](initialCap)
	r := &Result{Samples: []Sample{{Size: l.Len(), Cap: l.Cap()}}}
	for i := 0; i < ops; i++ {
		l.Append(i)
		r.Appends++
		r.record(l)
	}
	return r
}

// RunChurn runs a seeded mix of appends and pops, tracing how the grow
// and shrink policies interact under sustained turnover.
func RunChurn(cfg *Config) *Result {
	rng := rand.New(rand.NewSource(cfg.Seed))
	l := list.NewWithCapacity[int](cfg.InitialCapacity)
	r := &Result{Samples: []Sample{{Size: l.Len(), Cap: l.Cap()}}}
	for i := 0; i < cfg.Ops; i++ {
		if l.IsEmpty() || rng.Float64() < cfg.AppendRatio {
			l.Append(i)
			r.Appends++
		} else {
			if _, err := l.Pop(-1); err != nil {
				break
			}
			r.Pops++
		}
		r.record(l)
	}
	return r
}
