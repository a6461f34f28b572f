// Package metrics aggregates per-episode regret traces into the
// summary statistics used by plot mode.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// EpisodeRecord is the trace of one agent-environment episode.
type EpisodeRecord struct {
	Agent  string
	Seed   uint64
	Regret []float64
}

// Curves extracts the raw regret curves from a set of records.
func Curves(records []EpisodeRecord) [][]float64 {
	curves := make([][]float64, len(records))
	for i, r := range records {
		curves[i] = r.Regret
	}
	return curves
}

// Aggregate reduces repeated regret curves to a per-step mean and a
// 95% normal confidence half-width (1.96 standard errors).
func Aggregate(curves [][]float64) (mean, ci []float64) {
	repeats := len(curves)
	steps := len(curves[0])

	mean = make([]float64, steps)
	ci = make([]float64, steps)

	col := make([]float64, repeats)
	for t := 0; t < steps; t++ {
		for j, curve := range curves {
			col[j] = curve[t]
		}
		mean[t] = stat.Mean(col, nil)
		stderr := stat.StdDev(col, nil) / math.Sqrt(float64(repeats))
		ci[t] = 1.96 * stderr
	}

	return mean, ci
}
