package strategy

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"aptw/ptw"
)

// sampleBeta draws from a Beta distribution using the gamma
// construction: if X~Gamma(a,1) and Y~Gamma(b,1) then X/(X+Y) ~
// Beta(a,b). A draw where both gammas underflow to zero is retried.
func sampleBeta(src rand.Source, p ptw.Beta) float64 {
	xDist := distuv.Gamma{Alpha: p.Alpha, Beta: 1, Src: src}
	yDist := distuv.Gamma{Alpha: p.Beta, Beta: 1, Src: src}

	for {
		x := xDist.Rand()
		y := yDist.Rand()
		z := x / (x + y)
		if !math.IsNaN(z) {
			return z
		}
	}
}

// sampleCategorical draws an index proportionally to the given
// unnormalised non-negative weights.
func sampleCategorical(src rand.Source, weights []float64) int {
	dist := distuv.NewCategorical(weights, src)
	return int(dist.Rand())
}
