package strategy

import (
	"math"

	"golang.org/x/exp/rand"

	"aptw/ptw"
)

// ThompsonSampling models each arm with a Beta distribution updated by
// Bayesian inference and plays the argmax of one posterior draw per
// arm.
type ThompsonSampling struct {
	src   rand.Source
	model []ptw.KT
}

func NewThompsonSampling(seed uint64, arms int) *ThompsonSampling {
	return &ThompsonSampling{
		src:   rand.NewSource(seed),
		model: make([]ptw.KT, arms),
	}
}

func (s *ThompsonSampling) GetAction() int {
	best := math.Inf(-1)
	bestIdx := 0

	for i := range s.model {
		r := sampleBeta(s.src, s.model[i].Posterior())
		if r > best {
			best = r
			bestIdx = i
		}
	}

	return bestIdx
}

func (s *ThompsonSampling) Update(arm, reward int) {
	s.model[arm].Update(reward)
}

func (s *ThompsonSampling) Name() string { return "TS" }
