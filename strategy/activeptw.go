package strategy

import (
	"math"

	"golang.org/x/exp/rand"

	"aptw/ptw"
)

// ptwDepth is the segmentation depth used by the PTW-based policies,
// supporting episodes of up to 2^30 steps.
const ptwDepth = 30

// ActivePTW samples a temporal segment according to its posterior
// weight, then from each arm's posterior at that level, and plays the
// argmax of the draws.
type ActivePTW struct {
	src   rand.Source
	model *ptw.Tree
	arms  int
}

func NewActivePTW(seed uint64, arms int) *ActivePTW {
	return &ActivePTW{
		src:   rand.NewSource(seed),
		model: ptw.NewTree(ptwDepth, arms),
		arms:  arms,
	}
}

func (s *ActivePTW) GetAction() int {
	return s.argmaxAtLevel(s.SampleLevel())
}

// argmaxAtLevel draws one Beta sample per arm conditional on the given
// segmentation level and returns the best arm.
func (s *ActivePTW) argmaxAtLevel(level int) int {
	best := math.Inf(-1)
	bestIdx := 0

	for i := 0; i < s.arms; i++ {
		r := sampleBeta(s.src, s.model.Posterior(level, i))
		if r > best {
			best = r
			bestIdx = i
		}
	}

	return bestIdx
}

func (s *ActivePTW) Update(arm, reward int) {
	s.model.Update(reward, arm)
}

// SampleLevel draws a segmentation level from the level posterior.
func (s *ActivePTW) SampleLevel() int {
	return sampleCategorical(s.src, s.model.LevelPosterior())
}

// LevelPosterior is the posterior probability of each segment length.
func (s *ActivePTW) LevelPosterior() []float64 {
	return s.model.LevelPosterior()
}

// Model gives access to the underlying PTW statistics.
func (s *ActivePTW) Model() *ptw.Tree { return s.model }

func (s *ActivePTW) Name() string { return "ActivePTW" }
