package strategy

import (
	"math"

	"golang.org/x/exp/rand"
)

// useUniformExploration selects between uniformly random forced
// exploration and the least-explored-arm alternative.
const useUniformExploration = true

// ParanoidPTW is ActivePTW with forced exploration whose rate depends
// on the sampled segment length and the elapsed time.
type ParanoidPTW struct {
	rng    *rand.Rand
	arms   int
	aptw   *ActivePTW
	trials uint64
}

func NewParanoidPTW(seed uint64, arms int) *ParanoidPTW {
	return &ParanoidPTW{
		rng:  rand.New(rand.NewSource(seed)),
		arms: arms,
		aptw: NewActivePTW(seed, arms),
	}
}

func (s *ParanoidPTW) GetAction() int {
	level := s.aptw.SampleLevel()

	// after sampling from the posterior over levels, see whether forced
	// exploration fires, at the rate matching the sampled segment size;
	// the exponent k is clipped to at most ln(trials+1)+1
	lp := s.aptw.LevelPosterior()
	k := (len(lp) - 1) - level // segment size = 2^k
	clip := math.Log(float64(s.trials+1)) + 1.0
	for float64(k) > clip {
		k--
	}

	if s.rng.Float64() < exploreProb(k) {
		if useUniformExploration {
			return s.rng.Intn(s.arms)
		}
		return s.leastExploredArm(level)
	}

	return s.aptw.argmaxAtLevel(level)
}

func (s *ParanoidPTW) Update(arm, reward int) {
	s.aptw.Update(arm, reward)
	s.trials++
}

func (s *ParanoidPTW) Name() string { return "ParanoidPTW" }

// exploreProb is the rate of forced exploration for a segment of size
// 2^k, clamped to a probability.
func exploreProb(log2SegmentSize int) float64 {
	k := float64(log2SegmentSize)

	prob := math.Pow(2, -k) * (math.Pow(2, k/2) - k*math.Ln2)

	return math.Min(1, math.Max(0, prob))
}

// leastExploredArm picks the arm with the fewest observations in the
// segment at the given level.
func (s *ParanoidPTW) leastExploredArm(level int) int {
	best := math.Inf(1)
	bestIdx := 0

	for arm := 0; arm < s.arms; arm++ {
		ss := s.aptw.Model().Posterior(level, arm)
		if cnt := ss.Alpha + ss.Beta; cnt < best {
			best = cnt
			bestIdx = arm
		}
	}

	return bestIdx
}
