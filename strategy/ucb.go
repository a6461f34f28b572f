package strategy

import (
	"math"

	"golang.org/x/exp/rand"
)

// UCB implements the UCB1 policy of Auer et al.
type UCB struct {
	// limited amount of randomness in this policy: unvisited arms are
	// played in a random order
	rng *rand.Rand

	arms      int
	armReward []float64
	armVisits []float64
	visits    float64
}

func NewUCB(seed uint64, arms int) *UCB {
	return &UCB{
		rng:       rand.New(rand.NewSource(seed)),
		arms:      arms,
		armReward: make([]float64, arms),
		armVisits: make([]float64, arms),
	}
}

func (s *UCB) GetAction() int {
	// if there are any unvisited arms, pick one uniformly at random
	if unvisited := s.unvisitedArms(); len(unvisited) > 0 {
		return unvisited[s.rng.Intn(len(unvisited))]
	}

	// ...otherwise pick the arm with the maximising UCB score
	best := math.Inf(-1)
	bestIdx := 0

	for i := 0; i < s.arms; i++ {
		if score := s.ucb(i); score > best {
			best = score
			bestIdx = i
		}
	}

	return bestIdx
}

func (s *UCB) Update(arm, reward int) {
	s.armReward[arm] += float64(reward)
	s.armVisits[arm]++
	s.visits++
}

// Reset clears the mean/visit statistics.
func (s *UCB) Reset() {
	s.visits = 0
	for i := 0; i < s.arms; i++ {
		s.armReward[i] = 0
		s.armVisits[i] = 0
	}
}

func (s *UCB) unvisitedArms() []int {
	var rval []int
	for arm := 0; arm < s.arms; arm++ {
		if s.armVisits[arm] == 0 {
			rval = append(rval, arm)
		}
	}
	return rval
}

func (s *UCB) ucb(arm int) float64 {
	mean := s.armReward[arm] / s.armVisits[arm]
	ci := math.Sqrt(2 * math.Log(s.visits) / s.armVisits[arm])
	return mean + ci
}

func (s *UCB) Name() string { return "UCB" }
