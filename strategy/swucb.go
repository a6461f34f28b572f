package strategy

import (
	"math"

	"golang.org/x/exp/rand"
)

// SlidingUCB is Sliding-Window UCB (arXiv:0805.3415): UCB1 whose
// statistics only cover the most recent window of pulls.
type SlidingUCB struct {
	rng *rand.Rand

	arms      int
	window    int
	plays     []int
	rewards   []float64
	armReward []float64
	armVisits []float64
}

func NewSlidingUCB(seed uint64, arms, window int) *SlidingUCB {
	return &SlidingUCB{
		rng:       rand.New(rand.NewSource(seed)),
		arms:      arms,
		window:    window,
		armReward: make([]float64, arms),
		armVisits: make([]float64, arms),
	}
}

func (s *SlidingUCB) GetAction() int {
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

func (s *SlidingUCB) Update(arm, reward int) {
	s.plays = append(s.plays, arm)
	s.rewards = append(s.rewards, float64(reward))
	s.armReward[arm] += float64(reward)
	s.armVisits[arm]++

	if len(s.plays) > s.window {
		s.armVisits[s.plays[0]]--
		s.armReward[s.plays[0]] -= s.rewards[0]
		s.plays = s.plays[1:]
		s.rewards = s.rewards[1:]
	}
}

// Reset clears the window and the mean/visit statistics.
func (s *SlidingUCB) Reset() {
	s.plays = nil
	s.rewards = nil
	for i := 0; i < s.arms; i++ {
		s.armReward[i] = 0
		s.armVisits[i] = 0
	}
}

func (s *SlidingUCB) unvisitedArms() []int {
	var rval []int
	for arm := 0; arm < s.arms; arm++ {
		if s.armVisits[arm] == 0 {
			rval = append(rval, arm)
		}
	}
	return rval
}

func (s *SlidingUCB) ucb(arm int) float64 {
	mean := s.armReward[arm] / s.armVisits[arm]
	ci := math.Sqrt(2 * math.Log(float64(len(s.plays))) / s.armVisits[arm])
	return mean + ci
}

func (s *SlidingUCB) Name() string { return "SlidingUCB" }
