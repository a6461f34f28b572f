package strategy

import (
	"math"

	"golang.org/x/exp/rand"
)

// BernoulliRelEntropy is the relative entropy between B(p) and B(q),
// handling the edge cases.
func BernoulliRelEntropy(p, q float64) float64 {
	if p < 0 || q < 0 || p > 1 || q > 1 {
		return math.NaN()
	}

	// handle singularities
	if p == 0 && q == 0 {
		return 0
	}
	if p == 1 && q == 1 {
		return 0
	}

	if p == 0 {
		return -math.Log(1 - q)
	}
	if p == 1 {
		return -math.Log(q)
	}

	if q == 0 || q == 1 {
		return math.Inf(1)
	}

	// otherwise
	return p*math.Log(p/q) + (1-p)*math.Log((1-p)/(1-q))
}

// KLUCB implements the KL-UCB policy for Bernoulli rewards.
type KLUCB struct {
	rng *rand.Rand

	arms         int
	armSuccesses []float64
	armVisits    []float64
	visits       float64
}

func NewKLUCB(seed uint64, arms int) *KLUCB {
	return &KLUCB{
		rng:          rand.New(rand.NewSource(seed)),
		arms:         arms,
		armSuccesses: make([]float64, arms),
		armVisits:    make([]float64, arms),
	}
}

func (s *KLUCB) GetAction() int {
	// if there are any unvisited arms, pick one uniformly at random
	if unvisited := s.unvisitedArms(); len(unvisited) > 0 {
		return unvisited[s.rng.Intn(len(unvisited))]
	}

	// ...otherwise pick the arm with the maximising KL-UCB score
	best := math.Inf(-1)
	bestIdx := 0

	for i := 0; i < s.arms; i++ {
		if score := s.klUCB(i); score > best {
			best = score
			bestIdx = i
		}
	}

	return bestIdx
}

func (s *KLUCB) Update(arm, reward int) {
	s.armSuccesses[arm] += float64(reward)
	s.armVisits[arm]++
	s.visits++
}

// Reset clears the mean/visit statistics.
func (s *KLUCB) Reset() {
	s.visits = 0
	for i := 0; i < s.arms; i++ {
		s.armSuccesses[i] = 0
		s.armVisits[i] = 0
	}
}

func (s *KLUCB) unvisitedArms() []int {
	var rval []int
	for arm := 0; arm < s.arms; arm++ {
		if s.armVisits[arm] == 0 {
			rval = append(rval, arm)
		}
	}
	return rval
}

func (s *KLUCB) klUCB(arm int) float64 {
	t := s.visits + 1

	// the form taken from Bandit Algorithms, Lattimore et al. This is
	// slightly different to the original KL-UCB (arXiv:1102.2490),
	// which has a tunable c parameter.
	f := func(x float64) float64 {
		lx := math.Log(x)
		return 1 + x*lx*lx
	}

	ub := math.Log(f(t)) / s.armVisits[arm]
	p := s.armSuccesses[arm] / s.armVisits[arm]

	return maxRelEntropy(p, ub)
}

// maxRelEntropy finds the largest q in [p,1] with d(p,q) <= ub by
// bisection. The initial guess always satisfies the constraint since
// d(p,p) = 0.
func maxRelEntropy(p, ub float64) float64 {
	// desired precision
	const eps = 1e-8

	low, high := p, 1.0

	for high-low > eps {
		q := low + (high-low)/2
		if BernoulliRelEntropy(p, q) > ub {
			high = q
		} else {
			low = q
		}
	}

	return low
}

func (s *KLUCB) Name() string { return "KLUCB" }
