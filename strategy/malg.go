package strategy

import (
	"math"

	"golang.org/x/exp/rand"
)

// MALG schedules nested UCB instances over geometrically spaced
// timescales to cope with abrupt changes. See arXiv:2102.05406 for
// algorithm details; the MASTER wrapper described there is not
// implemented.
type MALG struct {
	rng   *rand.Rand
	seed  uint64
	arms  int
	depth int
	tau   uint64

	instances []*malgInstance
}

// malgInstance is one embedded UCB covering the segment [start, end].
type malgInstance struct {
	alg   *UCB
	start uint64
	end   uint64
}

// length is the segment length.
func (in *malgInstance) length() uint64 { return in.end - in.start + 1 }

func NewMALG(seed uint64, arms, depth int) *MALG {
	return &MALG{
		rng:       rand.New(rand.NewSource(seed)),
		seed:      seed,
		arms:      arms,
		depth:     depth,
		tau:       1,
		instances: make([]*malgInstance, depth+1),
	}
}

func (s *MALG) GetAction() int {
	// handle the resetting schedule
	for off := 0; off <= s.depth; off++ {
		m := s.depth - off

		// slot m is only eligible when tau-1 is a multiple of 2^m
		if (s.tau-1)%(uint64(1)<<uint(m)) != 0 {
			continue
		}

		threshold := s.rho(math.Pow(2, float64(s.depth))) / s.rho(math.Pow(2, float64(m)))
		if s.rng.Float64() >= threshold {
			continue
		}

		start := s.tau
		end := s.tau + uint64(1)<<uint(m) - 1

		// reset the UCB instance
		if s.instances[m] == nil {
			// use different seeds for different levels
			s.instances[m] = &malgInstance{
				alg:   NewUCB(s.seed+uint64(m), s.arms),
				start: start,
				end:   end,
			}
		} else {
			s.instances[m].start = start
			s.instances[m].end = end
			s.instances[m].alg.Reset()
		}
	}

	return s.instances[s.activeInstance()].alg.GetAction()
}

func (s *MALG) Update(arm, reward int) {
	s.instances[s.activeInstance()].alg.Update(arm, reward)
	s.tau++
}

// rho is the average regret bound used to schedule UCB instances.
func (s *MALG) rho(t float64) float64 {
	a := float64(s.arms)
	return math.Sqrt(a/t) + a/t
}

// activeInstance finds the live instance with the smallest segment
// containing the current step. The reset schedule guarantees one
// always exists: the top slot is seeded at tau=1 with probability one.
func (s *MALG) activeInstance() int {
	best := uint64(math.MaxUint64)
	bestIdx := -1

	for i, in := range s.instances {
		if in == nil || s.tau < in.start || s.tau > in.end {
			continue
		}
		if in.length() < best {
			best = in.length()
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		panic("strategy: no active MALG instance")
	}

	return bestIdx
}

func (s *MALG) Name() string { return "MALG" }
