// Package bandit implements the Bernoulli bandit environment and its
// latent change-point schedules.
package bandit

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ChangeSchedule describes when the latent reward distribution of a
// bandit problem changes.
type ChangeSchedule interface {
	// Changepoint reports whether the environment changes at trial t,
	// where t is 1-based and counted after the pull.
	Changepoint(t uint64) bool

	// CustomArmInit returns the bias vector to install at trial t. A nil
	// result applies no additional change beyond the default mechanism
	// of the bandit problem, which draws fresh biases.
	CustomArmInit(t uint64) []float64
}

// NoChange gives rise to a stationary problem.
type NoChange struct{}

func (NoChange) Changepoint(uint64) bool        { return false }
func (NoChange) CustomArmInit(uint64) []float64 { return nil }

// GeometricAbrupt generates a sequence of geometrically spaced
// change-points up front, so membership tests are O(1).
type GeometricAbrupt struct {
	cpts map[uint64]struct{}
}

// NewGeometricAbrupt samples inter-arrival gaps from Geometric(p) until
// maxTrials is reached.
func NewGeometricAbrupt(p float64, maxTrials uint64, seed uint64) *GeometricAbrupt {
	s := &GeometricAbrupt{cpts: make(map[uint64]struct{})}
	if p <= 0 {
		return s
	}

	// Geometric(p) is the floor of an exponential with rate -ln(1-p)
	gaps := distuv.Exponential{
		Rate: -math.Log1p(-p),
		Src:  rand.NewSource(seed),
	}

	upto := uint64(0)
	for {
		upto += uint64(gaps.Rand())
		if upto >= maxTrials {
			break
		}
		s.cpts[upto] = struct{}{}
	}
	return s
}

func (s *GeometricAbrupt) Changepoint(t uint64) bool {
	_, ok := s.cpts[t]
	return ok
}

func (s *GeometricAbrupt) CustomArmInit(uint64) []float64 { return nil }

// VectorAbrupt describes a change-point schedule by an unordered list
// of trial indices.
type VectorAbrupt struct {
	cpts map[uint64]struct{}
}

func NewVectorAbrupt(times []uint64) *VectorAbrupt {
	s := &VectorAbrupt{cpts: make(map[uint64]struct{}, len(times))}
	for _, t := range times {
		s.cpts[t] = struct{}{}
	}
	return s
}

func (s *VectorAbrupt) Changepoint(t uint64) bool {
	_, ok := s.cpts[t]
	return ok
}

func (s *VectorAbrupt) CustomArmInit(uint64) []float64 { return nil }

// TwoPhase is an adversarially chosen change-point scenario which
// penalises algorithms that perform well in the stationary case. The
// horizon splits into two equal segments; the best arm of the first
// segment keeps its value in the second but is no longer optimal.
// Construction inspired by Thm 31.2 in Bandit Algorithms, Lattimore et
// al.
type TwoPhase struct {
	halfway uint64
	seg1    []float64
	seg2    []float64
}

func NewTwoPhase(maxTrials uint64, seg1, seg2 []float64) *TwoPhase {
	return &TwoPhase{halfway: maxTrials / 2, seg1: seg1, seg2: seg2}
}

func (s *TwoPhase) Changepoint(t uint64) bool {
	return t == s.halfway || t == 1
}

func (s *TwoPhase) CustomArmInit(t uint64) []float64 {
	if t < s.halfway {
		return s.seg1
	}
	return s.seg2
}
