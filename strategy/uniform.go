package strategy

import "golang.org/x/exp/rand"

// UniformSampling picks an action uniformly at random at every step.
type UniformSampling struct {
	rng  *rand.Rand
	arms int
}

func NewUniformSampling(seed uint64, arms int) *UniformSampling {
	return &UniformSampling{
		rng:  rand.New(rand.NewSource(seed)),
		arms: arms,
	}
}

func (s *UniformSampling) GetAction() int { return s.rng.Intn(s.arms) }

// Update is a no-op for this simple policy.
func (s *UniformSampling) Update(arm, reward int) {}

func (s *UniformSampling) Name() string { return "Uniform" }
