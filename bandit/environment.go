package bandit

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Environment is an n-armed Bernoulli stochastic bandit problem,
// parametrised by a change-point schedule.
type Environment struct {
	src      rand.Source
	rng      *rand.Rand
	schedule ChangeSchedule

	trials     uint64
	cumReward  float64
	thetas     []float64
	expCumBest float64
}

// NewEnvironment constructs a Bernoulli bandit problem. A nil schedule
// defaults to the stationary case. Initial biases are drawn uniformly
// from the unit interval.
func NewEnvironment(arms int, seed uint64, schedule ChangeSchedule) *Environment {
	if schedule == nil {
		schedule = NoChange{}
	}

	src := rand.NewSource(seed)
	e := &Environment{
		src:      src,
		rng:      rand.New(src),
		schedule: schedule,
		thetas:   make([]float64, arms),
	}
	e.Reset()
	return e
}

// Pull plays an arm and returns the sampled reward.
func (e *Environment) Pull(arm int) float64 {
	if arm < 0 || arm >= len(e.thetas) {
		panic(fmt.Sprintf("bandit: invalid arm index %d", arm))
	}

	e.trials++

	coin := distuv.Bernoulli{P: e.thetas[arm], Src: e.src}
	r := coin.Rand()

	e.cumReward += r
	e.expCumBest += e.thetas[e.BestArm()]

	if e.schedule.Changepoint(e.trials) {
		newThetas := e.schedule.CustomArmInit(e.trials)
		if len(newThetas) == 0 {
			// default to fresh biases drawn uniformly at random
			e.Reset()
		} else {
			if len(newThetas) != len(e.thetas) {
				panic(fmt.Sprintf("bandit: arm initialisation of size %d for %d arms",
					len(newThetas), len(e.thetas)))
			}
			copy(e.thetas, newThetas)
		}
	}

	return r
}

// Reset redraws the underlying true reward distribution.
func (e *Environment) Reset() {
	for i := range e.thetas {
		e.thetas[i] = e.rng.Float64()
	}
}

// BestArm is the arm with the highest latent bias.
func (e *Environment) BestArm() int {
	best := 0
	for i, th := range e.thetas {
		if th > e.thetas[best] {
			best = i
		}
	}
	return best
}

// Trials is the total number of times any arm has been pulled.
func (e *Environment) Trials() uint64 { return e.trials }

// Arms is the number of arms in the bandit problem.
func (e *Environment) Arms() int { return len(e.thetas) }

// CumulativeReward is the reward accumulated so far.
func (e *Environment) CumulativeReward() float64 { return e.cumReward }

// BestHindsightExpectedReturn is the expected return of always playing
// the best arm at each time step, used to calculate regret.
func (e *Environment) BestHindsightExpectedReturn() float64 { return e.expCumBest }

// Changepoint reports whether a change fired at the just-completed
// trial. Queried before the next pull, it flags the first trial played
// against the freshly installed biases, so harnesses observe a change
// one step after it takes effect.
func (e *Environment) Changepoint() bool {
	return e.schedule.Changepoint(e.trials)
}

func (e *Environment) String() string {
	var b strings.Builder
	b.WriteString("Biases:")
	for _, th := range e.thetas {
		fmt.Fprintf(&b, " %v", th)
	}
	fmt.Fprintf(&b, "\nBest arm index: %d\n", e.BestArm())
	return b.String()
}
