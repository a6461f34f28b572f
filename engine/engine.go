// Package engine drives the sequential agent-environment loop of a
// bandit episode.
package engine

import (
	"fmt"
	"io"

	"aptw/bandit"
	"aptw/strategy"
)

// Run plays the given number of trials of the agent-environment loop.
func Run(env *bandit.Environment, agent strategy.Strategy, trials int) {
	for t := 0; t < trials; t++ {
		arm := agent.GetAction()
		r := env.Pull(arm)
		agent.Update(arm, int(r))
	}
}

// RunRecorded plays the given number of trials and records the
// cumulative regret after each step, together with the change-points
// observed by querying the environment before each pull. The schedule
// fires one trial before the query sees it, so a change is logged at
// t+1: the first trial played against the freshly installed biases.
func RunRecorded(env *bandit.Environment, agent strategy.Strategy, trials int) (regret []float64, changepts []uint64) {
	regret = make([]float64, 0, trials)

	for t := 0; t < trials; t++ {
		if env.Changepoint() {
			changepts = append(changepts, uint64(t+1))
		}

		arm := agent.GetAction()
		r := env.Pull(arm)
		agent.Update(arm, int(r))

		regret = append(regret, env.BestHindsightExpectedReturn()-env.CumulativeReward())
	}

	return regret, changepts
}

// WriteSummary writes the end-of-episode statistics of the bandit
// problem.
func WriteSummary(w io.Writer, env *bandit.Environment) {
	trials := float64(env.Trials())
	regret := env.BestHindsightExpectedReturn() - env.CumulativeReward()

	fmt.Fprintf(w, "%d trials completed.\n", env.Trials())
	fmt.Fprintf(w, "Total Reward: %v\n", env.CumulativeReward())
	fmt.Fprintf(w, "Regret: %v\n", regret)
	fmt.Fprintf(w, "Avg Regret: %v\n", regret/trials)
}
