// Package experiments is the harness around the bandit testbed: it
// turns command line parameters into agents and environments, runs
// episodes and renders the results.
package experiments

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"aptw/bandit"
	"aptw/engine"
	"aptw/experiments/metrics"
	"aptw/strategy"
)

// malgDepth covers horizons up to 2^20 steps with nested UCB instances.
const malgDepth = 20

// NewAgent initialises a bandit algorithm from its parameter name.
func NewAgent(p Params) (strategy.Strategy, error) {
	seed := p.AgentSeed
	arms := p.Arms

	switch p.Agent {
	case "UCB":
		return strategy.NewUCB(seed, arms), nil
	case "KLUCB":
		return strategy.NewKLUCB(seed, arms), nil
	case "SWUCB":
		return strategy.NewSlidingUCB(seed, arms, p.SWUCBWindow), nil
	case "ActivePTW":
		return strategy.NewActivePTW(seed, arms), nil
	case "ParanoidPTW":
		return strategy.NewParanoidPTW(seed, arms), nil
	case "MALG":
		return strategy.NewMALG(seed, arms, malgDepth), nil
	case "TS":
		return strategy.NewThompsonSampling(seed, arms), nil
	case "Constant":
		return strategy.NewConstant(0), nil
	case "Uniform":
		return strategy.NewUniformSampling(seed, arms), nil
	}

	return nil, fmt.Errorf("invalid agent %q", p.Agent)
}

// NewEnvironment creates the bandit problem with its associated latent
// change-point schedule.
func NewEnvironment(p Params) (*bandit.Environment, error) {
	switch p.CptSchedule {
	case "Nasty":
		theta1 := make([]float64, p.Arms)
		for i := range theta1 {
			theta1[i] = 0.1
		}
		theta1[0] = 0.2

		theta2 := make([]float64, p.Arms)
		for i := range theta2 {
			theta2[i] = 0.2
		}
		theta2[0] = 0.2
		theta2[1] = 0.8

		schedule := bandit.NewTwoPhase(uint64(p.Trials), theta1, theta2)
		return bandit.NewEnvironment(p.Arms, p.EnvSeed, schedule), nil

	case "Geometric":
		schedule := bandit.NewGeometricAbrupt(p.CptRate, uint64(p.Trials), p.EnvSeed+10007)
		return bandit.NewEnvironment(p.Arms, p.EnvSeed, schedule), nil
	}

	return nil, fmt.Errorf("invalid changepoint schedule %q", p.CptSchedule)
}

// RunText runs a single episode and writes the summary.
func RunText(w io.Writer, p Params) error {
	env, err := NewEnvironment(p)
	if err != nil {
		return err
	}
	agent, err := NewAgent(p)
	if err != nil {
		return err
	}

	engine.Run(env, agent, p.Trials)
	engine.WriteSummary(w, env)

	return nil
}

// plotAgents is the roster compared in plot mode.
var plotAgents = []string{"UCB", "ActivePTW", "MALG", "TS", "KLUCB", "SWUCB", "ParanoidPTW"}

// RunPlot repeats every roster agent PlotRepeats times, each episode
// against a fresh environment and an offset agent seed, then writes a
// self-contained plotting script for the regret curves.
func RunPlot(w io.Writer, p Params) error {
	records := make([][]metrics.EpisodeRecord, len(plotAgents))
	var changepts []uint64

	for i, name := range plotAgents {
		log.Info().Msgf("starting %d plot episodes for agent %s...", p.PlotRepeats, name)

		records[i] = make([]metrics.EpisodeRecord, 0, p.PlotRepeats)
		for j := 0; j < p.PlotRepeats; j++ {
			ep := p
			ep.Agent = name
			ep.AgentSeed = p.AgentSeed + uint64(j)

			env, err := NewEnvironment(ep)
			if err != nil {
				return err
			}
			agent, err := NewAgent(ep)
			if err != nil {
				return err
			}

			regret, cpts := engine.RunRecorded(env, agent, ep.Trials)
			records[i] = append(records[i], metrics.EpisodeRecord{
				Agent:  name,
				Seed:   ep.AgentSeed,
				Regret: regret,
			})
			changepts = cpts
		}

		log.Info().Msgf("completed agent %s", name)
	}

	writePlotScript(w, p, records, changepts)

	return nil
}
