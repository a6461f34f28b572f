// Package strategy implements the bandit policies: the PTW-based
// ActivePTW and ParanoidPTW, the UCB family, Thompson Sampling, the
// MALG meta-scheduler and the trivial baselines.
package strategy

// Strategy is a bandit policy.
type Strategy interface {
	// GetAction picks the arm to pull next.
	GetAction() int

	// Update adjusts the internal state after pulling an arm and
	// receiving a reward.
	Update(arm, reward int)

	// Name of the method, e.g. UCB.
	Name() string
}
