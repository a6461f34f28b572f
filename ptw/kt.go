package ptw

import "math"

// ktAlpha is the prior pseudo-count the KT estimator assigns to each symbol.
const ktAlpha = 0.5

// Beta holds the sufficient statistics of a Beta distribution.
type Beta struct {
	Alpha float64
	Beta  float64
}

// KT is an online Krichevsky-Trofimov estimator for a binary memoryless
// source: the Bayes predictor under a Beta(1/2, 1/2) prior on the source
// parameter.
type KT struct {
	logKT  float64
	counts [2]uint64
}

// Prob returns the probability of seeing symbol b next.
func (k *KT) Prob(b int) float64 {
	num := float64(k.counts[b]) + ktAlpha
	den := float64(k.counts[0]+k.counts[1]) + 2*ktAlpha
	return num / den
}

// Update processes one symbol.
func (k *KT) Update(b int) {
	k.logKT += math.Log(k.Prob(b))
	k.counts[b]++
}

// LogMarginal returns the log probability of all processed symbols.
func (k *KT) LogMarginal() float64 { return k.logKT }

// Posterior gives the sufficient statistics of the KT estimator in the
// form of a Beta distribution.
func (k *KT) Posterior() Beta {
	return Beta{
		Alpha: ktAlpha + float64(k.counts[1]),
		Beta:  ktAlpha + float64(k.counts[0]),
	}
}
