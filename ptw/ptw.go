// Package ptw implements Active Partition Tree Weighting: an online
// Bayesian mixture over every dyadic partitioning of the time axis into
// stationary segments, with one Krichevsky-Trofimov estimator per arm
// inside each segment.
package ptw

import (
	"fmt"
	"math"
)

// node is one level of the active PTW tree. It carries one KT estimator
// per arm, the weighted log probability of the subtree rooted here over
// the currently active span, and a buffer freezing the weighted log
// probability of the left sibling subtree at the last change point.
type node struct {
	model       []KT
	logWeighted float64
	logBuf      float64
}

func newNode(arms int) node {
	return node{model: make([]KT, arms)}
}

// logMarginal is the log probability of the segment: the product of the
// subsequence explained by each arm.
func (n *node) logMarginal() float64 {
	rval := 0.0
	for i := range n.model {
		rval += n.model[i].LogMarginal()
	}
	return rval
}

// reset clears the node statistics in place, reusing the KT storage.
func (n *node) reset() {
	for i := range n.model {
		n.model[i] = KT{}
	}
	n.logWeighted = 0
	n.logBuf = 0
}

// Tree is a fixed-depth active PTW mixture, supporting up to 2^depth
// observations. Only one node per level is kept; the rest of the full
// partition tree is summarised by the per-node buffers.
type Tree struct {
	index uint64
	nodes []node
	depth int
	arms  int

	// parameters of the PTW prior: at each internal node the segment
	// stops with probability (a-1)/a and splits in half otherwise
	logStopWeight  float64
	logSplitWeight float64
}

// NewTree creates a depth-limited tree over the given number of arms.
func NewTree(depth, arms int) *Tree {
	nodes := make([]node, depth+1)
	for i := range nodes {
		nodes[i] = newNode(arms)
	}

	a := float64(arms)
	stop := (a - 1.0) / a

	return &Tree{
		nodes:          nodes,
		depth:          depth,
		arms:           arms,
		logStopWeight:  math.Log(stop),
		logSplitWeight: math.Log(1.0 - stop),
	}
}

// Depth returns the depth of the tree.
func (t *Tree) Depth() int { return t.depth }

// LogMarginal returns the log probability of all processed experience.
func (t *Tree) LogMarginal() float64 { return t.nodes[0].logWeighted }

// Prob returns the probability of seeing reward r next if arm k is
// pulled, marginalised over the level posterior.
func (t *Tree) Prob(r, k int) float64 {
	post := t.LevelPosterior()

	rval := 0.0
	for i := range post {
		rval += post[i] * t.nodes[i].model[k].Prob(r)
	}
	return rval
}

// Update processes a new piece of experience: arm k pulled with reward r.
func (t *Tree) Update(r, k int) {
	if t.index >= uint64(1)<<uint(t.depth) {
		panic(fmt.Sprintf("ptw: capacity of %d steps exceeded", uint64(1)<<uint(t.depth)))
	}
	if k < 0 || k >= t.arms {
		panic(fmt.Sprintf("ptw: arm index %d out of range", k))
	}

	// mscb requires the current 1-based time
	i := t.mscb(t.index + 1)

	// save the weighted probability in the change point's parent
	t.nodes[i].logBuf = t.nodes[i+1].logWeighted

	// now reset statistics from the change point downwards
	for j := i + 1; j <= t.depth; j++ {
		t.nodes[j].reset()
	}

	// a leaf's weight is its KT marginal
	leaf := &t.nodes[t.depth]
	leaf.model[k].Update(r)
	leaf.logWeighted = leaf.logMarginal()

	// compute the weighted probability from the bottom up
	for j := t.depth - 1; j >= 0; j-- {
		n := &t.nodes[j]
		n.model[k].Update(r)
		lhs := t.logStopWeight + n.logMarginal()
		rhs := t.logSplitWeight + t.nodes[j+1].logWeighted + n.logBuf
		n.logWeighted = LogAdd(lhs, rhs)
	}

	t.index++
}

// mscb is the number of bits to the left of the most significant
// location at which times t-1 and t-2 differ, where tm is the 1-based
// current time.
func (t *Tree) mscb(tm uint64) int {
	if tm == 1 {
		return 0
	}

	c := uint(t.depth - 1)
	cnt := 0

	for i := 0; i < t.depth; i++ {
		mask := uint64(1) << c
		if (tm-1)&mask != (tm-2)&mask {
			return cnt
		}
		c--
		cnt++
	}

	return cnt
}

// LevelPosterior computes the posterior weight of each temporal
// discretisation level: entry l is the probability that the current
// segment has length 2^(depth-l).
func (t *Tree) LevelPosterior() []float64 {
	massLeft := 1.0
	dest := make([]float64, 0, t.depth+1)

	// compute the posterior weight of each level from the top down
	for i := 0; i <= t.depth; i++ {
		// log posterior of stopping at level i
		x := t.logStopWeight + t.nodes[i].logMarginal() - t.nodes[i].logWeighted
		stopPost := math.Exp(x)

		dest = append(dest, massLeft*stopPost)
		massLeft *= 1.0 - stopPost

		// for numerical stability
		massLeft = math.Max(massLeft, 0.0)
	}

	return dest
}

// Posterior gives, for a segmentation level and choice of arm, the Beta
// posterior governing the arm's latent reward distribution.
func (t *Tree) Posterior(level, arm int) Beta {
	return t.nodes[level].model[arm].Posterior()
}
