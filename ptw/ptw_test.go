package ptw

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// The traces below use depth 3 and two arms so every intermediate
// weight can be checked by hand. With two arms the prior stop and split
// weights are both 1/2.
func TestTreeFirstObservation(t *testing.T) {
	tree := NewTree(3, 2)
	tree.Update(1, 0)

	require.Equal(t, uint64(1), tree.index)
	require.InDelta(t, math.Log(0.5), tree.nodes[3].logWeighted, 1e-12,
		"a leaf's weight is its KT marginal")
	for i := 0; i <= 3; i++ {
		require.Zero(t, tree.nodes[i].logBuf, "no subtree has completed yet")
		require.InDelta(t, math.Log(0.5), tree.nodes[i].logWeighted, 1e-12)
	}
}

func TestTreeHandTrace(t *testing.T) {
	tree := NewTree(3, 2)

	tree.Update(1, 0)
	tree.Update(1, 0)

	// mscb(2) = 2: the snapshot freezes the old leaf weight at level 2
	require.InDelta(t, math.Log(0.5), tree.nodes[2].logBuf, 1e-12)
	require.InDelta(t, math.Log(0.359375), tree.nodes[0].logWeighted, 1e-9)

	tree.Update(0, 1)
	require.InDelta(t, math.Log(0.3125), tree.nodes[1].logBuf, 1e-12,
		"mscb(3) = 1 freezes the completed level-2 subtree")
	require.InDelta(t, math.Log(0.1796875), tree.nodes[0].logWeighted, 1e-9)

	tree.Update(1, 1)
	require.InDelta(t, math.Log(0.0498046875), tree.nodes[0].logWeighted, 1e-9)
	require.Equal(t, uint64(4), tree.index)
}

func TestTreeRootRecomputationIdentity(t *testing.T) {
	tree := NewTree(5, 3)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 30; i++ {
		tree.Update(rng.Intn(2), rng.Intn(3))
		if tree.index < 2 {
			continue
		}
		want := LogAdd(
			tree.logStopWeight+tree.nodes[0].logMarginal(),
			tree.logSplitWeight+tree.nodes[1].logWeighted+tree.nodes[0].logBuf,
		)
		require.InDelta(t, want, tree.nodes[0].logWeighted, 1e-12)
	}
}

func TestTreeMSCB(t *testing.T) {
	const depth = 10
	tree := NewTree(depth, 2)

	// oracle: position of the most significant differing bit of t-1 and
	// t-2, counted from the MSB of the depth-bit representation
	oracle := func(tm uint64) int {
		diff := (tm - 1) ^ (tm - 2)
		return depth - bits.Len64(diff)
	}

	require.Equal(t, 0, tree.mscb(1))
	for tm := uint64(2); tm <= 1<<depth; tm++ {
		require.Equal(t, oracle(tm), tree.mscb(tm), "mscb(%d)", tm)
	}
}

func TestTreeLevelPosterior(t *testing.T) {
	// depth 30 as used by the PTW policies: the mass not accounted for
	// below the leaf level is O(2^-31) and the posterior sums to one
	tree := NewTree(30, 2)
	rng := rand.New(rand.NewSource(9))

	for i := 0; i < 60; i++ {
		tree.Update(rng.Intn(2), rng.Intn(2))

		post := tree.LevelPosterior()
		require.Len(t, post, 31)

		sum := 0.0
		for _, p := range post {
			require.GreaterOrEqual(t, p, 0.0)
			require.LessOrEqual(t, p, 1.0)
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-6, "posterior mass after %d updates", i+1)
		require.LessOrEqual(t, sum, 1.0+1e-12)
	}
}

func TestTreePredictiveProb(t *testing.T) {
	tree := NewTree(30, 2)
	rng := rand.New(rand.NewSource(21))

	for i := 0; i < 16; i++ {
		tree.Update(rng.Intn(2), rng.Intn(2))

		for arm := 0; arm < 2; arm++ {
			p0 := tree.Prob(0, arm)
			p1 := tree.Prob(1, arm)
			require.Greater(t, p0, 0.0)
			require.Greater(t, p1, 0.0)
			require.InDelta(t, 1.0, p0+p1, 1e-6, "predictive distribution sums to the posterior mass")
		}
	}
}

func TestTreePosteriorTracksKT(t *testing.T) {
	tree := NewTree(3, 2)
	tree.Update(1, 0)
	tree.Update(1, 0)

	// both observations hit arm 0 inside the current level-0 span
	require.Equal(t, Beta{Alpha: 2.5, Beta: 0.5}, tree.Posterior(0, 0))
	require.Equal(t, Beta{Alpha: 0.5, Beta: 0.5}, tree.Posterior(0, 1))
	// the leaf only covers the most recent step
	require.Equal(t, Beta{Alpha: 1.5, Beta: 0.5}, tree.Posterior(3, 0))
}

func TestTreeCapacity(t *testing.T) {
	tree := NewTree(2, 2)
	for i := 0; i < 4; i++ {
		tree.Update(1, 0)
	}
	require.Panics(t, func() { tree.Update(1, 0) }, "a depth-2 tree holds at most 4 steps")
}

func TestTreeArmOutOfRange(t *testing.T) {
	tree := NewTree(3, 2)
	require.Panics(t, func() { tree.Update(1, 2) })
	require.Panics(t, func() { tree.Update(1, -1) })
}
