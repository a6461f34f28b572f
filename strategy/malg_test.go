package strategy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMALGTopSlotAlwaysSeeded(t *testing.T) {
	s := NewMALG(1, 4, 3)

	arm := s.GetAction()
	require.GreaterOrEqual(t, arm, 0)
	require.Less(t, arm, 4)

	top := s.instances[3]
	require.NotNil(t, top, "the full-horizon instance resets with probability one at tau=1")
	require.Equal(t, uint64(1), top.start)
	require.Equal(t, uint64(8), top.end)
	require.Equal(t, uint64(8), top.length())
}

func TestMALGResetEligibility(t *testing.T) {
	// slot m is eligible at step tau iff (tau-1) mod 2^m == 0
	eligible := func(tau uint64, m int) bool {
		return (tau-1)%(uint64(1)<<uint(m)) == 0
	}

	for tau := uint64(1); tau <= 20; tau++ {
		require.True(t, eligible(tau, 0), "the single-step slot is eligible at every step")
	}
	for _, tau := range []uint64{1, 9, 17} {
		require.True(t, eligible(tau, 3))
	}
	for _, tau := range []uint64{2, 5, 8, 10, 16} {
		require.False(t, eligible(tau, 3))
	}
}

func TestMALGThreshold(t *testing.T) {
	s := NewMALG(1, 4, 3)

	rho := func(t float64) float64 {
		return math.Sqrt(4/t) + 4/t
	}

	for m := 0; m <= 3; m++ {
		want := rho(8) / rho(math.Pow(2, float64(m)))
		got := s.rho(math.Pow(2, float64(s.depth))) / s.rho(math.Pow(2, float64(m)))
		require.InDelta(t, want, got, 1e-12)
		require.LessOrEqual(t, got, 1.0, "shorter segments reset less often")
	}
}

func TestMALGDispatchesToShortestActiveInstance(t *testing.T) {
	s := NewMALG(7, 2, 3)

	// drive a few steps; the invariant must hold throughout
	for step := 0; step < 24; step++ {
		arm := s.GetAction()
		require.GreaterOrEqual(t, arm, 0)
		require.Less(t, arm, 2)

		active := s.instances[s.activeInstance()]
		require.LessOrEqual(t, active.start, s.tau)
		require.GreaterOrEqual(t, active.end, s.tau)
		for _, in := range s.instances {
			if in == nil || s.tau < in.start || s.tau > in.end {
				continue
			}
			require.LessOrEqual(t, active.length(), in.length())
		}

		s.Update(arm, step%2)
	}
}

func TestMALGDeterministicForSeed(t *testing.T) {
	run := func() []int {
		s := NewMALG(3, 3, 4)
		actions := make([]int, 0, 40)
		for i := 0; i < 40; i++ {
			arm := s.GetAction()
			actions = append(actions, arm)
			s.Update(arm, i%2)
		}
		return actions
	}

	require.Equal(t, run(), run())
}
