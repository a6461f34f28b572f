package strategy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlidingUCBEvictsOldPulls(t *testing.T) {
	s := NewSlidingUCB(1, 2, 20)

	for i := 0; i < 30; i++ {
		s.Update(0, 1)
	}
	require.Equal(t, 20.0, s.armVisits[0], "only the window is retained")
	require.Equal(t, 20.0, s.armReward[0])

	for i := 0; i < 20; i++ {
		s.Update(0, 0)
	}
	require.Equal(t, 20.0, s.armVisits[0])
	require.Zero(t, s.armReward[0], "rewards before the window are forgotten")
}

func TestSlidingUCBForgetsAfterFlip(t *testing.T) {
	// arm 0 is good for 100 steps, then pays nothing; the windowed mean
	// must drop below 0.55 within 30 steps of the flip
	s := NewSlidingUCB(1, 2, 20)

	for i := 0; i < 100; i++ {
		s.Update(0, 1)
	}
	for i := 0; i < 30; i++ {
		s.Update(0, 0)
	}

	mean := s.armReward[0] / s.armVisits[0]
	require.LessOrEqual(t, mean, 0.55)
}

func TestSlidingUCBWindowedRadius(t *testing.T) {
	s := NewSlidingUCB(1, 2, 10)
	s.Update(0, 1)
	s.Update(1, 0)

	// the radius uses the queue length, not the total number of pulls
	require.InDelta(t, 1.0+math.Sqrt(2*math.Log(2)), s.ucb(0), 1e-12)
}

func TestSlidingUCBReset(t *testing.T) {
	s := NewSlidingUCB(1, 2, 10)
	s.Update(0, 1)
	s.Update(1, 1)

	s.Reset()

	require.Empty(t, s.plays)
	require.Len(t, s.unvisitedArms(), 2)
}
