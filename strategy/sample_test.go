package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"aptw/ptw"
)

func TestSampleBeta(t *testing.T) {
	src := rand.NewSource(5)

	t.Run("draws stay inside the unit interval", func(t *testing.T) {
		for _, p := range []ptw.Beta{
			{Alpha: 0.5, Beta: 0.5},
			{Alpha: 1, Beta: 10},
			{Alpha: 10, Beta: 1},
		} {
			for i := 0; i < 200; i++ {
				z := sampleBeta(src, p)
				require.False(t, z < 0 || z > 1, "draw %v outside [0,1] for %+v", z, p)
			}
		}
	})

	t.Run("empirical mean approaches alpha/(alpha+beta)", func(t *testing.T) {
		sum := 0.0
		const n = 4000
		for i := 0; i < n; i++ {
			sum += sampleBeta(src, ptw.Beta{Alpha: 3, Beta: 1})
		}
		require.InDelta(t, 0.75, sum/n, 0.03)
	})
}

func TestSampleCategorical(t *testing.T) {
	src := rand.NewSource(17)

	t.Run("zero-weight entries are never drawn", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			require.Equal(t, 1, sampleCategorical(src, []float64{0, 0.3, 0}))
		}
	})

	t.Run("unnormalised weights are accepted", func(t *testing.T) {
		counts := make([]int, 2)
		const n = 4000
		for i := 0; i < n; i++ {
			counts[sampleCategorical(src, []float64{2, 6})]++
		}
		require.InDelta(t, 0.25, float64(counts[0])/n, 0.05)
	})
}
