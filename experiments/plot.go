package experiments

import (
	"fmt"
	"io"

	"aptw/experiments/metrics"
)

// writePlotScript emits python code which plots the mean cumulative
// regret of each agent over time with 95% confidence bands, suitable
// for academic papers and the like. Dashed vertical lines mark the
// change-points of the last recorded episode.
func writePlotScript(w io.Writer, p Params, records [][]metrics.EpisodeRecord, changepts []uint64) {
	fmt.Fprintln(w, "import matplotlib.pyplot as plt")
	fmt.Fprintln(w, "import numpy as np")

	// make the font size larger
	fmt.Fprintln(w, "plt.rcParams.update({'font.size': 50})")

	// x-axis
	fmt.Fprintf(w, "x=np.arange(1,%d)\n", p.Trials+1)

	// datapoints: mean curve plus upper and lower band edges
	for i, agentRecords := range records {
		mean, ci := metrics.Aggregate(metrics.Curves(agentRecords))

		writeSeries(w, fmt.Sprintf("y%d", i), mean, ci, 0)
		writeSeries(w, fmt.Sprintf("y%du", i), mean, ci, 1)
		writeSeries(w, fmt.Sprintf("y%db", i), mean, ci, -1)
	}

	for i, name := range plotAgents {
		fmt.Fprintf(w, "plt.plot(x, y%d, label='%s')\n", i, name)
		fmt.Fprintf(w, "plt.fill_between(x, y%db, y%du, alpha=.15)\n", i, i)
	}

	// labels
	fmt.Fprintln(w, "plt.plot()")
	fmt.Fprintln(w, "plt.xlabel('Time')")
	fmt.Fprintln(w, "plt.ylabel('Regret')")
	if p.CptSchedule == "Nasty" {
		fmt.Fprintf(w, "plt.title('Regret vs Time [Actions=%d]')\n", p.Arms)
	} else {
		fmt.Fprintf(w, "plt.title('Regret vs Time [Actions=%d, CptRate=%v]')\n", p.Arms, p.CptRate)
	}
	fmt.Fprintln(w, "plt.legend()")

	// change-points
	for _, cpt := range changepts {
		fmt.Fprintf(w, "plt.axvline(x=%d, dashes=[0.1,0.5])\n", cpt)
	}

	fmt.Fprintln(w, "plt.show()")
}

// writeSeries emits one numpy array: the mean curve shifted by sign
// confidence half-widths.
func writeSeries(w io.Writer, name string, mean, ci []float64, sign float64) {
	fmt.Fprintf(w, "%s= np.asarray([", name)
	for t := range mean {
		fmt.Fprintf(w, "%v, \n", mean[t]+sign*ci[t])
	}
	fmt.Fprintln(w, "])")
}
