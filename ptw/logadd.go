package ptw

import "math"

// LogAdd computes log(x+y) given log(x) and log(y), using the identity
// log(x + y) = log(x) + log(1+exp(log(y)-log(x))).
func LogAdd(logX, logY float64) float64 {
	// ensure logY >= logX, can save some expensive log/exp calls
	if logX > logY {
		logX, logY = logY, logX
	}

	if math.IsInf(logX, -1) {
		return logY
	}

	d := logY - logX

	// compute log(1+exp(logY-logX)) only while the difference is below
	// 100; beyond that it equals logY-logX to double precision
	if d < 100.0 {
		d = math.Log1p(math.Exp(d))
	}

	return logX + d
}
