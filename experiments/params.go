package experiments

import (
	"fmt"
	"strconv"
	"strings"
)

// Params carries the run configuration, supplied as Key=Value command
// line arguments.
type Params struct {
	EnvSeed     uint64
	AgentSeed   uint64
	Trials      int
	Arms        int
	Agent       string
	Mode        string
	PlotRepeats int
	CptRate     float64
	SWUCBWindow int
	CptSchedule string
}

// DefaultParams returns the configuration used when no arguments are
// given.
func DefaultParams() Params {
	p := Params{
		EnvSeed:     666,
		AgentSeed:   33,
		Trials:      2500,
		Arms:        10,
		Agent:       "ActivePTW",
		Mode:        "text",
		PlotRepeats: 400,
		CptRate:     0.002,
		CptSchedule: "Geometric",
	}
	p.SWUCBWindow = defaultWindow(p.CptRate)
	return p
}

// defaultWindow sizes the sliding window to the expected change-point
// spacing.
func defaultWindow(rate float64) int {
	if rate > 0 {
		return int(1.0/rate + 0.5)
	}
	return int(^uint(0) >> 1)
}

// ParseArgs processes the command line options on top of the defaults.
func ParseArgs(args []string) (Params, error) {
	p := DefaultParams()
	windowSet := false

	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			return p, fmt.Errorf("args need to be in key=value format: %q", arg)
		}

		var err error
		switch key {
		case "EnvSeed":
			p.EnvSeed, err = strconv.ParseUint(val, 10, 64)
		case "AgentSeed":
			p.AgentSeed, err = strconv.ParseUint(val, 10, 64)
		case "Trials":
			p.Trials, err = strconv.Atoi(val)
			if err == nil && p.Trials < 1 {
				return p, fmt.Errorf("Trials need to be non-zero")
			}
		case "PlotRepeats":
			p.PlotRepeats, err = strconv.Atoi(val)
			if err == nil && p.PlotRepeats < 1 {
				return p, fmt.Errorf("PlotRepeats need to be positive")
			}
		case "SWUCBWindow":
			p.SWUCBWindow, err = strconv.Atoi(val)
			if err == nil && p.SWUCBWindow < 1 {
				return p, fmt.Errorf("SWUCBWindow need to be positive")
			}
			windowSet = true
		case "Arms":
			p.Arms, err = strconv.Atoi(val)
			if err == nil && p.Arms < 2 {
				return p, fmt.Errorf("Arms needs to be at least 2")
			}
		case "Agent":
			p.Agent = val
		case "CptSchedule":
			p.CptSchedule = val
		case "Mode":
			if val != "text" && val != "plot" {
				return p, fmt.Errorf("Mode needs to be one of text/plot")
			}
			p.Mode = val
		case "CptRate":
			p.CptRate, err = strconv.ParseFloat(val, 64)
			if err == nil && p.CptRate >= 1.0 {
				return p, fmt.Errorf("CptRate needs to be less than 1.0")
			}
		default:
			return p, fmt.Errorf("unrecognised arg %q", key)
		}
		if err != nil {
			return p, fmt.Errorf("invalid value for %s: %v", key, err)
		}
	}

	// the window tracks the change rate unless set explicitly
	if !windowSet {
		p.SWUCBWindow = defaultWindow(p.CptRate)
	}

	return p, nil
}
