package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"aptw/experiments"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the configured mode and maps every failure, including
// internal panics, to a non-zero exit code.
func run(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("fatal: %v", r)
			code = 1
		}
	}()

	params, err := experiments.ParseArgs(args)
	if err != nil {
		log.Error().Msgf("%v", err)
		return 1
	}

	switch params.Mode {
	case "text":
		err = experiments.RunText(os.Stdout, params)
	case "plot":
		err = experiments.RunPlot(os.Stdout, params)
	}
	if err != nil {
		log.Error().Msgf("%v", err)
		return 1
	}

	return 0
}
