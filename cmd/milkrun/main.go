package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/archer884/milkrun"
	kitlog "github.com/go-kit/kit/log"
)

// milkrun prints the periapsis (or apoapsis) altitude which puts an orbit in resonance with itself.
//
//	milkrun -a keosynchronous -p 6 -r 2:3
//	1222700.90

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		params  milkrun.Params
		confDir string
		verbose bool
	)
	fs := flag.NewFlagSet("milkrun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	for _, name := range []string{"altitude", "a"} {
		fs.StringVar(&params.Altitude, name, "", "altitude in meters: `AP`, APxPE, or keosynchronous (required)")
	}
	for _, name := range []string{"period", "p"} {
		fs.StringVar(&params.Period, name, "", "orbital period in `hours` (required)")
	}
	for _, name := range []string{"ratio", "r"} {
		fs.StringVar(&params.Ratio, name, "", "desired:current period `ratio`, e.g. 2:3 (required)")
	}
	for _, name := range []string{"body", "b"} {
		fs.StringVar(&params.Body, name, "", "orbited body `name` or radius in meters (default kerbin)")
	}
	fs.StringVar(&confDir, "config", "", "configuration `directory` (default $"+milkrun.ConfigEnv+")")
	fs.BoolVar(&verbose, "verbose", false, "log the parameters and computation to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if params.Altitude == "" || params.Period == "" || params.Ratio == "" {
		fmt.Fprintln(stderr, "altitude, period, and ratio are required")
		fs.Usage()
		return 2
	}

	logger := kitlog.NewNopLogger()
	if verbose {
		logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(stderr))
		logger = kitlog.With(logger, "cmd", "milkrun")
	}

	conf, err := milkrun.LoadConfig(confDir)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	catalog, err := conf.Catalog(logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	ratio, orbit, err := catalog.Build(params)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger.Log("level", "info", "subsys", "param", "orbit", orbit, "ratio", ratio, "resonance", ratio.Resonance())
	if whole, err := milkrun.ParseWholeRatio(params.Ratio); err == nil && whole.Reduced() != whole {
		logger.Log("level", "notice", "subsys", "param", "ratio", whole, "reduced", whole.Reduced())
	}

	result, err := milkrun.Resonate(ratio, orbit)
	if err != nil {
		fmt.Fprintf(stderr, "Impossible: %s\n", err)
		return 1
	}
	logger.Log("level", "info", "subsys", "astro", "element", result.Element, "altitude(m)", result.Value)
	fmt.Fprintln(stdout, result)
	return 0
}
