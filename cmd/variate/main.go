// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Variate prints random draws from a multinomial distribution.
//
// Usage:
//
//	variate [-n trials] [-draws count] [-seed seed] [-v] weight...
//
// The weights are L1-normalized into the distribution's parameter
// vector. Each output line holds one count vector of -n trials,
// followed by its log-likelihood under the same distribution.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/op/go-logging"
	"golang.org/x/exp/rand"

	cargolog "github.com/bsilverthorn/cargo/log"
	"github.com/bsilverthorn/cargo/statistics"
)

var (
	flagN       = flag.Int("n", 1, "trials per draw")
	flagDraws   = flag.Int("draws", 1, "number of draws to print")
	flagSeed    = flag.Uint64("seed", 1, "random seed")
	flagVerbose = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: variate [flags] weight...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	level := logging.WARNING
	if *flagVerbose {
		level = logging.DEBUG
	}
	cargolog.EnableDefaultLogging(level)

	raw := make([]float64, flag.NArg())
	for i, arg := range flag.Args() {
		w, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "variate: bad weight %q: %v\n", arg, err)
			os.Exit(2)
		}
		raw[i] = w
	}

	m, err := statistics.NewMultinomial(raw, rand.NewSource(*flagSeed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "variate: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *flagDraws; i++ {
		sample, err := m.Variate(*flagN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "variate: %v\n", err)
			os.Exit(1)
		}
		ll, err := m.LogLikelihood(sample)
		if err != nil {
			fmt.Fprintf(os.Stderr, "variate: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%v %g\n", sample, ll)
	}
}
