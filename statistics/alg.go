// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statistics

// Miscellaneous helper algorithms

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

func lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}

// lchoose returns math.Log(choose(n, k)).
func lchoose(n, k float64) float64 {
	return lgamma(n+1) - lgamma(k+1) - lgamma(n-k+1)
}

// logSumExp returns math.Log of the sum of math.Exp(x) over xs,
// computed without underflowing intermediate terms. An all -Inf
// input yields -Inf.
func logSumExp(xs []float64) float64 {
	max := negInf
	for _, x := range xs {
		if x > max {
			max = x
		}
	}
	if math.IsInf(max, -1) {
		return negInf
	}
	sum := 0.0
	for _, x := range xs {
		sum += math.Exp(x - max)
	}
	return max + math.Log(sum)
}

// drawIndex returns an index from 0 to len(ws)-1, where the mass of
// index i is ws[i]. ws must be normalized.
func drawIndex(rnd *rand.Rand, ws []float64) int {
	x := rnd.Float64()
	// Find the smallest i such that sum(ws[:i+1]) > x.
	sum := 0.0
	for i, w := range ws {
		sum += w
		if x < sum {
			return i
		}
	}
	return len(ws) - 1
}

// normalized validates a raw non-negative parameter vector and
// returns an L1-normalized copy.
func normalized(raw []float64) ([]float64, error) {
	if err := validateWeights(raw); err != nil {
		return nil, err
	}
	beta := append([]float64(nil), raw...)
	floats.Scale(1/floats.Sum(beta), beta)
	return beta, nil
}

// normTolerance bounds how far from 1 a caller-normalized parameter
// vector's sum may be.
const normTolerance = 1e-9

// prenormalized validates that raw is already L1-normalized and
// returns a copy.
func prenormalized(raw []float64) ([]float64, error) {
	if err := validateWeights(raw); err != nil {
		return nil, err
	}
	if sum := floats.Sum(raw); math.Abs(sum-1) > normTolerance {
		return nil, errors.Wrapf(ErrInvalidParameter, "vector sums to %v, want 1", sum)
	}
	return append([]float64(nil), raw...), nil
}

func validateWeights(raw []float64) error {
	if len(raw) == 0 {
		return errors.Wrap(ErrInvalidParameter, "empty parameter vector")
	}
	for d, w := range raw {
		if w < 0 || math.IsNaN(w) {
			return errors.Wrapf(ErrInvalidParameter, "entry %d is %v, want non-negative", d, w)
		}
	}
	if sum := floats.Sum(raw); !(sum > 0) || math.IsInf(sum, 1) {
		return errors.Wrapf(ErrInvalidParameter, "vector sums to %v, want a positive finite sum", sum)
	}
	return nil
}
