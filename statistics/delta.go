// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statistics

import "github.com/pkg/errors"

// Delta is the distribution placing all mass on the single 1-wide
// sample [T]. It is the degenerate member of the model family, useful
// as a mixture component and in tests.
type Delta struct {
	T float64
}

// SampleDim returns 1.
func (d Delta) SampleDim() int {
	return 1
}

// LogLikelihood returns 0 for the sample [T] and -Inf for any other.
func (d Delta) LogLikelihood(sample []float64) (float64, error) {
	if len(sample) != 1 {
		return 0, errors.Wrapf(ErrDimensionMismatch, "sample has %d entries, want 1", len(sample))
	}
	if sample[0] == d.T {
		return 0, nil
	}
	return negInf, nil
}

// Rand returns [T].
func (d Delta) Rand() ([]float64, error) {
	return []float64{d.T}, nil
}
