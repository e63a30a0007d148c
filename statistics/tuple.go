// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statistics

import "github.com/pkg/errors"

// A Tuple is a product of independent component models over
// concatenated sample vectors: entry widths follow the components in
// order, and the probability mass of a sample is the product of the
// components' masses of their slices.
type Tuple struct {
	models []Model
	dim    int
}

// NewTuple constructs the product of the given models.
func NewTuple(models ...Model) (*Tuple, error) {
	if len(models) == 0 {
		return nil, errors.Wrap(ErrInvalidParameter, "tuple has no components")
	}
	dim := 0
	for i, m := range models {
		if m == nil {
			return nil, errors.Wrapf(ErrInvalidParameter, "component %d is nil", i)
		}
		dim += m.SampleDim()
	}
	return &Tuple{models: append([]Model(nil), models...), dim: dim}, nil
}

// SampleDim returns the sum of the components' sample dimensions.
func (t *Tuple) SampleDim() int {
	return t.dim
}

// LogLikelihood returns the sum of each component's log-likelihood of
// its slice of sample.
func (t *Tuple) LogLikelihood(sample []float64) (float64, error) {
	if len(sample) != t.dim {
		return 0, errors.Wrapf(ErrDimensionMismatch, "sample has %d entries, want %d", len(sample), t.dim)
	}
	ll := 0.0
	lo := 0
	for i, m := range t.models {
		hi := lo + m.SampleDim()
		l, err := m.LogLikelihood(sample[lo:hi])
		if err != nil {
			return 0, errors.Wrapf(err, "component %d", i)
		}
		ll += l
		lo = hi
	}
	return ll, nil
}

// Rand returns the concatenation of one draw from each component.
func (t *Tuple) Rand() ([]float64, error) {
	sample := make([]float64, 0, t.dim)
	for i, m := range t.models {
		s, err := m.Rand()
		if err != nil {
			return nil, errors.Wrapf(err, "component %d", i)
		}
		sample = append(sample, s...)
	}
	return sample, nil
}
