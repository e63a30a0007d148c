// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statistics

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// A FiniteMixture is a weighted finite mixture of component models
// sharing one sample dimension. Its probability mass is the
// weight-averaged mass of its components.
type FiniteMixture struct {
	weights    []float64
	components []Model
	rnd        *rand.Rand
}

// NewFiniteMixture constructs a mixture of the given components. The
// raw weights are L1-normalized under the same rules as multinomial
// parameters. src drives component selection in Rand and may be nil
// for a likelihood-only mixture.
func NewFiniteMixture(weights []float64, components []Model, src rand.Source) (*FiniteMixture, error) {
	if len(components) == 0 {
		return nil, errors.Wrap(ErrInvalidParameter, "mixture has no components")
	}
	if len(weights) != len(components) {
		return nil, errors.Wrapf(ErrInvalidParameter, "%d weights for %d components", len(weights), len(components))
	}
	normed, err := normalized(weights)
	if err != nil {
		return nil, err
	}
	dim := components[0].SampleDim()
	for k, c := range components {
		if c == nil {
			return nil, errors.Wrapf(ErrInvalidParameter, "component %d is nil", k)
		}
		if c.SampleDim() != dim {
			return nil, errors.Wrapf(ErrInvalidParameter, "component %d has sample dimension %d, want %d", k, c.SampleDim(), dim)
		}
	}
	m := &FiniteMixture{weights: normed, components: components}
	if src != nil {
		m.rnd = rand.New(src)
	}
	return m, nil
}

// SampleDim returns the components' shared sample dimension.
func (m *FiniteMixture) SampleDim() int {
	return m.components[0].SampleDim()
}

// Weights returns a copy of the normalized component weights.
func (m *FiniteMixture) Weights() []float64 {
	return append([]float64(nil), m.weights...)
}

// LogLikelihood returns the log of the mixture probability mass of
// sample: logSumExp over log(w_k) + component k's log-likelihood.
// Zero-weight components are skipped.
func (m *FiniteMixture) LogLikelihood(sample []float64) (float64, error) {
	terms := make([]float64, 0, len(m.components))
	for k, c := range m.components {
		if m.weights[k] == 0 {
			continue
		}
		ll, err := c.LogLikelihood(sample)
		if err != nil {
			return 0, errors.Wrapf(err, "component %d", k)
		}
		terms = append(terms, math.Log(m.weights[k])+ll)
	}
	return logSumExp(terms), nil
}

// Rand picks a component with probability equal to its weight and
// returns that component's draw.
func (m *FiniteMixture) Rand() ([]float64, error) {
	if m.rnd == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "no random source")
	}
	k := drawIndex(m.rnd, m.weights)
	sample, err := m.components[k].Rand()
	if err != nil {
		return nil, errors.Wrapf(err, "component %d", k)
	}
	return sample, nil
}
