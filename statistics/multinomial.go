// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statistics

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Multinomial is a multinomial distribution over count vectors of
// width D: the outcome of n independent trials, each landing in one
// of D categories with fixed per-category probability.
//
// The parameter vector beta and its elementwise log are computed once
// at construction and never mutated afterward. Where beta[d] == 0 the
// cached log is 0 rather than -Inf, so that a zero-probability
// category contributes exactly nothing to the weighted sums in
// likelihood formulas (the 0·log(0) := 0 convention); LogLikelihood
// handles the positive-count case separately.
type Multinomial struct {
	beta    []float64
	logBeta []float64
	src     rand.Source
}

// NewMultinomial constructs a multinomial distribution by
// L1-normalizing a raw vector of D ≥ 1 non-negative category weights.
// A negative entry or a non-positive sum is reported as
// ErrInvalidParameter.
//
// src is the source of randomness consumed by Variate, Rand, and
// Indicator. It may be nil for a likelihood-only distribution, in
// which case the sampling operations report ErrInvalidArgument.
func NewMultinomial(raw []float64, src rand.Source) (*Multinomial, error) {
	beta, err := normalized(raw)
	if err != nil {
		return nil, err
	}
	return newMultinomial(beta, src), nil
}

// NewMultinomialPrenormalized is NewMultinomial for a raw vector the
// caller has already normalized. Instead of rescaling, it validates
// that the entries sum to 1 within a small tolerance and reports
// ErrInvalidParameter otherwise.
func NewMultinomialPrenormalized(raw []float64, src rand.Source) (*Multinomial, error) {
	beta, err := prenormalized(raw)
	if err != nil {
		return nil, err
	}
	return newMultinomial(beta, src), nil
}

func newMultinomial(beta []float64, src rand.Source) *Multinomial {
	logBeta := make([]float64, len(beta))
	for d, b := range beta {
		if b != 0 {
			logBeta[d] = math.Log(b)
		}
	}
	return &Multinomial{beta: beta, logBeta: logBeta, src: src}
}

// SampleDim returns D, the number of categories.
func (m *Multinomial) SampleDim() int {
	return len(m.beta)
}

// Beta returns a copy of the normalized parameter vector.
func (m *Multinomial) Beta() []float64 {
	return append([]float64(nil), m.beta...)
}

// LogBeta returns a copy of the cached elementwise log of Beta, with
// zero entries mapped to 0 rather than -Inf.
func (m *Multinomial) LogBeta() []float64 {
	return append([]float64(nil), m.logBeta...)
}

// Variate returns one draw of n trials: a count vector of width D
// whose entries are non-negative integers summing to n. n == 0 yields
// the all-zero vector. A negative n is reported as ErrInvalidArgument.
//
// The draw decomposes into a chain of conditional binomials: category
// d receives Binomial(remaining, beta[d]/rest) of the trials not yet
// assigned, where rest is the probability mass not yet consumed.
func (m *Multinomial) Variate(n int) ([]float64, error) {
	if m.src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "no random source")
	}
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "negative trial count %d", n)
	}

	counts := make([]float64, len(m.beta))
	remaining := float64(n)
	rest := 1.0
	for d := 0; d < len(m.beta)-1 && remaining > 0; d++ {
		b := m.beta[d]
		if b == 0 {
			continue
		}
		if p := b / rest; p < 1 {
			bin := distuv.Binomial{N: remaining, P: p, Src: m.src}
			counts[d] = bin.Rand()
		} else {
			// Rounding left this category with all of the
			// remaining mass.
			counts[d] = remaining
		}
		remaining -= counts[d]
		rest -= b
	}
	if remaining > 0 {
		// Any trials left over belong to the last category with
		// nonzero probability.
		last := len(m.beta) - 1
		for last > 0 && m.beta[last] == 0 {
			last--
		}
		counts[last] += remaining
	}
	return counts, nil
}

// Rand returns a single-trial draw: a one-hot count vector with a 1
// in exactly one category, chosen with probability beta[d]. It is
// shorthand for Variate(1).
func (m *Multinomial) Rand() ([]float64, error) {
	return m.Variate(1)
}

// Indicator returns the nonzero dimension of a single-trial draw: the
// chosen category, in [0, D). A draw without exactly one entry equal
// to 1 is reported as ErrInternalConsistency; it cannot occur for a
// correctly normalized parameter vector.
func (m *Multinomial) Indicator() (int, error) {
	sample, err := m.Variate(1)
	if err != nil {
		return 0, err
	}
	chosen := -1
	for d, c := range sample {
		if c == 0 {
			continue
		}
		if chosen != -1 || c != 1 {
			return 0, errors.Wrapf(ErrInternalConsistency, "single-trial draw %v is not one-hot", sample)
		}
		chosen = d
	}
	if chosen == -1 {
		return 0, errors.Wrap(ErrInternalConsistency, "single-trial draw has no nonzero entry")
	}
	return chosen, nil
}

// LogLikelihood returns the log of the multinomial probability mass
// of sample:
//
//	lgamma(n+1) - Σ lgamma(sample[d]+1) + Σ sample[d]·log(beta[d])
//
// where n = Σ sample[d] is recomputed from the sample itself. A
// positive count in a zero-probability category yields -Inf. Entries
// are assumed to be non-negative and integral-valued.
func (m *Multinomial) LogLikelihood(sample []float64) (float64, error) {
	if len(sample) != len(m.beta) {
		return 0, errors.Wrapf(ErrDimensionMismatch, "sample has %d entries, want %d", len(sample), len(m.beta))
	}

	n := 0.0
	ll := 0.0
	for d, s := range sample {
		if s > 0 && m.beta[d] == 0 {
			// The cached log is clamped to 0 here; the true
			// likelihood vanishes.
			return negInf, nil
		}
		n += s
		ll -= lgamma(s + 1)
		ll += m.logBeta[d] * s
	}
	return ll + lgamma(n+1), nil
}
