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

// A Binomial is a binomial distribution over 1-wide samples [k]: the
// number of successes in n independent trials with success
// probability p.
type Binomial struct {
	p   float64
	n   float64
	src rand.Source
}

// NewBinomial constructs a binomial distribution with n ≥ 0 trials
// and success probability p in [0, 1]. src may be nil for a
// likelihood-only distribution.
func NewBinomial(p float64, n int, src rand.Source) (*Binomial, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "success probability %v outside [0, 1]", p)
	}
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "negative trial count %d", n)
	}
	return &Binomial{p: p, n: float64(n), src: src}, nil
}

// SampleDim returns 1.
func (b *Binomial) SampleDim() int {
	return 1
}

// P returns the success probability.
func (b *Binomial) P() float64 {
	return b.p
}

// N returns the trial count.
func (b *Binomial) N() int {
	return int(b.n)
}

// Rand returns a single draw [k] with k in [0, n].
func (b *Binomial) Rand() ([]float64, error) {
	if b.src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "no random source")
	}
	if b.n == 0 {
		return []float64{0}, nil
	}
	bin := distuv.Binomial{N: b.n, P: b.p, Src: b.src}
	return []float64{bin.Rand()}, nil
}

// LogLikelihood returns the log of the binomial probability mass of
// sample = [k]:
//
//	lchoose(n, k) + k·log(p) + (n-k)·log(1-p)
//
// A k outside [0, n], or a positive k with p == 0, or a k below n
// with p == 1, yields -Inf.
func (b *Binomial) LogLikelihood(sample []float64) (float64, error) {
	if len(sample) != 1 {
		return 0, errors.Wrapf(ErrDimensionMismatch, "sample has %d entries, want 1", len(sample))
	}

	k := sample[0]
	switch {
	case k < 0 || k > b.n:
		return negInf, nil
	case k > 0 && b.p == 0:
		return negInf, nil
	case k < b.n && b.p == 1:
		return negInf, nil
	}

	ll := lchoose(b.n, k)
	if k > 0 {
		ll += k * math.Log(b.p)
	}
	if k < b.n {
		ll += (b.n - k) * math.Log1p(-b.p)
	}
	return ll, nil
}
