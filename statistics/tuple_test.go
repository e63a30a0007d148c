// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statistics

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func binomialTuple(t *testing.T, src rand.Source) *Tuple {
	t.Helper()
	var models []Model
	for _, p := range []float64{0.25, 0.75, 0.5} {
		b, err := NewBinomial(p, 1, src)
		if err != nil {
			t.Fatalf("NewBinomial(%g, 1): %v", p, err)
		}
		models = append(models, b)
	}
	tup, err := NewTuple(models...)
	if err != nil {
		t.Fatalf("NewTuple: %v", err)
	}
	return tup
}

func TestTupleLogLikelihood(t *testing.T) {
	tup := binomialTuple(t, nil)
	if g := tup.SampleDim(); g != 3 {
		t.Fatalf("SampleDim() = %d, want 3", g)
	}

	got, err := tup.LogLikelihood([]float64{1, 1, 0})
	if err != nil {
		t.Fatalf("LogLikelihood: %v", err)
	}
	if want := math.Log(0.25 * 0.75 * 0.5); !aeq(want, got) {
		t.Errorf("LogLikelihood([1 1 0]) = %g, want %g", got, want)
	}

	got, err = tup.LogLikelihood([]float64{0, 1, 0})
	if err != nil {
		t.Fatalf("LogLikelihood: %v", err)
	}
	if want := math.Log(0.75 * 0.75 * 0.5); !aeq(want, got) {
		t.Errorf("LogLikelihood([0 1 0]) = %g, want %g", got, want)
	}
}

func TestTupleRand(t *testing.T) {
	tup := binomialTuple(t, rand.NewSource(42))
	for i := 0; i < 100; i++ {
		sample, err := tup.Rand()
		if err != nil {
			t.Fatalf("Rand: %v", err)
		}
		if len(sample) != 3 {
			t.Fatalf("Rand() has %d entries, want 3", len(sample))
		}
		for d, c := range sample {
			if c != 0 && c != 1 {
				t.Fatalf("Rand()[%d] = %g, want 0 or 1", d, c)
			}
		}
	}
}

func TestTupleErrors(t *testing.T) {
	if _, err := NewTuple(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("NewTuple() = %v, want ErrInvalidParameter", err)
	}
	if _, err := NewTuple(Delta{}, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("NewTuple with a nil component = %v, want ErrInvalidParameter", err)
	}

	tup := binomialTuple(t, nil)
	if _, err := tup.LogLikelihood([]float64{1, 1}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("LogLikelihood with 2 entries = %v, want ErrDimensionMismatch", err)
	}
}
