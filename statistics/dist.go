// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statistics

// A Model is a discrete probability distribution over sample vectors
// of a fixed width.
//
// Samples are represented as []float64 even though the models in this
// package are defined over integral counts. Note that float64 values
// can exactly represent integer values between ±2**53, so this
// generally shouldn't be an issue for count-valued distributions.
//
// A constructed model is immutable aside from the state of its random
// source. LogLikelihood and SampleDim are safe for unsynchronized
// concurrent use; Rand consumes the source injected at construction,
// so concurrent samplers must supply distinct sources or synchronize
// externally.
type Model interface {
	// SampleDim returns the width of this model's sample vectors.
	SampleDim() int

	// LogLikelihood returns the log probability mass of sample
	// under this model. Negative infinity is a valid result,
	// reporting an impossible sample; it is not an error. A sample
	// whose length differs from SampleDim() is reported as
	// ErrDimensionMismatch.
	LogLikelihood(sample []float64) (float64, error)

	// Rand returns a single random draw from this model.
	Rand() ([]float64, error)
}
