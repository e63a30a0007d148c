// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// statistics implements discrete probability models intended for
// embedding in larger probabilistic-modeling code.
package statistics

import (
	"math"

	"github.com/pkg/errors"
)

var negInf = math.Inf(-1)

var (
	// ErrInvalidParameter indicates a model was constructed from a
	// parameter vector it cannot represent.
	ErrInvalidParameter = errors.New("statistics: invalid parameter")

	// ErrInvalidArgument indicates an operation was called with an
	// argument outside its domain.
	ErrInvalidArgument = errors.New("statistics: invalid argument")

	// ErrDimensionMismatch indicates a sample vector whose length
	// does not match the model's sample dimension.
	ErrDimensionMismatch = errors.New("statistics: dimension mismatch")

	// ErrInternalConsistency indicates an internal invariant was
	// observed to fail. It should never be seen in practice.
	ErrInternalConsistency = errors.New("statistics: internal consistency violated")
)
