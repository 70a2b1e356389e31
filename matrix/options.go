// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the gonum import adapter.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical
//     values - programmer error),
//   - gatherOptions helper (internal) that applies defaults then options.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts FromDense and is covered by tests.
//   - Options fields are unexported; the public API consumes ...Option.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRationalCells keeps FromDense imports in the Real variant;
	// rational re-approximation is strictly opt-in because it is lossy in
	// the other direction (bounded denominator search).
	DefaultRationalCells = false

	// DefaultMaxDenominator mirrors scalar.DefaultMaxApproxDenominator
	// for imports that opt into rational cells.
	DefaultMaxDenominator = scalar.DefaultMaxApproxDenominator
)

// options carries the resolved import policy. Internal state only.
type options struct {
	rationalCells bool  // approximate imported floats as Rationals
	maxDen        int64 // denominator bound for the approximation
}

// Option mutates the import policy. Public APIs accept ...Option.
type Option func(*options)

// WithRationalCells makes FromDense approximate every imported float as
// an exact Rational via the bounded denominator search instead of
// keeping Real cells.
func WithRationalCells() Option {
	return func(o *options) { o.rationalCells = true }
}

// WithMaxDenominator overrides the denominator bound used when rational
// cells are requested. Panics when n < 1 (programmer error); has no
// effect without WithRationalCells.
func WithMaxDenominator(n int64) Option {
	if n < 1 {
		panic(fmt.Sprintf("matrix: WithMaxDenominator(%d): bound must be >= 1", n))
	}

	return func(o *options) { o.maxDen = n }
}

// gatherOptions applies defaults, then every option in order.
func gatherOptions(opts ...Option) options {
	o := options{
		rationalCells: DefaultRationalCells,
		maxDen:        DefaultMaxDenominator,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
