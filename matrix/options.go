// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for builders and comparisons.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Numeric policy is explicit and per call:
//   - validateNaNInf controls whether builders reject NaN/±Inf on ingestion.
//     It is OFF by default: MATLAB data legitimately carries NaN (missing
//     values), and the mask operators (EqualsElementwise, Not, IsInf) pass NaN
//     through.
//   - eps is the absolute tolerance used by Equal/EqualValues. The default 0
//     means exact comparison.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by Equal/EqualValues.
	// 0 ⇒ exact element comparison.
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation in builders.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the absolute tolerance used by Equal and EqualValues.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes builders reject NaN and ±Inf with ErrNaNInf.
// Affects only the matrix or vector being built; existing values are untouched.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default: NaN and ±Inf are accepted.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts against the defaults. Exposed so callers can
// inspect the effective configuration (Epsilon, ValidateNaNInf).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the resolved comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether builders reject non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions starts from the documented defaults and applies user setters
// in order (last write wins). nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
