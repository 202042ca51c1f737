// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of Dense
// matrices. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Numeric policy is explicit:
//   - validateNaNInf controls whether Set()/ingestion rejects non-finite values at all.
//   - allowNegInf is a narrow exception for -Inf as "infeasible" in reward
//     matrices. Under validation, NaN and +Inf remain rejected even when
//     allowNegInf=true.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultAllowNegInf permits -Inf values to represent an infeasible cell
	// (e.g. an action that cannot be taken in a state).
	//
	// IMPORTANT:
	//   - This is NOT a "dirty-data" mode.
	//   - When ValidateNaNInf is enabled, NaN and +Inf are still rejected.
	DefaultAllowNegInf = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	allowNegInf    bool // DefaultAllowNegInf (-Inf as "infeasible")
}

// WithValidateNaNInf enables strict finite-value validation.
// This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation entirely.
//
// Notes:
//   - Affects newly created matrices only; existing matrices keep their policy.
//
// AI-Hints:
//   - Disable only when ingesting data with known non-finite placeholders that
//     are sanitized later.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowNegInf permits -Inf cells while keeping NaN and +Inf rejected.
// Reward matrices use it to mark infeasible (state, action) pairs.
func WithAllowNegInf() Option {
	return func(o *Options) { o.allowNegInf = true }
}

// NewMatrixOptions resolves a sequence of Option setters into Options.
// Stable for a given sequence of opts (last-writer-wins).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// AllowNegInf reports whether -Inf cells are accepted under validation.
func (o Options) AllowNegInf() bool { return o.allowNegInf }

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for constructors.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		allowNegInf:    DefaultAllowNegInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
