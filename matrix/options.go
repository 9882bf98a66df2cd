// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiplication kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Notes:
//   - Options never change results, only how they are computed. Every
//     strategy/worker combination yields the same entry set.
//   - Add and Sub take no options: they are a single linear pass.
package matrix

import (
	"fmt"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrategy is the plain nested double loop over both entry sets.
	DefaultStrategy = MulNaive

	// DefaultWorkers runs the multiplication on the calling goroutine.
	DefaultWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicStrategyInvalid = "matrix: WithStrategy: unknown strategy"
	panicWorkersInvalid  = "matrix: WithWorkers: workers must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	strategy Strategy // DefaultStrategy
	workers  int      // >= 1; DefaultWorkers
}

// Strategy returns the resolved multiplication strategy.
func (o Options) Strategy() Strategy { return o.strategy }

// Workers returns the resolved worker count.
func (o Options) Workers() int { return o.workers }

// ---------- Constructors (WithX) ----------

// WithStrategy selects the multiplication kernel.
// Panics on a value other than MulNaive or MulGrouped.
func WithStrategy(s Strategy) Option {
	if s != MulNaive && s != MulGrouped {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithWorkers partitions the left operand's entries across n goroutines.
// Partial products are merged by summation, never by overwrite.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// NewOptions resolves opts over the defaults. Exposed so callers (CLI,
// tests) can inspect the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies setters in order over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{strategy: DefaultStrategy, workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ParseStrategy maps a case-insensitive name ("naive", "grouped") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "naive":
		return MulNaive, nil
	case "grouped":
		return MulGrouped, nil
	default:
		return MulNaive, fmt.Errorf("matrix: unknown strategy %q", name)
	}
}
