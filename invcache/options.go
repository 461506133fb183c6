// SPDX-License-Identifier: MIT

// Functional options for Solve and SolveSystem.
//
// Design goals:
//   - Every call resolves its own options; the only shared default is the
//     stateless defaultInverter.
//   - Panic only on nonsensical values (programmer error), never on data.

package invcache

import "log/slog"

const (
	panicNilLogger   = "invcache: WithLogger: logger must not be nil"
	panicNilInverter = "invcache: WithInverter: inverter must not be nil"
)

// Option configures a single Solve/SolveSystem call.
type Option func(*options)

type options struct {
	logger   *slog.Logger // diagnostic sink; default slog.Default()
	inverter Inverter     // nil means defaultInverter, resolved on a miss
	metrics  *Metrics     // nil disables instrumentation
}

// WithLogger sets the diagnostic sink. Solve logs one Info record per cache
// hit and a Debug record per computation.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithInverter replaces the inversion primitive used on a cache miss.
func WithInverter(inv Inverter) Option {
	if inv == nil {
		panic(panicNilInverter)
	}

	return func(o *options) { o.inverter = inv }
}

// WithMetrics records hits, misses, failures and inversion latency into m.
// A nil m disables instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) options {
	o := options{
		logger: slog.Default(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
