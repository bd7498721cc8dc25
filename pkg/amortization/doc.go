// Package amortization computes fixed-rate, fixed-term monthly amortization
// schedules and point-in-time loan summaries.
//
// The package is pure: no I/O, no state, no caching. Every call recomputes
// the schedule from (apr, amount, term). All arithmetic is IEEE float64 and
// values are reported at full floating precision; rounding for display is
// the caller's concern.
package amortization
