// Package benchtest is used for benchmarking decasify against the Go stdlib's
// strings package and golang.org/x/text/cases.
//
// It is not part of the decasify package since the stdlib has no locale aware
// title casing. The benchmarks here measure the overhead of decasify's
// exception tables and word classification compared to plain case mapping.
package benchtest
