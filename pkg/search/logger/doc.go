// Package logger provides concrete search.Logger implementations: a no-op
// logger that implements only the timeout discipline, a count logger that
// tracks per-event-kind counters, and a histogram logger that tracks those
// counters broken down by stack depth.
package logger
