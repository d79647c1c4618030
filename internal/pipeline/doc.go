// Package pipeline resolves a stream of records on a pool of workers and hands
// the results back in input order.
//
// Visiting is the parallel part; producing and sending stay on one goroutine
// each, so callers need no locking around their emit or send callbacks.
package pipeline
