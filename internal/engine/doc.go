// Package engine is the in-process parallel collection engine used by the
// pipeline: order-preserving parallel map, filter-map, hash equi-join and
// counting over slices of records.
//
// Callers supply pure functions; the engine owns goroutines and bounded
// parallelism. Cancellation is checked between items, so a cancelled run
// stops promptly and reports ctx.Err() instead of partial output.
package engine
