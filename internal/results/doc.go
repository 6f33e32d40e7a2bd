// Package results persists run history in SQLite.
//
// Every completed run appends one RunRecord; records are never updated. The
// store also owns the run lock that keeps two concurrent runs from writing
// interleaved history against the same data directory.
package results
