// Package corpus reads the question corpus and the labeled gold pairs from
// CSV files.
//
// Malformed records are dropped and counted rather than failing the run:
// a question record needs an integer id and at least a text field, and a gold
// record needs exactly two integer ids and a 0/1 label. Header rows are
// recognized by a non-numeric first field and skipped. Only I/O errors are
// returned to the caller.
package corpus
