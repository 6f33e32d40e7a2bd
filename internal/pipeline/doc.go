// Package pipeline runs a complete evaluation: it loads the corpus and the
// gold pairs, signs and bands every document, evaluates the labeled pairs and
// reports true and false positive counts.
//
// Parameters and seeds are fixed before any parallel work starts. A run either
// completes and (optionally) records its result, or fails without writing
// history.
package pipeline
