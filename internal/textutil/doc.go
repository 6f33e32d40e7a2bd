// Package textutil provides the text preparation steps that feed similarity
// estimation: canonicalization and k-shingle extraction.
//
// The primary use cases are:
//   - Normalizing raw question text to lowercase ASCII letters, digits and spaces
//   - Optionally folding diacritics before normalization so accented letters survive
//   - Splitting normalized text into fixed-length character shingles
//
// All functions are pure and safe for concurrent use. Normalized text is ASCII,
// so shingles are extracted on byte offsets.
package textutil
