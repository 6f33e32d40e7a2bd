// Package lsh implements MinHash signatures and LSH banding for approximate
// Jaccard similarity over shingle sets.
//
// A run builds one SeedSet up front and shares it read-only with every worker.
// Signer turns a document's shingles into a Signature with one component per
// seed, and Bander collapses a Signature into a BandVector with one bucket id
// per band. Two documents are candidates when their band vectors agree at any
// position.
//
// Hash values are truncated to 32 bits. The default MD5 hasher reproduces the
// reference bucket ids exactly; the xxhash hasher trades that compatibility for
// speed while keeping a uniform distribution.
package lsh
