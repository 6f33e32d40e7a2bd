package lsh

import "math"

// CollisionProbability is the chance that two documents with the given
// Jaccard similarity share at least one bucket: 1 - (1 - s^r)^b.
func CollisionProbability(similarity float64, numBands, rows int) float64 {
	if numBands <= 0 || rows <= 0 {
		return 0
	}
	s := math.Max(0, math.Min(1, similarity))
	return 1 - math.Pow(1-math.Pow(s, float64(rows)), float64(numBands))
}

// Threshold approximates the similarity at which the collision curve is
// steepest, (1/b)^(1/r).
func Threshold(numBands, rows int) float64 {
	if numBands <= 0 || rows <= 0 {
		return 0
	}
	return math.Pow(1/float64(numBands), 1/float64(rows))
}

// Layout describes one valid band split of a signature.
type Layout struct {
	NumBands    int
	RowsPerBand int
	Threshold   float64
}

// Layouts lists every band count that evenly divides signatureSize, in
// increasing order of bands.
func Layouts(signatureSize int) []Layout {
	var out []Layout
	for bands := 1; bands <= signatureSize; bands++ {
		if signatureSize%bands != 0 {
			continue
		}
		rows := signatureSize / bands
		out = append(out, Layout{NumBands: bands, RowsPerBand: rows, Threshold: Threshold(bands, rows)})
	}
	return out
}
