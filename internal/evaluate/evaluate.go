// Package evaluate validates LSH candidate generation against labeled gold pairs.
package evaluate

import (
	"context"

	"lshsim/internal/engine"
	"lshsim/internal/lsh"
)

// GoldPair is an externally labeled pair of document ids. Label 1 marks a
// duplicate, label 0 a distinct pair.
type GoldPair struct {
	ID1   int64
	ID2   int64
	Label int
}

// Result holds the aggregate candidate classification.
type Result struct {
	TruePositive  int `json:"true_positive"`
	FalsePositive int `json:"false_positive"`
}

// Stats describes how gold pairs flowed through the join.
type Stats struct {
	Pairs      int `json:"pairs"`
	Joined     int `json:"joined"`
	MissingID  int `json:"missing_id"`
	Candidates int `json:"candidates"`
	Positives  int `json:"positives"`
	Negatives  int `json:"negatives"`
}

// Precision returns TP / (TP + FP), or 0 when there are no candidates.
func (r Result) Precision() float64 {
	total := r.TruePositive + r.FalsePositive
	if total == 0 {
		return 0
	}
	return float64(r.TruePositive) / float64(total)
}

// Recall returns TP over the joined positive pairs, or 0 when there are none.
func (r Result) Recall(s Stats) float64 {
	if s.Positives == 0 {
		return 0
	}
	return float64(r.TruePositive) / float64(s.Positives)
}

// DedupePairs drops repeated (ID1, ID2) entries, keeping the first occurrence.
// Pairs sharing ID1 with a different ID2 are distinct and kept.
func DedupePairs(pairs []GoldPair) []GoldPair {
	type key struct{ a, b int64 }
	seen := make(map[key]struct{}, len(pairs))
	out := make([]GoldPair, 0, len(pairs))
	for _, p := range pairs {
		k := key{p.ID1, p.ID2}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

type labeledBands struct {
	bands lsh.BandVector
	label int
}

// Evaluate joins gold pairs with band vectors on ID1 and then ID2, keeps the
// pairs whose vectors agree in at least one band, and counts them by label.
// Pairs referencing an id without a band vector are excluded.
func Evaluate(ctx context.Context, eng *engine.Engine, bands []engine.KV[int64, lsh.BandVector], pairs []GoldPair) (Result, Stats, error) {
	stats := Stats{Pairs: len(pairs)}

	byFirst := make([]engine.KV[int64, GoldPair], len(pairs))
	for i, p := range pairs {
		byFirst[i] = engine.KV[int64, GoldPair]{Key: p.ID1, Value: p}
	}
	firstJoined := engine.Join(byFirst, bands)

	bySecond := engine.Rekey(firstJoined, func(_ int64, v engine.Pair[GoldPair, lsh.BandVector]) (int64, labeledBands) {
		return v.Left.ID2, labeledBands{bands: v.Right, label: v.Left.Label}
	})
	joined := engine.Join(bySecond, bands)
	stats.Joined = len(joined)
	stats.MissingID = stats.Pairs - stats.Joined

	labels, err := engine.FilterMap(ctx, eng, joined, func(row engine.KV[int64, engine.Pair[labeledBands, lsh.BandVector]]) (int, bool) {
		return row.Value.Left.label, lsh.Candidate(row.Value.Left.bands, row.Value.Right)
	})
	if err != nil {
		return Result{}, stats, err
	}
	stats.Candidates = len(labels)
	stats.Positives = engine.Count(joined, func(row engine.KV[int64, engine.Pair[labeledBands, lsh.BandVector]]) bool {
		return row.Value.Left.label == 1
	})
	stats.Negatives = stats.Joined - stats.Positives

	result := Result{
		TruePositive:  engine.Count(labels, func(l int) bool { return l == 1 }),
		FalsePositive: engine.Count(labels, func(l int) bool { return l == 0 }),
	}
	return result, stats, nil
}
