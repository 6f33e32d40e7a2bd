package results

import "time"

// RunRecord summarizes one completed evaluation run.
type RunRecord struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	QuestionsPath string `json:"questions_path,omitempty"`
	GoldPath      string `json:"gold_path,omitempty"`

	ShingleSize    int    `json:"shingle_size"`
	SignatureSize  int    `json:"signature_size"`
	NumBands       int    `json:"num_bands"`
	Hash           string `json:"hash"`
	FoldDiacritics bool   `json:"fold_diacritics"`

	Documents        int `json:"documents"`
	GoldPairs        int `json:"gold_pairs"`
	DroppedDocuments int `json:"dropped_documents"`
	DroppedPairs     int `json:"dropped_pairs"`
	MissingIDs       int `json:"missing_ids"`
	Degenerate       int `json:"degenerate"`

	TruePositive  int `json:"true_positive"`
	FalsePositive int `json:"false_positive"`
}

// RowsPerBand derives the band height recorded with the run.
func (r RunRecord) RowsPerBand() int {
	if r.NumBands <= 0 {
		return 0
	}
	return r.SignatureSize / r.NumBands
}

// Precision returns TP / (TP + FP), or 0 when there were no candidates.
func (r RunRecord) Precision() float64 {
	total := r.TruePositive + r.FalsePositive
	if total == 0 {
		return 0
	}
	return float64(r.TruePositive) / float64(total)
}
