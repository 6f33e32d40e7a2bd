package pipeline

import (
	"time"

	"lshsim/internal/corpus"
	"lshsim/internal/evaluate"
	"lshsim/internal/results"
)

// Params are the LSH parameters a run used.
type Params struct {
	ShingleSize    int    `json:"shingle_size"`
	SignatureSize  int    `json:"signature_size"`
	NumBands       int    `json:"num_bands"`
	RowsPerBand    int    `json:"rows_per_band"`
	Hash           string `json:"hash"`
	FoldDiacritics bool   `json:"fold_diacritics"`
	Workers        int    `json:"workers"`
}

// Report is the outcome of a run.
type Report struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	QuestionsPath string `json:"questions_path"`
	GoldPath      string `json:"gold_path"`
	Params        Params `json:"params"`

	Documents      corpus.Stats   `json:"documents"`
	Gold           corpus.Stats   `json:"gold"`
	DuplicatePairs int            `json:"duplicate_pairs"`
	Degenerate     int            `json:"degenerate"`
	Evaluation     evaluate.Stats `json:"evaluation"`

	Result    evaluate.Result `json:"result"`
	Precision float64         `json:"precision"`
	Recall    float64         `json:"recall"`

	Recorded bool `json:"recorded"`
}

// RunRecord converts the report into its persisted form.
func (r *Report) RunRecord() results.RunRecord {
	return results.RunRecord{
		RunID:            r.RunID,
		StartedAt:        r.StartedAt,
		Duration:         r.Duration,
		QuestionsPath:    r.QuestionsPath,
		GoldPath:         r.GoldPath,
		ShingleSize:      r.Params.ShingleSize,
		SignatureSize:    r.Params.SignatureSize,
		NumBands:         r.Params.NumBands,
		Hash:             r.Params.Hash,
		FoldDiacritics:   r.Params.FoldDiacritics,
		Documents:        r.Documents.Kept,
		GoldPairs:        r.Evaluation.Pairs,
		DroppedDocuments: r.Documents.Dropped(),
		DroppedPairs:     r.Gold.Dropped() + r.DuplicatePairs,
		MissingIDs:       r.Evaluation.MissingID,
		Degenerate:       r.Degenerate,
		TruePositive:     r.Result.TruePositive,
		FalsePositive:    r.Result.FalsePositive,
	}
}
