package results

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const runColumns = "run_id, started_at, duration_ms, questions_path, gold_path, shingle_size, signature_size, num_bands, hash, fold_diacritics, documents, gold_pairs, dropped_documents, dropped_pairs, missing_ids, degenerate, true_positive, false_positive"

func scanRun(scanner interface{ Scan(dest ...any) error }) (*RunRecord, error) {
	var (
		rec           RunRecord
		startedRaw    string
		durationMS    int64
		questionsPath sql.NullString
		goldPath      sql.NullString
		fold          int64
	)

	if err := scanner.Scan(
		&rec.RunID,
		&startedRaw,
		&durationMS,
		&questionsPath,
		&goldPath,
		&rec.ShingleSize,
		&rec.SignatureSize,
		&rec.NumBands,
		&rec.Hash,
		&fold,
		&rec.Documents,
		&rec.GoldPairs,
		&rec.DroppedDocuments,
		&rec.DroppedPairs,
		&rec.MissingIDs,
		&rec.Degenerate,
		&rec.TruePositive,
		&rec.FalsePositive,
	); err != nil {
		return nil, err
	}

	started, err := time.Parse(time.RFC3339Nano, startedRaw)
	if err != nil {
		return nil, fmt.Errorf("parse started_at %q: %w", startedRaw, err)
	}
	rec.StartedAt = started
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.QuestionsPath = questionsPath.String
	rec.GoldPath = goldPath.String
	rec.FoldDiacritics = fold != 0
	return &rec, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
