package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"lshsim/internal/evaluate"
)

func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true
	return reader
}

// eachRecord feeds every CSV record to fn. Parse errors on a single record
// are passed through as a nil record so the caller can count them.
func eachRecord(r io.Reader, fn func(fields []string)) error {
	reader := newCSVReader(r)
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			fn(nil)
			continue
		}
		if err != nil {
			return fmt.Errorf("read csv: %w", err)
		}
		fn(fields)
	}
}

// ReadDocuments parses question records. Repeated ids keep the first record.
func ReadDocuments(r io.Reader) ([]RawDocument, Stats, error) {
	var stats Stats
	var docs []RawDocument
	seen := make(map[int64]struct{})
	err := eachRecord(r, func(fields []string) {
		stats.Records++
		if isHeader(fields, "id") {
			stats.Headers++
			return
		}
		doc, err := ParseDocument(fields)
		if err != nil {
			stats.Malformed++
			return
		}
		if _, dup := seen[doc.ID]; dup {
			stats.Duplicates++
			return
		}
		seen[doc.ID] = struct{}{}
		docs = append(docs, doc)
	})
	if err != nil {
		return nil, stats, err
	}
	stats.Kept = len(docs)
	return docs, stats, nil
}

// ReadGoldPairs parses labeled pair records. Duplicates are left for the
// evaluator to remove.
func ReadGoldPairs(r io.Reader) ([]evaluate.GoldPair, Stats, error) {
	var stats Stats
	var pairs []evaluate.GoldPair
	err := eachRecord(r, func(fields []string) {
		stats.Records++
		if isHeader(fields, "qid1", "id1") {
			stats.Headers++
			return
		}
		pair, err := ParseGoldPair(fields)
		if err != nil {
			stats.Malformed++
			return
		}
		pairs = append(pairs, pair)
	})
	if err != nil {
		return nil, stats, err
	}
	stats.Kept = len(pairs)
	return pairs, stats, nil
}

// LoadDocuments reads questions from a CSV file.
func LoadDocuments(path string) ([]RawDocument, Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open questions: %w", err)
	}
	defer file.Close()
	return ReadDocuments(file)
}

// LoadGoldPairs reads gold pairs from a CSV file.
func LoadGoldPairs(path string) ([]evaluate.GoldPair, Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open gold pairs: %w", err)
	}
	defer file.Close()
	return ReadGoldPairs(file)
}
