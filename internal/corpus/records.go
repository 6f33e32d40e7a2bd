package corpus

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lshsim/internal/evaluate"
)

// ErrMalformedRecord marks a record that cannot be parsed.
var ErrMalformedRecord = errors.New("malformed record")

// RawDocument is one corpus entry as read from disk.
type RawDocument struct {
	ID   int64
	Text string
}

// Stats counts how records were handled while reading.
type Stats struct {
	Records    int `json:"records"`
	Kept       int `json:"kept"`
	Headers    int `json:"headers"`
	Malformed  int `json:"malformed"`
	Duplicates int `json:"duplicates"`
}

// Dropped returns the number of records that did not make it into the output.
func (s Stats) Dropped() int {
	return s.Malformed + s.Duplicates
}

// ParseDocument converts CSV fields into a RawDocument. Fields beyond the
// second are ignored; the text is trimmed.
func ParseDocument(fields []string) (RawDocument, error) {
	if len(fields) < 2 {
		return RawDocument{}, fmt.Errorf("%w: want at least 2 fields, got %d", ErrMalformedRecord, len(fields))
	}
	id, err := parseDigits(fields[0])
	if err != nil {
		return RawDocument{}, err
	}
	return RawDocument{ID: id, Text: strings.TrimSpace(fields[1])}, nil
}

// ParseGoldPair converts CSV fields into a GoldPair.
func ParseGoldPair(fields []string) (evaluate.GoldPair, error) {
	if len(fields) != 3 {
		return evaluate.GoldPair{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedRecord, len(fields))
	}
	id1, err := parseInt(fields[0])
	if err != nil {
		return evaluate.GoldPair{}, err
	}
	id2, err := parseInt(fields[1])
	if err != nil {
		return evaluate.GoldPair{}, err
	}
	label, err := parseInt(fields[2])
	if err != nil {
		return evaluate.GoldPair{}, err
	}
	if label != 0 && label != 1 {
		return evaluate.GoldPair{}, fmt.Errorf("%w: label %d not 0 or 1", ErrMalformedRecord, label)
	}
	return evaluate.GoldPair{ID1: id1, ID2: id2, Label: int(label)}, nil
}

// parseDigits accepts only unsigned decimal ids.
func parseDigits(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: empty id", ErrMalformedRecord)
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, fmt.Errorf("%w: id %q is not numeric", ErrMalformedRecord, value)
		}
	}
	return parseInt(value)
}

func parseInt(value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedRecord, value)
	}
	return n, nil
}

func isHeader(fields []string, names ...string) bool {
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(fields[0], "\ufeff")))
	for _, name := range names {
		if first == name {
			return true
		}
	}
	return false
}
