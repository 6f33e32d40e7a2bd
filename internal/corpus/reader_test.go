package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"lshsim/internal/evaluate"
)

func TestReadDocuments(t *testing.T) {
	input := strings.Join([]string{
		"id,question",
		"1,  How do I learn Go?  ",
		"2,\"What is a shingle, exactly?\"",
		"3,Why, oh why, is this split",
		"abc,not a number",
		"-4,negative id",
		"5",
		"1,duplicate id",
		"",
		"6,",
	}, "\n")

	docs, stats, err := ReadDocuments(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadDocuments returned error: %v", err)
	}
	want := []RawDocument{
		{ID: 1, Text: "How do I learn Go?"},
		{ID: 2, Text: "What is a shingle, exactly?"},
		{ID: 3, Text: "Why"},
		{ID: 6, Text: ""},
	}
	if !reflect.DeepEqual(docs, want) {
		t.Fatalf("docs = %#v, want %#v", docs, want)
	}
	wantStats := Stats{Records: 9, Kept: 4, Headers: 1, Malformed: 3, Duplicates: 1}
	if stats != wantStats {
		t.Fatalf("stats = %+v, want %+v", stats, wantStats)
	}
	if stats.Dropped() != 4 {
		t.Fatalf("Dropped = %d, want 4", stats.Dropped())
	}
}

func TestReadGoldPairs(t *testing.T) {
	input := strings.Join([]string{
		"qid1,qid2,is_duplicate",
		"1,2,1",
		"3,4,0",
		"1,2,1",
		"5,6",
		"7,8,2",
		"x,9,1",
		"10,11,0,extra",
		" 12 , 13 , 1 ",
	}, "\n")

	pairs, stats, err := ReadGoldPairs(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadGoldPairs returned error: %v", err)
	}
	want := []evaluate.GoldPair{
		{ID1: 1, ID2: 2, Label: 1},
		{ID1: 3, ID2: 4, Label: 0},
		{ID1: 1, ID2: 2, Label: 1},
		{ID1: 12, ID2: 13, Label: 1},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("pairs = %#v, want %#v", pairs, want)
	}
	if stats.Headers != 1 || stats.Malformed != 4 || stats.Kept != 4 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestParseGoldPairErrors(t *testing.T) {
	cases := [][]string{
		{"1", "2"},
		{"1", "2", "yes"},
		{"1", "2", "-1"},
		{"", "2", "1"},
	}
	for _, fields := range cases {
		if _, err := ParseGoldPair(fields); !errors.Is(err, ErrMalformedRecord) {
			t.Fatalf("ParseGoldPair(%v) error = %v, want ErrMalformedRecord", fields, err)
		}
	}
}

func TestParseDocumentRejectsShortRecord(t *testing.T) {
	if _, err := ParseDocument([]string{"12"}); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	questions := filepath.Join(dir, "questions.csv")
	gold := filepath.Join(dir, "gold.csv")
	if err := os.WriteFile(questions, []byte("\ufeffid,question\n1,first\n2,second\n"), 0o644); err != nil {
		t.Fatalf("write questions: %v", err)
	}
	if err := os.WriteFile(gold, []byte("qid1,qid2,is_duplicate\n1,2,0\n"), 0o644); err != nil {
		t.Fatalf("write gold: %v", err)
	}

	docs, stats, err := LoadDocuments(questions)
	if err != nil {
		t.Fatalf("LoadDocuments returned error: %v", err)
	}
	if len(docs) != 2 || stats.Headers != 1 {
		t.Fatalf("unexpected docs %v stats %+v", docs, stats)
	}
	pairs, _, err := LoadGoldPairs(gold)
	if err != nil {
		t.Fatalf("LoadGoldPairs returned error: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Label != 0 {
		t.Fatalf("unexpected pairs %v", pairs)
	}

	if _, _, err := LoadDocuments(filepath.Join(dir, "missing.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
