package textutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "How Do I Learn Go", "how do i learn go"},
		{"drops punctuation", "What's the best way?!", "whats the best way"},
		{"keeps digits", "Top 10 books of 2019", "top 10 books of 2019"},
		{"drops tabs and newlines", "line one\tline\ntwo", "line onelinetwo"},
		{"drops non ascii", "café über", "caf ber"},
		{"empty", "", ""},
		{"only symbols", "?!@#", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Hello, World!", "  spaced   out  ", "MiXeD 123 ÀÉÎ"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestFoldDiacritics(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Café", "Cafe"},
		{"naïve résumé", "naive resume"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := FoldDiacritics(tt.input); got != tt.want {
			t.Errorf("FoldDiacritics(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPrepare(t *testing.T) {
	if got := Prepare("Café Über", false); got != "caf ber" {
		t.Errorf("Prepare without folding = %q", got)
	}
	if got := Prepare("Café Über", true); got != "cafe uber" {
		t.Errorf("Prepare with folding = %q", got)
	}
}
