package logging

import "testing"

func TestNewProgressSampler(t *testing.T) {
	tests := []struct {
		name       string
		bucketSize float64
		wantSize   float64
	}{
		{"default bucket size for zero", 0, 5},
		{"default bucket size for negative", -1, 5},
		{"custom bucket size", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewProgressSampler(tt.bucketSize)
			if s.bucketSize != tt.wantSize {
				t.Errorf("bucketSize = %v, want %v", s.bucketSize, tt.wantSize)
			}
			if s.lastBucket != -1 {
				t.Errorf("lastBucket = %d, want -1", s.lastBucket)
			}
		})
	}
}

func TestProgressSamplerNilSampler(t *testing.T) {
	var s *ProgressSampler
	if !s.ShouldLog(50, "sign") {
		t.Error("ShouldLog on nil sampler should always return true")
	}
	s.Reset()
}

func TestProgressSamplerStageChange(t *testing.T) {
	s := NewProgressSampler(5)

	if !s.ShouldLog(0, "  sign  ") {
		t.Error("first stage should log")
	}
	if s.lastStage != "sign" {
		t.Errorf("lastStage = %q, want sign (trimmed)", s.lastStage)
	}
	if s.ShouldLog(0, "sign") {
		t.Error("same stage and percent should not log again")
	}
	if !s.ShouldLog(0, "evaluate") {
		t.Error("different stage should log")
	}
}

func TestProgressSamplerPercentBuckets(t *testing.T) {
	s := NewProgressSampler(5)

	steps := []struct {
		percent float64
		want    bool
	}{
		{0, true},
		{3, false},
		{5, true},
		{7, false},
		{10, true},
		{95, true},
		{100, true},
		{105, false},
	}
	for _, step := range steps {
		if got := s.ShouldLog(step.percent, "sign"); got != step.want {
			t.Errorf("ShouldLog(%v) = %v, want %v", step.percent, got, step.want)
		}
	}
}

func TestProgressSamplerNegativePercent(t *testing.T) {
	s := NewProgressSampler(5)

	if !s.ShouldLog(-1, "load") {
		t.Error("first call should log even with negative percent")
	}
	if s.ShouldLog(-1, "load") {
		t.Error("negative percent should not trigger bucket logging")
	}
}

func TestProgressSamplerBucketResetOnStageChange(t *testing.T) {
	s := NewProgressSampler(5)
	s.ShouldLog(50, "sign")
	s.ShouldLog(0, "evaluate")

	if !s.ShouldLog(10, "evaluate") {
		t.Error("10% should log after stage change reset bucket")
	}
}

func TestProgressSamplerReset(t *testing.T) {
	s := NewProgressSampler(25)
	s.ShouldLog(50, "sign")

	s.Reset()

	if s.lastStage != "" || s.lastBucket != -1 {
		t.Fatalf("state after reset = (%q, %d)", s.lastStage, s.lastBucket)
	}
	if !s.ShouldLog(50, "sign") {
		t.Error("should log after reset")
	}
}
