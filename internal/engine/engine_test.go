package engine

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"
)

func TestMapPreservesOrder(t *testing.T) {
	in := make([]int, 1000)
	for i := range in {
		in[i] = i
	}
	e := New(WithWorkers(8))
	out, err := Map(context.Background(), e, in, func(v int) int { return v * 2 })
	if err != nil {
		t.Fatalf("Map returned error: %v", err)
	}
	for i, v := range out {
		if v != i*2 {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*2)
		}
	}
}

func TestMapReportsProgress(t *testing.T) {
	var done atomic.Int64
	e := New(WithWorkers(4), WithProgress(func(n int) { done.Add(int64(n)) }))
	if _, err := Map(context.Background(), e, []int{1, 2, 3, 4, 5}, func(v int) int { return v }); err != nil {
		t.Fatalf("Map returned error: %v", err)
	}
	if done.Load() != 5 {
		t.Fatalf("progress = %d, want 5", done.Load())
	}
}

func TestMapCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	out, err := Map(ctx, New(WithWorkers(1)), []int{1, 2, 3}, func(v int) int {
		calls++
		return v
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out != nil || calls != 0 {
		t.Fatalf("expected no work after cancellation, got out=%v calls=%d", out, calls)
	}
}

func TestFilterMap(t *testing.T) {
	out, err := FilterMap(context.Background(), New(), []int{1, 2, 3, 4, 5, 6}, func(v int) (string, bool) {
		return string(rune('a' + v)), v%2 == 0
	})
	if err != nil {
		t.Fatalf("FilterMap returned error: %v", err)
	}
	if want := []string{"c", "e", "g"}; !reflect.DeepEqual(out, want) {
		t.Fatalf("FilterMap = %v, want %v", out, want)
	}
}

func TestNewDefaultsWorkers(t *testing.T) {
	if New().Workers() <= 0 {
		t.Fatal("expected positive default workers")
	}
	if New(WithWorkers(3)).Workers() != 3 {
		t.Fatal("expected explicit workers to be kept")
	}
}

func TestCount(t *testing.T) {
	if got := Count([]int{0, 1, 1, 0, 1}, func(v int) bool { return v == 1 }); got != 3 {
		t.Fatalf("Count = %d, want 3", got)
	}
}

func TestJoin(t *testing.T) {
	left := []KV[int, string]{{1, "a"}, {2, "b"}, {3, "c"}, {1, "d"}}
	right := []KV[int, float64]{{1, 0.1}, {3, 0.3}, {3, 0.33}}
	got := Join(left, right)
	want := []KV[int, Pair[string, float64]]{
		{1, Pair[string, float64]{"a", 0.1}},
		{3, Pair[string, float64]{"c", 0.3}},
		{3, Pair[string, float64]{"c", 0.33}},
		{1, Pair[string, float64]{"d", 0.1}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Join = %v, want %v", got, want)
	}
}

func TestJoinEmpty(t *testing.T) {
	got := Join([]KV[int, int]{{1, 1}}, nil)
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %v", got)
	}
}

func TestRekey(t *testing.T) {
	in := []KV[int, string]{{1, "x"}, {2, "y"}}
	got := Rekey(in, func(k int, v string) (string, int) { return v, k * 10 })
	want := []KV[string, int]{{"x", 10}, {"y", 20}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Rekey = %v, want %v", got, want)
	}
}
