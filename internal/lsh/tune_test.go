package lsh

import (
	"math"
	"testing"
)

func TestCollisionProbability(t *testing.T) {
	if got := CollisionProbability(1, 10, 5); got != 1 {
		t.Fatalf("identical documents: got %v, want 1", got)
	}
	if got := CollisionProbability(0, 10, 5); got != 0 {
		t.Fatalf("disjoint documents: got %v, want 0", got)
	}
	// 1 - (1 - 0.5^2)^5
	want := 1 - math.Pow(0.75, 5)
	if got := CollisionProbability(0.5, 5, 2); math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v, want %v", got, want)
	}
	if CollisionProbability(0.8, 10, 5) <= CollisionProbability(0.4, 10, 5) {
		t.Fatal("collision probability not increasing in similarity")
	}
}

func TestMoreBandsRaiseRecall(t *testing.T) {
	if CollisionProbability(0.5, 25, 2) <= CollisionProbability(0.5, 5, 10) {
		t.Fatal("more bands with fewer rows should collide more often")
	}
}

func TestLayouts(t *testing.T) {
	layouts := Layouts(10)
	want := [][2]int{{1, 10}, {2, 5}, {5, 2}, {10, 1}}
	if len(layouts) != len(want) {
		t.Fatalf("got %d layouts, want %d", len(layouts), len(want))
	}
	for i, l := range layouts {
		if l.NumBands != want[i][0] || l.RowsPerBand != want[i][1] {
			t.Fatalf("layout %d = %+v, want bands=%d rows=%d", i, l, want[i][0], want[i][1])
		}
	}
	if th := Threshold(1, 1); th != 1 {
		t.Fatalf("Threshold(1,1) = %v, want 1", th)
	}
}
