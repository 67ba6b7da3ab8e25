package peaks

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-raman/internal/testutil"
)

func TestFindLocatesInjectedPeaks(t *testing.T) {
	trace := testutil.UniformPeakTrace(700, []int{100, 250, 400, 550}, 1, 4)

	found := Find(trace, 0.5)
	if len(found) != 4 {
		t.Fatalf("found %d peaks, want 4", len(found))
	}
	for i, want := range []int{100, 250, 400, 550} {
		if found[i].Index != want {
			t.Fatalf("peak %d at index %d, want %d", i, found[i].Index, want)
		}
	}
}

func TestFindOrderedByIndex(t *testing.T) {
	trace := testutil.GaussianTrace(500,
		[]float64{50, 180, 320, 440},
		[]float64{0.3, 1.0, 0.6, 0.9},
		[]float64{3, 3, 3, 3})

	found := Find(trace, 0)
	for i := 1; i < len(found); i++ {
		if found[i].Index <= found[i-1].Index {
			t.Fatalf("peaks not in index order: %v", found)
		}
	}
}

func TestFindProminenceFloor(t *testing.T) {
	trace := testutil.GaussianTrace(400,
		[]float64{100, 300},
		[]float64{1.0, 0.1},
		[]float64{3, 3})

	all := Find(trace, 0)
	if len(all) != 2 {
		t.Fatalf("found %d peaks without floor, want 2", len(all))
	}
	big := Find(trace, 0.5)
	if len(big) != 1 || big[0].Index != 100 {
		t.Fatalf("floor 0.5: got %+v, want single peak at 100", big)
	}
}

func TestFindEdgesNeverQualify(t *testing.T) {
	// Monotonic ramps peak at the trace edges only.
	rising := testutil.Ramp(64, 0, 1)
	if found := Find(rising, 0); len(found) != 0 {
		t.Fatalf("rising ramp: found %d peaks, want 0", len(found))
	}
	falling := testutil.Ramp(64, 64, -1)
	if found := Find(falling, 0); len(found) != 0 {
		t.Fatalf("falling ramp: found %d peaks, want 0", len(found))
	}
}

func TestFindPlateauMidpoint(t *testing.T) {
	trace := []float64{0, 1, 3, 3, 3, 1, 0}
	found := Find(trace, 0)
	if len(found) != 1 {
		t.Fatalf("found %d peaks, want 1", len(found))
	}
	if found[0].Index != 3 {
		t.Fatalf("plateau peak at %d, want midpoint 3", found[0].Index)
	}
}

func TestFindPlateauAtEdgeSkipped(t *testing.T) {
	trace := []float64{0, 1, 2, 2, 2}
	if found := Find(trace, 0); len(found) != 0 {
		t.Fatalf("edge plateau reported as peak: %+v", found)
	}
}

func TestProminenceRelativeToBaseline(t *testing.T) {
	// Small bump riding next to a tall peak: prominence is measured
	// from the valley separating them, not from zero.
	trace := []float64{0, 0, 10, 0, 4, 5, 4, 0, 0}
	found := Find(trace, 0)
	if len(found) != 2 {
		t.Fatalf("found %d peaks, want 2", len(found))
	}
	testutil.RequireNear(t, found[0].Prominence, 10, 1e-12)
	testutil.RequireNear(t, found[1].Prominence, 5, 1e-12)

	// Raise the valley floor; the small peak's prominence shrinks.
	trace2 := []float64{0, 0, 10, 3, 4, 5, 4, 3, 0}
	found2 := Find(trace2, 0)
	if len(found2) != 2 {
		t.Fatalf("found %d peaks, want 2", len(found2))
	}
	testutil.RequireNear(t, found2[1].Prominence, 2, 1e-12)
}

func TestFindNMostProminentSelectsByProminence(t *testing.T) {
	trace := testutil.GaussianTrace(800,
		[]float64{100, 200, 350, 500, 650},
		[]float64{0.2, 1.0, 0.05, 0.8, 0.6},
		[]float64{3, 3, 3, 3, 3})

	found, err := FindNMostProminent(trace, 3)
	if err != nil {
		t.Fatalf("FindNMostProminent: %v", err)
	}
	for i, want := range []int{200, 500, 650} {
		if found[i].Index != want {
			t.Fatalf("peak %d at index %d, want %d", i, found[i].Index, want)
		}
	}
}

func TestFindNMostProminentInsufficient(t *testing.T) {
	trace := testutil.UniformPeakTrace(300, []int{100, 200}, 1, 3)

	_, err := FindNMostProminent(trace, 5)
	if !errors.Is(err, ErrInsufficientPeaks) {
		t.Fatalf("err = %v, want ErrInsufficientPeaks", err)
	}
}

func TestFindNMostProminentRejectsZero(t *testing.T) {
	if _, err := FindNMostProminent([]float64{0, 1, 0}, 0); err == nil {
		t.Fatal("expected error for n = 0")
	}
}

func TestFindNoisy(t *testing.T) {
	base := testutil.UniformPeakTrace(1000, []int{150, 400, 700}, 1, 5)
	noisy := testutil.AddNoise(base, 42, 0.02)

	found, err := FindNMostProminent(noisy, 3)
	if err != nil {
		t.Fatalf("FindNMostProminent: %v", err)
	}
	for i, want := range []int{150, 400, 700} {
		if d := found[i].Index - want; d < -2 || d > 2 {
			t.Fatalf("peak %d at index %d, want %d +-2", i, found[i].Index, want)
		}
	}
}
