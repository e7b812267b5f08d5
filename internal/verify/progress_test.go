package verify

import (
	"testing"

	"github.com/agbru/widearith/internal/progress"
)

func TestNewProgressAggregatorEmpty(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -1} {
		if NewProgressAggregator(n) != nil {
			t.Errorf("NewProgressAggregator(%d) should be nil", n)
		}
	}
}

func TestProgressAggregatorUpdate(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(4)

	got := agg.Update(progress.ProgressUpdate{SuiteIndex: 2, Value: 1})
	if got.SuiteIndex != 2 || got.Value != 1 || got.AverageProgress != 0.25 {
		t.Errorf("Update = %+v, want suite 2 at average 0.25", got)
	}
	agg.Update(progress.ProgressUpdate{SuiteIndex: 0, Value: 0.5})
	if avg := agg.CalculateAverage(); avg != 0.375 {
		t.Errorf("CalculateAverage = %v, want 0.375", avg)
	}
	if eta := agg.GetETA(); eta < 0 {
		t.Errorf("GetETA = %v, want >= 0", eta)
	}

	// Out-of-range indices do not move the average.
	agg.Update(progress.ProgressUpdate{SuiteIndex: 9, Value: 1})
	if avg := agg.CalculateAverage(); avg != 0.375 {
		t.Errorf("average after out-of-range update = %v", avg)
	}
}

func TestDrainChannel(t *testing.T) {
	t.Parallel()
	ch := make(chan progress.ProgressUpdate, 3)
	for i := range 3 {
		ch <- progress.ProgressUpdate{SuiteIndex: i}
	}
	close(ch)
	DrainChannel(ch)
	if len(ch) != 0 {
		t.Errorf("%d updates left in channel", len(ch))
	}
}
