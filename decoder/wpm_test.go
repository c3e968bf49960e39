package decoder

import "testing"

func TestEstimateWPMClampedLow(t *testing.T) {
	// A very long median duration implies an implausibly slow WPM; it
	// should clamp to 10.
	durations := []float64{1.0, 1.0, 1.0}
	if got := estimateWPM(durations); got != 10 {
		t.Fatalf("expected clamp to 10, got %v", got)
	}
}

func TestEstimateWPMClampedHigh(t *testing.T) {
	durations := []float64{0.001, 0.001, 0.001}
	if got := estimateWPM(durations); got != 100 {
		t.Fatalf("expected clamp to 100, got %v", got)
	}
}

func TestEstimateWPMTypicalSpeed(t *testing.T) {
	// 1.2/0.06 = 20 WPM exactly.
	durations := []float64{0.06, 0.06, 0.06}
	if got := estimateWPM(durations); got != 20 {
		t.Fatalf("expected 20 WPM, got %v", got)
	}
}

func TestEstimateWPMUsesMedianOfAllDurations(t *testing.T) {
	// Dash-heavy mix: median duration sits among the dashes
	// (0.18s), not the dots (0.06s). The unit duration must be
	// derived from the whole distribution, not dots alone, or this
	// would wrongly compute 1.2/0.06 = 20 instead of 1.2/0.18 = 6.67,
	// clamped to 10.
	durations := []float64{0.06, 0.18, 0.18, 0.18, 0.06}
	if got := estimateWPM(durations); got != 10 {
		t.Fatalf("expected clamp to 10 using the full-distribution median, got %v", got)
	}
}
