package decoder

import (
	"math"
	"testing"
)

func TestIsSingleSignalLonePeak(t *testing.T) {
	if !isSingleSignal([]Peak{{Frequency: 600}}) {
		t.Fatal("one peak must be treated as a single signal")
	}
}

func TestIsSingleSignalCloseTwoPeaks(t *testing.T) {
	peaks := []Peak{{Frequency: 600, SNR: 20}, {Frequency: 750, SNR: 18}}
	if !isSingleSignal(peaks) {
		t.Fatal("peaks within 300Hz must be treated as a single signal")
	}
}

func TestIsSingleSignalTwoDistantEqualPeaksAreMultiple(t *testing.T) {
	// 600Hz apart: past both the 300Hz close-peak threshold and the
	// 500Hz comparable-amplitude threshold, so these are two signals.
	peaks := []Peak{{Frequency: 500, SNR: 20}, {Frequency: 1100, SNR: 20}}
	if isSingleSignal(peaks) {
		t.Fatal("two distant, comparably strong peaks should be treated as multiple signals")
	}
}

func TestIsSingleSignalTightClusterOfThree(t *testing.T) {
	peaks := []Peak{{Frequency: 500}, {Frequency: 700}, {Frequency: 900}}
	if !isSingleSignal(peaks) {
		t.Fatal("a tight cluster spanning under 800Hz must be treated as a single signal")
	}
}

func TestDetectBandsClipsToRange(t *testing.T) {
	// Two distant, comparably strong tones: 700Hz and 1490Hz. They're
	// far enough apart and close enough in amplitude that isSingleSignal
	// splits them into separate bands, and the 1490Hz peak's band
	// (±bandWidth/2 = ±200Hz) would extend to 1690Hz, past
	// splitterMaxFreq, so it must be clipped to 1500.
	const sampleRate = 8000
	samples := make([]float64, 4096)
	for i := range samples {
		t := float64(i) / sampleRate
		samples[i] = math.Sin(2*math.Pi*700*t) + math.Sin(2*math.Pi*1490*t)
	}

	bands := detectBands(samples, sampleRate, 5)
	if len(bands) != 2 {
		t.Fatalf("expected two bands for two distant peaks, got %d: %+v", len(bands), bands)
	}

	var highBand *Band
	for i := range bands {
		if bands[i].CenterFreq > 1000 {
			highBand = &bands[i]
		}
	}
	if highBand == nil {
		t.Fatalf("expected a band centered near 1490Hz, got %+v", bands)
	}
	if highBand.HighFreq > splitterMaxFreq {
		t.Fatalf("band high edge %v should be clipped to %v", highBand.HighFreq, splitterMaxFreq)
	}
	if highBand.HighFreq != splitterMaxFreq {
		t.Fatalf("band near the upper edge should clip exactly to %v, got %v", splitterMaxFreq, highBand.HighFreq)
	}
}
