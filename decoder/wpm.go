package decoder

import "math"

// estimateWPM derives words-per-minute from the median pulse duration
// across all pulses (dots and dashes alike) using the PARIS standard
// (1 unit = 1.2/WPM seconds), clamped to a plausible amateur-radio
// range and rounded to the nearest integer. The median is taken over
// every pulse, not just the ones classified as dots: using the whole
// distribution is more stable than picking out one symbol class, and
// matches the median-over-all-durations definition used elsewhere.
//
// A duration-over-dit-count average was also considered and rejected:
// it disagrees with this formula whenever spacing is irregular, and
// this core needs exactly one WPM figure used consistently everywhere
// it's reported.
func estimateWPM(durations []float64) float64 {
	unitDuration := medianDuration(durations)
	if unitDuration <= 0 {
		return 0
	}

	wpm := 1.2 / unitDuration
	wpm = math.Round(wpm)
	if wpm < 10 {
		wpm = 10
	}
	if wpm > 100 {
		wpm = 100
	}
	return wpm
}
