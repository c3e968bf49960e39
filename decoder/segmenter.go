package decoder

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// segmentPulses thresholds the envelope at the given percentile and
// returns the on-key intervals and the off-key gaps between them:
// binarize, then rising/falling edges mark pulse boundaries.
func segmentPulses(env Envelope, sampleRate int, pulsePercentile float64) ([]Pulse, []Gap, error) {
	if len(env) == 0 {
		return nil, nil, fmt.Errorf("%w", ErrNoPulses)
	}

	threshold := quantile([]float64(env), pulsePercentile)

	sampleDur := time.Duration(float64(time.Second) / float64(sampleRate))

	var pulses []Pulse
	inPulse := false
	var start int
	for i, v := range env {
		above := v > threshold
		if above && !inPulse {
			inPulse = true
			start = i
		} else if !above && inPulse {
			inPulse = false
			pulses = append(pulses, newPulse(start, i, sampleDur))
		}
	}
	if inPulse {
		pulses = append(pulses, newPulse(start, len(env), sampleDur))
	}

	if len(pulses) == 0 {
		return nil, nil, fmt.Errorf("%w", ErrNoPulses)
	}

	gaps := make([]Gap, 0, len(pulses)-1)
	for i := 1; i < len(pulses); i++ {
		gaps = append(gaps, Gap(pulses[i].Start-pulses[i-1].End))
	}

	return pulses, gaps, nil
}

func newPulse(startIdx, endIdx int, sampleDur time.Duration) Pulse {
	start := time.Duration(startIdx) * sampleDur
	end := time.Duration(endIdx) * sampleDur
	return Pulse{Start: start, End: end, Duration: end - start}
}

// quantile computes the p-th percentile (0-100) using gonum/stat's
// empirical-CDF quantile (the smallest sample at or above the
// fraction p, with no interpolation between samples) rather than a
// hand-rolled sort-and-index helper.
func quantile(data []float64, percentile float64) float64 {
	cp := append([]float64(nil), data...)
	sort.Float64s(cp)
	return stat.Quantile(percentile/100, stat.Empirical, cp, nil)
}
