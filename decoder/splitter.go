package decoder

import (
	"io"
	"math"
	"sort"
)

// splitterMinFreq/splitterMaxFreq bound the frequency range bands are
// clipped to, matching multi_signal_decoder.py's band defaults.
const (
	splitterMinFreq = 300.0
	splitterMaxFreq = 1500.0
	bandWidth        = 400.0
)

// isSingleSignal applies detect_frequency_peaks' heuristics for when
// several spectral peaks should still be treated as one CW signal
// rather than split into separate bands: a lone peak, two close
// peaks, two comparably strong peaks within 500Hz, a tight cluster of three or
// more, or peaks with small mean neighbour spacing.
func isSingleSignal(peaks []Peak) bool {
	if len(peaks) <= 1 {
		return true
	}
	if len(peaks) == 2 {
		sep := math.Abs(peaks[0].Frequency - peaks[1].Frequency)
		if sep < 300 {
			return true
		}
		ratio := math.Pow(10, -math.Abs(peaks[0].SNR-peaks[1].SNR)/20)
		if ratio >= 0.7 && sep < 500 {
			return true
		}
		return false
	}

	freqs := make([]float64, len(peaks))
	for i, p := range peaks {
		freqs[i] = p.Frequency
	}
	lo, hi := freqs[0], freqs[0]
	for _, f := range freqs {
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	if hi-lo < 800 {
		return true
	}

	sort.Float64s(freqs)
	var spacingSum float64
	for i := 1; i < len(freqs); i++ {
		spacingSum += freqs[i] - freqs[i-1]
	}
	meanSpacing := spacingSum / float64(len(freqs)-1)
	return meanSpacing < 400
}

// detectBands finds the frequency bands a multi-signal splitter
// should decode separately. It returns a single full-range band when
// isSingleSignal holds.
func detectBands(samples []float64, sampleRate int, numPeaks int) []Band {
	sp := newSpectrum(samples, sampleRate)
	peaks := sp.DetectPeaks(numPeaks, splitterMinFreq, splitterMaxFreq, 6)

	if len(peaks) == 0 || isSingleSignal(peaks) {
		return []Band{{
			CenterFreq: (splitterMinFreq + splitterMaxFreq) / 2,
			LowFreq:    splitterMinFreq,
			HighFreq:   splitterMaxFreq,
		}}
	}

	bands := make([]Band, len(peaks))
	for i, p := range peaks {
		lo := p.Frequency - bandWidth/2
		hi := p.Frequency + bandWidth/2
		if lo < splitterMinFreq {
			lo = splitterMinFreq
		}
		if hi > splitterMaxFreq {
			hi = splitterMaxFreq
		}
		bands[i] = Band{CenterFreq: p.Frequency, LowFreq: lo, HighFreq: hi}
	}
	return bands
}

// DecodeMulti separates the recording into its apparent simultaneous
// signals and decodes each independently: one full batch decode per
// spectral peak, returning once every band has been decoded.
func (d *Decoder) DecodeMulti(r io.Reader, numPeaks int) ([]SplitResult, error) {
	buf, rate, err := LoadWAV(r, d.cfg.SampleRateHz)
	if err != nil {
		return nil, err
	}
	samples := make([]float64, len(buf))
	for i, v := range buf {
		samples[i] = float64(v)
	}

	bands := detectBands(samples, rate, numPeaks)
	results := make([]SplitResult, len(bands))
	for i, band := range bands {
		filter := newBandpassFilter(rate, band.LowFreq, band.HighFreq)
		filtered := filter.Apply(buf)
		env := detectEnvelope(filtered, rate)

		result, err := d.decodeEnvelope(filtered, env, rate, d.cfg.Params, false)
		if err != nil {
			results[i] = SplitResult{Band: band, Result: DecodeResult{}}
			continue
		}
		results[i] = SplitResult{Band: band, Result: result}
	}
	return results, nil
}

// decodeEnvelope runs segmentation through scoring over a
// precomputed envelope, the shared tail of Decode and DecodeMulti.
// filtered is the time-domain bandpassed signal env was derived from;
// it's only read when analyze requests the signal-analysis block,
// which needs the raw waveform alongside the envelope.
func (d *Decoder) decodeEnvelope(filtered []float64, env Envelope, rate int, params Params, analyze bool) (DecodeResult, error) {
	pulses, gaps, err := segmentPulses(env, rate, params.PulsePercentile)
	if err != nil {
		return DecodeResult{}, err
	}
	symbols := classifyPulses(pulses)
	tokens := groupSymbols(symbols, gaps, params)
	morse := morseCodeString(tokens)
	latin, cyrillic, unknownCount := decodeText(tokens)

	durations := make([]float64, len(pulses))
	for i, p := range pulses {
		durations[i] = p.Duration.Seconds()
	}
	wpm := estimateWPM(durations)
	analysis := d.codes.Analyze(latin)
	score := scoreQuality(latin, unknownCount, wpm, analysis)

	stats := DecodeStats{
		WPM:             wpm,
		PulseCount:      len(pulses),
		GapCount:        len(gaps),
		UnknownCount:    unknownCount,
		RecognisedCodes: analysis.RecognisedCodes,
		CallsignCount:   analysis.CallsignCount,
		QualityScore:    score,
		MorseCode:       morse,
	}
	if analyze {
		report := SignalReport{
			Modulation: DetectModulation(filtered, rate),
			Purity:     AnalyzePurity(filtered, env, rate),
			Skill:      AnalyzeOperatorSkill(pulses, gaps),
		}
		stats.Analysis = &report
	}

	return DecodeResult{
		TextLatin:    latin,
		TextCyrillic: cyrillic,
		Stats:        stats,
	}, nil
}
