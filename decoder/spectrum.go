package decoder

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// Peak is a detected spectral peak.
type Peak struct {
	Frequency float64
	SNR       float64
	Bin       int
}

// spectrum is a single-frame FFT power/SNR spectrum, computed over a
// whole recording rather than a live ring buffer: this core analyzes
// recordings already captured to disk, not a running stream.
type spectrum struct {
	sampleRate int
	fftSize    int
	df         float64

	power []float64
	freq  []float64
}

func newSpectrum(samples []float64, sampleRate int) *spectrum {
	fftSize := nextPowerOfTwo(len(samples))
	if fftSize < 2 {
		fftSize = 2
	}

	frame := make([]float64, fftSize)
	copy(frame, samples)
	window.Hann(frame)

	fft := fourier.NewFFT(fftSize)
	coeffs := fft.Coefficients(nil, frame)

	df := float64(sampleRate) / float64(fftSize)
	power := make([]float64, len(coeffs))
	freq := make([]float64, len(coeffs))
	for i, c := range coeffs {
		re, im := real(c), imag(c)
		power[i] = re*re + im*im
		freq[i] = float64(i) * df
	}

	return &spectrum{sampleRate: sampleRate, fftSize: fftSize, df: df, power: power, freq: freq}
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// DetectPeaks returns up to n spectral peaks within [minFreq,maxFreq]
// that are local maxima at least minSNRdB+3dB (twice the linear
// minSNRdB ratio) above the 10th-percentile noise floor, merging
// peaks closer than 200Hz by keeping the stronger one.
func (s *spectrum) DetectPeaks(n int, minFreq, maxFreq, minSNRdB float64) []Peak {
	noiseFloor := quantile(s.power, 10)
	if noiseFloor < 1e-10 {
		noiseFloor = 1e-10
	}
	snr := make([]float64, len(s.power))
	for i, p := range s.power {
		snr[i] = p / noiseFloor
	}

	minBin := int(minFreq / s.df)
	maxBin := int(maxFreq / s.df)
	if minBin < 1 {
		minBin = 1
	}
	if maxBin >= len(snr)-1 {
		maxBin = len(snr) - 2
	}

	minSNRLinear := math.Pow(10, minSNRdB/10)
	const minSeparation = 200.0

	var peaks []Peak
	for i := minBin; i <= maxBin; i++ {
		if !(snr[i] > snr[i-1] && snr[i] > snr[i+1] && snr[i] > minSNRLinear) {
			continue
		}
		if snr[i] < minSNRLinear*2 {
			continue
		}
		freq := s.refineFrequency(i)
		snrDB := 10 * math.Log10(snr[i])

		tooClose := false
		for j := 0; j < len(peaks); j++ {
			if math.Abs(freq-peaks[j].Frequency) < minSeparation {
				if snrDB > peaks[j].SNR {
					peaks = append(peaks[:j], peaks[j+1:]...)
				} else {
					tooClose = true
				}
				break
			}
		}
		if tooClose {
			continue
		}
		peaks = append(peaks, Peak{Frequency: freq, SNR: snrDB, Bin: i})
	}

	sort.Slice(peaks, func(i, j int) bool { return peaks[i].SNR > peaks[j].SNR })
	if len(peaks) > n {
		peaks = peaks[:n]
	}
	return peaks
}

func (s *spectrum) refineFrequency(bin int) float64 {
	if bin <= 0 || bin >= len(s.power)-1 {
		return s.freq[bin]
	}
	alpha, beta, gamma := s.power[bin-1], s.power[bin], s.power[bin+1]
	denom := alpha - 2*beta + gamma
	if denom == 0 {
		return s.freq[bin]
	}
	delta := 0.5 * (alpha - gamma) / denom
	return s.freq[bin] + delta*s.df
}
