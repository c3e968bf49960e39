package decoder

import "math"

// biquad is one second-order IIR section in direct form II transposed.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
	z1, z2     float64
}

func (f *biquad) reset() { f.z1, f.z2 = 0, 0 }

func (f *biquad) step(x float64) float64 {
	y := f.b0*x + f.z1
	f.z1 = f.b1*x + f.z2 - f.a1*y
	f.z2 = f.b2*x - f.a2*y
	return y
}

// bandpassFilter is a cascade of two second-order bandpass sections,
// approximating a 4th-order Butterworth bandpass. Coefficients are
// derived directly from the standard RBJ cookbook constant 0 dB peak
// gain bandpass biquad, cascaded twice for a steeper rolloff (see
// DESIGN.md for why this isn't built on a filter-design library).
type bandpassFilter struct {
	sections [2]biquad
}

// newBandpassFilter designs a bandpass filter centered between minFreq
// and maxFreq at the given sample rate.
func newBandpassFilter(sampleRate int, minFreq, maxFreq float64) *bandpassFilter {
	center := math.Sqrt(minFreq * maxFreq)
	bandwidth := maxFreq - minFreq
	if bandwidth <= 0 {
		bandwidth = center / 2
	}
	q := center / bandwidth

	w0 := 2 * math.Pi * center / float64(sampleRate)
	alpha := math.Sin(w0) / (2 * q)
	cosw0 := math.Cos(w0)

	b0 := alpha
	b1 := 0.0
	b2 := -alpha
	a0 := 1 + alpha
	a1 := -2 * cosw0
	a2 := 1 - alpha

	sec := biquad{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}

	return &bandpassFilter{sections: [2]biquad{sec, sec}}
}

func (f *bandpassFilter) resetState() {
	f.sections[0].reset()
	f.sections[1].reset()
}

func (f *bandpassFilter) filterForward(in []float64) []float64 {
	out := make([]float64, len(in))
	f.resetState()
	for i, x := range in {
		y := f.sections[0].step(x)
		y = f.sections[1].step(y)
		out[i] = y
	}
	return out
}

// Apply runs the cascade forward then backward over the signal
// (filtfilt), cancelling the phase shift a single IIR pass would
// otherwise introduce.
func (f *bandpassFilter) Apply(in []float32) []float64 {
	work := make([]float64, len(in))
	for i, v := range in {
		work[i] = float64(v)
	}
	forward := f.filterForward(work)
	reverse(forward)
	backward := f.filterForward(forward)
	reverse(backward)
	return backward
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
