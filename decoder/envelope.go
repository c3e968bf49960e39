package decoder

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"
)

// detectEnvelope computes the analytic-signal envelope of a filtered
// buffer via an FFT-based Hilbert transform, then smooths it with an
// odd-length median filter, built on gonum's FFT rather than a
// hand-rolled DFT.
func detectEnvelope(filtered []float64, sampleRate int) Envelope {
	n := len(filtered)
	if n == 0 {
		return Envelope{}
	}

	analytic := hilbert(filtered)

	env := make(Envelope, n)
	for i, c := range analytic {
		env[i] = math.Hypot(real(c), imag(c))
	}

	window := int(float64(sampleRate) * 0.01)
	if window < 1 {
		window = 1
	}
	if window%2 == 0 {
		window++
	}
	return medianFilter(env, window)
}

// hilbert returns the analytic signal of a real sequence: zero the
// negative-frequency half of its spectrum (doubling the positive
// half) and inverse transform.
func hilbert(x []float64) []complex128 {
	n := len(x)
	cx := make([]complex128, n)
	for i, v := range x {
		cx[i] = complex(v, 0)
	}

	fft := fourier.NewCmplxFFT(n)
	spectrum := fft.Coefficients(nil, cx)

	h := make([]float64, n)
	if n%2 == 0 {
		h[0] = 1
		h[n/2] = 1
		for i := 1; i < n/2; i++ {
			h[i] = 2
		}
	} else {
		h[0] = 1
		for i := 1; i < (n+1)/2; i++ {
			h[i] = 2
		}
	}
	for i := range spectrum {
		spectrum[i] *= complex(h[i], 0)
	}

	// fft.Sequence is unnormalised (a forward then inverse transform
	// multiplies the input by n), so the 1/n scaling is applied here.
	seq := fft.Sequence(nil, spectrum)
	scale := complex(1/float64(n), 0)
	for i := range seq {
		seq[i] *= scale
	}
	return seq
}

// medianFilter applies a sliding-window median. Near the boundaries
// the window shrinks to the samples that exist; unlike
// scipy.signal.medfilt, no zero padding is applied. No
// median-filter implementation surfaces in the retrieved corpus (see
// DESIGN.md), so this is a direct sliding-window sort.
func medianFilter(x []float64, window int) []float64 {
	n := len(x)
	out := make([]float64, n)
	half := window / 2
	buf := make([]float64, 0, window)
	for i := 0; i < n; i++ {
		lo := i - half
		hi := i + half
		if lo < 0 {
			lo = 0
		}
		if hi >= n {
			hi = n - 1
		}
		buf = buf[:0]
		for j := lo; j <= hi; j++ {
			buf = append(buf, x[j])
		}
		sort.Float64s(buf)
		out[i] = buf[len(buf)/2]
	}
	return out
}
