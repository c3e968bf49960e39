package decoder

import (
	"io"
	"log"
	"math"
	"runtime"
	"sync"
)

// TuneDefault runs Tune using the mode configured on the Decoder.
func (d *Decoder) TuneDefault(r io.Reader) (TunerCandidate, []TunerCandidate, error) {
	return d.Tune(r, parseTunerMode(d.cfg.TunerMode))
}

// Tune runs a parameter search: the envelope is computed once, then
// every parameter combination in the selected mode's grid is
// evaluated against it in parallel, each candidate scored by the same
// quality scorer Decode uses. Ties are broken by longer text, then by
// lower unknown-glyph ratio.
//
// Candidate evaluation runs on plain goroutines plus a WaitGroup
// rather than golang.org/x/sync/errgroup: no candidate's error should
// cancel its siblings, it should simply score -Inf and be skipped,
// which errgroup's fail-fast cancellation does not fit.
func (d *Decoder) Tune(r io.Reader, mode TunerMode) (TunerCandidate, []TunerCandidate, error) {
	buf, rate, err := LoadWAV(r, d.cfg.SampleRateHz)
	if err != nil {
		return TunerCandidate{}, nil, err
	}
	filter := newBandpassFilter(rate, d.cfg.MinFreqHz, d.cfg.MaxFreqHz)
	filtered := filter.Apply(buf)
	env := detectEnvelope(filtered, rate)

	grid := paramGrid(mode)
	workers := d.cfg.TunerWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]TunerCandidate, len(grid))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = d.evaluateCandidate(filtered, env, rate, grid[i])
			}
		}()
	}
	for i := range grid {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	d.metrics.tunerCandidates.Add(float64(len(grid)))
	log.Printf("[Tuner %s] evaluated %d candidates", d.id, len(grid))

	best := bestCandidate(results)
	return best, results, nil
}

func (d *Decoder) evaluateCandidate(filtered []float64, env Envelope, rate int, params Params) TunerCandidate {
	result, err := d.decodeEnvelope(filtered, env, rate, params, false)
	if err != nil {
		return TunerCandidate{Params: params, Score: math.Inf(-1), Err: err}
	}
	return TunerCandidate{Params: params, Score: result.Stats.QualityScore, Result: result}
}

func bestCandidate(candidates []TunerCandidate) TunerCandidate {
	var best TunerCandidate
	haveBest := false
	for _, c := range candidates {
		if c.Err != nil {
			continue
		}
		if !haveBest || isBetter(c, best) {
			best = c
			haveBest = true
		}
	}
	return best
}

func isBetter(a, b TunerCandidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	aLen, bLen := len([]rune(a.Result.TextLatin)), len([]rune(b.Result.TextLatin))
	if aLen != bLen {
		return aLen > bLen
	}
	aRatio := unknownRatio(a.Result)
	bRatio := unknownRatio(b.Result)
	return aRatio < bRatio
}

func unknownRatio(r DecodeResult) float64 {
	n := len([]rune(r.TextLatin))
	if n == 0 {
		return 1
	}
	return float64(r.Stats.UnknownCount) / float64(n)
}

func paramGrid(mode TunerMode) []Params {
	switch mode {
	case TuneThorough:
		return buildGrid(
			[]float64{50, 60, 70, 75, 80, 85, 90},
			[]float64{50, 55, 60, 65},
			[]float64{70, 75, 80, 85, 90},
			[]float64{85, 90, 92, 94},
		)
	case TuneExtreme:
		return buildGrid(
			rangeStep(40, 90, 5),
			rangeStep(50, 70, 3),
			rangeStep(70, 93, 3),
			rangeStep(85, 95, 2),
		)
	default:
		return buildGrid(
			[]float64{60, 70, 80},
			[]float64{55, 60},
			[]float64{75, 85},
			[]float64{90},
		)
	}
}

// rangeStep returns the uniform lo..hi inclusive stepped sequence
// extreme mode's grid is defined over.
func rangeStep(lo, hi, step float64) []float64 {
	var out []float64
	for v := lo; v <= hi+1e-9; v += step {
		out = append(out, v)
	}
	return out
}

func buildGrid(pulse, dotDash, char, word []float64) []Params {
	var grid []Params
	for _, p := range pulse {
		for _, dd := range dotDash {
			for _, c := range char {
				for _, w := range word {
					grid = append(grid, Params{
						PulsePercentile:      p,
						GapPercentileDotDash: dd,
						GapPercentileChar:    c,
						GapPercentileWord:    w,
					})
				}
			}
		}
	}
	return grid
}
