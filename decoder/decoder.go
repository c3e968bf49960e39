// Package decoder implements the Morse decoding core: a batch, file
// based pipeline from a recorded audio buffer to decoded text plus
// timing and quality statistics, an adaptive parameter search, a
// multi-signal splitter, and an insertion-order LRU result cache.
package decoder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/cwsl/morsecore/codes"
)

// Decoder orchestrates the pipeline: it owns the result cache, the
// procedural-code detector, and the metric set for one configuration.
type Decoder struct {
	cfg     Config
	cache   *resultCache
	codes   codes.Detector
	metrics *metrics

	id string
}

// New constructs a Decoder from cfg. A nil codes.Detector falls back
// to codes.NewDefault().
func New(cfg Config, detector codes.Detector) (*Decoder, error) {
	var cache *resultCache
	if cfg.UseCache {
		c, err := newResultCache(cfg.CacheCapacity)
		if err != nil {
			return nil, err
		}
		cache = c
	}
	if detector == nil {
		detector = codes.NewDefault()
	}
	return &Decoder{
		cfg:     cfg,
		cache:   cache,
		codes:   detector,
		metrics: newMetrics(),
		id:      uuid.NewString(),
	}, nil
}

// Metrics returns the Decoder's metric set; its Registry method
// exposes the private Prometheus registry.
func (d *Decoder) Metrics() *metrics { return d.metrics }

// DecodeFile loads, filters, and decodes the WAV file at path using
// d's default parameters.
func (d *Decoder) DecodeFile(path string) (DecodeResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return DecodeResult{}, fmt.Errorf("%w: opening %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return DecodeResult{}, fmt.Errorf("%w: stat %s: %v", ErrIO, path, err)
	}

	key := CacheKey{
		FileSize:  info.Size(),
		FileModNS: info.ModTime().UnixNano(),
		Params:    d.cfg.Params,
		Language:  d.cfg.Language,
		Analyze:   d.cfg.Analyze,
	}
	if d.cfg.UseCache {
		if cached, ok := d.cache.get(key); ok {
			d.metrics.cacheHits.Inc()
			log.Printf("[Decoder %s] cache hit for %s", d.id, path)
			return cached, nil
		}
		d.metrics.cacheMisses.Inc()
	}

	result, err := d.Decode(f, d.cfg.Params, d.cfg.Analyze)
	if err != nil {
		d.metrics.decodeErrors.WithLabelValues(errorKind(err)).Inc()
		return DecodeResult{}, err
	}

	d.metrics.decodeCount.WithLabelValues(d.cfg.Language).Inc()
	if d.cfg.UseCache {
		d.cache.put(key, result)
	}
	return result, nil
}

// Decode runs the full single-signal pipeline (4.1-4.7) over r using
// the given parameters: load, bandpass filter, envelope detect,
// segment, classify, group, and render text plus statistics. A
// genuinely empty recording (zero samples) returns a zero-valued
// result with no error, rather than escalating as a failure — there's
// nothing to decode, but nothing wrong either. analyze additionally
// runs the Signal Analyzer and attaches its report to the result.
func (d *Decoder) Decode(r io.Reader, params Params, analyze bool) (DecodeResult, error) {
	buf, rate, err := LoadWAV(r, d.cfg.SampleRateHz)
	if err != nil {
		return DecodeResult{}, err
	}
	if len(buf) == 0 {
		return DecodeResult{}, nil
	}

	filter := newBandpassFilter(rate, d.cfg.MinFreqHz, d.cfg.MaxFreqHz)
	filtered := filter.Apply(buf)
	env := detectEnvelope(filtered, rate)

	result, err := d.decodeEnvelope(filtered, env, rate, params, analyze)
	if err != nil {
		return DecodeResult{}, err
	}
	result.Stats.DurationSeconds = float64(len(buf)) / float64(rate)
	return result, nil
}

func errorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrSilentInput):
		return "silent_input"
	case errors.Is(err, ErrNoPulses):
		return "no_pulses"
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrIO):
		return "io"
	default:
		return "internal"
	}
}
