package decoder

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestNewAppliesDefaults(t *testing.T) {
	d, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.codes == nil {
		t.Fatal("expected a default codes.Detector to be installed")
	}
	if d.cache == nil {
		t.Fatal("expected a result cache when UseCache is true")
	}
}

func TestNewWithoutCache(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseCache = false
	d, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.cache != nil {
		t.Fatal("expected no result cache when UseCache is false")
	}
}

func TestDecodeFileMissingPath(t *testing.T) {
	d, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = d.DecodeFile("/nonexistent/path/does-not-exist.wav")
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO for a missing file, got %v", err)
	}
}

func TestDecodeSilentInput(t *testing.T) {
	samples := make([]int16, 8000)
	data := buildWAV(t, 8000, samples)

	d, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = d.Decode(bytes.NewReader(data), DefaultParams(), false)
	if !errors.Is(err, ErrSilentInput) {
		t.Fatalf("expected ErrSilentInput, got %v", err)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	data := buildWAV(t, 8000, nil)

	d, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := d.Decode(bytes.NewReader(data), DefaultParams(), false)
	if err != nil {
		t.Fatalf("expected no error for empty input, got %v", err)
	}
	if result.TextLatin != "" || result.Stats.WPM != 0 {
		t.Fatalf("expected a zero-valued result, got %+v", result)
	}
}

func TestDecodeAnalyzeAttachesSignalReport(t *testing.T) {
	samples := make([]int16, 8000)
	for i := range samples {
		samples[i] = int16(16000 * math.Sin(2*math.Pi*700*float64(i)/8000))
	}
	data := buildWAV(t, 8000, samples)

	d, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := d.Decode(bytes.NewReader(data), DefaultParams(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stats.Analysis == nil {
		t.Fatal("expected Stats.Analysis to be populated when analyze is true")
	}
}

func TestDecodeWithoutAnalyzeLeavesReportNil(t *testing.T) {
	samples := make([]int16, 8000)
	for i := range samples {
		samples[i] = int16(16000 * math.Sin(2*math.Pi*700*float64(i)/8000))
	}
	data := buildWAV(t, 8000, samples)

	d, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := d.Decode(bytes.NewReader(data), DefaultParams(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stats.Analysis != nil {
		t.Fatal("expected Stats.Analysis to stay nil when analyze is false")
	}
}
