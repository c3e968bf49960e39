package decoder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func buildWAV(t *testing.T, sampleRate int, samples []int16) []byte {
	t.Helper()
	var buf bytes.Buffer
	dataSize := uint32(len(samples) * 2)
	hdr := wavHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * 2),
		BlockAlign:    2,
		BitsPerSample: 16,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}
	if err := binary.Write(&buf, binary.LittleEndian, &hdr); err != nil {
		t.Fatalf("writing header: %v", err)
	}
	for _, s := range samples {
		binary.Write(&buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

func TestLoadWAVNormalizesPeak(t *testing.T) {
	samples := make([]int16, 100)
	for i := range samples {
		samples[i] = int16(1000 * math.Sin(float64(i)))
	}
	samples[50] = 16000 // the loudest sample

	data := buildWAV(t, 8000, samples)
	buf, rate, err := LoadWAV(bytes.NewReader(data), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 8000 {
		t.Fatalf("expected rate 8000, got %d", rate)
	}
	maxAbs := float32(0)
	for _, v := range buf {
		a := v
		if a < 0 {
			a = -a
		}
		if a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs < 0.99 || maxAbs > 1.01 {
		t.Fatalf("expected peak normalized to ~1.0, got %v", maxAbs)
	}
}

func TestLoadWAVSilentInput(t *testing.T) {
	samples := make([]int16, 100)
	data := buildWAV(t, 8000, samples)
	_, _, err := LoadWAV(bytes.NewReader(data), 0)
	if !errors.Is(err, ErrSilentInput) {
		t.Fatalf("expected ErrSilentInput, got %v", err)
	}
}

func TestLoadWAVEmptyInput(t *testing.T) {
	data := buildWAV(t, 8000, nil)
	buf, rate, err := LoadWAV(bytes.NewReader(data), 0)
	if err != nil {
		t.Fatalf("expected no error for a zero-length data chunk, got %v", err)
	}
	if len(buf) != 0 {
		t.Fatalf("expected an empty buffer, got %d samples", len(buf))
	}
	if rate != 8000 {
		t.Fatalf("expected rate 8000, got %d", rate)
	}
}

func TestLoadWAVRejectsNonRIFF(t *testing.T) {
	_, _, err := LoadWAV(bytes.NewReader(make([]byte, 64)), 0)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadWAVResamples(t *testing.T) {
	samples := make([]int16, 1600)
	for i := range samples {
		samples[i] = 1000
	}
	samples[0] = 16000
	data := buildWAV(t, 16000, samples)
	buf, rate, err := LoadWAV(bytes.NewReader(data), 8000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 8000 {
		t.Fatalf("expected resampled rate 8000, got %d", rate)
	}
	if len(buf) < 700 || len(buf) > 900 {
		t.Fatalf("expected roughly half-length buffer, got %d", len(buf))
	}
}
