package decoder

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// wavHeader is the canonical RIFF/WAVE header layout, read back field
// for field.
type wavHeader struct {
	ChunkID   [4]byte
	ChunkSize uint32
	Format    [4]byte

	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// LoadWAV reads a mono or stereo PCM WAV file and returns it resampled
// to targetRate and normalised so the loudest sample has magnitude
// 1.0. Stereo input is downmixed by averaging channels.
func LoadWAV(r io.Reader, targetRate int) (SampleBuffer, int, error) {
	var hdr wavHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, 0, fmt.Errorf("%w: reading wav header: %v", ErrIO, err)
	}
	if hdr.ChunkID != [4]byte{'R', 'I', 'F', 'F'} || hdr.Format != [4]byte{'W', 'A', 'V', 'E'} {
		return nil, 0, fmt.Errorf("%w: not a RIFF/WAVE file", ErrUnsupportedFormat)
	}
	if hdr.Subchunk1ID != [4]byte{'f', 'm', 't', ' '} {
		return nil, 0, fmt.Errorf("%w: missing fmt chunk", ErrUnsupportedFormat)
	}
	if hdr.AudioFormat != wavFormatPCM && hdr.AudioFormat != wavFormatFloat {
		return nil, 0, fmt.Errorf("%w: audio format %d not PCM or float", ErrUnsupportedFormat, hdr.AudioFormat)
	}
	if hdr.NumChannels != 1 && hdr.NumChannels != 2 {
		return nil, 0, fmt.Errorf("%w: %d channels not supported", ErrUnsupportedFormat, hdr.NumChannels)
	}
	if hdr.Subchunk1Size > 16 {
		if _, err := io.CopyN(io.Discard, r, int64(hdr.Subchunk1Size-16)); err != nil {
			return nil, 0, fmt.Errorf("%w: skipping extended fmt chunk: %v", ErrIO, err)
		}
	}
	if hdr.Subchunk2ID != [4]byte{'d', 'a', 't', 'a'} {
		return nil, 0, fmt.Errorf("%w: missing data chunk", ErrUnsupportedFormat)
	}

	raw, err := io.ReadAll(io.LimitReader(r, int64(hdr.Subchunk2Size)))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: reading sample data: %v", ErrIO, err)
	}

	mono, err := decodeAndDownmix(raw, hdr)
	if err != nil {
		return nil, 0, err
	}

	// A zero-length data chunk is genuinely empty input, not silence:
	// there's nothing to reject, so it's handed back as an empty
	// buffer rather than ErrSilentInput. Decode treats a zero-length
	// buffer as a clean empty result with no error.
	if len(mono) == 0 {
		return mono, int(hdr.SampleRate), nil
	}

	peak := float32(0)
	for _, s := range mono {
		if a := float32(math.Abs(float64(s))); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return nil, 0, fmt.Errorf("%w", ErrSilentInput)
	}
	for i := range mono {
		mono[i] /= peak
	}

	rate := int(hdr.SampleRate)
	if targetRate > 0 && targetRate != rate {
		mono = resampleLinear(mono, rate, targetRate)
		rate = targetRate
	}
	return mono, rate, nil
}

func decodeAndDownmix(raw []byte, hdr wavHeader) (SampleBuffer, error) {
	channels := int(hdr.NumChannels)
	bytesPerSample := int(hdr.BitsPerSample) / 8
	frameSize := bytesPerSample * channels
	if frameSize == 0 || len(raw)%frameSize != 0 {
		if frameSize == 0 {
			return nil, fmt.Errorf("%w: zero bits per sample", ErrUnsupportedFormat)
		}
		raw = raw[:len(raw)-len(raw)%frameSize]
	}
	numFrames := len(raw) / frameSize

	readSample := func(b []byte) float32 {
		switch {
		case hdr.AudioFormat == wavFormatFloat && hdr.BitsPerSample == 32:
			bits := binary.LittleEndian.Uint32(b)
			return math.Float32frombits(bits)
		case hdr.BitsPerSample == 16:
			v := int16(binary.LittleEndian.Uint16(b))
			return float32(v) / 32768.0
		case hdr.BitsPerSample == 32:
			v := int32(binary.LittleEndian.Uint32(b))
			return float32(v) / 2147483648.0
		case hdr.BitsPerSample == 8:
			return (float32(b[0]) - 128) / 128.0
		default:
			return 0
		}
	}

	out := make(SampleBuffer, numFrames)
	for i := 0; i < numFrames; i++ {
		frame := raw[i*frameSize : (i+1)*frameSize]
		if channels == 1 {
			out[i] = readSample(frame)
			continue
		}
		l := readSample(frame[:bytesPerSample])
		rr := readSample(frame[bytesPerSample : 2*bytesPerSample])
		out[i] = (l + rr) / 2
	}
	return out, nil
}

// resampleLinear resamples via linear interpolation. Good enough for
// speech/CW-bandwidth audio and keeps the loader dependency-free; a
// polyphase resampler would need a DSP library the corpus doesn't
// import anywhere (see DESIGN.md).
func resampleLinear(in SampleBuffer, fromRate, toRate int) SampleBuffer {
	if len(in) == 0 || fromRate == toRate {
		return in
	}
	ratio := float64(fromRate) / float64(toRate)
	outLen := int(float64(len(in)) / ratio)
	out := make(SampleBuffer, outLen)
	for i := range out {
		srcPos := float64(i) * ratio
		idx := int(srcPos)
		frac := srcPos - float64(idx)
		if idx+1 < len(in) {
			out[i] = in[idx] + float32(frac)*(in[idx+1]-in[idx])
		} else {
			out[i] = in[len(in)-1]
		}
	}
	return out
}
