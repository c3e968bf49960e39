package decoder

import "errors"

// Error kinds returned by the pipeline. Components wrap these with
// fmt.Errorf("...: %w", ErrX) so callers can test with errors.Is while
// still getting a specific message.
var (
	// ErrIO covers failures reading or parsing the input file.
	ErrIO = errors.New("morsecore: io error")

	// ErrUnsupportedFormat is returned when the input container or
	// encoding isn't one the loader understands.
	ErrUnsupportedFormat = errors.New("morsecore: unsupported audio format")

	// ErrSilentInput is returned when every sample of a non-empty
	// loaded buffer is zero, so there is no peak to normalise by.
	ErrSilentInput = errors.New("morsecore: input contains no signal")

	// ErrNoPulses is returned when the segmenter finds zero pulses
	// after thresholding — a valid recording with nothing keyed.
	ErrNoPulses = errors.New("morsecore: no pulses detected")

	// ErrInternal marks a bug: an invariant the pipeline itself should
	// have guaranteed was violated. Callers should not retry.
	ErrInternal = errors.New("morsecore: internal error")
)
