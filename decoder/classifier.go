package decoder

// DitDahDivisor is the empirically-chosen tunable constant used to
// derive the dot/dash unit duration from the median pulse duration
// (unit = median(durations)/1.5). Named rather than inlined since
// it's a tunable, not a magic number.
const DitDahDivisor = 1.5

// classifyPulses assigns each pulse a dot ('.') or dash ('-') symbol
// based on its duration relative to the unit time derived from the
// median pulse duration across the whole buffer.
func classifyPulses(pulses []Pulse) []byte {
	durations := make([]float64, len(pulses))
	for i, p := range pulses {
		durations[i] = p.Duration.Seconds()
	}

	unit := medianDuration(durations)
	if len(durations) >= 2 {
		unit /= DitDahDivisor
	}

	symbols := make([]byte, len(pulses))
	for i, d := range durations {
		if d < unit*2 {
			symbols[i] = '.'
		} else {
			symbols[i] = '-'
		}
	}
	return symbols
}

func medianDuration(durations []float64) float64 {
	if len(durations) == 0 {
		return 0
	}
	cp := append([]float64(nil), durations...)
	return quantile(cp, 50)
}

// groupSymbols walks the pulse symbols and the gaps between them,
// inserting letter and word boundaries according to adaptive gap
// percentiles, grounded on group_morse_symbols: the dot/dash gap
// percentile separates symbols within a letter, the char/word
// percentiles (averaged) separate words.
func groupSymbols(symbols []byte, gaps []Gap, params Params) []LetterToken {
	if len(symbols) == 0 {
		return nil
	}
	if len(gaps) == 0 {
		return []LetterToken{LetterToken(symbols)}
	}

	gapSecs := make([]float64, len(gaps))
	for i, g := range gaps {
		gapSecs[i] = float64(g) / float64(1e9)
	}

	pDotDash := quantile(gapSecs, params.GapPercentileDotDash)
	pChar := quantile(gapSecs, params.GapPercentileChar)
	pWord := quantile(gapSecs, params.GapPercentileWord)

	letterThreshold := pDotDash * 1.5
	wordThreshold := (pChar + pWord) / 2

	var tokens []LetterToken
	current := make([]byte, 0, 8)
	current = append(current, symbols[0])

	for i, g := range gapSecs {
		switch {
		case g >= wordThreshold:
			tokens = append(tokens, LetterToken(current))
			tokens = append(tokens, LetterToken(WordBreak))
			current = current[:0]
		case g >= letterThreshold:
			tokens = append(tokens, LetterToken(current))
			current = current[:0]
		}
		current = append(current, symbols[i+1])
	}
	if len(current) > 0 {
		tokens = append(tokens, LetterToken(current))
	}
	return tokens
}
