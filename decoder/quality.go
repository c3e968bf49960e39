package decoder

import "github.com/cwsl/morsecore/codes"

// scoreQuality computes the composite quality score, exactly the
// formula calculate_quality_score uses: a length term capped at 100,
// a penalty proportional to the fraction of unknown-glyph characters,
// a bonus per recognised procedural code and callsign, and a flat WPM
// plausibility bonus or penalty. Empty text scores 0, not the WPM
// penalty floor, since there's no WPM estimate to penalise.
func scoreQuality(text string, unknownCount int, wpm float64, analysis codes.Analysis) float64 {
	textLen := len([]rune(text))
	if textLen == 0 {
		return 0
	}

	lengthTerm := float64(textLen) / 10
	if lengthTerm > 100 {
		lengthTerm = 100
	}

	unknownRatio := float64(unknownCount) / float64(textLen)

	score := lengthTerm
	score -= 200 * unknownRatio
	score += 10 * float64(analysis.RecognisedCodes)
	score += 5 * float64(analysis.CallsignCount)
	if wpm >= 5 && wpm <= 40 {
		score += 20
	} else {
		score -= 30
	}
	return score
}
