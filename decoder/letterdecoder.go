package decoder

import "strings"

// decodeText renders a token stream into text for both language
// tables in one pass, matching decode_morse: consecutive word breaks
// collapse to a single space rather than stacking.
func decodeText(tokens []LetterToken) (latin, cyrillic string, unknownCount int) {
	var lb, cb strings.Builder
	prevWasSpace := true // avoid a leading space
	for _, t := range tokens {
		if t.IsWordBreak() {
			if !prevWasSpace {
				lb.WriteByte(' ')
				cb.WriteByte(' ')
				prevWasSpace = true
			}
			continue
		}
		l := decodeLetter(string(t), false)
		c := decodeLetter(string(t), true)
		if l == unknownGlyph {
			unknownCount++
		}
		lb.WriteString(l)
		cb.WriteString(c)
		prevWasSpace = false
	}
	return strings.TrimSpace(lb.String()), strings.TrimSpace(cb.String()), unknownCount
}

// morseCodeString renders a token stream as a conventional Morse
// transcription: letters separated by a space, words separated by
// "/", read from the same tokens decodeText consumes for display
// text.
func morseCodeString(tokens []LetterToken) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.IsWordBreak() {
			parts = append(parts, "/")
			continue
		}
		parts = append(parts, string(t))
	}
	return strings.Join(parts, " ")
}
