// Package codes models procedural-code and callsign recognition as a
// pluggable capability. The quality scorer needs counts of recognised
// codes and callsigns; the dictionaries themselves (Q-codes, Z-codes,
// prosign glossaries, fuzzy callsign matching) are a read-only lookup
// service outside this core's scope, so only a minimal default table
// lives here.
package codes

import "regexp"

// callsignPattern mirrors the original procedural_codes.py pattern:
// one or two letters, a digit, then one to four letters or digits.
var callsignPattern = regexp.MustCompile(`\b[A-Z]{1,2}[0-9][A-Z0-9]{1,4}\b`)

// Detector recognises procedural codes and callsigns in decoded text.
// A caller with access to the full ACP-131/Q-code/Z-code dictionaries
// and a fuzzy callsign matcher implements this interface directly;
// Default provides a minimal table so the core degrades gracefully
// when no such collaborator is wired in.
type Detector interface {
	// Analyze scans decoded text and reports how many procedural
	// codes and how many distinct callsigns it recognises.
	Analyze(text string) Analysis
}

// Analysis holds the counts the quality scorer consumes.
type Analysis struct {
	RecognisedCodes int
	CallsignCount   int
}

// commonQCodes is a small illustrative subset, not the full ACP-131
// table a dedicated procedural-code dictionary service would carry.
var commonQCodes = map[string]bool{
	"QTH": true, "QRZ": true, "QSL": true, "QRM": true, "QRN": true,
	"QSY": true, "QRP": true, "QRT": true, "QRX": true, "QSO": true,
	"QRS": true, "QRQ": true, "73": true, "88": true, "TU": true,
	"CQ": true, "DE": true, "K": true, "AR": true, "SK": true, "BT": true,
}

// Default is a minimal Detector: it recognises callsign-shaped tokens
// and a handful of the most common Q-codes and prosign abbreviations.
type Default struct{}

// NewDefault returns the minimal default Detector.
func NewDefault() Default { return Default{} }

func (Default) Analyze(text string) Analysis {
	var a Analysis
	seen := make(map[string]bool)
	for _, tok := range splitTokens(text) {
		if commonQCodes[tok] {
			a.RecognisedCodes++
			continue
		}
		if callsignPattern.MatchString(tok) && !seen[tok] {
			seen[tok] = true
			a.CallsignCount++
		}
	}
	return a
}

func splitTokens(text string) []string {
	var tokens []string
	start := -1
	for i, r := range text {
		isWord := (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '<' || r == '>'
		if isWord {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			tokens = append(tokens, text[start:i])
			start = -1
		}
	}
	if start != -1 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}
