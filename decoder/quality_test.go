package decoder

import (
	"testing"

	"github.com/cwsl/morsecore/codes"
)

func TestScoreQualityGoodWPMBonus(t *testing.T) {
	text := "CQCQCQDER1ABCK" // 14 chars
	score := scoreQuality(text, 0, 20, codes.Analysis{})
	// lengthTerm = 1.4, no unknown penalty, WPM in [5,40] => +20
	want := 1.4 + 20.0
	if diff := score - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("score = %v, want %v", score, want)
	}
}

func TestScoreQualityBadWPMPenalty(t *testing.T) {
	score := scoreQuality("HELLO", 0, 120, codes.Analysis{})
	want := 0.5 - 30.0
	if diff := score - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("score = %v, want %v", score, want)
	}
}

func TestScoreQualityEmptyText(t *testing.T) {
	if got := scoreQuality("", 0, 20, codes.Analysis{}); got != 0 {
		t.Fatalf("expected 0 for empty text, got %v", got)
	}
}

func TestScoreQualityUnknownPenaltyAndBonuses(t *testing.T) {
	text := "0123456789" // 10 chars, 1 unknown glyph
	score := scoreQuality(text, 1, 20, codes.Analysis{RecognisedCodes: 1, CallsignCount: 1})
	want := 1.0 - 200*0.1 + 10 + 5 + 20
	if diff := score - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("score = %v, want %v", score, want)
	}
}
