package decoder

import (
	"encoding/json"
	"fmt"
	"strings"
)

// configReport is the machine-readable record ConfigJSON renders,
// modeled on auto_tune.py's save_results sidecar .config.json but not
// the same shape: it holds the parameters and the full DecodeStats
// under "params" and "stats" (Go field names as keys) and carries no
// audio file name. This core returns the value instead of writing a
// file, since file output is the caller's concern.
type configReport struct {
	Params Params      `json:"params"`
	Stats  DecodeStats `json:"stats"`
}

// ConfigJSON renders the result's parameters and statistics as a
// machine-readable JSON record.
func (r DecodeResult) ConfigJSON(params Params) ([]byte, error) {
	return json.MarshalIndent(configReport{Params: params, Stats: r.Stats}, "", "  ")
}

// Report renders a short human-readable summary, grounded on
// auto_tune.py's save_results .txt report section headers.
func (r DecodeResult) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Decoded Text (Latin) ===\n%s\n\n", r.TextLatin)
	fmt.Fprintf(&b, "=== Decoded Text (Cyrillic) ===\n%s\n\n", r.TextCyrillic)
	fmt.Fprintf(&b, "=== Statistics ===\n")
	fmt.Fprintf(&b, "WPM: %.0f\n", r.Stats.WPM)
	fmt.Fprintf(&b, "Pulses: %d, Gaps: %d\n", r.Stats.PulseCount, r.Stats.GapCount)
	fmt.Fprintf(&b, "Unknown glyphs: %d\n", r.Stats.UnknownCount)
	fmt.Fprintf(&b, "Recognised codes: %d, Callsigns: %d\n", r.Stats.RecognisedCodes, r.Stats.CallsignCount)
	fmt.Fprintf(&b, "Quality score: %.1f\n", r.Stats.QualityScore)
	fmt.Fprintf(&b, "\n=== Morse Code ===\n%s\n", r.Stats.MorseCode)

	if r.Stats.Analysis != nil {
		a := r.Stats.Analysis
		fmt.Fprintf(&b, "\n=== Signal Analysis ===\n")
		fmt.Fprintf(&b, "Modulation: %s (confidence %.2f, dominant %.0fHz, bandwidth %.0fHz, %d peaks)\n",
			a.Modulation.Type, a.Modulation.Confidence, a.Modulation.DominantFreqHz,
			a.Modulation.BandwidthHz, a.Modulation.NumPeaks)
		fmt.Fprintf(&b, "Purity: score %.1f, chirp %.2f, clicks %d, SNR %.1fdB, QRM %t\n",
			a.Purity.PurityScore, a.Purity.ChirpScore, a.Purity.ClickCount, a.Purity.SNRdB, a.Purity.QRM)
		fmt.Fprintf(&b, "Operator skill: %s (score %.1f, timing stability %.2f, rhythm %.2f)\n",
			a.Skill.Tier, a.Skill.SkillScore, a.Skill.TimingStability, a.Skill.RhythmConsistency)
	}
	return b.String()
}
