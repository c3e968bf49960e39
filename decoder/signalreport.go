package decoder

// SignalReport bundles the Signal Analyzer's three outputs for one
// recording. It is computed as part of Decode/DecodeFile when the
// caller requests it, not as a separate uncached pass, so it shares
// the same loaded/filtered buffer and the same result cache entry as
// the rest of the decode.
type SignalReport struct {
	Modulation ModulationAnalysis
	Purity     PurityAnalysis
	Skill      SkillAnalysis
}
