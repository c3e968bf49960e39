package decoder

import "testing"

func TestAnalyzeOperatorSkillUnknownWhenFewPulses(t *testing.T) {
	pulses := make([]Pulse, 5)
	skill := AnalyzeOperatorSkill(pulses, nil)
	if skill.Tier != TierUnknown {
		t.Fatalf("expected UNKNOWN tier with fewer than 10 pulses, got %v", skill.Tier)
	}
}

func TestAnalyzeOperatorSkillPerfectRhythmIsHighTier(t *testing.T) {
	pulses := make([]Pulse, 20)
	gaps := make([]Gap, 19)
	for i := range pulses {
		if i%4 == 0 {
			pulses[i].Duration = 180_000_000 // dash, ns
		} else {
			pulses[i].Duration = 60_000_000 // dot, ns
		}
	}
	for i := range gaps {
		gaps[i] = Gap(60_000_000)
	}
	skill := AnalyzeOperatorSkill(pulses, gaps)
	if skill.Tier == TierUnknown || skill.Tier == TierBeginner {
		t.Fatalf("expected a competent tier for highly regular timing, got %v (score %v)", skill.Tier, skill.SkillScore)
	}
}

func TestClampBounds(t *testing.T) {
	if clamp(150, 0, 100) != 100 {
		t.Fatal("clamp should cap at hi")
	}
	if clamp(-10, 0, 100) != 0 {
		t.Fatal("clamp should floor at lo")
	}
	if clamp(50, 0, 100) != 50 {
		t.Fatal("clamp should pass through in-range values")
	}
}
