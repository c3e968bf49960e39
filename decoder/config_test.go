package decoder

import (
	"strings"
	"testing"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	doc := "language: cyrillic\ntuner_mode: thorough\nparams:\n  pulse_percentile: 80\n"
	cfg, err := LoadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Language != "cyrillic" {
		t.Fatalf("expected language override, got %q", cfg.Language)
	}
	if cfg.TunerMode != "thorough" {
		t.Fatalf("expected tuner_mode override, got %q", cfg.TunerMode)
	}
	if cfg.SampleRateHz != DefaultConfig().SampleRateHz {
		t.Fatalf("expected unset fields to keep defaults, got %d", cfg.SampleRateHz)
	}
}

func TestLoadConfigRejectsInvalidYAML(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("language: [unterminated"))
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
