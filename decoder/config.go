package decoder

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Config holds the decoder's tunable defaults, loaded from YAML: a
// yaml-tagged struct with a nested params block, with sane
// zero-value-safe defaults applied by DefaultConfig.
type Config struct {
	SampleRateHz  int     `yaml:"sample_rate_hz"`
	MinFreqHz     float64 `yaml:"min_freq_hz"`
	MaxFreqHz     float64 `yaml:"max_freq_hz"`
	Language      string  `yaml:"language"`
	TunerMode     string  `yaml:"tuner_mode"`
	TunerWorkers  int     `yaml:"tuner_workers"`
	CacheCapacity int     `yaml:"cache_capacity"`
	UseCache      bool    `yaml:"use_cache"`
	Analyze       bool    `yaml:"analyze"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns sensible defaults for amateur CW recordings:
// 8kHz working rate, 400-1200Hz passband, Latin table, fast tuner
// mode, a 100-entry result cache.
func DefaultConfig() Config {
	return Config{
		SampleRateHz:  8000,
		MinFreqHz:     400,
		MaxFreqHz:     1200,
		Language:      "latin",
		TunerMode:     "fast",
		TunerWorkers:  0, // 0 means runtime.NumCPU()
		CacheCapacity: 100,
		UseCache:      true,
		Params:        DefaultParams(),
	}
}

// LoadConfig reads a YAML config document over DefaultConfig's
// values, so an omitted field keeps its default rather than zeroing
// out.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseTunerMode(s string) TunerMode {
	switch s {
	case "thorough":
		return TuneThorough
	case "extreme":
		return TuneExtreme
	default:
		return TuneFast
	}
}
