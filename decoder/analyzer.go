package decoder

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ModulationType is the coarse classification the Signal Analyzer
// assigns a buffer based on its spectral peak layout.
type ModulationType string

const (
	ModCW    ModulationType = "CW"
	ModRTTY  ModulationType = "RTTY"
	ModPSK31 ModulationType = "PSK31"
	ModOther ModulationType = "OTHER"
)

// ModulationAnalysis is the Signal Analyzer's modulation-detection
// output.
type ModulationAnalysis struct {
	Type             ModulationType
	Confidence       float64
	DominantFreqHz   float64
	BandwidthHz      float64
	NumPeaks         int
}

// PurityAnalysis quantifies how clean the keying is.
type PurityAnalysis struct {
	ChirpScore   float64
	ClickCount   int
	NoiseLevel   float64
	SNRdB        float64
	QRM          bool
	PurityScore  float64
}

// SkillTier buckets an operator's timing consistency.
type SkillTier string

const (
	TierExpert       SkillTier = "EXPERT"
	TierAdvanced     SkillTier = "ADVANCED"
	TierIntermediate SkillTier = "INTERMEDIATE"
	TierBeginner     SkillTier = "BEGINNER"
	TierUnknown      SkillTier = "UNKNOWN"
)

// SkillAnalysis summarizes operator timing/rhythm quality.
type SkillAnalysis struct {
	TimingStability   float64
	RhythmConsistency float64
	DotDashRatio      float64
	VarianceScore     float64
	SkillScore        float64
	Tier              SkillTier
}

// DetectModulation classifies the buffer's modulation type from its
// spectral peak layout, grounded on signal_analyzer.py's
// detect_modulation_type: RTTY if two peaks separate in the classic
// 170Hz or 450Hz shift bands, PSK31 if bandwidth is narrow (20-60Hz),
// else CW.
func DetectModulation(samples []float64, sampleRate int) ModulationAnalysis {
	sp := newSpectrum(samples, sampleRate)
	peaks := sp.DetectPeaks(5, 100, float64(sampleRate)/2-100, 6)

	if len(peaks) == 0 {
		return ModulationAnalysis{Type: ModOther, Confidence: 0}
	}

	dominant := peaks[0].Frequency
	var lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range peaks {
		if p.Frequency < lo {
			lo = p.Frequency
		}
		if p.Frequency > hi {
			hi = p.Frequency
		}
	}
	bandwidth := hi - lo

	if len(peaks) >= 2 {
		sep := math.Abs(peaks[0].Frequency - peaks[1].Frequency)
		if (sep > 150 && sep < 200) || (sep > 400 && sep < 500) {
			return ModulationAnalysis{
				Type: ModRTTY, Confidence: 75, DominantFreqHz: dominant,
				BandwidthHz: bandwidth, NumPeaks: len(peaks),
			}
		}
	}
	if bandwidth > 20 && bandwidth < 60 {
		return ModulationAnalysis{
			Type: ModPSK31, Confidence: 70, DominantFreqHz: dominant,
			BandwidthHz: bandwidth, NumPeaks: len(peaks),
		}
	}
	return ModulationAnalysis{
		Type: ModCW, Confidence: 80, DominantFreqHz: dominant,
		BandwidthHz: bandwidth, NumPeaks: len(peaks),
	}
}

// AnalyzePurity scores how clean the envelope's keying is: chirp
// (frequency drift across 500ms segments), clicks (abrupt envelope
// transients), noise level and SNR, and whether several simultaneous
// signals (QRM) are present, grounded on signal_analyzer.py's
// analyze_signal_purity and its _detect_* helpers.
func AnalyzePurity(samples []float64, env Envelope, sampleRate int) PurityAnalysis {
	chirp := detectChirp(samples, sampleRate)
	clicks := detectClicks(env)
	noise := estimateNoiseLevel(env)
	snr := estimateSNR(env)
	qrm := detectQRM(samples, sampleRate)

	score := 100 - 0.3*chirp - math.Min(5*float64(clicks), 30) - 0.5*noise
	score = clamp(score, 0, 100)

	return PurityAnalysis{
		ChirpScore:  chirp,
		ClickCount:  clicks,
		NoiseLevel:  noise,
		SNRdB:       snr,
		QRM:         qrm,
		PurityScore: score,
	}
}

func detectChirp(samples []float64, sampleRate int) float64 {
	segLen := sampleRate / 2 // 500ms
	if segLen < 2 {
		return 0
	}
	var freqs []float64
	for start := 0; start+segLen <= len(samples); start += segLen {
		sp := newSpectrum(samples[start:start+segLen], sampleRate)
		peaks := sp.DetectPeaks(1, 100, float64(sampleRate)/2-100, 3)
		if len(peaks) > 0 {
			freqs = append(freqs, peaks[0].Frequency)
		}
	}
	if len(freqs) < 2 {
		return 0
	}
	lo, hi := freqs[0], freqs[0]
	for _, f := range freqs {
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	return clamp((hi-lo)/10, 0, 100)
}

func detectClicks(env Envelope) int {
	if len(env) < 2 {
		return 0
	}
	diffs := make([]float64, len(env)-1)
	for i := 1; i < len(env); i++ {
		diffs[i-1] = env[i] - env[i-1]
	}
	std := stddev(diffs)
	count := 0
	for _, d := range diffs {
		if math.Abs(d) > 3*std {
			count++
		}
	}
	return count
}

func estimateNoiseLevel(env Envelope) float64 {
	data := []float64(env)
	maxVal := 0.0
	for _, v := range data {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		return 0
	}
	p10 := quantile(data, 10)
	return 100 * p10 / maxVal
}

func estimateSNR(env Envelope) float64 {
	data := []float64(env)
	if len(data) == 0 {
		return 0
	}
	p25 := quantile(data, 25)
	p50 := quantile(data, 50)

	var sigSum, sigN, noiseSum, noiseN float64
	for _, v := range data {
		if v > p50 {
			sigSum += v * v
			sigN++
		}
		if v < p25 {
			noiseSum += v * v
			noiseN++
		}
	}
	if sigN == 0 || noiseN == 0 || noiseSum == 0 {
		return 0
	}
	ratio := (sigSum / sigN) / (noiseSum / noiseN)
	if ratio <= 0 {
		return 0
	}
	db := 10 * math.Log10(ratio)
	return clamp(db, 0, 40)
}

func detectQRM(samples []float64, sampleRate int) bool {
	sp := newSpectrum(samples, sampleRate)
	peaks := sp.DetectPeaks(10, 100, float64(sampleRate)/2-100, 3)
	if len(peaks) == 0 {
		return false
	}
	maxSNR := peaks[0].SNR
	threshold := maxSNR * 0.2
	count := 0
	for _, p := range peaks {
		if p.SNR > threshold {
			count++
		}
	}
	return count > 3
}

// AnalyzeOperatorSkill scores timing stability, rhythm consistency,
// the dot/dash duration ratio (ideal 3.0 by ITU timing), and overall
// duration variance, grounded on signal_analyzer.py's
// analyze_operator_skill and its _calculate_* helpers.
func AnalyzeOperatorSkill(pulses []Pulse, gaps []Gap) SkillAnalysis {
	if len(pulses) < 10 {
		return SkillAnalysis{Tier: TierUnknown}
	}

	durations := make([]float64, len(pulses))
	for i, p := range pulses {
		durations[i] = p.Duration.Seconds()
	}
	gapSecs := make([]float64, len(gaps))
	for i, g := range gaps {
		gapSecs[i] = float64(g) / float64(1e9)
	}

	timing := clamp(100-200*cv(durations), 0, 100)

	rhythm := 50.0
	if len(gapSecs) >= 5 {
		rhythm = clamp(100-150*cv(gapSecs), 0, 100)
	}

	median := medianDuration(durations)
	var longSum, longN, shortSum, shortN float64
	for _, d := range durations {
		if d >= median {
			longSum += d
			longN++
		} else {
			shortSum += d
			shortN++
		}
	}
	ratio := 0.0
	if shortN > 0 && shortSum > 0 {
		ratio = (longSum / longN) / (shortSum / shortN)
	}

	mean := meanOf(durations)
	variance := varianceOf(durations)
	varScore := 100.0
	if mean != 0 {
		varScore = clamp(100-500*variance/(mean*mean), 0, 100)
	}

	skill := (timing + rhythm + varScore) / 3

	tier := TierBeginner
	switch {
	case skill >= 80:
		tier = TierExpert
	case skill >= 60:
		tier = TierAdvanced
	case skill >= 40:
		tier = TierIntermediate
	}

	return SkillAnalysis{
		TimingStability:   timing,
		RhythmConsistency: rhythm,
		DotDashRatio:      ratio,
		VarianceScore:     varScore,
		SkillScore:        skill,
		Tier:              tier,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func meanOf(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// varianceOf is the population variance (not gonum/stat's sample
// variance, which divides by n-1): the variance-score formula below
// is calibrated against the population form.
func varianceOf(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	m := stat.Mean(x, nil)
	sum := 0.0
	for _, v := range x {
		d := v - m
		sum += d * d
	}
	return sum / float64(n)
}

func stddev(x []float64) float64 {
	return math.Sqrt(varianceOf(x))
}

// cv is the coefficient of variation (stddev/mean).
func cv(x []float64) float64 {
	m := stat.Mean(x, nil)
	if m == 0 {
		return 0
	}
	return stddev(x) / m
}
