package config

import (
	"os"
	"strconv"
)

// ScoringConfig collects every tunable constant used by the assessment
// core: scoring shrinkage, selector phase boundaries, stop criteria, and
// recommendation thresholds. Defaults match the values the mobile client
// was calibrated against; individual fields can be overridden via env
// for experiments.
type ScoringConfig struct {
	// ShrinkageK discounts axis estimates toward neutral when few
	// answers exist: confidence = n / (n + k).
	ShrinkageK int `json:"shrinkageK"`

	// ResponseWeights maps each swipe response to its signed weight.
	ResponseWeights map[string]int `json:"responseWeights"`

	// TopDrivers is how many highest-contribution swipes are kept per axis.
	TopDrivers int `json:"topDrivers"`

	// Selector phase boundaries (question counts).
	CoveragePhaseEnd  int `json:"coveragePhaseEnd"`
	PrecisionPhaseEnd int `json:"precisionPhaseEnd"`

	// An axis counts as uncertain below this confidence or answer count.
	UncertainConfidence float64 `json:"uncertainConfidence"`
	UncertainMinAnswers int     `json:"uncertainMinAnswers"`

	// Stop criteria for the assessment loop.
	MinQuestions   int     `json:"minQuestions"`
	MaxQuestions   int     `json:"maxQuestions"`
	StopConfidence float64 `json:"stopConfidence"`
	StopMinAnswers int     `json:"stopMinAnswers"`

	// Proposition recommendation thresholds.
	VoteThreshold    float64 `json:"voteThreshold"`    // |score| needed for a yes/no call
	FactorThreshold  float64 `json:"factorThreshold"`  // |alignment| needed to list an axis as a factor
	ConfidenceScale  float64 `json:"confidenceScale"`  // multiplier on |score| for confidence
	BestMatchPercent int     `json:"bestMatchPercent"` // candidate matchPercent needed for the best-match flag

	// Candidate matching bands and surfacing limits (diffs on the 0-10
	// scale). A race with no axis overlap falls back to NoOverlapDiff.
	BandStrongMax   int     `json:"bandStrongMax"`
	BandModerateMax int     `json:"bandModerateMax"`
	BandWeakMax     int     `json:"bandWeakMax"`
	AgreeMaxDiff    int     `json:"agreeMaxDiff"`
	DisagreeMinDiff int     `json:"disagreeMinDiff"`
	SurfacedAxes    int     `json:"surfacedAxes"`
	NoOverlapDiff   float64 `json:"noOverlapDiff"`
}

// DefaultScoringConfig returns the calibrated defaults.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		ShrinkageK: getEnvInt("SCORING_SHRINKAGE_K", 5),
		ResponseWeights: map[string]int{
			"strong_disagree": -2,
			"disagree":        -1,
			"unsure":          0,
			"agree":           1,
			"strong_agree":    2,
		},
		TopDrivers:          5,
		CoveragePhaseEnd:    getEnvInt("SELECTOR_COVERAGE_END", 10),
		PrecisionPhaseEnd:   getEnvInt("SELECTOR_PRECISION_END", 20),
		UncertainConfidence: 0.7,
		UncertainMinAnswers: 3,
		MinQuestions:        getEnvInt("ASSESSMENT_MIN_QUESTIONS", 15),
		MaxQuestions:        getEnvInt("ASSESSMENT_MAX_QUESTIONS", 30),
		StopConfidence:      0.7,
		StopMinAnswers:      2,
		VoteThreshold:       0.15,
		FactorThreshold:     0.15,
		ConfidenceScale:     1.2,
		BestMatchPercent:    50,
		BandStrongMax:       1,
		BandModerateMax:     3,
		BandWeakMax:         5,
		AgreeMaxDiff:        2,
		DisagreeMinDiff:     4,
		SurfacedAxes:        2,
		NoOverlapDiff:       5,
	}
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
