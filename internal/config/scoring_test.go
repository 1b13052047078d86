package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultScoringConfig(t *testing.T) {
	cfg := DefaultScoringConfig()

	assert.Equal(t, 5, cfg.ShrinkageK)
	assert.Equal(t, map[string]int{
		"strong_disagree": -2,
		"disagree":        -1,
		"unsure":          0,
		"agree":           1,
		"strong_agree":    2,
	}, cfg.ResponseWeights)

	// phase and stop bounds must nest sanely
	assert.Less(t, cfg.CoveragePhaseEnd, cfg.PrecisionPhaseEnd)
	assert.Less(t, cfg.MinQuestions, cfg.MaxQuestions)
	assert.LessOrEqual(t, cfg.PrecisionPhaseEnd, cfg.MaxQuestions)

	// recommendation thresholds
	assert.Greater(t, cfg.VoteThreshold, 0.0)
	assert.Greater(t, cfg.ConfidenceScale, 1.0)
	assert.Less(t, cfg.BandStrongMax, cfg.BandModerateMax)
	assert.Less(t, cfg.BandModerateMax, cfg.BandWeakMax)
	assert.Less(t, cfg.AgreeMaxDiff, cfg.DisagreeMinDiff)
}

func TestScoringConfigEnvOverride(t *testing.T) {
	t.Setenv("ASSESSMENT_MAX_QUESTIONS", "40")
	t.Setenv("SCORING_SHRINKAGE_K", "8")

	cfg := DefaultScoringConfig()

	assert.Equal(t, 40, cfg.MaxQuestions)
	assert.Equal(t, 8, cfg.ShrinkageK)
}

func TestScoringConfigIgnoresBadEnv(t *testing.T) {
	t.Setenv("ASSESSMENT_MIN_QUESTIONS", "not-a-number")

	cfg := DefaultScoringConfig()

	assert.Equal(t, 15, cfg.MinQuestions)
}
