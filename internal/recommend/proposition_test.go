package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicswipe/internal/config"
	"civicswipe/internal/model"
)

func userAxis(id string, value int, weight float64) model.UserAxis {
	return model.UserAxis{
		AxisID: id,
		Title:  "Axis " + id,
		Value:  value,
		Weight: weight,
		PoleA:  "pole A",
		PoleB:  "pole B",
	}
}

func propItem(relevant []string, effects map[string]float64) *model.BallotItem {
	return &model.BallotItem{
		ID:   "prop-1",
		Type: model.BallotProposition,
		Proposition: &model.Proposition{
			Title:          "Test Measure",
			RelevantAxes:   relevant,
			YesAxisEffects: effects,
		},
	}
}

func TestPropositionYesWhenEffectMatchesLean(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	// value 2 leans toward pole A; a yes vote pushing toward pole A
	// (negative effect) aligns: preference = -0.6, alignment = 0.6
	item := propItem([]string{"ax1"}, map[string]float64{"ax1": -1})
	axes := map[string]model.UserAxis{"ax1": userAxis("ax1", 2, 1)}

	rec := Proposition(item, axes, cfg)

	assert.Equal(t, model.VoteYes, rec.Vote)
	assert.False(t, rec.CloseCall)
	assert.InDelta(t, 0.6, rec.Score, 1e-9)
	assert.InDelta(t, 0.72, rec.Confidence, 1e-9) // 0.6 * 1.2

	require.Len(t, rec.Breakdown, 1)
	b := rec.Breakdown[0]
	assert.InDelta(t, -0.6, b.Preference, 1e-9)
	assert.InDelta(t, 0.6, b.Alignment, 1e-9)
	assert.Equal(t, model.StanceYes, b.ImpliedStance)
}

func TestPropositionNoWhenEffectOpposesLean(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	item := propItem([]string{"ax1"}, map[string]float64{"ax1": 1})
	axes := map[string]model.UserAxis{"ax1": userAxis("ax1", 2, 1)}

	rec := Proposition(item, axes, cfg)

	assert.Equal(t, model.VoteNo, rec.Vote)
	assert.InDelta(t, -0.6, rec.Score, 1e-9)
	assert.Equal(t, model.StanceNo, rec.Breakdown[0].ImpliedStance)
}

func TestPropositionCloseCall(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	// neutral value: preference 0, score 0, inside the dead zone
	item := propItem([]string{"ax1"}, map[string]float64{"ax1": 1})
	axes := map[string]model.UserAxis{"ax1": userAxis("ax1", 5, 1)}

	rec := Proposition(item, axes, cfg)

	assert.Equal(t, model.VoteNone, rec.Vote)
	assert.True(t, rec.CloseCall)
	assert.Zero(t, rec.Score)
	assert.Zero(t, rec.Confidence)
	assert.Equal(t, model.StanceNeutral, rec.Breakdown[0].ImpliedStance)
}

func TestPropositionWeightsOpposingAxes(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	// a heavy domain pulling yes against a light domain pulling no
	item := propItem([]string{"ax1", "ax2"}, map[string]float64{"ax1": 1, "ax2": -1})
	axes := map[string]model.UserAxis{
		"ax1": userAxis("ax1", 10, 1.0), // preference +1, alignment +1
		"ax2": userAxis("ax2", 10, 0.2), // preference +1, alignment -1
	}

	rec := Proposition(item, axes, cfg)

	// score = (1*1.0 - 1*0.2) / (1.0 + 0.2) = 0.8/1.2
	assert.InDelta(t, 0.8/1.2, rec.Score, 1e-9)
	assert.Equal(t, model.VoteYes, rec.Vote)
}

func TestPropositionSkipsMissingAxes(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	item := propItem([]string{"ax1", "ghost"}, map[string]float64{"ax1": -1, "ghost": 1})
	axes := map[string]model.UserAxis{"ax1": userAxis("ax1", 0, 1)}

	rec := Proposition(item, axes, cfg)

	require.Len(t, rec.Breakdown, 1)
	assert.Equal(t, "ax1", rec.Breakdown[0].AxisID)
	assert.Equal(t, model.VoteYes, rec.Vote)
}

func TestPropositionFactorsThreshold(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	item := propItem([]string{"ax1", "ax2"}, map[string]float64{"ax1": -1, "ax2": -0.1})
	axes := map[string]model.UserAxis{
		"ax1": userAxis("ax1", 0, 1), // alignment 1.0: listed
		"ax2": userAxis("ax2", 0, 1), // alignment 0.1: below threshold
	}

	rec := Proposition(item, axes, cfg)

	require.Len(t, rec.Factors, 1)
	f := rec.Factors[0]
	assert.Equal(t, "ax1", f.AxisID)
	assert.Equal(t, model.VoteYes, f.SupportsVote)
	assert.Contains(t, f.Reason, "pole A")
}

func TestPropositionNilPayload(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	rec := Proposition(&model.BallotItem{ID: "x", Type: model.BallotProposition}, nil, cfg)

	assert.True(t, rec.CloseCall)
	assert.Equal(t, model.VoteChoice(""), rec.Vote)
}

func TestConfidenceCapsAtOne(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	item := propItem([]string{"ax1"}, map[string]float64{"ax1": 1})
	axes := map[string]model.UserAxis{"ax1": userAxis("ax1", 10, 1)}

	rec := Proposition(item, axes, cfg)

	assert.InDelta(t, 1.0, rec.Score, 1e-9)
	assert.InDelta(t, 1.0, rec.Confidence, 1e-9) // min(1.2, 1)
}
