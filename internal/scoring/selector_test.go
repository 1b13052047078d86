package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicswipe/internal/config"
	"civicswipe/internal/model"
)

func answeredSet(ids ...string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

func TestStrategiesNeverRepeatAnswered(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	spec := testSpec()
	scores := ScoreAxes(spec, nil, cfg)

	strategies := map[string]Strategy{
		"adaptive": NewAdaptiveStrategy(cfg),
		"linear":   NewLinearStrategy(),
	}

	for name, strat := range strategies {
		answered := map[string]bool{}
		for {
			item := strat.NextItem(spec, scores, answered, nil)
			if item == nil {
				break
			}
			assert.False(t, answered[item.ID], "%s repeated %s", name, item.ID)
			answered[item.ID] = true
		}
		assert.Len(t, answered, len(spec.Items), name)
	}
}

func TestNextItemNilWhenExhausted(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	spec := testSpec()
	scores := ScoreAxes(spec, nil, cfg)

	answered := map[string]bool{}
	for _, it := range spec.Items {
		answered[it.ID] = true
	}

	assert.Nil(t, NewAdaptiveStrategy(cfg).NextItem(spec, scores, answered, nil))
	assert.Nil(t, NewLinearStrategy().NextItem(spec, scores, answered, nil))
}

func TestLinearFollowsSpecOrder(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	spec := testSpec()
	scores := ScoreAxes(spec, nil, cfg)
	strat := NewLinearStrategy()

	item := strat.NextItem(spec, scores, nil, nil)
	require.NotNil(t, item)
	assert.Equal(t, "i1", item.ID)

	item = strat.NextItem(spec, scores, answeredSet("i1", "i2"), nil)
	require.NotNil(t, item)
	assert.Equal(t, "i3", item.ID)
}

func TestDomainFilterRestrictsCandidates(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	spec := testSpec()
	scores := ScoreAxes(spec, nil, cfg)

	// only d2 items: i3 (touches ax3), i5
	strat := NewLinearStrategy()
	answered := map[string]bool{}
	var picked []string
	for {
		item := strat.NextItem(spec, scores, answered, []string{"d2"})
		if item == nil {
			break
		}
		picked = append(picked, item.ID)
		answered[item.ID] = true
	}
	assert.Equal(t, []string{"i3", "i5"}, picked)
}

func TestCoveragePhasePrefersMultiAxisItems(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	spec := testSpec()
	scores := ScoreAxes(spec, nil, cfg)
	strat := NewAdaptiveStrategy(cfg)

	// nothing answered yet: every domain is underrepresented, so the
	// widest item wins
	item := strat.NextItem(spec, scores, map[string]bool{}, nil)
	require.NotNil(t, item)
	assert.Equal(t, "i3", item.ID)
}

func TestPrecisionPhaseTargetsUncertainAxes(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	cfg.CoveragePhaseEnd = 0 // skip straight to precision
	spec := testSpec()
	strat := NewAdaptiveStrategy(cfg)

	scores := map[string]*model.AxisScore{
		"ax1": {AxisID: "ax1", NAnswered: 10, Confidence: 0.9},
		"ax2": {AxisID: "ax2", NAnswered: 10, Confidence: 0.9},
		"ax3": {AxisID: "ax3", NAnswered: 1, Confidence: 0.2},
	}

	item := strat.NextItem(spec, scores, answeredSet("i3"), nil)
	require.NotNil(t, item)
	// i5 is the remaining item touching the uncertain ax3
	assert.Equal(t, "i5", item.ID)
}

func TestInformationPhaseAlwaysYieldsACandidate(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	cfg.CoveragePhaseEnd = 0
	cfg.PrecisionPhaseEnd = 0
	spec := testSpec()
	strat := NewAdaptiveStrategy(cfg)

	// every axis fully confident: no phase has a preference, but a
	// candidate must still come back
	scores := map[string]*model.AxisScore{
		"ax1": {AxisID: "ax1", NAnswered: 20, Confidence: 0.95},
		"ax2": {AxisID: "ax2", NAnswered: 20, Confidence: 0.95},
		"ax3": {AxisID: "ax3", NAnswered: 20, Confidence: 0.95},
	}

	item := strat.NextItem(spec, scores, answeredSet("i1"), nil)
	assert.NotNil(t, item)
}

func TestShouldStop(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	confident := map[string]*model.AxisScore{
		"ax1": {AxisID: "ax1", NAnswered: 12, Confidence: 0.75},
		"ax2": {AxisID: "ax2", NAnswered: 13, Confidence: 0.72},
	}
	shaky := map[string]*model.AxisScore{
		"ax1": {AxisID: "ax1", NAnswered: 12, Confidence: 0.75},
		"ax2": {AxisID: "ax2", NAnswered: 1, Confidence: 0.17},
	}

	tests := []struct {
		name       string
		scores     map[string]*model.AxisScore
		total      int
		wantStop   bool
		wantReason string
	}{
		{"below minimum never stops", confident, cfg.MinQuestions - 1, false, ""},
		{"maximum always stops", shaky, cfg.MaxQuestions, true, StopReasonMaxQuestions},
		{"all axes confident", confident, cfg.MinQuestions, true, StopReasonConfident},
		{"one shaky axis keeps going", shaky, cfg.MinQuestions, false, ""},
		{"no scored axes keeps going", map[string]*model.AxisScore{
			"ax1": {AxisID: "ax1"},
		}, cfg.MinQuestions, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stop, reason := ShouldStop(tt.scores, tt.total, cfg)
			assert.Equal(t, tt.wantStop, stop)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}
