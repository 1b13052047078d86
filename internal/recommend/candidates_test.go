package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicswipe/internal/config"
	"civicswipe/internal/model"
)

func raceItem(relevant []string, candidates ...model.Candidate) *model.BallotItem {
	return &model.BallotItem{
		ID:   "race-1",
		Type: model.BallotCandidateRace,
		Race: &model.CandidateRace{
			Office:       "Mayor",
			RelevantAxes: relevant,
			Candidates:   candidates,
		},
	}
}

func TestCandidateMatchesRankingAndBestMatch(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	axes := map[string]model.UserAxis{
		"ax1": userAxis("ax1", 8, 1),
		"ax2": userAxis("ax2", 2, 1),
	}
	item := raceItem([]string{"ax1", "ax2"},
		model.Candidate{ID: "c-far", Name: "Far", Stances: map[string]int{"ax1": 1, "ax2": 9}},
		model.Candidate{ID: "c-near", Name: "Near", Stances: map[string]int{"ax1": 8, "ax2": 2}},
	)

	matches := CandidateMatches(item, axes, cfg)

	require.Len(t, matches, 2)
	assert.Equal(t, "c-near", matches[0].CandidateID)
	assert.Equal(t, 100, matches[0].MatchPercent)
	assert.True(t, matches[0].BestMatch)

	assert.Equal(t, "c-far", matches[1].CandidateID)
	assert.Equal(t, 30, matches[1].MatchPercent) // avg diff 7
	assert.False(t, matches[1].BestMatch)
}

func TestCandidateAtFloorNotFlagged(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	// avg diff exactly 5 gives 50%, which does not clear the >50 floor
	axes := map[string]model.UserAxis{"ax1": userAxis("ax1", 0, 1)}
	item := raceItem([]string{"ax1"},
		model.Candidate{ID: "c1", Name: "One", Stances: map[string]int{"ax1": 5}},
	)

	matches := CandidateMatches(item, axes, cfg)

	require.Len(t, matches, 1)
	assert.Equal(t, 50, matches[0].MatchPercent)
	assert.False(t, matches[0].BestMatch)
}

func TestCandidateNoOverlapDegradesToNeutral(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	axes := map[string]model.UserAxis{"ax1": userAxis("ax1", 3, 1)}
	item := raceItem([]string{"ghost"},
		model.Candidate{ID: "c1", Name: "One", Stances: map[string]int{"ghost": 7}},
	)

	matches := CandidateMatches(item, axes, cfg)

	require.Len(t, matches, 1)
	assert.Equal(t, 50, matches[0].MatchPercent)
	assert.Empty(t, matches[0].Comparisons)
}

func TestComparisonBands(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	tests := []struct {
		diff int
		want model.AlignmentBand
	}{
		{0, model.AlignStrong},
		{1, model.AlignStrong},
		{2, model.AlignModerate},
		{3, model.AlignModerate},
		{4, model.AlignWeak},
		{5, model.AlignWeak},
		{6, model.AlignOpposed},
		{10, model.AlignOpposed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, band(tt.diff, cfg), "diff %d", tt.diff)
	}
}

func TestAgreementsAndDisagreementsCapped(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	axes := map[string]model.UserAxis{
		"ax1": userAxis("ax1", 5, 1),
		"ax2": userAxis("ax2", 5, 1),
		"ax3": userAxis("ax3", 5, 1),
		"ax4": userAxis("ax4", 0, 1),
		"ax5": userAxis("ax5", 0, 1),
		"ax6": userAxis("ax6", 0, 1),
	}
	// first three axes agree (diff 0), last three strongly disagree (diff 10)
	item := raceItem([]string{"ax1", "ax2", "ax3", "ax4", "ax5", "ax6"},
		model.Candidate{ID: "c1", Name: "One", Stances: map[string]int{
			"ax1": 5, "ax2": 5, "ax3": 5, "ax4": 10, "ax5": 10, "ax6": 10,
		}},
	)

	matches := CandidateMatches(item, axes, cfg)

	require.Len(t, matches, 1)
	assert.Len(t, matches[0].Agreements, cfg.SurfacedAxes)
	assert.Len(t, matches[0].Disagreements, cfg.SurfacedAxes)
	assert.Len(t, matches[0].Comparisons, 6)
}

func TestCandidateMatchesNilRace(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	assert.Nil(t, CandidateMatches(&model.BallotItem{ID: "x"}, nil, cfg))
}

func TestWeightedAverageDiff(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	// heavy axis diff 0, light axis diff 10:
	// avg = (0*0.9 + 10*0.1) / (0.9 + 0.1) = 1 -> 90%
	axes := map[string]model.UserAxis{
		"ax1": userAxis("ax1", 5, 0.9),
		"ax2": userAxis("ax2", 0, 0.1),
	}
	item := raceItem([]string{"ax1", "ax2"},
		model.Candidate{ID: "c1", Name: "One", Stances: map[string]int{"ax1": 5, "ax2": 10}},
	)

	matches := CandidateMatches(item, axes, cfg)

	require.Len(t, matches, 1)
	assert.Equal(t, 90, matches[0].MatchPercent)
	assert.True(t, matches[0].BestMatch)
}
