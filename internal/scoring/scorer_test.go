package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicswipe/internal/config"
	"civicswipe/internal/model"
)

func testSpec() *model.Spec {
	return &model.Spec{
		Version: 1,
		Domains: []model.Domain{
			{ID: "d1", Title: "Domain One", Importance: 7},
			{ID: "d2", Title: "Domain Two", Importance: 5},
		},
		Axes: []model.Axis{
			{ID: "ax1", DomainID: "d1", Title: "Axis One"},
			{ID: "ax2", DomainID: "d1", Title: "Axis Two"},
			{ID: "ax3", DomainID: "d2", Title: "Axis Three"},
		},
		Items: []model.Item{
			{ID: "i1", Text: "one", AxisKeys: map[string]int{"ax1": 1}},
			{ID: "i2", Text: "two", AxisKeys: map[string]int{"ax1": -1}},
			{ID: "i3", Text: "three", AxisKeys: map[string]int{"ax1": 1, "ax3": -1}},
			{ID: "i4", Text: "four", AxisKeys: map[string]int{"ax2": 1}},
			{ID: "i5", Text: "five", AxisKeys: map[string]int{"ax3": 1}},
			{ID: "i6", Text: "six", AxisKeys: map[string]int{"ax1": 1}},
			{ID: "i7", Text: "seven", AxisKeys: map[string]int{"ax1": 1}},
			{ID: "i8", Text: "eight", AxisKeys: map[string]int{"ax1": -1}},
		},
	}
}

func swipe(itemID string, resp model.SwipeResponse) model.SwipeEvent {
	return model.SwipeEvent{UserID: "u1", ItemID: itemID, Response: resp}
}

func TestScoreAxesSingleStrongAgree(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	spec := testSpec()

	scores := ScoreAxes(spec, []model.SwipeEvent{swipe("i1", model.ResponseStrongAgree)}, cfg)

	s := scores["ax1"]
	require.NotNil(t, s)
	assert.Equal(t, 2, s.RawSum)
	assert.Equal(t, 1, s.NAnswered)
	assert.Equal(t, 0, s.NUnsure)
	assert.InDelta(t, 1.0, s.Normalized, 1e-9)
	assert.InDelta(t, 1.0/6.0, s.Confidence, 1e-9)
	assert.InDelta(t, 1.0/6.0, s.Shrunk, 1e-9)
	require.Len(t, s.TopDrivers, 1)
	assert.Equal(t, "i1", s.TopDrivers[0].ItemID)
	assert.Equal(t, 2, s.TopDrivers[0].Value)
}

func TestScoreAxesEveryAxisPresent(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	spec := testSpec()

	scores := ScoreAxes(spec, nil, cfg)

	require.Len(t, scores, 3)
	for _, id := range []string{"ax1", "ax2", "ax3"} {
		s := scores[id]
		require.NotNil(t, s, id)
		assert.Equal(t, 0, s.NAnswered)
		assert.Zero(t, s.Normalized)
		assert.Zero(t, s.Confidence)
		assert.Zero(t, s.Shrunk)
	}
}

func TestScoreAxesNegativeKeyFlipsSign(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	spec := testSpec()

	// i3 keys ax1 at +1 and ax3 at -1: one agree contributes +1 and -1.
	scores := ScoreAxes(spec, []model.SwipeEvent{swipe("i3", model.ResponseAgree)}, cfg)

	assert.Equal(t, 1, scores["ax1"].RawSum)
	assert.Equal(t, -1, scores["ax3"].RawSum)
	assert.InDelta(t, 0.5, scores["ax1"].Normalized, 1e-9)
	assert.InDelta(t, -0.5, scores["ax3"].Normalized, 1e-9)
}

func TestScoreAxesUnsureIsNeutral(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	spec := testSpec()

	scores := ScoreAxes(spec, []model.SwipeEvent{
		swipe("i1", model.ResponseAgree),
		swipe("i2", model.ResponseUnsure),
	}, cfg)

	s := scores["ax1"]
	assert.Equal(t, 1, s.NAnswered)
	assert.Equal(t, 1, s.NUnsure)
	assert.Equal(t, 1, s.RawSum)
	// unsure never appears as a driver
	require.Len(t, s.TopDrivers, 1)
	assert.Equal(t, "i1", s.TopDrivers[0].ItemID)
}

func TestScoreAxesSkipsUnknownItems(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	spec := testSpec()

	scores := ScoreAxes(spec, []model.SwipeEvent{
		swipe("nope", model.ResponseStrongAgree),
		swipe("i1", model.ResponseDisagree),
	}, cfg)

	s := scores["ax1"]
	assert.Equal(t, 1, s.NAnswered)
	assert.Equal(t, -1, s.RawSum)
}

func TestScoreAxesDeterministic(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	spec := testSpec()
	swipes := []model.SwipeEvent{
		swipe("i1", model.ResponseStrongAgree),
		swipe("i2", model.ResponseDisagree),
		swipe("i3", model.ResponseAgree),
		swipe("i5", model.ResponseUnsure),
	}

	first := ScoreAxes(spec, swipes, cfg)
	second := ScoreAxes(spec, swipes, cfg)

	assert.Equal(t, first, second)
}

func TestScoreAxesBounds(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	spec := testSpec()
	swipes := []model.SwipeEvent{
		swipe("i1", model.ResponseStrongAgree),
		swipe("i2", model.ResponseStrongDisagree),
		swipe("i3", model.ResponseStrongAgree),
		swipe("i6", model.ResponseStrongAgree),
		swipe("i7", model.ResponseStrongAgree),
		swipe("i8", model.ResponseStrongDisagree),
	}

	scores := ScoreAxes(spec, swipes, cfg)

	for _, s := range scores {
		assert.GreaterOrEqual(t, s.Normalized, -1.0)
		assert.LessOrEqual(t, s.Normalized, 1.0)
		assert.GreaterOrEqual(t, s.Confidence, 0.0)
		assert.Less(t, s.Confidence, 1.0)
		assert.GreaterOrEqual(t, s.Shrunk, -1.0)
		assert.LessOrEqual(t, s.Shrunk, 1.0)
	}
}

func TestTopDriversKeepsLargestMagnitude(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	cfg.TopDrivers = 2
	spec := testSpec()

	swipes := []model.SwipeEvent{
		swipe("i1", model.ResponseAgree),          // +1
		swipe("i2", model.ResponseStrongAgree),    // -2
		swipe("i6", model.ResponseStrongDisagree), // -2
		swipe("i7", model.ResponseDisagree),       // -1
	}

	scores := ScoreAxes(spec, swipes, cfg)

	drivers := scores["ax1"].TopDrivers
	require.Len(t, drivers, 2)
	// the two magnitude-2 contributions win, in swipe order
	assert.Equal(t, "i2", drivers[0].ItemID)
	assert.Equal(t, "i6", drivers[1].ItemID)
}
