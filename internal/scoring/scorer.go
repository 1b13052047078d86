package scoring

import (
	"sort"

	"civicswipe/internal/config"
	"civicswipe/internal/model"
)

// ScoreAxes folds the full swipe log into a per-axis estimate. It is a
// pure function: same spec, swipes, and config always yield the same
// map, and it never patches a previous result incrementally. Swipes
// referencing unknown items, and item keys referencing unknown axes,
// are skipped rather than treated as fatal.
func ScoreAxes(spec *model.Spec, swipes []model.SwipeEvent, cfg *config.ScoringConfig) map[string]*model.AxisScore {
	axes := spec.AxisIndex()
	items := spec.ItemIndex()

	scores := make(map[string]*model.AxisScore, len(spec.Axes))
	drivers := make(map[string][]model.Contribution, len(spec.Axes))
	for _, ax := range spec.Axes {
		scores[ax.ID] = &model.AxisScore{AxisID: ax.ID}
	}

	for _, ev := range swipes {
		item, ok := items[ev.ItemID]
		if !ok {
			continue
		}
		weight, ok := cfg.ResponseWeights[string(ev.Response)]
		if !ok {
			continue
		}

		for axisID, key := range item.AxisKeys {
			score, ok := scores[axisID]
			if !ok {
				if _, known := axes[axisID]; !known {
					continue
				}
				score = &model.AxisScore{AxisID: axisID}
				scores[axisID] = score
			}

			if ev.Response == model.ResponseUnsure {
				score.NUnsure++
				continue
			}

			contribution := key * weight
			score.RawSum += contribution
			score.NAnswered++
			drivers[axisID] = append(drivers[axisID], model.Contribution{
				ItemID:   ev.ItemID,
				Response: ev.Response,
				Value:    contribution,
			})
		}
	}

	k := float64(cfg.ShrinkageK)
	for axisID, score := range scores {
		if score.NAnswered > 0 {
			n := float64(score.NAnswered)
			score.Normalized = float64(score.RawSum) / (2 * n)
			score.Confidence = n / (n + k)
			score.Shrunk = score.Normalized * score.Confidence
		}
		score.TopDrivers = topDrivers(drivers[axisID], cfg.TopDrivers)
	}

	return scores
}

// topDrivers keeps the n largest-magnitude contributions, ties broken by
// original swipe order.
func topDrivers(contribs []model.Contribution, n int) []model.Contribution {
	if len(contribs) == 0 {
		return nil
	}
	sorted := make([]model.Contribution, len(contribs))
	copy(sorted, contribs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return abs(sorted[i].Value) > abs(sorted[j].Value)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
