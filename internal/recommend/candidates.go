package recommend

import (
	"math"
	"sort"

	"civicswipe/internal/config"
	"civicswipe/internal/model"
)

// CandidateMatches scores every candidate in a race against the user's
// axis vector and ranks them by match percentage. Only the top candidate
// can carry the best-match flag, and only above the configured floor. A
// race with no axis overlap degrades to the neutral 50% rather than
// failing.
func CandidateMatches(item *model.BallotItem, axes map[string]model.UserAxis, cfg *config.ScoringConfig) []model.CandidateMatch {
	race := item.Race
	if race == nil {
		return nil
	}

	matches := make([]model.CandidateMatch, 0, len(race.Candidates))
	for _, cand := range race.Candidates {
		matches = append(matches, matchCandidate(race, cand, axes, cfg))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercent > matches[j].MatchPercent
	})
	if len(matches) > 0 && matches[0].MatchPercent > cfg.BestMatchPercent {
		matches[0].BestMatch = true
	}
	return matches
}

func matchCandidate(race *model.CandidateRace, cand model.Candidate, axes map[string]model.UserAxis, cfg *config.ScoringConfig) model.CandidateMatch {
	match := model.CandidateMatch{
		CandidateID: cand.ID,
		Name:        cand.Name,
		Party:       cand.Party,
	}

	totalDiff := 0.0
	axisCount := 0.0
	for _, axisID := range race.RelevantAxes {
		candValue, ok := cand.Stances[axisID]
		if !ok {
			continue
		}
		ua, ok := axes[axisID]
		if !ok {
			continue
		}

		diff := ua.Value - candValue
		if diff < 0 {
			diff = -diff
		}
		totalDiff += float64(diff) * ua.Weight
		axisCount += ua.Weight

		match.Comparisons = append(match.Comparisons, model.AxisComparison{
			AxisID:         axisID,
			AxisTitle:      ua.Title,
			UserValue:      ua.Value,
			CandidateValue: candValue,
			Diff:           diff,
			Band:           band(diff, cfg),
		})
		if diff <= cfg.AgreeMaxDiff && len(match.Agreements) < cfg.SurfacedAxes {
			match.Agreements = append(match.Agreements, ua.Title)
		}
		if diff >= cfg.DisagreeMinDiff && len(match.Disagreements) < cfg.SurfacedAxes {
			match.Disagreements = append(match.Disagreements, ua.Title)
		}
	}

	avgDiff := cfg.NoOverlapDiff
	if axisCount > 0 {
		avgDiff = totalDiff / axisCount
	}
	match.MatchPercent = int(math.Round(math.Max(0, (1-avgDiff/10)*100)))
	return match
}

func band(diff int, cfg *config.ScoringConfig) model.AlignmentBand {
	switch {
	case diff <= cfg.BandStrongMax:
		return model.AlignStrong
	case diff <= cfg.BandModerateMax:
		return model.AlignModerate
	case diff <= cfg.BandWeakMax:
		return model.AlignWeak
	default:
		return model.AlignOpposed
	}
}
