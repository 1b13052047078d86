package recommend

import (
	"fmt"
	"math"

	"civicswipe/internal/config"
	"civicswipe/internal/model"
)

// Proposition computes a yes/no recommendation for a ballot measure
// against the user's axis vector. Deterministic and side-effect free:
// the only inputs are the item and the flattened profile. Axes missing
// from either side are skipped. A VoteNone result with CloseCall set is
// the normal "too close to call" outcome.
func Proposition(item *model.BallotItem, axes map[string]model.UserAxis, cfg *config.ScoringConfig) *model.PropositionRecommendation {
	rec := &model.PropositionRecommendation{BallotItemID: item.ID}
	prop := item.Proposition
	if prop == nil {
		rec.CloseCall = true
		return rec
	}

	alignmentScore := 0.0
	totalWeight := 0.0

	for _, axisID := range prop.RelevantAxes {
		effect, ok := prop.YesAxisEffects[axisID]
		if !ok {
			continue
		}
		ua, ok := axes[axisID]
		if !ok {
			continue
		}

		preference := float64(ua.Value-5) / 5
		alignment := effect * preference
		alignmentScore += alignment * ua.Weight
		totalWeight += math.Abs(effect) * ua.Weight

		rec.Breakdown = append(rec.Breakdown, model.AxisBreakdown{
			AxisID:        axisID,
			AxisTitle:     ua.Title,
			UserValue:     ua.Value,
			Preference:    preference,
			YesEffect:     effect,
			Alignment:     alignment,
			Weight:        ua.Weight,
			ImpliedStance: impliedStance(effect, ua.Value),
		})

		if math.Abs(alignment) > cfg.FactorThreshold {
			rec.Factors = append(rec.Factors, factorFor(ua, alignment))
		}
	}

	if totalWeight > 0 {
		rec.Score = alignmentScore / totalWeight
	}
	rec.Confidence = math.Min(math.Abs(rec.Score)*cfg.ConfidenceScale, 1)

	switch {
	case rec.Score > cfg.VoteThreshold:
		rec.Vote = model.VoteYes
	case rec.Score < -cfg.VoteThreshold:
		rec.Vote = model.VoteNo
	default:
		rec.Vote = model.VoteNone
		rec.CloseCall = true
	}
	return rec
}

// impliedStance reads the vote a single axis value implies. Values of 5
// sit in the dead zone; otherwise the stance is yes exactly when the
// effect's sign and the user's lean agree: a positive effect with a
// value of 6 or more, or a negative effect with a value of 4 or less.
func impliedStance(effect float64, value int) model.ImpliedStance {
	if value == 5 || effect == 0 {
		return model.StanceNeutral
	}
	towardB := value >= 6
	if (effect > 0) == towardB {
		return model.StanceYes
	}
	return model.StanceNo
}

// factorFor renders one contributing axis as a human-readable reason.
func factorFor(ua model.UserAxis, alignment float64) model.Factor {
	vote := model.VoteYes
	if alignment < 0 {
		vote = model.VoteNo
	}
	pole := ua.PoleA
	if ua.Value > 5 {
		pole = ua.PoleB
	}
	return model.Factor{
		AxisID:       ua.AxisID,
		AxisTitle:    ua.Title,
		SupportsVote: vote,
		Reason:       fmt.Sprintf("Your lean toward %q on %s supports voting %s", pole, ua.Title, vote),
	}
}
