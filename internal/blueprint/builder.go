package blueprint

import (
	"errors"
	"math"

	"civicswipe/internal/model"
)

var (
	ErrUnknownAxis   = errors.New("axis not found in profile")
	ErrUnknownDomain = errors.New("domain not found in profile")
	ErrValueRange    = errors.New("value must be between 0 and 10")
)

// NewDefaultProfile seeds a blueprint from the spec: every axis at the
// neutral midpoint with zero confidence, domain importances taken from
// the spec defaults.
func NewDefaultProfile(userID string, spec *model.Spec) *model.BlueprintProfile {
	p := &model.BlueprintProfile{
		UserID:  userID,
		Version: spec.Version,
	}
	for _, d := range spec.Domains {
		dp := model.DomainProfile{
			DomainID:         d.ID,
			Importance:       d.Importance,
			ImportanceSource: model.SourceDefault,
		}
		for _, ax := range spec.Axes {
			if ax.DomainID != d.ID {
				continue
			}
			dp.Axes = append(dp.Axes, model.AxisProfile{
				AxisID:       ax.ID,
				Value:        5,
				Source:       model.SourceDefault,
				LearningMode: model.LearningNormal,
				LearnedValue: 5,
			})
		}
		p.Domains = append(p.Domains, dp)
	}
	p.Touch()
	return p
}

// ApplyScores folds a fresh scoring pass into the profile. Axes with no
// answers are left alone. The displayed value follows the axis's
// learning mode; the estimate and evidence traces always refresh so the
// app can show what the swipes say even when the value is frozen.
// Manual edits stay sticky: source only flips to learned_from_swipes if
// the user never edited the axis.
func ApplyScores(p *model.BlueprintProfile, scores map[string]*model.AxisScore) *model.BlueprintProfile {
	changed := false
	for d := range p.Domains {
		for a := range p.Domains[d].Axes {
			ap := &p.Domains[d].Axes[a]
			score, ok := scores[ap.AxisID]
			if !ok || score.NAnswered == 0 {
				continue
			}

			learned := 5 - 5*score.Shrunk

			switch ap.LearningMode {
			case model.LearningFrozen:
				// value untouched
			case model.LearningDampened:
				ap.Value = clampValue(int(math.Round(0.8*float64(ap.Value) + 0.2*learned)))
			default:
				ap.Value = clampValue(int(math.Round(learned)))
			}

			if ap.Source != model.SourceUserEdited {
				ap.Source = model.SourceLearned
			}

			ap.Confidence = score.Confidence
			ap.LearnedScore = score.Shrunk
			ap.LearnedValue = learned
			ap.NAnswered = score.NAnswered
			ap.NUnsure = score.NUnsure
			ap.TopDriverIDs = driverIDs(score.TopDrivers)
			changed = true
		}
	}
	if changed {
		p.Touch()
	}
	return p
}

// SetAxisValue applies a manual stance edit. Edits are sticky: the axis
// switches to frozen learning if it was locked, dampened otherwise, so a
// later scoring pass cannot silently overwrite the user's choice.
func SetAxisValue(p *model.BlueprintProfile, axisID string, value int) error {
	if value < 0 || value > 10 {
		return ErrValueRange
	}
	ap := p.Axis(axisID)
	if ap == nil {
		return ErrUnknownAxis
	}
	ap.Value = value
	ap.Source = model.SourceUserEdited
	if ap.Locked {
		ap.LearningMode = model.LearningFrozen
	} else {
		ap.LearningMode = model.LearningDampened
	}
	p.Touch()
	return nil
}

// SetAxisLocked toggles the lock. Locking freezes learning; unlocking
// returns to dampened learning for edited axes and normal otherwise.
func SetAxisLocked(p *model.BlueprintProfile, axisID string, locked bool) error {
	ap := p.Axis(axisID)
	if ap == nil {
		return ErrUnknownAxis
	}
	ap.Locked = locked
	if locked {
		ap.LearningMode = model.LearningFrozen
	} else if ap.Source == model.SourceUserEdited {
		ap.LearningMode = model.LearningDampened
	} else {
		ap.LearningMode = model.LearningNormal
	}
	p.Touch()
	return nil
}

// ResetAxisToLearned discards a manual edit: the displayed value returns
// to the learned estimate, the lock clears, and normal learning resumes.
func ResetAxisToLearned(p *model.BlueprintProfile, axisID string) error {
	ap := p.Axis(axisID)
	if ap == nil {
		return ErrUnknownAxis
	}
	ap.Value = clampValue(int(math.Round(ap.LearnedValue)))
	ap.Locked = false
	ap.LearningMode = model.LearningNormal
	ap.Source = model.SourceLearned
	p.Touch()
	return nil
}

// SetDomainImportance overwrites a domain's importance weight.
// Importance edits are independent of axis learning.
func SetDomainImportance(p *model.BlueprintProfile, domainID string, importance int) error {
	if importance < 0 || importance > 10 {
		return ErrValueRange
	}
	dp := p.Domain(domainID)
	if dp == nil {
		return ErrUnknownDomain
	}
	dp.Importance = importance
	dp.ImportanceSource = model.SourceUserEdited
	dp.ImportanceConfidence = 1
	p.Touch()
	dp.ImportanceUpdatedAt = p.UpdatedAt
	return nil
}

// UserAxes flattens the profile into the per-axis view the
// recommendation engine and archetype classifier consume. Axis weight is
// the owning domain's importance mapped to [0,1]. Axes present in the
// profile but missing from the spec are skipped.
func UserAxes(p *model.BlueprintProfile, spec *model.Spec) map[string]model.UserAxis {
	axes := spec.AxisIndex()
	out := make(map[string]model.UserAxis)
	for d := range p.Domains {
		weight := float64(p.Domains[d].Importance) / 10
		for _, ap := range p.Domains[d].Axes {
			ax, ok := axes[ap.AxisID]
			if !ok {
				continue
			}
			out[ap.AxisID] = model.UserAxis{
				AxisID:     ap.AxisID,
				Title:      ax.Title,
				Value:      ap.Value,
				Weight:     weight,
				Confidence: ap.Confidence,
				PoleA:      ax.PoleA.Label,
				PoleB:      ax.PoleB.Label,
			}
		}
	}
	return out
}

func driverIDs(drivers []model.Contribution) []string {
	if len(drivers) == 0 {
		return nil
	}
	ids := make([]string, 0, len(drivers))
	for _, d := range drivers {
		ids = append(ids, d.ItemID)
	}
	return ids
}

func clampValue(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
