package model

import "time"

// ValueSource records where a displayed value came from
type ValueSource string

const (
	SourceDefault    ValueSource = "default"
	SourceLearned    ValueSource = "learned_from_swipes"
	SourceUserEdited ValueSource = "user_edited"
)

// LearningMode controls how new evidence touches a displayed value
type LearningMode string

const (
	// LearningNormal overwrites the value with the learned estimate
	LearningNormal LearningMode = "normal"
	// LearningDampened blends 80% old value with 20% learned estimate
	LearningDampened LearningMode = "dampened"
	// LearningFrozen leaves the value untouched regardless of evidence
	LearningFrozen LearningMode = "frozen"
)

// AxisProfile is the persisted, user-facing stance on one axis.
// Value runs 0 (fully pole A) to 10 (fully pole B).
type AxisProfile struct {
	AxisID       string       `json:"axisId" bson:"axisId"`
	Value        int          `json:"value" bson:"value"`
	Source       ValueSource  `json:"source" bson:"source"`
	Confidence   float64      `json:"confidence" bson:"confidence"`
	Locked       bool         `json:"locked" bson:"locked"`
	LearningMode LearningMode `json:"learningMode" bson:"learningMode"`

	// Estimate trace from the last scoring pass
	LearnedScore float64 `json:"learnedScore" bson:"learnedScore"` // shrunk estimate in [-1,+1]
	LearnedValue float64 `json:"learnedValue" bson:"learnedValue"` // unrounded display value

	// Evidence trace
	NAnswered    int      `json:"nAnswered" bson:"nAnswered"`
	NUnsure      int      `json:"nUnsure" bson:"nUnsure"`
	TopDriverIDs []string `json:"topDriverIds,omitempty" bson:"topDriverIds,omitempty"`
}

// DomainProfile groups the axis profiles of one policy area with the
// user's importance weight for that area
type DomainProfile struct {
	DomainID             string        `json:"domainId" bson:"domainId"`
	Importance           int           `json:"importance" bson:"importance"` // 0-10
	ImportanceSource     ValueSource   `json:"importanceSource" bson:"importanceSource"`
	ImportanceConfidence float64       `json:"importanceConfidence" bson:"importanceConfidence"`
	ImportanceUpdatedAt  time.Time     `json:"importanceUpdatedAt" bson:"importanceUpdatedAt"`
	Axes                 []AxisProfile `json:"axes" bson:"axes"`
}

// BlueprintProfile is the single mutable, user-owned aggregate: the
// user's civic blueprint across all domains and axes.
type BlueprintProfile struct {
	ID        string          `json:"id" bson:"_id,omitempty"`
	UserID    string          `json:"userId" bson:"userId"`
	Version   int             `json:"version" bson:"version"`
	Domains   []DomainProfile `json:"domains" bson:"domains"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// Axis returns a pointer to the axis profile with the given id, or nil
func (p *BlueprintProfile) Axis(axisID string) *AxisProfile {
	for d := range p.Domains {
		for a := range p.Domains[d].Axes {
			if p.Domains[d].Axes[a].AxisID == axisID {
				return &p.Domains[d].Axes[a]
			}
		}
	}
	return nil
}

// Domain returns a pointer to the domain profile with the given id, or nil
func (p *BlueprintProfile) Domain(domainID string) *DomainProfile {
	for d := range p.Domains {
		if p.Domains[d].DomainID == domainID {
			return &p.Domains[d]
		}
	}
	return nil
}

// DomainOf returns the domain profile owning the given axis, or nil
func (p *BlueprintProfile) DomainOf(axisID string) *DomainProfile {
	for d := range p.Domains {
		for a := range p.Domains[d].Axes {
			if p.Domains[d].Axes[a].AxisID == axisID {
				return &p.Domains[d]
			}
		}
	}
	return nil
}

// Touch bumps the profile timestamp; every mutation goes through it
func (p *BlueprintProfile) Touch() {
	p.UpdatedAt = time.Now()
}

// UserAxis is the flattened per-axis view the recommendation engine
// consumes: displayed value, importance-derived weight, and pole labels
// for explanations.
type UserAxis struct {
	AxisID     string  `json:"axisId"`
	Title      string  `json:"title"`
	Value      int     `json:"value"`
	Weight     float64 `json:"weight"` // domain importance mapped to [0,1]
	Confidence float64 `json:"confidence"`
	PoleA      string  `json:"poleA"`
	PoleB      string  `json:"poleB"`
}
