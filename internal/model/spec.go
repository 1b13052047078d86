package model

import "time"

// GovernmentLevel tags an assessment item with the level it applies to
type GovernmentLevel string

const (
	LevelFederal GovernmentLevel = "federal"
	LevelState   GovernmentLevel = "state"
	LevelLocal   GovernmentLevel = "local"
)

// Meta-dimension names used by the archetype classifier. Axes opt into a
// dimension via their MetaDimension field; axis ids themselves are never
// hard-coded anywhere in the core.
const (
	MetaResponsibility = "responsibility_orientation"
	MetaChangeTempo    = "change_tempo"
	MetaGovernance     = "governance_style"
)

// Pole is one end of an axis
type Pole struct {
	Label   string `json:"label" bson:"label"`
	Summary string `json:"summary" bson:"summary"`
}

// Axis is a bipolar policy spectrum within a domain. Displayed values run
// 0 (fully pole A) to 10 (fully pole B), 5 neutral.
type Axis struct {
	ID       string `json:"id" bson:"id"`
	DomainID string `json:"domainId" bson:"domainId"`
	Title    string `json:"title" bson:"title"`
	PoleA    Pole   `json:"poleA" bson:"poleA"`
	PoleB    Pole   `json:"poleB" bson:"poleB"`

	// MetaDimension and MetaPolarity place the axis inside one of the
	// three archetype meta-dimensions. Empty means the axis does not
	// inform the classifier.
	MetaDimension string `json:"metaDimension,omitempty" bson:"metaDimension,omitempty"`
	MetaPolarity  int    `json:"metaPolarity,omitempty" bson:"metaPolarity,omitempty"`
}

// Domain is a named policy area owning a set of axes
type Domain struct {
	ID         string `json:"id" bson:"id"`
	Title      string `json:"title" bson:"title"`
	Importance int    `json:"importance" bson:"importance"` // default weight 0-10
}

// Item is a single swipeable assessment statement. AxisKeys maps axis id
// to +1 (agreement pushes toward pole A) or -1 (toward pole B); an item
// may touch several axes.
type Item struct {
	ID       string          `json:"id" bson:"id"`
	Text     string          `json:"text" bson:"text"`
	AxisKeys map[string]int  `json:"axisKeys" bson:"axisKeys"`
	Level    GovernmentLevel `json:"level" bson:"level"`
	Tags     []string        `json:"tags,omitempty" bson:"tags,omitempty"`
	Tradeoff string          `json:"tradeoff,omitempty" bson:"tradeoff,omitempty"`
}

// Spec is the immutable reference data every component reads: policy
// domains, their axes, and the assessment item bank.
type Spec struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Version   int       `json:"version" bson:"version"`
	Domains   []Domain  `json:"domains" bson:"domains"`
	Axes      []Axis    `json:"axes" bson:"axes"`
	Items     []Item    `json:"items" bson:"items"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// AxisIndex returns axes keyed by id
func (s *Spec) AxisIndex() map[string]*Axis {
	idx := make(map[string]*Axis, len(s.Axes))
	for i := range s.Axes {
		idx[s.Axes[i].ID] = &s.Axes[i]
	}
	return idx
}

// DomainIndex returns domains keyed by id
func (s *Spec) DomainIndex() map[string]*Domain {
	idx := make(map[string]*Domain, len(s.Domains))
	for i := range s.Domains {
		idx[s.Domains[i].ID] = &s.Domains[i]
	}
	return idx
}

// ItemIndex returns items keyed by id
func (s *Spec) ItemIndex() map[string]*Item {
	idx := make(map[string]*Item, len(s.Items))
	for i := range s.Items {
		idx[s.Items[i].ID] = &s.Items[i]
	}
	return idx
}
