package model

// MetaVector is the 3-dimensional reduction of the full axis vector.
// Each component lives in [-1, +1].
type MetaVector struct {
	Responsibility float64 `json:"responsibilityOrientation"`
	ChangeTempo    float64 `json:"changeTempo"`
	Governance     float64 `json:"governanceStyle"`
}

// Archetype is one of the eight fixed civic-style classes
type Archetype struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Emoji    string     `json:"emoji"`
	Traits   []string   `json:"traits"`
	Summary  string     `json:"summary"`
	Centroid MetaVector `json:"centroid"`
}

// ArchetypeResult is the nearest-centroid classification of a blueprint.
// Margin is the distance gap between secondary and primary; larger means
// a more clear-cut classification. AvgConfidence is the mean of all axis
// confidences and is independent of the margin.
type ArchetypeResult struct {
	Primary       Archetype  `json:"primary"`
	Secondary     Archetype  `json:"secondary"`
	Margin        float64    `json:"margin"`
	Vector        MetaVector `json:"vector"`
	AvgConfidence float64    `json:"avgConfidence"`
}
