package model

// VoteChoice is the recommended vote on a proposition. Empty means no
// recommendation (a close call) - a valid terminal state, not an error.
type VoteChoice string

const (
	VoteYes  VoteChoice = "yes"
	VoteNo   VoteChoice = "no"
	VoteNone VoteChoice = ""
)

// ImpliedStance classifies what a user's axis value implies for a yes vote
type ImpliedStance string

const (
	StanceYes     ImpliedStance = "yes"
	StanceNo      ImpliedStance = "no"
	StanceNeutral ImpliedStance = "neutral"
)

// AxisBreakdown is the per-axis explanation entry for a proposition
type AxisBreakdown struct {
	AxisID        string        `json:"axisId"`
	AxisTitle     string        `json:"axisTitle"`
	UserValue     int           `json:"userValue"`
	Preference    float64       `json:"preference"` // (value-5)/5
	YesEffect     float64       `json:"yesEffect"`
	Alignment     float64       `json:"alignment"`
	Weight        float64       `json:"weight"`
	ImpliedStance ImpliedStance `json:"impliedStance"`
}

// Factor is one human-readable reason behind a recommendation
type Factor struct {
	AxisID       string     `json:"axisId"`
	AxisTitle    string     `json:"axisTitle"`
	SupportsVote VoteChoice `json:"supportsVote"`
	Reason       string     `json:"reason"`
}

// PropositionRecommendation is the engine's output for one measure
type PropositionRecommendation struct {
	BallotItemID string          `json:"ballotItemId"`
	Vote         VoteChoice      `json:"vote,omitempty"`
	CloseCall    bool            `json:"closeCall"`
	Score        float64         `json:"score"` // weighted alignment in [-1,+1]
	Confidence   float64         `json:"confidence"`
	Breakdown    []AxisBreakdown `json:"breakdown"`
	Factors      []Factor        `json:"factors,omitempty"`
}

// AlignmentBand buckets how close a candidate stance sits to the user's
type AlignmentBand string

const (
	AlignStrong   AlignmentBand = "strong"
	AlignModerate AlignmentBand = "moderate"
	AlignWeak     AlignmentBand = "weak"
	AlignOpposed  AlignmentBand = "opposed"
)

// AxisComparison is the per-axis entry of a candidate match
type AxisComparison struct {
	AxisID         string        `json:"axisId"`
	AxisTitle      string        `json:"axisTitle"`
	UserValue      int           `json:"userValue"`
	CandidateValue int           `json:"candidateValue"`
	Diff           int           `json:"diff"`
	Band           AlignmentBand `json:"band"`
}

// CandidateMatch scores one candidate against the user's blueprint
type CandidateMatch struct {
	CandidateID   string           `json:"candidateId"`
	Name          string           `json:"name"`
	Party         string           `json:"party,omitempty"`
	MatchPercent  int              `json:"matchPercent"`
	BestMatch     bool             `json:"bestMatch"`
	Comparisons   []AxisComparison `json:"comparisons"`
	Agreements    []string         `json:"agreements,omitempty"`    // first two axis titles with diff <= 2
	Disagreements []string         `json:"disagreements,omitempty"` // first two axis titles with diff >= 4
}
