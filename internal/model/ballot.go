package model

import "time"

// BallotItemType discriminates the ballot item union
type BallotItemType string

const (
	BallotProposition   BallotItemType = "proposition"
	BallotCandidateRace BallotItemType = "candidate_race"
)

// Proposition is a yes/no ballot measure. YesAxisEffects maps axis id to
// the signed effect a yes vote has along that axis, expressed on the
// preference scale (value-5)/5: positive effects align with pole-B
// leanings, negative with pole-A.
type Proposition struct {
	Title          string             `json:"title" bson:"title"`
	Summary        string             `json:"summary" bson:"summary"`
	RelevantAxes   []string           `json:"relevantAxes" bson:"relevantAxes"`
	YesAxisEffects map[string]float64 `json:"yesAxisEffects" bson:"yesAxisEffects"`
}

// Candidate carries a stance per axis on the 0-10 display scale
type Candidate struct {
	ID      string         `json:"id" bson:"id"`
	Name    string         `json:"name" bson:"name"`
	Party   string         `json:"party,omitempty" bson:"party,omitempty"`
	Stances map[string]int `json:"stances" bson:"stances"`
}

// CandidateRace is a contested office with two or more candidates
type CandidateRace struct {
	Office       string      `json:"office" bson:"office"`
	RelevantAxes []string    `json:"relevantAxes" bson:"relevantAxes"`
	Candidates   []Candidate `json:"candidates" bson:"candidates"`
}

// BallotItem is the tagged union of the two ballot item kinds. Exactly
// one of Proposition/Race is set, matching Type.
type BallotItem struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	ElectionID  string         `json:"electionId" bson:"electionId"`
	Type        BallotItemType `json:"type" bson:"type"`
	Proposition *Proposition   `json:"proposition,omitempty" bson:"proposition,omitempty"`
	Race        *CandidateRace `json:"race,omitempty" bson:"race,omitempty"`
}

// Election groups ballot items for one election date
type Election struct {
	ID   string    `json:"id" bson:"_id,omitempty"`
	Name string    `json:"name" bson:"name"`
	Date time.Time `json:"date" bson:"date"`
}
