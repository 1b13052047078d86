package model

import "time"

// SwipeResponse is the discrete response to an assessment item, ordered
// strong_disagree < disagree < unsure < agree < strong_agree. Unsure
// carries zero weight and is tracked separately by the scorer.
type SwipeResponse string

const (
	ResponseStrongDisagree SwipeResponse = "strong_disagree"
	ResponseDisagree       SwipeResponse = "disagree"
	ResponseUnsure         SwipeResponse = "unsure"
	ResponseAgree          SwipeResponse = "agree"
	ResponseStrongAgree    SwipeResponse = "strong_agree"
)

// Valid reports whether r is one of the five known responses
func (r SwipeResponse) Valid() bool {
	switch r {
	case ResponseStrongDisagree, ResponseDisagree, ResponseUnsure, ResponseAgree, ResponseStrongAgree:
		return true
	}
	return false
}

// SwipeEvent is a single recorded response. Events are immutable; the
// swipe log is append-only and rescored from scratch on every change.
type SwipeEvent struct {
	ID       string        `json:"id" bson:"_id,omitempty"`
	UserID   string        `json:"userId" bson:"userId"`
	ItemID   string        `json:"itemId" bson:"itemId"`
	Response SwipeResponse `json:"response" bson:"response"`
	SwipedAt time.Time     `json:"swipedAt" bson:"swipedAt"`
}
