package model

// SubmitSwipeRequest records one response to an assessment item
type SubmitSwipeRequest struct {
	ItemID   string        `json:"itemId"`
	Response SwipeResponse `json:"response"`
}

// AssessmentProgress summarizes where the user is in the question loop
type AssessmentProgress struct {
	QuestionsAnswered int    `json:"questionsAnswered"`
	MinQuestions      int    `json:"minQuestions"`
	MaxQuestions      int    `json:"maxQuestions"`
	Done              bool   `json:"done"`
	StopReason        string `json:"stopReason,omitempty"`
}

// NextQuestionResponse is returned after a swipe or on a next-question
// poll. Question is nil when the assessment is complete - callers treat
// that as a first-class "done" state.
type NextQuestionResponse struct {
	Question *Item              `json:"question,omitempty"`
	Progress AssessmentProgress `json:"progress"`
}

// UpdateAxisRequest is a manual stance edit
type UpdateAxisRequest struct {
	Value int `json:"value"` // 0-10
}

// LockAxisRequest toggles the lock on an axis
type LockAxisRequest struct {
	Locked bool `json:"locked"`
}

// UpdateImportanceRequest sets a domain's importance weight
type UpdateImportanceRequest struct {
	Importance int `json:"importance"` // 0-10
}
