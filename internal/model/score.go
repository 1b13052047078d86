package model

// Contribution is one swipe's signed contribution to an axis
type Contribution struct {
	ItemID   string        `json:"itemId"`
	Response SwipeResponse `json:"response"`
	Value    int           `json:"value"`
}

// AxisScore is the statistical estimate for one axis, recomputed as a
// pure fold over the full swipe log. Normalized and Shrunk live in
// [-1, +1]; Confidence in [0, 1).
type AxisScore struct {
	AxisID     string         `json:"axisId"`
	RawSum     int            `json:"rawSum"`
	NAnswered  int            `json:"nAnswered"`
	NUnsure    int            `json:"nUnsure"`
	Normalized float64        `json:"normalized"`
	Shrunk     float64        `json:"shrunk"`
	Confidence float64        `json:"confidence"`
	TopDrivers []Contribution `json:"topDrivers,omitempty"`
}
