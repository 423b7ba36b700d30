package progress

// IntentionProgress is the computed state of one intention on one day.
type IntentionProgress struct {
	IntentionID string  // Intention being measured
	Total       float64 // Day total after override precedence
	Target      float64 // Effective daily target already applied in Percent
	Percent     float64 // Completion ratio, clamped to [0,1]
	Overridden  bool    // true when a manual override replaced the computed total
}

// DayStats is the overall completion for one calendar day.
type DayStats struct {
	DateKey    string  // Day bucket, YYYY-MM-DD
	Percent    float64 // Unweighted average across intentions, [0,1]
	Intentions int     // Number of intentions contributing
}
