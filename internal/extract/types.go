package extract

import "intentions-tracker/internal/model"

// ParsedIntention is one goal extracted from an LLM intentions payload,
// normalized and default-filled.
type ParsedIntention struct {
	Title    string
	Target   float64 // defaults to 1 when the payload omits it
	Unit     string  // always canonical, never empty
	Category string  // empty when absent
	Notes    string  // empty when absent
}

// ParsedProgressUpdate is one progress fact extracted from a check-in
// transcript.
type ParsedProgressUpdate struct {
	IntentionID string
	Amount      float64
	Unit        string
	UpdateType  model.UpdateType // coerced to INCREMENT when unrecognized
	Evidence    string           // quoted transcript snippet, may be empty
}

// ParsedMood is the optional mood capture in a check-in extraction.
type ParsedMood struct {
	Label string
	Score *int // clamped to 0-10, nil when not reported
}

// CheckInExtraction is the full structured result of one check-in.
type CheckInExtraction struct {
	Progress []ParsedProgressUpdate
	Mood     *ParsedMood
	// DayReference is the relative day the speaker reported about
	// ("yesterday"), empty when the check-in is about today.
	DayReference string
}
