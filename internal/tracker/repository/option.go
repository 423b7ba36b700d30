package repository

import "intentions-tracker/internal/model"

// CreateIntentionOptions holds parameters for inserting a new Intention.
type CreateIntentionOptions struct {
	ID          string
	Title       string
	TargetValue float64
	Unit        string
	Timeframe   model.Timeframe
	Category    string
	Notes       string
}

// UpdateIntentionOptions holds parameters for updating an existing
// Intention. All fields overwrite; the usecase merges partial input
// before calling.
type UpdateIntentionOptions struct {
	ID          string
	Title       string
	TargetValue float64
	Unit        string
	Timeframe   model.Timeframe
	Category    string
	Notes       string
}

// CreateIntentionSetOptions holds parameters for inserting a new dated
// intention set.
type CreateIntentionSetOptions struct {
	ID            string
	IntentionIDs  []string
	EffectiveDate string
}

// CreateProgressEntryOptions holds parameters for appending an
// immutable progress entry.
type CreateProgressEntryOptions struct {
	ID              string
	IntentionID     string
	IntentionSetID  string
	DateKey         string
	Amount          float64
	Unit            string
	UpdateType      model.UpdateType
	Evidence        string
	SourceCheckInID string
}

// UpsertOverrideOptions holds parameters for setting a manual override.
// One row per (dateKey, intentionID); last write wins.
type UpsertOverrideOptions struct {
	DateKey     string
	IntentionID string
	Amount      float64
	Unit        string
}

// CreateCheckInOptions holds parameters for storing a captured
// transcript.
type CreateCheckInOptions struct {
	ID             string
	Transcript     string
	IntentionSetID string
	DateKey        string
}

// UpsertDailyMoodOptions holds parameters for recording the day's mood.
// One row per dateKey; last write wins.
type UpsertDailyMoodOptions struct {
	DateKey         string
	MoodLabel       string
	MoodScore       *int
	SourceCheckInID string
}
