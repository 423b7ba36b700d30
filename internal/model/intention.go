package model

import "time"

// Timeframe is the cadence an intention's target applies to.
type Timeframe string

const (
	TimeframeDaily  Timeframe = "daily"
	TimeframeWeekly Timeframe = "weekly"
)

// UpdateType distinguishes additive progress from authoritative snapshots.
type UpdateType string

const (
	// UpdateIncrement adds to the day's running total. Negative amounts
	// are corrections.
	UpdateIncrement UpdateType = "INCREMENT"
	// UpdateTotal replaces the day's total; the latest TOTAL wins and
	// suppresses all increments for that day.
	UpdateTotal UpdateType = "TOTAL"
)

// Intention is a user-defined goal: a title, a numeric target, a unit,
// and a cadence. Intentions are soft-deleted via IsActive so historical
// entries keep resolving.
type Intention struct {
	ID          string
	Title       string
	TargetValue float64
	Unit        string
	Timeframe   Timeframe
	Category    string
	Notes       string
	IsActive    bool
	CreatedAt   time.Time
}

// IntentionSet is the dated, ordered collection of intention ids being
// tracked starting from EffectiveDate. Exactly one set is active for a
// given calendar date: the latest set whose effective date is at or
// before that date.
type IntentionSet struct {
	ID            string
	IntentionIDs  []string
	EffectiveDate string // date key, YYYY-MM-DD
	CreatedAt     time.Time
}

// ProgressEntry is an immutable recorded contribution toward an
// intention on a given day. Entries are never mutated after creation.
type ProgressEntry struct {
	ID              string
	IntentionID     string
	IntentionSetID  string
	DateKey         string
	Amount          float64
	Unit            string
	UpdateType      UpdateType
	Evidence        string // quoted transcript snippet, may be empty
	SourceCheckInID string
	CreatedAt       time.Time
}

// ManualProgressOverride replaces (never adds to) the computed total
// for one (dateKey, intentionID) pair. Last write wins.
type ManualProgressOverride struct {
	DateKey     string
	IntentionID string
	Amount      float64
	Unit        string
	CreatedAt   time.Time
}

// CheckIn is a captured transcript, the provenance source for extracted
// progress entries.
type CheckIn struct {
	ID             string
	Transcript     string
	IntentionSetID string
	DateKey        string
	CreatedAt      time.Time
}

// DailyMood is an optional per-day mood capture, orthogonal to progress
// and included in day aggregates for display only.
type DailyMood struct {
	DateKey         string
	MoodLabel       string
	MoodScore       *int // 0-10, nil when not captured
	SourceCheckInID string
}
