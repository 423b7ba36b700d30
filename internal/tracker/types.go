package tracker

import (
	"intentions-tracker/internal/extract"
	"intentions-tracker/internal/model"
)

// --- Intention setup ---

type ParseIntentionsInput struct {
	Transcript string
}

type ParseIntentionsOutput struct {
	Intentions []extract.ParsedIntention
}

type SaveIntentionSetInput struct {
	Intentions    []extract.ParsedIntention
	EffectiveDate string // date key, defaults to today when empty
}

type SaveIntentionSetOutput struct {
	Set        model.IntentionSet
	Intentions []model.Intention
}

// --- Intention CRUD ---

type CreateIntentionInput struct {
	Title       string
	TargetValue float64
	Unit        string
	Timeframe   model.Timeframe
	Category    string
	Notes       string
}

type UpdateIntentionInput struct {
	ID          string
	Title       string
	TargetValue float64
	Unit        string
	Timeframe   model.Timeframe
	Category    string
	Notes       string
}

type IntentionOutput struct {
	Intention model.Intention
}

type ListIntentionsOutput struct {
	Intentions []model.Intention
}

// --- Check-in capture ---

type ProcessCheckInInput struct {
	Transcript string
	DateKey    string // defaults to today when empty
}

type ProcessCheckInOutput struct {
	CheckIn model.CheckIn
	Entries []model.ProgressEntry
	Mood    *model.DailyMood
}

// --- Aggregate views ---

// EntryView is one progress entry enriched with the running total at
// the moment it was recorded.
type EntryView struct {
	Entry           model.ProgressEntry
	CumulativeAfter float64
}

// IntentionDayView is the fully assembled state of one intention for
// one calendar day.
type IntentionDayView struct {
	Intention  model.Intention
	Entries    []EntryView // ascending by creation time
	Total      float64
	Percent    float64 // [0,1]
	Overridden bool
}

type DayDetailOutput struct {
	DateKey        string
	Set            *model.IntentionSet // nil when no set is active yet
	Intentions     []IntentionDayView
	OverallPercent float64
	CheckIns       []model.CheckIn
	Mood           *model.DailyMood
}

// DaySummary is the condensed per-day row used by weekly rollups.
type DaySummary struct {
	DateKey        string
	OverallPercent float64
	Intentions     int
}

type WeeklyRollupOutput struct {
	EndDateKey string
	Days       []DaySummary // oldest first, always 7 rows
}

// HistoryPoint is one day in an intention's trailing history. Days on
// which the intention was not part of the active set carry zeros.
type HistoryPoint struct {
	DateKey string
	Total   float64
	Percent float64
	Tracked bool
}

type IntentionHistoryOutput struct {
	Intention model.Intention
	Points    []HistoryPoint // oldest first, always 7 rows
}

// --- Manual overrides ---

type SetOverrideInput struct {
	DateKey     string
	IntentionID string
	Amount      float64
	Unit        string
}
