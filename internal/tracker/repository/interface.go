package repository

import (
	"context"

	"intentions-tracker/internal/model"
)

// Repository is the composed interface for the tracker domain data store.
// Reads never write; the usecase issues writes explicitly and re-reads.
type Repository interface {
	IntentionRepository
	IntentionSetRepository
	ProgressRepository
	CheckInRepository
}

// IntentionRepository defines data access for Intention records.
type IntentionRepository interface {
	CreateIntention(ctx context.Context, opt CreateIntentionOptions) (model.Intention, error)
	GetIntention(ctx context.Context, id string) (model.Intention, error)
	GetIntentions(ctx context.Context, ids []string) ([]model.Intention, error)
	ListIntentions(ctx context.Context) ([]model.Intention, error)
	UpdateIntention(ctx context.Context, opt UpdateIntentionOptions) (model.Intention, error)
	SetIntentionActive(ctx context.Context, id string, active bool) error
}

// IntentionSetRepository defines data access for dated intention sets.
type IntentionSetRepository interface {
	CreateIntentionSet(ctx context.Context, opt CreateIntentionSetOptions) (model.IntentionSet, error)
	ListIntentionSets(ctx context.Context) ([]model.IntentionSet, error)
}

// ProgressRepository defines data access for progress entries and
// manual overrides.
type ProgressRepository interface {
	CreateProgressEntry(ctx context.Context, opt CreateProgressEntryOptions) (model.ProgressEntry, error)
	ListEntriesForDay(ctx context.Context, dateKey, intentionSetID string) ([]model.ProgressEntry, error)
	ListAllEntries(ctx context.Context) ([]model.ProgressEntry, error)

	UpsertOverride(ctx context.Context, opt UpsertOverrideOptions) error
	DeleteOverride(ctx context.Context, dateKey, intentionID string) error
	GetOverridesForDay(ctx context.Context, dateKey string) (map[string]float64, error)
}

// CheckInRepository defines data access for check-ins and daily moods.
type CheckInRepository interface {
	CreateCheckIn(ctx context.Context, opt CreateCheckInOptions) (model.CheckIn, error)
	ListCheckInsForDay(ctx context.Context, dateKey string) ([]model.CheckIn, error)

	UpsertDailyMood(ctx context.Context, opt UpsertDailyMoodOptions) error
	GetDailyMood(ctx context.Context, dateKey string) (*model.DailyMood, error)
}
