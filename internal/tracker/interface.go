package tracker

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Intention setup
	ParseIntentions(ctx context.Context, input ParseIntentionsInput) (ParseIntentionsOutput, error)
	SaveIntentionSet(ctx context.Context, input SaveIntentionSetInput) (SaveIntentionSetOutput, error)

	// Intention CRUD
	CreateIntention(ctx context.Context, input CreateIntentionInput) (IntentionOutput, error)
	UpdateIntention(ctx context.Context, input UpdateIntentionInput) (IntentionOutput, error)
	DeactivateIntention(ctx context.Context, id string) error
	ListIntentions(ctx context.Context) (ListIntentionsOutput, error)

	// Check-in capture
	ProcessCheckIn(ctx context.Context, input ProcessCheckInInput) (ProcessCheckInOutput, error)

	// Aggregate views
	DayDetail(ctx context.Context, dateKey string) (DayDetailOutput, error)
	WeeklyRollup(ctx context.Context, endDateKey string) (WeeklyRollupOutput, error)
	IntentionHistory(ctx context.Context, intentionID, endDateKey string) (IntentionHistoryOutput, error)

	// Manual overrides
	SetOverride(ctx context.Context, input SetOverrideInput) error
	ClearOverride(ctx context.Context, dateKey, intentionID string) error
}
