package usecase

import (
	"context"
	"errors"
	"fmt"

	"intentions-tracker/internal/tracker"
	"intentions-tracker/internal/tracker/repository"
)

const rollupDays = 7

// WeeklyRollup condenses the trailing seven days ending at endDateKey
// (inclusive) into one row per day. Each day is resolved independently
// against the set that was active on that day.
func (uc *implUseCase) WeeklyRollup(ctx context.Context, endDateKey string) (tracker.WeeklyRollupOutput, error) {
	endDateKey, err := uc.resolveDateKey(endDateKey)
	if err != nil {
		return tracker.WeeklyRollupOutput{}, err
	}

	keys := uc.dates.TrailingDays(endDateKey, rollupDays)
	if len(keys) == 0 {
		return tracker.WeeklyRollupOutput{}, fmt.Errorf("%w: %q", tracker.ErrInvalidDateKey, endDateKey)
	}

	days := make([]tracker.DaySummary, 0, rollupDays)
	for _, key := range keys {
		detail, err := uc.DayDetail(ctx, key)
		if err != nil {
			return tracker.WeeklyRollupOutput{}, err
		}
		days = append(days, tracker.DaySummary{
			DateKey:        key,
			OverallPercent: detail.OverallPercent,
			Intentions:     len(detail.Intentions),
		})
	}

	return tracker.WeeklyRollupOutput{EndDateKey: endDateKey, Days: days}, nil
}

// IntentionHistory returns a fixed seven-row series for one intention.
// Days on which the active set did not include the intention carry
// zeros with Tracked=false.
func (uc *implUseCase) IntentionHistory(ctx context.Context, intentionID, endDateKey string) (tracker.IntentionHistoryOutput, error) {
	intention, err := uc.repo.GetIntention(ctx, intentionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return tracker.IntentionHistoryOutput{}, tracker.ErrIntentionNotFound
		}
		return tracker.IntentionHistoryOutput{}, err
	}

	endDateKey, err = uc.resolveDateKey(endDateKey)
	if err != nil {
		return tracker.IntentionHistoryOutput{}, err
	}

	keys := uc.dates.TrailingDays(endDateKey, rollupDays)
	if len(keys) == 0 {
		return tracker.IntentionHistoryOutput{}, fmt.Errorf("%w: %q", tracker.ErrInvalidDateKey, endDateKey)
	}

	sets, err := uc.repo.ListIntentionSets(ctx)
	if err != nil {
		return tracker.IntentionHistoryOutput{}, err
	}

	points := make([]tracker.HistoryPoint, 0, rollupDays)
	for _, key := range keys {
		point := tracker.HistoryPoint{DateKey: key}

		set := resolveActiveSet(sets, key)
		if set != nil && containsID(set.IntentionIDs, intentionID) {
			entries, err := uc.repo.ListEntriesForDay(ctx, key, set.ID)
			if err != nil {
				return tracker.IntentionHistoryOutput{}, err
			}
			overrides, err := uc.repo.GetOverridesForDay(ctx, key)
			if err != nil {
				return tracker.IntentionHistoryOutput{}, err
			}

			total := uc.calc.TotalForIntention(entries, key, intentionID, set.ID, overridePtr(overrides, intentionID))
			point.Total = total
			point.Percent = uc.calc.PercentComplete(total, intention.TargetValue, intention.Timeframe)
			point.Tracked = true
		}

		points = append(points, point)
	}

	return tracker.IntentionHistoryOutput{Intention: intention, Points: points}, nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
