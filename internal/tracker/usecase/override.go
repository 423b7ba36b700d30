package usecase

import (
	"context"
	"errors"
	"fmt"

	"intentions-tracker/internal/tracker"
	"intentions-tracker/internal/tracker/repository"
	"intentions-tracker/pkg/units"
)

// SetOverride replaces the computed total for one (date, intention)
// pair. At most one override exists per pair; setting again overwrites.
func (uc *implUseCase) SetOverride(ctx context.Context, input tracker.SetOverrideInput) error {
	dateKey, err := uc.resolveDateKey(input.DateKey)
	if err != nil {
		return err
	}

	if _, err := uc.repo.GetIntention(ctx, input.IntentionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return tracker.ErrIntentionNotFound
		}
		return err
	}

	if err := uc.repo.UpsertOverride(ctx, repository.UpsertOverrideOptions{
		DateKey:     dateKey,
		IntentionID: input.IntentionID,
		Amount:      input.Amount,
		Unit:        units.Normalize(input.Unit),
	}); err != nil {
		return fmt.Errorf("failed to set override: %w", err)
	}

	uc.l.Infof(ctx, "SetOverride: date=%s intention=%s amount=%g", dateKey, input.IntentionID, input.Amount)

	uc.dayCache.Remove(dateKey)
	return nil
}

// ClearOverride removes the override, restoring entry-derived totals.
func (uc *implUseCase) ClearOverride(ctx context.Context, dateKey, intentionID string) error {
	dateKey, err := uc.resolveDateKey(dateKey)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteOverride(ctx, dateKey, intentionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return tracker.ErrOverrideNotFound
		}
		return fmt.Errorf("failed to clear override: %w", err)
	}

	uc.dayCache.Remove(dateKey)
	return nil
}
