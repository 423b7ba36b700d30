package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"intentions-tracker/internal/model"
	"intentions-tracker/internal/tracker"
	"intentions-tracker/internal/tracker/repository"
	"intentions-tracker/pkg/units"
)

// ParseIntentions extracts structured goals from a spoken transcript
// via the LLM. Nothing is persisted; the caller confirms the parsed
// set through SaveIntentionSet.
func (uc *implUseCase) ParseIntentions(ctx context.Context, input tracker.ParseIntentionsInput) (tracker.ParseIntentionsOutput, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return tracker.ParseIntentionsOutput{}, tracker.ErrEmptyTranscript
	}

	raw, err := uc.generateJSON(ctx, intentionsSystemPrompt, input.Transcript, "intentions_extraction", intentionsSchema())
	if err != nil {
		return tracker.ParseIntentionsOutput{}, fmt.Errorf("failed to parse transcript with LLM: %w", err)
	}

	parsed, err := uc.parser.ParseIntentions(raw)
	if err != nil {
		uc.l.Errorf(ctx, "ParseIntentions: unusable LLM payload: %v", err)
		return tracker.ParseIntentionsOutput{}, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}
	if len(parsed) == 0 {
		return tracker.ParseIntentionsOutput{}, tracker.ErrNoIntentionsParsed
	}

	uc.l.Infof(ctx, "ParseIntentions: extracted %d intentions", len(parsed))
	return tracker.ParseIntentionsOutput{Intentions: parsed}, nil
}

// SaveIntentionSet persists confirmed intentions as records plus a new
// dated set. Parsed intentions default to a daily cadence; the cadence
// can be changed afterwards via UpdateIntention.
func (uc *implUseCase) SaveIntentionSet(ctx context.Context, input tracker.SaveIntentionSetInput) (tracker.SaveIntentionSetOutput, error) {
	if len(input.Intentions) == 0 {
		return tracker.SaveIntentionSetOutput{}, tracker.ErrNoIntentionsGiven
	}

	effectiveDate, err := uc.resolveDateKey(input.EffectiveDate)
	if err != nil {
		return tracker.SaveIntentionSetOutput{}, err
	}

	created := make([]model.Intention, 0, len(input.Intentions))
	ids := make([]string, 0, len(input.Intentions))

	for _, p := range input.Intentions {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			continue
		}
		target := p.Target
		if target <= 0 {
			target = 1
		}

		in, err := uc.repo.CreateIntention(ctx, repository.CreateIntentionOptions{
			ID:          uuid.NewString(),
			Title:       title,
			TargetValue: target,
			Unit:        units.Normalize(p.Unit),
			Timeframe:   model.TimeframeDaily,
			Category:    p.Category,
			Notes:       p.Notes,
		})
		if err != nil {
			return tracker.SaveIntentionSetOutput{}, fmt.Errorf("failed to create intention %q: %w", title, err)
		}
		created = append(created, in)
		ids = append(ids, in.ID)
	}

	if len(created) == 0 {
		return tracker.SaveIntentionSetOutput{}, tracker.ErrNoIntentionsGiven
	}

	set, err := uc.repo.CreateIntentionSet(ctx, repository.CreateIntentionSetOptions{
		ID:            uuid.NewString(),
		IntentionIDs:  ids,
		EffectiveDate: effectiveDate,
	})
	if err != nil {
		return tracker.SaveIntentionSetOutput{}, fmt.Errorf("failed to create intention set: %w", err)
	}

	uc.l.Infof(ctx, "SaveIntentionSet: set=%s effective=%s intentions=%d", set.ID, effectiveDate, len(created))

	// A new set can change any day from its effective date forward.
	uc.dayCache.Purge()

	return tracker.SaveIntentionSetOutput{Set: set, Intentions: created}, nil
}

// CreateIntention adds a single intention record outside the LLM flow.
// It does not join a set until the next SaveIntentionSet.
func (uc *implUseCase) CreateIntention(ctx context.Context, input tracker.CreateIntentionInput) (tracker.IntentionOutput, error) {
	if err := validateIntentionInput(input.Title, input.TargetValue, input.Timeframe); err != nil {
		return tracker.IntentionOutput{}, err
	}

	in, err := uc.repo.CreateIntention(ctx, repository.CreateIntentionOptions{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(input.Title),
		TargetValue: input.TargetValue,
		Unit:        units.Normalize(input.Unit),
		Timeframe:   input.Timeframe,
		Category:    input.Category,
		Notes:       input.Notes,
	})
	if err != nil {
		return tracker.IntentionOutput{}, fmt.Errorf("failed to create intention: %w", err)
	}
	return tracker.IntentionOutput{Intention: in}, nil
}

// UpdateIntention applies a partial update: zero-valued fields keep
// their current value.
func (uc *implUseCase) UpdateIntention(ctx context.Context, input tracker.UpdateIntentionInput) (tracker.IntentionOutput, error) {
	current, err := uc.repo.GetIntention(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return tracker.IntentionOutput{}, tracker.ErrIntentionNotFound
		}
		return tracker.IntentionOutput{}, err
	}

	if t := strings.TrimSpace(input.Title); t != "" {
		current.Title = t
	}
	if input.TargetValue != 0 {
		if input.TargetValue < 0 {
			return tracker.IntentionOutput{}, tracker.ErrInvalidTarget
		}
		current.TargetValue = input.TargetValue
	}
	if input.Unit != "" {
		current.Unit = units.Normalize(input.Unit)
	}
	if input.Timeframe != "" {
		if input.Timeframe != model.TimeframeDaily && input.Timeframe != model.TimeframeWeekly {
			return tracker.IntentionOutput{}, tracker.ErrInvalidTimeframe
		}
		current.Timeframe = input.Timeframe
	}
	if input.Category != "" {
		current.Category = input.Category
	}
	if input.Notes != "" {
		current.Notes = input.Notes
	}

	updated, err := uc.repo.UpdateIntention(ctx, repository.UpdateIntentionOptions{
		ID:          current.ID,
		Title:       current.Title,
		TargetValue: current.TargetValue,
		Unit:        current.Unit,
		Timeframe:   current.Timeframe,
		Category:    current.Category,
		Notes:       current.Notes,
	})
	if err != nil {
		return tracker.IntentionOutput{}, fmt.Errorf("failed to update intention: %w", err)
	}

	// Target or cadence changes alter computed percentages.
	uc.dayCache.Purge()

	return tracker.IntentionOutput{Intention: updated}, nil
}

// DeactivateIntention soft-deletes an intention. Historical entries
// keep resolving; the intention just stops appearing in day views.
func (uc *implUseCase) DeactivateIntention(ctx context.Context, id string) error {
	if err := uc.repo.SetIntentionActive(ctx, id, false); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return tracker.ErrIntentionNotFound
		}
		return err
	}
	uc.dayCache.Purge()
	return nil
}

// ListIntentions returns every intention, active and inactive.
func (uc *implUseCase) ListIntentions(ctx context.Context) (tracker.ListIntentionsOutput, error) {
	intentions, err := uc.repo.ListIntentions(ctx)
	if err != nil {
		return tracker.ListIntentionsOutput{}, err
	}
	return tracker.ListIntentionsOutput{Intentions: intentions}, nil
}

func validateIntentionInput(title string, target float64, timeframe model.Timeframe) error {
	if strings.TrimSpace(title) == "" {
		return tracker.ErrEmptyTitle
	}
	if target <= 0 {
		return tracker.ErrInvalidTarget
	}
	if timeframe != model.TimeframeDaily && timeframe != model.TimeframeWeekly {
		return tracker.ErrInvalidTimeframe
	}
	return nil
}
