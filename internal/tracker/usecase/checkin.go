package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"intentions-tracker/internal/model"
	"intentions-tracker/internal/tracker"
	"intentions-tracker/internal/tracker/repository"
)

// ProcessCheckIn stores the transcript, extracts progress updates via
// the LLM, and appends immutable progress entries for the day.
func (uc *implUseCase) ProcessCheckIn(ctx context.Context, input tracker.ProcessCheckInInput) (tracker.ProcessCheckInOutput, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return tracker.ProcessCheckInOutput{}, tracker.ErrEmptyTranscript
	}

	dateKey, err := uc.resolveDateKey(input.DateKey)
	if err != nil {
		return tracker.ProcessCheckInOutput{}, err
	}

	sets, err := uc.repo.ListIntentionSets(ctx)
	if err != nil {
		return tracker.ProcessCheckInOutput{}, err
	}
	set := resolveActiveSet(sets, dateKey)
	if set == nil {
		return tracker.ProcessCheckInOutput{}, tracker.ErrNoActiveSet
	}

	intentions, err := uc.activeIntentions(ctx, set)
	if err != nil {
		return tracker.ProcessCheckInOutput{}, err
	}

	raw, err := uc.generateJSON(ctx, checkInSystemPrompt,
		buildCheckInUserPrompt(intentions, input.Transcript),
		"check_in_extraction", checkInSchema())
	if err != nil {
		return tracker.ProcessCheckInOutput{}, fmt.Errorf("failed to extract check-in with LLM: %w", err)
	}

	extraction, err := uc.parser.ParseCheckInExtraction(raw)
	if err != nil {
		uc.l.Errorf(ctx, "ProcessCheckIn: unusable LLM payload: %v", err)
		return tracker.ProcessCheckInOutput{}, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}

	// A spoken day reference ("yesterday I ran") rebuckets the check-in,
	// unless the caller pinned the day explicitly.
	if input.DateKey == "" && extraction.DayReference != "" {
		day, perr := uc.dates.Parse(extraction.DayReference, uc.now())
		if perr != nil {
			uc.l.Warnf(ctx, "ProcessCheckIn: unrecognized day reference %q: %v", extraction.DayReference, perr)
		} else if key := uc.dates.DateKey(day); key != dateKey {
			dateKey = key
			set = resolveActiveSet(sets, dateKey)
			if set == nil {
				return tracker.ProcessCheckInOutput{}, tracker.ErrNoActiveSet
			}
			if intentions, err = uc.activeIntentions(ctx, set); err != nil {
				return tracker.ProcessCheckInOutput{}, err
			}
		}
	}

	checkIn, err := uc.repo.CreateCheckIn(ctx, repository.CreateCheckInOptions{
		ID:             uuid.NewString(),
		Transcript:     input.Transcript,
		IntentionSetID: set.ID,
		DateKey:        dateKey,
	})
	if err != nil {
		return tracker.ProcessCheckInOutput{}, fmt.Errorf("failed to store check-in: %w", err)
	}

	tracked := make(map[string]bool, len(intentions))
	for _, in := range intentions {
		tracked[in.ID] = true
	}

	entries := make([]model.ProgressEntry, 0, len(extraction.Progress))
	for _, up := range extraction.Progress {
		if !tracked[up.IntentionID] {
			uc.l.Warnf(ctx, "ProcessCheckIn: dropping update for unknown intention %q", up.IntentionID)
			continue
		}

		entry, err := uc.repo.CreateProgressEntry(ctx, repository.CreateProgressEntryOptions{
			ID:              uuid.NewString(),
			IntentionID:     up.IntentionID,
			IntentionSetID:  set.ID,
			DateKey:         dateKey,
			Amount:          up.Amount,
			Unit:            up.Unit,
			UpdateType:      up.UpdateType,
			Evidence:        up.Evidence,
			SourceCheckInID: checkIn.ID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "ProcessCheckIn: failed to append entry for %s: %v", up.IntentionID, err)
			continue
		}
		entries = append(entries, entry)
	}

	var mood *model.DailyMood
	if extraction.Mood != nil {
		m := model.DailyMood{
			DateKey:         dateKey,
			MoodLabel:       extraction.Mood.Label,
			MoodScore:       extraction.Mood.Score,
			SourceCheckInID: checkIn.ID,
		}
		if err := uc.repo.UpsertDailyMood(ctx, repository.UpsertDailyMoodOptions{
			DateKey:         m.DateKey,
			MoodLabel:       m.MoodLabel,
			MoodScore:       m.MoodScore,
			SourceCheckInID: m.SourceCheckInID,
		}); err != nil {
			uc.l.Errorf(ctx, "ProcessCheckIn: failed to record mood: %v", err)
		} else {
			mood = &m
		}
	}

	uc.l.Infof(ctx, "ProcessCheckIn: checkin=%s date=%s entries=%d", checkIn.ID, dateKey, len(entries))

	uc.dayCache.Remove(dateKey)

	return tracker.ProcessCheckInOutput{
		CheckIn: checkIn,
		Entries: entries,
		Mood:    mood,
	}, nil
}
