package usecase

import (
	"context"
	"fmt"

	"intentions-tracker/internal/model"
	"intentions-tracker/internal/tracker"
)

// DayDetail assembles the full view of one calendar day: the active
// intention set, per-intention entries and totals, the overall
// completion percentage, check-ins, and mood.
func (uc *implUseCase) DayDetail(ctx context.Context, dateKey string) (tracker.DayDetailOutput, error) {
	if _, err := uc.dates.ParseDateKey(dateKey); err != nil {
		return tracker.DayDetailOutput{}, fmt.Errorf("%w: %q", tracker.ErrInvalidDateKey, dateKey)
	}

	if cached, ok := uc.dayCache.Get(dateKey); ok {
		return cached, nil
	}

	out, err := uc.assembleDay(ctx, dateKey)
	if err != nil {
		return tracker.DayDetailOutput{}, err
	}

	uc.dayCache.Add(dateKey, out)
	return out, nil
}

func (uc *implUseCase) assembleDay(ctx context.Context, dateKey string) (tracker.DayDetailOutput, error) {
	out := tracker.DayDetailOutput{DateKey: dateKey}

	checkIns, err := uc.repo.ListCheckInsForDay(ctx, dateKey)
	if err != nil {
		return tracker.DayDetailOutput{}, err
	}
	out.CheckIns = checkIns

	mood, err := uc.repo.GetDailyMood(ctx, dateKey)
	if err != nil {
		return tracker.DayDetailOutput{}, err
	}
	out.Mood = mood

	sets, err := uc.repo.ListIntentionSets(ctx)
	if err != nil {
		return tracker.DayDetailOutput{}, err
	}
	set := resolveActiveSet(sets, dateKey)
	if set == nil {
		// No set has started yet: an empty but valid day.
		return out, nil
	}
	out.Set = set

	intentions, err := uc.activeIntentions(ctx, set)
	if err != nil {
		return tracker.DayDetailOutput{}, err
	}

	entries, err := uc.repo.ListEntriesForDay(ctx, dateKey, set.ID)
	if err != nil {
		return tracker.DayDetailOutput{}, err
	}

	overrides, err := uc.repo.GetOverridesForDay(ctx, dateKey)
	if err != nil {
		return tracker.DayDetailOutput{}, err
	}

	totals := make(map[string]float64, len(intentions))
	views := make([]tracker.IntentionDayView, 0, len(intentions))

	for _, in := range intentions {
		override := overridePtr(overrides, in.ID)
		total := uc.calc.TotalForIntention(entries, dateKey, in.ID, set.ID, override)
		totals[in.ID] = total

		views = append(views, tracker.IntentionDayView{
			Intention:  in,
			Entries:    uc.entryViews(entries, dateKey, in.ID, set.ID),
			Total:      total,
			Percent:    uc.calc.PercentComplete(total, in.TargetValue, in.Timeframe),
			Overridden: override != nil,
		})
	}

	out.Intentions = views
	out.OverallPercent = uc.calc.OverallPercentComplete(intentions, totals)
	return out, nil
}

// entryViews filters one intention's entries (already ascending by
// creation time) and annotates each with its running increment total.
func (uc *implUseCase) entryViews(entries []model.ProgressEntry, dateKey, intentionID, setID string) []tracker.EntryView {
	var views []tracker.EntryView
	for _, e := range entries {
		if e.IntentionID != intentionID {
			continue
		}
		views = append(views, tracker.EntryView{
			Entry:           e,
			CumulativeAfter: uc.calc.CumulativeIncrementUpTo(entries, dateKey, intentionID, setID, e.CreatedAt),
		})
	}
	return views
}
