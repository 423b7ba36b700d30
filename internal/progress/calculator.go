package progress

import (
	"time"

	"intentions-tracker/internal/model"
)

// Calculator computes per-intention totals and completion percentages.
// All methods are pure and total: missing or inconsistent inputs yield
// defensive defaults, never errors. Inputs are treated as read-only.
type Calculator interface {
	// TotalForIntention computes the day total for one intention.
	// A non-nil override short-circuits entry computation entirely.
	// Otherwise the latest TOTAL snapshot wins; with no snapshot the
	// increments are summed (negative corrections allowed, unclamped).
	TotalForIntention(entries []model.ProgressEntry, dateKey, intentionID, intentionSetID string, override *float64) float64

	// CumulativeIncrementUpTo reconstructs the increment-only running
	// total at the time a specific entry was created, for audit display.
	// TOTAL snapshots are ignored by contract.
	CumulativeIncrementUpTo(entries []model.ProgressEntry, dateKey, intentionID, intentionSetID string, atOrBefore time.Time) float64

	// PercentComplete returns total/target clamped to [0,1]. Weekly
	// targets are divided by 7; an effective target <= 0 is never
	// complete and returns 0.
	PercentComplete(total, targetValue float64, timeframe model.Timeframe) float64

	// OverallPercentComplete averages PercentComplete across intentions,
	// unweighted. Empty input returns 0.
	OverallPercentComplete(intentions []model.Intention, totalsByIntentionID map[string]float64) float64
}

type calculator struct{}

// NewCalculator creates the progress calculator.
func NewCalculator() Calculator {
	return calculator{}
}

func matches(e model.ProgressEntry, dateKey, intentionID, intentionSetID string) bool {
	return e.DateKey == dateKey && e.IntentionID == intentionID && e.IntentionSetID == intentionSetID
}

func (calculator) TotalForIntention(entries []model.ProgressEntry, dateKey, intentionID, intentionSetID string, override *float64) float64 {
	if override != nil {
		return *override
	}

	var sum float64
	var snapshot *model.ProgressEntry
	for i := range entries {
		e := entries[i]
		if !matches(e, dateKey, intentionID, intentionSetID) {
			continue
		}
		switch e.UpdateType {
		case model.UpdateTotal:
			// Latest snapshot wins; ties broken last-seen.
			if snapshot == nil || !e.CreatedAt.Before(snapshot.CreatedAt) {
				snapshot = &entries[i]
			}
		case model.UpdateIncrement:
			sum += e.Amount
		}
	}

	if snapshot != nil {
		return snapshot.Amount
	}
	return sum
}

func (calculator) CumulativeIncrementUpTo(entries []model.ProgressEntry, dateKey, intentionID, intentionSetID string, atOrBefore time.Time) float64 {
	var sum float64
	for _, e := range entries {
		if !matches(e, dateKey, intentionID, intentionSetID) {
			continue
		}
		if e.UpdateType != model.UpdateIncrement {
			continue
		}
		if e.CreatedAt.After(atOrBefore) {
			continue
		}
		sum += e.Amount
	}
	return sum
}

func (calculator) PercentComplete(total, targetValue float64, timeframe model.Timeframe) float64 {
	effectiveTarget := targetValue
	if timeframe == model.TimeframeWeekly {
		effectiveTarget = targetValue / 7
	}
	if effectiveTarget <= 0 {
		return 0
	}

	percent := total / effectiveTarget
	if percent < 0 {
		return 0
	}
	if percent > 1 {
		return 1
	}
	return percent
}

func (c calculator) OverallPercentComplete(intentions []model.Intention, totalsByIntentionID map[string]float64) float64 {
	if len(intentions) == 0 {
		return 0
	}

	var sum float64
	for _, in := range intentions {
		sum += c.PercentComplete(totalsByIntentionID[in.ID], in.TargetValue, in.Timeframe)
	}
	return sum / float64(len(intentions))
}
