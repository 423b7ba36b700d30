package tracker

import "errors"

var (
	ErrEmptyTranscript    = errors.New("transcript is empty")
	ErrNoIntentionsParsed = errors.New("no intentions could be parsed from the transcript")
	ErrIntentionNotFound  = errors.New("intention not found")
	ErrEmptyTitle         = errors.New("intention title is empty")
	ErrNoActiveSet        = errors.New("no intention set is active for this date")
	ErrInvalidDateKey     = errors.New("invalid date key")
	ErrNoIntentionsGiven  = errors.New("intention set needs at least one intention")
	ErrInvalidTarget      = errors.New("target value must be positive")
	ErrInvalidTimeframe   = errors.New("timeframe must be daily or weekly")
	ErrOverrideNotFound   = errors.New("no override exists for this date and intention")
)
