package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"intentions-tracker/internal/model"
	"intentions-tracker/pkg/units"
)

// Service turns raw LLM JSON payloads into validated records.
// Batch-level structure is strict; item-level problems are forgiven:
// an item without a usable title (or intention id) is skipped without
// failing its siblings.
type Service interface {
	// ParseIntentions parses the goal-setup payload
	// {"intentions": [{title, target, unit, category, notes}, ...]}.
	ParseIntentions(raw []byte) ([]ParsedIntention, error)

	// ParseCheckInExtraction parses the check-in payload
	// {"progress": [{intention_id, amount, unit, update_type, evidence}, ...],
	//  "mood": {label, score}, "day_reference": "yesterday"}.
	ParseCheckInExtraction(raw []byte) (CheckInExtraction, error)
}

type service struct{}

// New creates the extraction parser.
func New() Service {
	return service{}
}

type rawIntentionsPayload struct {
	Intentions []json.RawMessage `json:"intentions"`
}

type rawIntention struct {
	Title    *string  `json:"title"`
	Target   *float64 `json:"target"`
	Unit     *string  `json:"unit"`
	Category *string  `json:"category"`
	Notes    *string  `json:"notes"`
}

func (service) ParseIntentions(raw []byte) ([]ParsedIntention, error) {
	var payload rawIntentionsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if payload.Intentions == nil {
		return nil, fmt.Errorf("%w: missing intentions array", ErrInvalidPayload)
	}

	parsed := make([]ParsedIntention, 0, len(payload.Intentions))
	for _, item := range payload.Intentions {
		var in rawIntention
		if err := json.Unmarshal(item, &in); err != nil {
			continue // malformed item, not a batch failure
		}

		if in.Title == nil {
			continue
		}
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			continue
		}

		target := 1.0
		if in.Target != nil {
			target = *in.Target
		}

		parsed = append(parsed, ParsedIntention{
			Title:    title,
			Target:   target,
			Unit:     units.Normalize(deref(in.Unit)),
			Category: nonEmpty(in.Category),
			Notes:    nonEmpty(in.Notes),
		})
	}

	return parsed, nil
}

type rawCheckInPayload struct {
	Progress     []json.RawMessage `json:"progress"`
	Mood         *rawMood          `json:"mood"`
	DayReference *string           `json:"day_reference"`
}

type rawProgressUpdate struct {
	IntentionID *string  `json:"intention_id"`
	Amount      *float64 `json:"amount"`
	Unit        *string  `json:"unit"`
	UpdateType  *string  `json:"update_type"`
	Evidence    *string  `json:"evidence"`
}

type rawMood struct {
	Label *string  `json:"label"`
	Score *float64 `json:"score"`
}

func (service) ParseCheckInExtraction(raw []byte) (CheckInExtraction, error) {
	var payload rawCheckInPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return CheckInExtraction{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if payload.Progress == nil {
		return CheckInExtraction{}, fmt.Errorf("%w: missing progress array", ErrInvalidPayload)
	}

	out := CheckInExtraction{
		Progress:     make([]ParsedProgressUpdate, 0, len(payload.Progress)),
		DayReference: nonEmpty(payload.DayReference),
	}

	for _, item := range payload.Progress {
		var up rawProgressUpdate
		if err := json.Unmarshal(item, &up); err != nil {
			continue
		}

		if up.IntentionID == nil || strings.TrimSpace(*up.IntentionID) == "" {
			continue
		}
		if up.Amount == nil {
			continue
		}

		out.Progress = append(out.Progress, ParsedProgressUpdate{
			IntentionID: strings.TrimSpace(*up.IntentionID),
			Amount:      *up.Amount,
			Unit:        units.Normalize(deref(up.Unit)),
			UpdateType:  parseUpdateType(up.UpdateType),
			Evidence:    nonEmpty(up.Evidence),
		})
	}

	if payload.Mood != nil {
		mood := ParsedMood{Label: nonEmpty(payload.Mood.Label)}
		if payload.Mood.Score != nil {
			mood.Score = clampScore(*payload.Mood.Score)
		}
		if mood.Label != "" || mood.Score != nil {
			out.Mood = &mood
		}
	}

	return out, nil
}

// parseUpdateType coerces anything that is not an explicit TOTAL to
// INCREMENT, the safe additive default.
func parseUpdateType(raw *string) model.UpdateType {
	if raw != nil && strings.EqualFold(strings.TrimSpace(*raw), string(model.UpdateTotal)) {
		return model.UpdateTotal
	}
	return model.UpdateIncrement
}

func clampScore(score float64) *int {
	s := int(score)
	if s < 0 {
		s = 0
	}
	if s > 10 {
		s = 10
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
