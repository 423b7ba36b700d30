package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"intentions-tracker/internal/model"
	"intentions-tracker/internal/tracker"
	"intentions-tracker/pkg/llmprovider"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	matches := codeFenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first { or [ and last } or ]
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// generateJSON runs one schema-constrained LLM call and returns the
// sanitized response body.
func (uc *implUseCase) generateJSON(ctx context.Context, system, user, schemaName string, schema map[string]interface{}) ([]byte, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		System:         system,
		User:           user,
		Temperature:    0.2, // low temperature for deterministic JSON output
		MaxTokens:      2048,
		ResponseSchema: schema,
		SchemaName:     schemaName,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM request failed: %w", err)
	}

	uc.l.Debugf(ctx, "LLM raw response: provider=%s len=%d", resp.ProviderName, len(resp.Text))
	return []byte(sanitizeJSONResponse(resp.Text)), nil
}

// resolveDateKey validates the given date key, defaulting to today when
// empty.
func (uc *implUseCase) resolveDateKey(dateKey string) (string, error) {
	if dateKey == "" {
		return uc.dates.DateKey(uc.now()), nil
	}
	if _, err := uc.dates.ParseDateKey(dateKey); err != nil {
		return "", fmt.Errorf("%w: %q", tracker.ErrInvalidDateKey, dateKey)
	}
	return dateKey, nil
}

// resolveActiveSet returns the intention set governing dateKey: the one
// with the latest effective date at or before the target day. Equal
// effective dates are broken by creation time. Returns nil when no set
// has started yet.
func resolveActiveSet(sets []model.IntentionSet, dateKey string) *model.IntentionSet {
	var active *model.IntentionSet
	for i := range sets {
		s := &sets[i]
		if s.EffectiveDate > dateKey {
			continue
		}
		if active == nil ||
			s.EffectiveDate > active.EffectiveDate ||
			(s.EffectiveDate == active.EffectiveDate && !s.CreatedAt.Before(active.CreatedAt)) {
			active = s
		}
	}
	return active
}

// activeIntentions loads the set's member intentions, preserving set
// order and dropping soft-deleted ones.
func (uc *implUseCase) activeIntentions(ctx context.Context, set *model.IntentionSet) ([]model.Intention, error) {
	if set == nil {
		return nil, nil
	}
	all, err := uc.repo.GetIntentions(ctx, set.IntentionIDs)
	if err != nil {
		return nil, err
	}
	active := make([]model.Intention, 0, len(all))
	for _, in := range all {
		if in.IsActive {
			active = append(active, in)
		}
	}
	return active, nil
}

// overridePtr returns the override amount for an intention as a
// nullable pointer.
func overridePtr(overrides map[string]float64, intentionID string) *float64 {
	if v, ok := overrides[intentionID]; ok {
		return &v
	}
	return nil
}
