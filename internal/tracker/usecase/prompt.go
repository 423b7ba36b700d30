package usecase

import (
	"fmt"
	"strings"

	"intentions-tracker/internal/model"
)

const intentionsSystemPrompt = `You extract personal goals ("intentions") from a spoken transcript.

Rules:
- Return ONLY a JSON object of the form {"intentions": [...]}.
- Each intention has: "title" (short imperative phrase), "target" (number,
  how much per day or week), "unit" (e.g. "minutes", "pages", "times"),
  "category" (optional, e.g. "health", "learning"), "notes" (optional).
- When the speaker gives no number, use a target of 1.
- Do not invent goals that are not in the transcript.`

const checkInSystemPrompt = `You extract progress updates from a spoken check-in transcript.

The speaker is tracking the intentions listed below. Match each reported
activity to an intention by its id.

Rules:
- Return ONLY a JSON object of the form
  {"progress": [...], "mood": {...}, "day_reference": "..."}.
- Each progress item has: "intention_id" (from the list), "amount"
  (number), "unit", "update_type" ("INCREMENT" to add to today's total,
  "TOTAL" when the speaker states the full day total, e.g. "so far today
  I've read 30 pages"), "evidence" (short quote from the transcript).
- Use negative INCREMENT amounts only for explicit corrections.
- "mood" is {"label": one word, "score": 0-10}. Set it to null when the
  speaker says nothing about how they feel.
- "day_reference" is the day the speaker is reporting about, as a
  relative phrase ("yesterday", "today"). Set it to null when the
  speaker does not name a day.
- Skip activities that match no listed intention.`

// intentionsSchema is the strict response schema for goal extraction.
// Strict structured outputs demand that every property is required
// (nullable where optional) and that no object allows extra keys.
func intentionsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"intentions": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"title":    map[string]interface{}{"type": []string{"string", "null"}},
						"target":   map[string]interface{}{"type": []string{"number", "null"}},
						"unit":     map[string]interface{}{"type": []string{"string", "null"}},
						"category": map[string]interface{}{"type": []string{"string", "null"}},
						"notes":    map[string]interface{}{"type": []string{"string", "null"}},
					},
					"required":             []string{"title", "target", "unit", "category", "notes"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"intentions"},
		"additionalProperties": false,
	}
}

// checkInSchema is the strict response schema for check-in extraction.
func checkInSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"progress": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"intention_id": map[string]interface{}{"type": []string{"string", "null"}},
						"amount":       map[string]interface{}{"type": []string{"number", "null"}},
						"unit":         map[string]interface{}{"type": []string{"string", "null"}},
						"update_type": map[string]interface{}{
							"type": []string{"string", "null"},
							"enum": []interface{}{"INCREMENT", "TOTAL", nil},
						},
						"evidence": map[string]interface{}{"type": []string{"string", "null"}},
					},
					"required":             []string{"intention_id", "amount", "unit", "update_type", "evidence"},
					"additionalProperties": false,
				},
			},
			"mood": map[string]interface{}{
				"type": []string{"object", "null"},
				"properties": map[string]interface{}{
					"label": map[string]interface{}{"type": []string{"string", "null"}},
					"score": map[string]interface{}{"type": []string{"number", "null"}},
				},
				"required":             []string{"label", "score"},
				"additionalProperties": false,
			},
			"day_reference": map[string]interface{}{"type": []string{"string", "null"}},
		},
		"required":             []string{"progress", "mood", "day_reference"},
		"additionalProperties": false,
	}
}

// buildCheckInUserPrompt renders the tracked intentions and the
// transcript into the user message for check-in extraction.
func buildCheckInUserPrompt(intentions []model.Intention, transcript string) string {
	var sb strings.Builder

	sb.WriteString("Tracked intentions:\n")
	for _, in := range intentions {
		sb.WriteString(fmt.Sprintf("- id=%s title=%q target=%g %s per %s\n",
			in.ID, in.Title, in.TargetValue, in.Unit, in.Timeframe))
	}

	sb.WriteString("\nTranscript:\n")
	sb.WriteString(transcript)
	return sb.String()
}
