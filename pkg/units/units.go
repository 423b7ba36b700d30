package units

import "strings"

// DefaultUnit is the fallback for empty or unrecognized units.
const DefaultUnit = "times"

// synonyms maps every recognized spelling to its canonical unit.
var synonyms = map[string]string{
	"minute":   "minutes",
	"minutes":  "minutes",
	"min":      "minutes",
	"page":     "pages",
	"pages":    "pages",
	"time":     "times",
	"times":    "times",
	"mile":     "miles",
	"miles":    "miles",
	"mi":       "miles",
	"step":     "steps",
	"steps":    "steps",
	"session":  "sessions",
	"sessions": "sessions",
	"rep":      "reps",
	"reps":     "reps",
	"cup":      "cups",
	"cups":     "cups",
	"glass":    "glasses",
	"glasses":  "glasses",
}

// Normalize collapses a free-form unit string to the canonical vocabulary.
// Empty input and unrecognized units both resolve to DefaultUnit.
func Normalize(raw string) string {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return DefaultUnit
	}
	if canonical, ok := synonyms[cleaned]; ok {
		return canonical
	}
	return DefaultUnit
}
