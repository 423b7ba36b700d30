package datemath

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical calendar-day bucket format.
// Every component that groups entries, overrides, or check-ins by day
// must go through DateKey to avoid day-boundary drift.
const DateKeyLayout = "2006-01-02"

// DateKey returns the YYYY-MM-DD bucket for t in the parser's timezone.
func (p *Parser) DateKey(t time.Time) string {
	return t.In(p.location).Format(DateKeyLayout)
}

// ParseDateKey converts a YYYY-MM-DD key back to midnight in the
// parser's timezone.
func (p *Parser) ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// TrailingDays returns n date keys ending at endKey inclusive, oldest
// first. An invalid endKey yields an empty slice.
func (p *Parser) TrailingDays(endKey string, n int) []string {
	if n <= 0 {
		return nil
	}
	end, err := p.ParseDateKey(endKey)
	if err != nil {
		return nil
	}
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, p.DateKey(end.AddDate(0, 0, -i)))
	}
	return keys
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}
