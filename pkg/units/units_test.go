package units_test

import (
	"testing"

	"intentions-tracker/pkg/units"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: "times"},
		{name: "whitespace only", raw: "   ", want: "times"},
		{name: "min abbreviation", raw: "min", want: "minutes"},
		{name: "minute singular", raw: "minute", want: "minutes"},
		{name: "minutes plural", raw: "minutes", want: "minutes"},
		{name: "uppercase", raw: "MIN", want: "minutes"},
		{name: "padded", raw: "  Pages ", want: "pages"},
		{name: "page singular", raw: "page", want: "pages"},
		{name: "time singular", raw: "time", want: "times"},
		{name: "mi abbreviation", raw: "mi", want: "miles"},
		{name: "mile singular", raw: "mile", want: "miles"},
		{name: "step singular", raw: "step", want: "steps"},
		{name: "session plural", raw: "sessions", want: "sessions"},
		{name: "rep singular", raw: "rep", want: "reps"},
		{name: "cup plural", raw: "cups", want: "cups"},
		{name: "glass singular", raw: "glass", want: "glasses"},
		{name: "glasses plural", raw: "glasses", want: "glasses"},
		{name: "unknown collapses to times", raw: "laps", want: "times"},
		{name: "unknown word", raw: "kilometers", want: "times"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := units.Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
