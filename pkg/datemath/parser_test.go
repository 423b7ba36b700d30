package datemath_test

import (
	"reflect"
	"testing"
	"time"

	"intentions-tracker/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Empty means today",
			relative: "",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5),
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7),
		},
		{
			name:     "Unknown fallback",
			relative: "some random day",
			want:     startOfBase,
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateKey(t *testing.T) {
	parser, _ := datemath.NewParser("America/New_York")

	// 03:30 UTC on May 2 is still May 1 in New York.
	utcTime := time.Date(2024, 5, 2, 3, 30, 0, 0, time.UTC)
	if got := parser.DateKey(utcTime); got != "2024-05-01" {
		t.Errorf("DateKey() = %q, want %q", got, "2024-05-01")
	}

	noon := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	if got := parser.DateKey(noon); got != "2024-05-02" {
		t.Errorf("DateKey() = %q, want %q", got, "2024-05-02")
	}
}

func TestParseDateKey(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	got, err := parser.ParseDateKey("2024-05-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDateKey() = %v, want %v", got, want)
	}

	if _, err := parser.ParseDateKey("not-a-date"); err == nil {
		t.Errorf("expected error for malformed date key")
	}
}

func TestTrailingDays(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	got := parser.TrailingDays("2024-05-03", 3)
	want := []string{"2024-05-01", "2024-05-02", "2024-05-03"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TrailingDays() = %v, want %v", got, want)
	}

	// Month boundary.
	got = parser.TrailingDays("2024-05-01", 2)
	want = []string{"2024-04-30", "2024-05-01"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TrailingDays() across month = %v, want %v", got, want)
	}

	if got := parser.TrailingDays("bad-key", 7); got != nil {
		t.Errorf("TrailingDays() with bad key = %v, want nil", got)
	}

	if got := parser.TrailingDays("2024-05-01", 0); got != nil {
		t.Errorf("TrailingDays() with n=0 = %v, want nil", got)
	}
}
