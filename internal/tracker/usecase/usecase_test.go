package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"intentions-tracker/internal/extract"
	"intentions-tracker/internal/model"
	"intentions-tracker/internal/progress"
	"intentions-tracker/internal/tracker"
	"intentions-tracker/internal/tracker/repository"
	"intentions-tracker/pkg/datemath"
	"intentions-tracker/pkg/llmprovider"
)

// --- mocks ---

type mockLLM struct {
	text  string
	err   error
	calls int
	last  *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "mock", ModelName: "mock-model"}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

// mockRepo is an in-memory Repository.
type mockRepo struct {
	intentions map[string]model.Intention
	sets       []model.IntentionSet
	entries    []model.ProgressEntry
	overrides  map[string]map[string]float64
	checkIns   []model.CheckIn
	moods      map[string]model.DailyMood

	listSetCalls int
	seq          int
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		intentions: make(map[string]model.Intention),
		overrides:  make(map[string]map[string]float64),
		moods:      make(map[string]model.DailyMood),
	}
}

func (r *mockRepo) nextTime() time.Time {
	r.seq++
	return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Second)
}

func (r *mockRepo) CreateIntention(ctx context.Context, opt repository.CreateIntentionOptions) (model.Intention, error) {
	in := model.Intention{
		ID:          opt.ID,
		Title:       opt.Title,
		TargetValue: opt.TargetValue,
		Unit:        opt.Unit,
		Timeframe:   opt.Timeframe,
		Category:    opt.Category,
		Notes:       opt.Notes,
		IsActive:    true,
		CreatedAt:   r.nextTime(),
	}
	r.intentions[in.ID] = in
	return in, nil
}

func (r *mockRepo) GetIntention(ctx context.Context, id string) (model.Intention, error) {
	in, ok := r.intentions[id]
	if !ok {
		return model.Intention{}, repository.ErrNotFound
	}
	return in, nil
}

func (r *mockRepo) GetIntentions(ctx context.Context, ids []string) ([]model.Intention, error) {
	var out []model.Intention
	for _, id := range ids {
		if in, ok := r.intentions[id]; ok {
			out = append(out, in)
		}
	}
	return out, nil
}

func (r *mockRepo) ListIntentions(ctx context.Context) ([]model.Intention, error) {
	var out []model.Intention
	for _, in := range r.intentions {
		out = append(out, in)
	}
	return out, nil
}

func (r *mockRepo) UpdateIntention(ctx context.Context, opt repository.UpdateIntentionOptions) (model.Intention, error) {
	in, ok := r.intentions[opt.ID]
	if !ok {
		return model.Intention{}, repository.ErrNotFound
	}
	in.Title = opt.Title
	in.TargetValue = opt.TargetValue
	in.Unit = opt.Unit
	in.Timeframe = opt.Timeframe
	in.Category = opt.Category
	in.Notes = opt.Notes
	r.intentions[opt.ID] = in
	return in, nil
}

func (r *mockRepo) SetIntentionActive(ctx context.Context, id string, active bool) error {
	in, ok := r.intentions[id]
	if !ok {
		return repository.ErrNotFound
	}
	in.IsActive = active
	r.intentions[id] = in
	return nil
}

func (r *mockRepo) CreateIntentionSet(ctx context.Context, opt repository.CreateIntentionSetOptions) (model.IntentionSet, error) {
	set := model.IntentionSet{
		ID:            opt.ID,
		IntentionIDs:  opt.IntentionIDs,
		EffectiveDate: opt.EffectiveDate,
		CreatedAt:     r.nextTime(),
	}
	r.sets = append(r.sets, set)
	return set, nil
}

func (r *mockRepo) ListIntentionSets(ctx context.Context) ([]model.IntentionSet, error) {
	r.listSetCalls++
	return r.sets, nil
}

func (r *mockRepo) CreateProgressEntry(ctx context.Context, opt repository.CreateProgressEntryOptions) (model.ProgressEntry, error) {
	e := model.ProgressEntry{
		ID:              opt.ID,
		IntentionID:     opt.IntentionID,
		IntentionSetID:  opt.IntentionSetID,
		DateKey:         opt.DateKey,
		Amount:          opt.Amount,
		Unit:            opt.Unit,
		UpdateType:      opt.UpdateType,
		Evidence:        opt.Evidence,
		SourceCheckInID: opt.SourceCheckInID,
		CreatedAt:       r.nextTime(),
	}
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *mockRepo) ListEntriesForDay(ctx context.Context, dateKey, setID string) ([]model.ProgressEntry, error) {
	var out []model.ProgressEntry
	for _, e := range r.entries {
		if e.DateKey == dateKey && e.IntentionSetID == setID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *mockRepo) ListAllEntries(ctx context.Context) ([]model.ProgressEntry, error) {
	return r.entries, nil
}

func (r *mockRepo) UpsertOverride(ctx context.Context, opt repository.UpsertOverrideOptions) error {
	if r.overrides[opt.DateKey] == nil {
		r.overrides[opt.DateKey] = make(map[string]float64)
	}
	r.overrides[opt.DateKey][opt.IntentionID] = opt.Amount
	return nil
}

func (r *mockRepo) DeleteOverride(ctx context.Context, dateKey, intentionID string) error {
	day, ok := r.overrides[dateKey]
	if !ok {
		return repository.ErrNotFound
	}
	if _, ok := day[intentionID]; !ok {
		return repository.ErrNotFound
	}
	delete(day, intentionID)
	return nil
}

func (r *mockRepo) GetOverridesForDay(ctx context.Context, dateKey string) (map[string]float64, error) {
	out := make(map[string]float64)
	for id, v := range r.overrides[dateKey] {
		out[id] = v
	}
	return out, nil
}

func (r *mockRepo) CreateCheckIn(ctx context.Context, opt repository.CreateCheckInOptions) (model.CheckIn, error) {
	ci := model.CheckIn{
		ID:             opt.ID,
		Transcript:     opt.Transcript,
		IntentionSetID: opt.IntentionSetID,
		DateKey:        opt.DateKey,
		CreatedAt:      r.nextTime(),
	}
	r.checkIns = append(r.checkIns, ci)
	return ci, nil
}

func (r *mockRepo) ListCheckInsForDay(ctx context.Context, dateKey string) ([]model.CheckIn, error) {
	var out []model.CheckIn
	for _, ci := range r.checkIns {
		if ci.DateKey == dateKey {
			out = append(out, ci)
		}
	}
	return out, nil
}

func (r *mockRepo) UpsertDailyMood(ctx context.Context, opt repository.UpsertDailyMoodOptions) error {
	r.moods[opt.DateKey] = model.DailyMood{
		DateKey:         opt.DateKey,
		MoodLabel:       opt.MoodLabel,
		MoodScore:       opt.MoodScore,
		SourceCheckInID: opt.SourceCheckInID,
	}
	return nil
}

func (r *mockRepo) GetDailyMood(ctx context.Context, dateKey string) (*model.DailyMood, error) {
	m, ok := r.moods[dateKey]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// --- test setup ---

const testDay = "2026-08-25"

func newTestUC(t *testing.T, repo *mockRepo, llm *mockLLM) *implUseCase {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := New(repo, nopLogger{}, llm, extract.New(), progress.NewCalculator(), dates)
	uc.now = func() time.Time { return time.Date(2026, 8, 25, 15, 0, 0, 0, time.UTC) }
	return uc
}

// seedSet installs two tracked intentions and an active set for testDay.
func seedSet(t *testing.T, repo *mockRepo) (model.IntentionSet, model.Intention, model.Intention) {
	t.Helper()
	ctx := context.Background()

	read, err := repo.CreateIntention(ctx, repository.CreateIntentionOptions{
		ID: "int-read", Title: "Read", TargetValue: 20, Unit: "pages", Timeframe: model.TimeframeDaily,
	})
	if err != nil {
		t.Fatal(err)
	}
	run, err := repo.CreateIntention(ctx, repository.CreateIntentionOptions{
		ID: "int-run", Title: "Run", TargetValue: 14, Unit: "miles", Timeframe: model.TimeframeWeekly,
	})
	if err != nil {
		t.Fatal(err)
	}
	set, err := repo.CreateIntentionSet(ctx, repository.CreateIntentionSetOptions{
		ID: "set-1", IntentionIDs: []string{read.ID, run.ID}, EffectiveDate: "2026-08-20",
	})
	if err != nil {
		t.Fatal(err)
	}
	return set, read, run
}

// --- ProcessCheckIn ---

func TestProcessCheckIn(t *testing.T) {
	repo := newMockRepo()
	set, read, _ := seedSet(t, repo)

	llm := &mockLLM{text: "```json\n" + `{
		"progress": [
			{"intention_id": "int-read", "amount": 10, "unit": "pages", "update_type": "INCREMENT", "evidence": "read ten pages"},
			{"intention_id": "int-ghost", "amount": 5, "unit": "times"}
		],
		"mood": {"label": "energized", "score": 8}
	}` + "\n```"}

	uc := newTestUC(t, repo, llm)

	out, err := uc.ProcessCheckIn(context.Background(), tracker.ProcessCheckInInput{Transcript: "I read ten pages today"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.CheckIn.IntentionSetID != set.ID {
		t.Errorf("check-in bound to set %q, want %q", out.CheckIn.IntentionSetID, set.ID)
	}
	if out.CheckIn.DateKey != testDay {
		t.Errorf("check-in dateKey = %q, want %q", out.CheckIn.DateKey, testDay)
	}
	if len(out.Entries) != 1 {
		t.Fatalf("entries = %d, want 1 (unknown intention dropped)", len(out.Entries))
	}
	if out.Entries[0].IntentionID != read.ID {
		t.Errorf("entry intention = %q, want %q", out.Entries[0].IntentionID, read.ID)
	}
	if out.Entries[0].SourceCheckInID != out.CheckIn.ID {
		t.Errorf("entry provenance not linked to check-in")
	}
	if out.Mood == nil || out.Mood.MoodLabel != "energized" || out.Mood.MoodScore == nil || *out.Mood.MoodScore != 8 {
		t.Errorf("mood not captured: %+v", out.Mood)
	}
}

func TestProcessCheckIn_EmptyTranscript(t *testing.T) {
	uc := newTestUC(t, newMockRepo(), &mockLLM{})

	_, err := uc.ProcessCheckIn(context.Background(), tracker.ProcessCheckInInput{Transcript: "   "})
	if !errors.Is(err, tracker.ErrEmptyTranscript) {
		t.Fatalf("expected ErrEmptyTranscript, got %v", err)
	}
}

func TestProcessCheckIn_NoActiveSet(t *testing.T) {
	uc := newTestUC(t, newMockRepo(), &mockLLM{})

	_, err := uc.ProcessCheckIn(context.Background(), tracker.ProcessCheckInInput{Transcript: "I did things"})
	if !errors.Is(err, tracker.ErrNoActiveSet) {
		t.Fatalf("expected ErrNoActiveSet, got %v", err)
	}
}

func TestProcessCheckIn_RelativeDayReference(t *testing.T) {
	repo := newMockRepo()
	seedSet(t, repo)

	llm := &mockLLM{text: `{
		"progress": [{"intention_id": "int-read", "amount": 5, "unit": "pages", "update_type": "INCREMENT", "evidence": "read five pages"}],
		"mood": null,
		"day_reference": "yesterday"
	}`}
	uc := newTestUC(t, repo, llm)

	out, err := uc.ProcessCheckIn(context.Background(), tracker.ProcessCheckInInput{Transcript: "yesterday I read five pages"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.CheckIn.DateKey != "2026-08-24" {
		t.Errorf("check-in dateKey = %q, want yesterday (2026-08-24)", out.CheckIn.DateKey)
	}
	if len(out.Entries) != 1 || out.Entries[0].DateKey != "2026-08-24" {
		t.Errorf("entries not rebucketed: %+v", out.Entries)
	}
}

func TestProcessCheckIn_ExplicitDateBeatsReference(t *testing.T) {
	repo := newMockRepo()
	seedSet(t, repo)

	llm := &mockLLM{text: `{
		"progress": [{"intention_id": "int-read", "amount": 5, "unit": "pages", "update_type": "INCREMENT", "evidence": "read five pages"}],
		"mood": null,
		"day_reference": "yesterday"
	}`}
	uc := newTestUC(t, repo, llm)

	out, err := uc.ProcessCheckIn(context.Background(), tracker.ProcessCheckInInput{
		Transcript: "yesterday I read five pages",
		DateKey:    testDay,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.CheckIn.DateKey != testDay {
		t.Errorf("explicit date overridden by spoken reference: %q", out.CheckIn.DateKey)
	}
}

func TestProcessCheckIn_BadPayload(t *testing.T) {
	repo := newMockRepo()
	seedSet(t, repo)

	uc := newTestUC(t, repo, &mockLLM{text: "I could not parse that transcript, sorry!"})

	_, err := uc.ProcessCheckIn(context.Background(), tracker.ProcessCheckInInput{Transcript: "hello"})
	if !errors.Is(err, extract.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

// --- ParseIntentions / SaveIntentionSet ---

func TestParseIntentions(t *testing.T) {
	llm := &mockLLM{text: `{"intentions": [
		{"title": "Walk", "target": 30, "unit": "min"},
		{"title": "Meditate"}
	]}`}

	uc := newTestUC(t, newMockRepo(), llm)

	out, err := uc.ParseIntentions(context.Background(), tracker.ParseIntentionsInput{Transcript: "I want to walk 30 minutes and meditate"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Intentions) != 2 {
		t.Fatalf("parsed %d intentions, want 2", len(out.Intentions))
	}
	if out.Intentions[0].Unit != "minutes" {
		t.Errorf("unit = %q, want minutes", out.Intentions[0].Unit)
	}
	if out.Intentions[1].Target != 1 {
		t.Errorf("default target = %g, want 1", out.Intentions[1].Target)
	}
	if llm.last == nil || llm.last.ResponseSchema == nil {
		t.Errorf("LLM call missing response schema")
	}
}

func TestParseIntentions_NothingExtracted(t *testing.T) {
	uc := newTestUC(t, newMockRepo(), &mockLLM{text: `{"intentions": []}`})

	_, err := uc.ParseIntentions(context.Background(), tracker.ParseIntentionsInput{Transcript: "hello"})
	if !errors.Is(err, tracker.ErrNoIntentionsParsed) {
		t.Fatalf("expected ErrNoIntentionsParsed, got %v", err)
	}
}

func TestSaveIntentionSet(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUC(t, repo, &mockLLM{})

	out, err := uc.SaveIntentionSet(context.Background(), tracker.SaveIntentionSetInput{
		Intentions: []extract.ParsedIntention{
			{Title: "Read", Target: 20, Unit: "pages"},
			{Title: "Stretch", Target: 1, Unit: "times"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Intentions) != 2 {
		t.Fatalf("created %d intentions, want 2", len(out.Intentions))
	}
	if out.Set.EffectiveDate != testDay {
		t.Errorf("effective date = %q, want today (%s)", out.Set.EffectiveDate, testDay)
	}
	if len(out.Set.IntentionIDs) != 2 {
		t.Errorf("set members = %d, want 2", len(out.Set.IntentionIDs))
	}
	for _, in := range out.Intentions {
		if in.Timeframe != model.TimeframeDaily {
			t.Errorf("intention %q timeframe = %q, want daily default", in.Title, in.Timeframe)
		}
	}
}

func TestSaveIntentionSet_Empty(t *testing.T) {
	uc := newTestUC(t, newMockRepo(), &mockLLM{})

	_, err := uc.SaveIntentionSet(context.Background(), tracker.SaveIntentionSetInput{})
	if !errors.Is(err, tracker.ErrNoIntentionsGiven) {
		t.Fatalf("expected ErrNoIntentionsGiven, got %v", err)
	}
}

// --- DayDetail ---

func TestDayDetail(t *testing.T) {
	repo := newMockRepo()
	set, read, run := seedSet(t, repo)
	ctx := context.Background()

	// Read: 10 + 5 increments of a 20-page daily target -> 0.75
	for i, amount := range []float64{10, 5} {
		_, err := repo.CreateProgressEntry(ctx, repository.CreateProgressEntryOptions{
			ID: fmt.Sprintf("e%d", i), IntentionID: read.ID, IntentionSetID: set.ID,
			DateKey: testDay, Amount: amount, Unit: "pages", UpdateType: model.UpdateIncrement,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	// Run: 1 mile of a 14-per-week target (2/day) -> 0.5
	if _, err := repo.CreateProgressEntry(ctx, repository.CreateProgressEntryOptions{
		ID: "e-run", IntentionID: run.ID, IntentionSetID: set.ID,
		DateKey: testDay, Amount: 1, Unit: "miles", UpdateType: model.UpdateIncrement,
	}); err != nil {
		t.Fatal(err)
	}

	uc := newTestUC(t, repo, &mockLLM{})

	out, err := uc.DayDetail(ctx, testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Set == nil || out.Set.ID != set.ID {
		t.Fatalf("day resolved to wrong set: %+v", out.Set)
	}
	if len(out.Intentions) != 2 {
		t.Fatalf("intentions = %d, want 2", len(out.Intentions))
	}

	readView := out.Intentions[0]
	if readView.Total != 15 {
		t.Errorf("read total = %g, want 15", readView.Total)
	}
	if readView.Percent != 0.75 {
		t.Errorf("read percent = %g, want 0.75", readView.Percent)
	}
	if len(readView.Entries) != 2 {
		t.Fatalf("read entries = %d, want 2", len(readView.Entries))
	}
	if readView.Entries[1].CumulativeAfter != 15 {
		t.Errorf("running total after second entry = %g, want 15", readView.Entries[1].CumulativeAfter)
	}

	runView := out.Intentions[1]
	if runView.Percent != 0.5 {
		t.Errorf("run percent = %g, want 0.5", runView.Percent)
	}

	if out.OverallPercent != 0.625 {
		t.Errorf("overall = %g, want 0.625", out.OverallPercent)
	}
}

func TestDayDetail_OverrideWins(t *testing.T) {
	repo := newMockRepo()
	set, read, _ := seedSet(t, repo)
	ctx := context.Background()

	if _, err := repo.CreateProgressEntry(ctx, repository.CreateProgressEntryOptions{
		ID: "e1", IntentionID: read.ID, IntentionSetID: set.ID,
		DateKey: testDay, Amount: 100, Unit: "pages", UpdateType: model.UpdateIncrement,
	}); err != nil {
		t.Fatal(err)
	}

	uc := newTestUC(t, repo, &mockLLM{})

	if err := uc.SetOverride(ctx, tracker.SetOverrideInput{
		DateKey: testDay, IntentionID: read.ID, Amount: 5, Unit: "pages",
	}); err != nil {
		t.Fatalf("SetOverride: %v", err)
	}

	out, err := uc.DayDetail(ctx, testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	readView := out.Intentions[0]
	if readView.Total != 5 {
		t.Errorf("total = %g, want override 5", readView.Total)
	}
	if !readView.Overridden {
		t.Errorf("Overridden flag not set")
	}

	// Clearing restores the entry-derived total (clamped percent).
	if err := uc.ClearOverride(ctx, testDay, read.ID); err != nil {
		t.Fatalf("ClearOverride: %v", err)
	}
	out, err = uc.DayDetail(ctx, testDay)
	if err != nil {
		t.Fatal(err)
	}
	if out.Intentions[0].Total != 100 {
		t.Errorf("total after clear = %g, want 100", out.Intentions[0].Total)
	}
	if out.Intentions[0].Percent != 1 {
		t.Errorf("percent after clear = %g, want clamped 1", out.Intentions[0].Percent)
	}
}

func TestDayDetail_NoActiveSet(t *testing.T) {
	repo := newMockRepo()
	seedSet(t, repo)

	uc := newTestUC(t, repo, &mockLLM{})

	// The set takes effect 2026-08-20; earlier days have no set.
	out, err := uc.DayDetail(context.Background(), "2026-08-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Set != nil {
		t.Errorf("expected no active set, got %+v", out.Set)
	}
	if out.OverallPercent != 0 {
		t.Errorf("overall = %g, want 0", out.OverallPercent)
	}
}

func TestDayDetail_InvalidDateKey(t *testing.T) {
	uc := newTestUC(t, newMockRepo(), &mockLLM{})

	_, err := uc.DayDetail(context.Background(), "25/08/2026")
	if !errors.Is(err, tracker.ErrInvalidDateKey) {
		t.Fatalf("expected ErrInvalidDateKey, got %v", err)
	}
}

func TestDayDetail_Cached(t *testing.T) {
	repo := newMockRepo()
	seedSet(t, repo)

	uc := newTestUC(t, repo, &mockLLM{})
	ctx := context.Background()

	if _, err := uc.DayDetail(ctx, testDay); err != nil {
		t.Fatal(err)
	}
	calls := repo.listSetCalls
	if _, err := uc.DayDetail(ctx, testDay); err != nil {
		t.Fatal(err)
	}
	if repo.listSetCalls != calls {
		t.Errorf("second DayDetail hit the repository (%d -> %d calls)", calls, repo.listSetCalls)
	}

	// A write to the day must evict the cached view.
	if err := uc.SetOverride(ctx, tracker.SetOverrideInput{DateKey: testDay, IntentionID: "int-read", Amount: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.DayDetail(ctx, testDay); err != nil {
		t.Fatal(err)
	}
	if repo.listSetCalls == calls {
		t.Errorf("DayDetail after write served stale cache")
	}
}

// --- WeeklyRollup / IntentionHistory ---

func TestWeeklyRollup(t *testing.T) {
	repo := newMockRepo()
	set, read, _ := seedSet(t, repo)
	ctx := context.Background()

	if _, err := repo.CreateProgressEntry(ctx, repository.CreateProgressEntryOptions{
		ID: "e1", IntentionID: read.ID, IntentionSetID: set.ID,
		DateKey: "2026-08-24", Amount: 20, Unit: "pages", UpdateType: model.UpdateIncrement,
	}); err != nil {
		t.Fatal(err)
	}

	uc := newTestUC(t, repo, &mockLLM{})

	out, err := uc.WeeklyRollup(ctx, testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(out.Days))
	}
	if out.Days[0].DateKey != "2026-08-19" || out.Days[6].DateKey != testDay {
		t.Errorf("window = %s..%s, want 2026-08-19..%s", out.Days[0].DateKey, out.Days[6].DateKey, testDay)
	}

	// 2026-08-19 predates the set: zero intentions.
	if out.Days[0].Intentions != 0 {
		t.Errorf("pre-set day intentions = %d, want 0", out.Days[0].Intentions)
	}
	// 2026-08-24: read complete (1.0), run untouched (0) -> 0.5 overall.
	if out.Days[5].OverallPercent != 0.5 {
		t.Errorf("2026-08-24 overall = %g, want 0.5", out.Days[5].OverallPercent)
	}
}

func TestIntentionHistory(t *testing.T) {
	repo := newMockRepo()
	set, read, _ := seedSet(t, repo)
	ctx := context.Background()

	if _, err := repo.CreateProgressEntry(ctx, repository.CreateProgressEntryOptions{
		ID: "e1", IntentionID: read.ID, IntentionSetID: set.ID,
		DateKey: "2026-08-23", Amount: 10, Unit: "pages", UpdateType: model.UpdateIncrement,
	}); err != nil {
		t.Fatal(err)
	}

	uc := newTestUC(t, repo, &mockLLM{})

	out, err := uc.IntentionHistory(ctx, read.ID, testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Points) != 7 {
		t.Fatalf("points = %d, want 7", len(out.Points))
	}

	for _, p := range out.Points {
		switch {
		case p.DateKey < "2026-08-20":
			if p.Tracked || p.Total != 0 || p.Percent != 0 {
				t.Errorf("pre-set day %s should be a zero row: %+v", p.DateKey, p)
			}
		case p.DateKey == "2026-08-23":
			if !p.Tracked || p.Total != 10 || p.Percent != 0.5 {
				t.Errorf("2026-08-23 = %+v, want tracked total 10 percent 0.5", p)
			}
		default:
			if !p.Tracked {
				t.Errorf("day %s should be tracked", p.DateKey)
			}
		}
	}
}

func TestIntentionHistory_NotFound(t *testing.T) {
	uc := newTestUC(t, newMockRepo(), &mockLLM{})

	_, err := uc.IntentionHistory(context.Background(), "missing", testDay)
	if !errors.Is(err, tracker.ErrIntentionNotFound) {
		t.Fatalf("expected ErrIntentionNotFound, got %v", err)
	}
}

// --- Overrides ---

func TestClearOverride_Missing(t *testing.T) {
	repo := newMockRepo()
	seedSet(t, repo)

	uc := newTestUC(t, repo, &mockLLM{})

	err := uc.ClearOverride(context.Background(), testDay, "int-read")
	if !errors.Is(err, tracker.ErrOverrideNotFound) {
		t.Fatalf("expected ErrOverrideNotFound, got %v", err)
	}
}

// --- Intention CRUD ---

func TestUpdateIntention_Partial(t *testing.T) {
	repo := newMockRepo()
	_, read, _ := seedSet(t, repo)

	uc := newTestUC(t, repo, &mockLLM{})

	out, err := uc.UpdateIntention(context.Background(), tracker.UpdateIntentionInput{
		ID:          read.ID,
		TargetValue: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intention.TargetValue != 30 {
		t.Errorf("target = %g, want 30", out.Intention.TargetValue)
	}
	if out.Intention.Title != "Read" {
		t.Errorf("title changed on partial update: %q", out.Intention.Title)
	}
}

func TestDeactivateIntention(t *testing.T) {
	repo := newMockRepo()
	_, read, _ := seedSet(t, repo)
	ctx := context.Background()

	uc := newTestUC(t, repo, &mockLLM{})

	if err := uc.DeactivateIntention(ctx, read.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := uc.DayDetail(ctx, testDay)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range out.Intentions {
		if v.Intention.ID == read.ID {
			t.Errorf("deactivated intention still in day view")
		}
	}
}

func TestCreateIntention_Validation(t *testing.T) {
	uc := newTestUC(t, newMockRepo(), &mockLLM{})
	ctx := context.Background()

	cases := []struct {
		name  string
		input tracker.CreateIntentionInput
		want  error
	}{
		{"empty title", tracker.CreateIntentionInput{TargetValue: 1, Timeframe: model.TimeframeDaily}, tracker.ErrEmptyTitle},
		{"zero target", tracker.CreateIntentionInput{Title: "x", Timeframe: model.TimeframeDaily}, tracker.ErrInvalidTarget},
		{"bad timeframe", tracker.CreateIntentionInput{Title: "x", TargetValue: 1, Timeframe: "hourly"}, tracker.ErrInvalidTimeframe},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateIntention(ctx, tc.input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
