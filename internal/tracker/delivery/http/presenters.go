package http

import (
	"time"

	"intentions-tracker/internal/extract"
	"intentions-tracker/internal/model"
	"intentions-tracker/internal/tracker"
)

// --- Request DTOs ---

type checkInReq struct {
	Transcript string `json:"transcript" binding:"required"`
	DateKey    string `json:"date"       binding:"omitempty,datetime=2006-01-02"`
}

func (r checkInReq) toInput() tracker.ProcessCheckInInput {
	return tracker.ProcessCheckInInput{
		Transcript: r.Transcript,
		DateKey:    r.DateKey,
	}
}

type parseIntentionsReq struct {
	Transcript string `json:"transcript" binding:"required"`
}

func (r parseIntentionsReq) toInput() tracker.ParseIntentionsInput {
	return tracker.ParseIntentionsInput{Transcript: r.Transcript}
}

type parsedIntentionReq struct {
	Title    string  `json:"title"    binding:"required,min=1,max=255"`
	Target   float64 `json:"target"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Notes    string  `json:"notes"`
}

type saveSetReq struct {
	Intentions    []parsedIntentionReq `json:"intentions"     binding:"required"`
	EffectiveDate string               `json:"effective_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r saveSetReq) toInput() tracker.SaveIntentionSetInput {
	intentions := make([]extract.ParsedIntention, len(r.Intentions))
	for i, in := range r.Intentions {
		intentions[i] = extract.ParsedIntention{
			Title:    in.Title,
			Target:   in.Target,
			Unit:     in.Unit,
			Category: in.Category,
			Notes:    in.Notes,
		}
	}
	return tracker.SaveIntentionSetInput{
		Intentions:    intentions,
		EffectiveDate: r.EffectiveDate,
	}
}

type createIntentionReq struct {
	Title       string  `json:"title"     binding:"required,min=1,max=255"`
	TargetValue float64 `json:"target"    binding:"required,gt=0"`
	Unit        string  `json:"unit"`
	Timeframe   string  `json:"timeframe" binding:"required,oneof=daily weekly"`
	Category    string  `json:"category"`
	Notes       string  `json:"notes"`
}

func (r createIntentionReq) toInput() tracker.CreateIntentionInput {
	return tracker.CreateIntentionInput{
		Title:       r.Title,
		TargetValue: r.TargetValue,
		Unit:        r.Unit,
		Timeframe:   model.Timeframe(r.Timeframe),
		Category:    r.Category,
		Notes:       r.Notes,
	}
}

type updateIntentionReq struct {
	ID          string  `json:"-"` // populated from URI param
	Title       string  `json:"title"     binding:"omitempty,min=1,max=255"`
	TargetValue float64 `json:"target"    binding:"omitempty,gt=0"`
	Unit        string  `json:"unit"`
	Timeframe   string  `json:"timeframe" binding:"omitempty,oneof=daily weekly"`
	Category    string  `json:"category"`
	Notes       string  `json:"notes"`
}

func (r updateIntentionReq) toInput() tracker.UpdateIntentionInput {
	return tracker.UpdateIntentionInput{
		ID:          r.ID,
		Title:       r.Title,
		TargetValue: r.TargetValue,
		Unit:        r.Unit,
		Timeframe:   model.Timeframe(r.Timeframe),
		Category:    r.Category,
		Notes:       r.Notes,
	}
}

type setOverrideReq struct {
	DateKey     string   `json:"-"`
	IntentionID string   `json:"-"`
	Amount      *float64 `json:"amount" binding:"required"` // pointer so an explicit 0 passes required
	Unit        string   `json:"unit"`
}

func (r setOverrideReq) toInput() tracker.SetOverrideInput {
	in := tracker.SetOverrideInput{
		DateKey:     r.DateKey,
		IntentionID: r.IntentionID,
		Unit:        r.Unit,
	}
	if r.Amount != nil {
		in.Amount = *r.Amount
	}
	return in
}

// --- Response DTOs ---

type intentionResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	TargetValue float64   `json:"target"`
	Unit        string    `json:"unit"`
	Timeframe   string    `json:"timeframe"`
	Category    string    `json:"category,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func newIntentionResp(in model.Intention) intentionResp {
	return intentionResp{
		ID:          in.ID,
		Title:       in.Title,
		TargetValue: in.TargetValue,
		Unit:        in.Unit,
		Timeframe:   string(in.Timeframe),
		Category:    in.Category,
		Notes:       in.Notes,
		IsActive:    in.IsActive,
		CreatedAt:   in.CreatedAt,
	}
}

func newIntentionResps(ins []model.Intention) []intentionResp {
	out := make([]intentionResp, len(ins))
	for i, in := range ins {
		out[i] = newIntentionResp(in)
	}
	return out
}

type parsedIntentionResp struct {
	Title    string  `json:"title"`
	Target   float64 `json:"target"`
	Unit     string  `json:"unit"`
	Category string  `json:"category,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

type parseIntentionsResp struct {
	Intentions []parsedIntentionResp `json:"intentions"`
}

func (h *handler) newParseIntentionsResp(out tracker.ParseIntentionsOutput) parseIntentionsResp {
	intentions := make([]parsedIntentionResp, len(out.Intentions))
	for i, in := range out.Intentions {
		intentions[i] = parsedIntentionResp{
			Title:    in.Title,
			Target:   in.Target,
			Unit:     in.Unit,
			Category: in.Category,
			Notes:    in.Notes,
		}
	}
	return parseIntentionsResp{Intentions: intentions}
}

type setResp struct {
	ID            string    `json:"id"`
	IntentionIDs  []string  `json:"intention_ids"`
	EffectiveDate string    `json:"effective_date"`
	CreatedAt     time.Time `json:"created_at"`
}

type saveSetResp struct {
	Set        setResp         `json:"set"`
	Intentions []intentionResp `json:"intentions"`
}

func (h *handler) newSaveSetResp(out tracker.SaveIntentionSetOutput) saveSetResp {
	return saveSetResp{
		Set: setResp{
			ID:            out.Set.ID,
			IntentionIDs:  out.Set.IntentionIDs,
			EffectiveDate: out.Set.EffectiveDate,
			CreatedAt:     out.Set.CreatedAt,
		},
		Intentions: newIntentionResps(out.Intentions),
	}
}

type entryResp struct {
	ID              string    `json:"id"`
	Amount          float64   `json:"amount"`
	Unit            string    `json:"unit"`
	UpdateType      string    `json:"update_type"`
	Evidence        string    `json:"evidence,omitempty"`
	SourceCheckInID string    `json:"source_check_in_id,omitempty"`
	CumulativeAfter float64   `json:"cumulative_after"`
	CreatedAt       time.Time `json:"created_at"`
}

type moodResp struct {
	Label string `json:"label,omitempty"`
	Score *int   `json:"score,omitempty"`
}

func newMoodResp(m *model.DailyMood) *moodResp {
	if m == nil {
		return nil
	}
	return &moodResp{Label: m.MoodLabel, Score: m.MoodScore}
}

type checkInResp struct {
	ID         string    `json:"id"`
	DateKey    string    `json:"date"`
	Transcript string    `json:"transcript"`
	Entries    int       `json:"entries_recorded"`
	Mood       *moodResp `json:"mood,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (h *handler) newCheckInResp(out tracker.ProcessCheckInOutput) checkInResp {
	return checkInResp{
		ID:         out.CheckIn.ID,
		DateKey:    out.CheckIn.DateKey,
		Transcript: out.CheckIn.Transcript,
		Entries:    len(out.Entries),
		Mood:       newMoodResp(out.Mood),
		CreatedAt:  out.CheckIn.CreatedAt,
	}
}

type intentionDayResp struct {
	Intention  intentionResp `json:"intention"`
	Entries    []entryResp   `json:"entries"`
	Total      float64       `json:"total"`
	Percent    float64       `json:"percent"`
	Overridden bool          `json:"overridden"`
}

type dayDetailResp struct {
	DateKey        string             `json:"date"`
	SetID          string             `json:"set_id,omitempty"`
	Intentions     []intentionDayResp `json:"intentions"`
	OverallPercent float64            `json:"overall_percent"`
	CheckIns       int                `json:"check_ins"`
	Mood           *moodResp          `json:"mood,omitempty"`
}

func (h *handler) newDayDetailResp(out tracker.DayDetailOutput) dayDetailResp {
	resp := dayDetailResp{
		DateKey:        out.DateKey,
		Intentions:     make([]intentionDayResp, len(out.Intentions)),
		OverallPercent: out.OverallPercent,
		CheckIns:       len(out.CheckIns),
		Mood:           newMoodResp(out.Mood),
	}
	if out.Set != nil {
		resp.SetID = out.Set.ID
	}
	for i, v := range out.Intentions {
		entries := make([]entryResp, len(v.Entries))
		for j, ev := range v.Entries {
			entries[j] = entryResp{
				ID:              ev.Entry.ID,
				Amount:          ev.Entry.Amount,
				Unit:            ev.Entry.Unit,
				UpdateType:      string(ev.Entry.UpdateType),
				Evidence:        ev.Entry.Evidence,
				SourceCheckInID: ev.Entry.SourceCheckInID,
				CumulativeAfter: ev.CumulativeAfter,
				CreatedAt:       ev.Entry.CreatedAt,
			}
		}
		resp.Intentions[i] = intentionDayResp{
			Intention:  newIntentionResp(v.Intention),
			Entries:    entries,
			Total:      v.Total,
			Percent:    v.Percent,
			Overridden: v.Overridden,
		}
	}
	return resp
}

type daySummaryResp struct {
	DateKey        string  `json:"date"`
	OverallPercent float64 `json:"overall_percent"`
	Intentions     int     `json:"intentions"`
}

type weeklyRollupResp struct {
	EndDateKey string           `json:"end_date"`
	Days       []daySummaryResp `json:"days"`
}

func (h *handler) newWeeklyRollupResp(out tracker.WeeklyRollupOutput) weeklyRollupResp {
	days := make([]daySummaryResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = daySummaryResp{
			DateKey:        d.DateKey,
			OverallPercent: d.OverallPercent,
			Intentions:     d.Intentions,
		}
	}
	return weeklyRollupResp{EndDateKey: out.EndDateKey, Days: days}
}

type historyPointResp struct {
	DateKey string  `json:"date"`
	Total   float64 `json:"total"`
	Percent float64 `json:"percent"`
	Tracked bool    `json:"tracked"`
}

type intentionHistoryResp struct {
	Intention intentionResp      `json:"intention"`
	Points    []historyPointResp `json:"points"`
}

func (h *handler) newIntentionHistoryResp(out tracker.IntentionHistoryOutput) intentionHistoryResp {
	points := make([]historyPointResp, len(out.Points))
	for i, p := range out.Points {
		points[i] = historyPointResp{
			DateKey: p.DateKey,
			Total:   p.Total,
			Percent: p.Percent,
			Tracked: p.Tracked,
		}
	}
	return intentionHistoryResp{
		Intention: newIntentionResp(out.Intention),
		Points:    points,
	}
}

type listIntentionsResp struct {
	Intentions []intentionResp `json:"intentions"`
}

func (h *handler) newListIntentionsResp(out tracker.ListIntentionsOutput) listIntentionsResp {
	return listIntentionsResp{Intentions: newIntentionResps(out.Intentions)}
}
