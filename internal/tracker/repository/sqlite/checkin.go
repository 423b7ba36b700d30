package sqlite

import (
	"context"
	"database/sql"
	"time"

	"intentions-tracker/internal/model"
	repo "intentions-tracker/internal/tracker/repository"
)

// CreateCheckIn stores a captured transcript.
func (r *implRepository) CreateCheckIn(ctx context.Context, opt repo.CreateCheckInOptions) (model.CheckIn, error) {
	now := time.Now()
	const query = `
		INSERT INTO check_ins (id, transcript, intention_set_id, date_key, created_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.Transcript, opt.IntentionSetID, opt.DateKey, formatTime(now))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCheckIn"), err)
		return model.CheckIn{}, repo.ErrFailedToInsert
	}

	return model.CheckIn{
		ID:             opt.ID,
		Transcript:     opt.Transcript,
		IntentionSetID: opt.IntentionSetID,
		DateKey:        opt.DateKey,
		CreatedAt:      now,
	}, nil
}

// ListCheckInsForDay returns the day's check-ins ascending by creation time.
func (r *implRepository) ListCheckInsForDay(ctx context.Context, dateKey string) ([]model.CheckIn, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, transcript, intention_set_id, date_key, created_at
		 FROM check_ins WHERE date_key = ? ORDER BY created_at ASC`, dateKey)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCheckInsForDay"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.CheckIn
	for rows.Next() {
		var ci model.CheckIn
		var createdAt string
		if err := rows.Scan(&ci.ID, &ci.Transcript, &ci.IntentionSetID, &ci.DateKey, &createdAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		ci.CreatedAt = parseTime(createdAt)
		out = append(out, ci)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// UpsertDailyMood records the day's mood. One row per day, last write wins.
func (r *implRepository) UpsertDailyMood(ctx context.Context, opt repo.UpsertDailyMoodOptions) error {
	const query = `
		INSERT INTO daily_moods (date_key, mood_label, mood_score, source_check_in_id)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (date_key)
		DO UPDATE SET mood_label = excluded.mood_label,
			mood_score = excluded.mood_score,
			source_check_in_id = excluded.source_check_in_id`

	var score any
	if opt.MoodScore != nil {
		score = *opt.MoodScore
	}

	_, err := r.db.ExecContext(ctx, query, opt.DateKey, opt.MoodLabel, score, opt.SourceCheckInID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertDailyMood"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// GetDailyMood returns the day's mood, or nil when none was captured.
func (r *implRepository) GetDailyMood(ctx context.Context, dateKey string) (*model.DailyMood, error) {
	var m model.DailyMood
	var score sql.NullInt64

	err := r.db.QueryRowContext(ctx,
		`SELECT date_key, mood_label, mood_score, source_check_in_id FROM daily_moods WHERE date_key = ?`,
		dateKey).Scan(&m.DateKey, &m.MoodLabel, &score, &m.SourceCheckInID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetDailyMood"), err)
		return nil, repo.ErrFailedToGet
	}

	if score.Valid {
		s := int(score.Int64)
		m.MoodScore = &s
	}
	return &m, nil
}
