package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"intentions-tracker/internal/model"
	repo "intentions-tracker/internal/tracker/repository"
)

const intentionColumns = `id, title, target_value, unit, timeframe, category, notes, is_active, created_at`

func scanIntention(row interface{ Scan(...any) error }) (model.Intention, error) {
	var in model.Intention
	var timeframe string
	var active int
	var createdAt string
	err := row.Scan(&in.ID, &in.Title, &in.TargetValue, &in.Unit, &timeframe,
		&in.Category, &in.Notes, &active, &createdAt)
	if err != nil {
		return model.Intention{}, err
	}
	in.Timeframe = model.Timeframe(timeframe)
	in.IsActive = active != 0
	in.CreatedAt = parseTime(createdAt)
	return in, nil
}

// CreateIntention inserts a new Intention row and returns the created entity.
func (r *implRepository) CreateIntention(ctx context.Context, opt repo.CreateIntentionOptions) (model.Intention, error) {
	now := time.Now()
	const query = `
		INSERT INTO intentions (id, title, target_value, unit, timeframe, category, notes, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?)`

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.Title, opt.TargetValue, opt.Unit, string(opt.Timeframe),
		opt.Category, opt.Notes, formatTime(now))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateIntention"), err)
		return model.Intention{}, repo.ErrFailedToInsert
	}

	return model.Intention{
		ID:          opt.ID,
		Title:       opt.Title,
		TargetValue: opt.TargetValue,
		Unit:        opt.Unit,
		Timeframe:   opt.Timeframe,
		Category:    opt.Category,
		Notes:       opt.Notes,
		IsActive:    true,
		CreatedAt:   now,
	}, nil
}

// GetIntention retrieves a single Intention by id. Returns ErrNotFound
// when no row exists.
func (r *implRepository) GetIntention(ctx context.Context, id string) (model.Intention, error) {
	query := fmt.Sprintf(`SELECT %s FROM intentions WHERE id = ?`, intentionColumns)

	in, err := scanIntention(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Intention{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetIntention"), err)
		return model.Intention{}, repo.ErrFailedToGet
	}
	return in, nil
}

// GetIntentions retrieves intentions by ids, preserving the input order.
// Missing ids are silently dropped.
func (r *implRepository) GetIntentions(ctx context.Context, ids []string) ([]model.Intention, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := fmt.Sprintf(`SELECT %s FROM intentions WHERE id IN (%s)`, intentionColumns, placeholders)

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetIntentions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	byID := make(map[string]model.Intention, len(ids))
	for rows.Next() {
		in, err := scanIntention(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		byID[in.ID] = in
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}

	out := make([]model.Intention, 0, len(ids))
	for _, id := range ids {
		if in, ok := byID[id]; ok {
			out = append(out, in)
		}
	}
	return out, nil
}

// ListIntentions returns all intentions, active and inactive, newest first.
func (r *implRepository) ListIntentions(ctx context.Context) ([]model.Intention, error) {
	query := fmt.Sprintf(`SELECT %s FROM intentions ORDER BY created_at DESC`, intentionColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListIntentions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Intention
	for rows.Next() {
		in, err := scanIntention(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// UpdateIntention overwrites the mutable fields of an existing Intention.
func (r *implRepository) UpdateIntention(ctx context.Context, opt repo.UpdateIntentionOptions) (model.Intention, error) {
	const query = `
		UPDATE intentions
		SET title = ?, target_value = ?, unit = ?, timeframe = ?, category = ?, notes = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.TargetValue, opt.Unit, string(opt.Timeframe),
		opt.Category, opt.Notes, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateIntention"), err)
		return model.Intention{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Intention{}, repo.ErrNotFound
	}

	return r.GetIntention(ctx, opt.ID)
}

// SetIntentionActive toggles the soft-delete flag.
func (r *implRepository) SetIntentionActive(ctx context.Context, id string, active bool) error {
	flag := 0
	if active {
		flag = 1
	}

	res, err := r.db.ExecContext(ctx, `UPDATE intentions SET is_active = ? WHERE id = ?`, flag, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetIntentionActive"), err)
		return repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}
	return nil
}
