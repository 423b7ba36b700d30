package sqlite

import (
	"context"
	"fmt"
	"time"

	"intentions-tracker/internal/model"
	repo "intentions-tracker/internal/tracker/repository"
)

const entryColumns = `id, intention_id, intention_set_id, date_key, amount, unit, update_type, evidence, source_check_in_id, created_at`

func scanEntry(row interface{ Scan(...any) error }) (model.ProgressEntry, error) {
	var e model.ProgressEntry
	var updateType string
	var createdAt string
	err := row.Scan(&e.ID, &e.IntentionID, &e.IntentionSetID, &e.DateKey, &e.Amount,
		&e.Unit, &updateType, &e.Evidence, &e.SourceCheckInID, &createdAt)
	if err != nil {
		return model.ProgressEntry{}, err
	}
	e.UpdateType = model.UpdateType(updateType)
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// CreateProgressEntry appends an immutable progress entry. Entries are
// never updated or deleted after this point.
func (r *implRepository) CreateProgressEntry(ctx context.Context, opt repo.CreateProgressEntryOptions) (model.ProgressEntry, error) {
	now := time.Now()
	const query = `
		INSERT INTO progress_entries
			(id, intention_id, intention_set_id, date_key, amount, unit, update_type, evidence, source_check_in_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.IntentionID, opt.IntentionSetID, opt.DateKey, opt.Amount,
		opt.Unit, string(opt.UpdateType), opt.Evidence, opt.SourceCheckInID, formatTime(now))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProgressEntry"), err)
		return model.ProgressEntry{}, repo.ErrFailedToInsert
	}

	return model.ProgressEntry{
		ID:              opt.ID,
		IntentionID:     opt.IntentionID,
		IntentionSetID:  opt.IntentionSetID,
		DateKey:         opt.DateKey,
		Amount:          opt.Amount,
		Unit:            opt.Unit,
		UpdateType:      opt.UpdateType,
		Evidence:        opt.Evidence,
		SourceCheckInID: opt.SourceCheckInID,
		CreatedAt:       now,
	}, nil
}

// ListEntriesForDay returns the entries for one (dateKey, setID)
// bucket, ascending by creation time.
func (r *implRepository) ListEntriesForDay(ctx context.Context, dateKey, intentionSetID string) ([]model.ProgressEntry, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM progress_entries WHERE date_key = ? AND intention_set_id = ? ORDER BY created_at ASC`,
		entryColumns)

	rows, err := r.db.QueryContext(ctx, query, dateKey, intentionSetID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEntriesForDay"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.ProgressEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// ListAllEntries returns every progress entry, ascending by creation time.
func (r *implRepository) ListAllEntries(ctx context.Context) ([]model.ProgressEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM progress_entries ORDER BY created_at ASC`, entryColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAllEntries"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.ProgressEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// UpsertOverride sets the manual override for (dateKey, intentionID).
// Last write wins.
func (r *implRepository) UpsertOverride(ctx context.Context, opt repo.UpsertOverrideOptions) error {
	const query = `
		INSERT INTO manual_overrides (date_key, intention_id, amount, unit, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (date_key, intention_id)
		DO UPDATE SET amount = excluded.amount, unit = excluded.unit, created_at = excluded.created_at`

	_, err := r.db.ExecContext(ctx, query,
		opt.DateKey, opt.IntentionID, opt.Amount, opt.Unit, formatTime(time.Now()))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertOverride"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// DeleteOverride removes the override for (dateKey, intentionID).
// Returns ErrNotFound when none existed.
func (r *implRepository) DeleteOverride(ctx context.Context, dateKey, intentionID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM manual_overrides WHERE date_key = ? AND intention_id = ?`, dateKey, intentionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteOverride"), err)
		return repo.ErrFailedToDelete
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// GetOverridesForDay returns intentionID -> amount for one day.
func (r *implRepository) GetOverridesForDay(ctx context.Context, dateKey string) (map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT intention_id, amount FROM manual_overrides WHERE date_key = ?`, dateKey)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOverridesForDay"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var id string
		var amount float64
		if err := rows.Scan(&id, &amount); err != nil {
			return nil, repo.ErrFailedToList
		}
		out[id] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
