package sqlite

import (
	"context"
	"time"

	"intentions-tracker/internal/model"
	repo "intentions-tracker/internal/tracker/repository"
)

// CreateIntentionSet inserts a dated set and its ordered members in one
// transaction.
func (r *implRepository) CreateIntentionSet(ctx context.Context, opt repo.CreateIntentionSetOptions) (model.IntentionSet, error) {
	now := time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateIntentionSet"), err)
		return model.IntentionSet{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO intention_sets (id, effective_date, created_at) VALUES (?, ?, ?)`,
		opt.ID, opt.EffectiveDate, formatTime(now))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateIntentionSet"), err)
		return model.IntentionSet{}, repo.ErrFailedToInsert
	}

	for i, intentionID := range opt.IntentionIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO intention_set_members (set_id, intention_id, position) VALUES (?, ?, ?)`,
			opt.ID, intentionID, i)
		if err != nil {
			r.l.Errorf(ctx, "%s member: %v", r.dsn("CreateIntentionSet"), err)
			return model.IntentionSet{}, repo.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateIntentionSet"), err)
		return model.IntentionSet{}, repo.ErrFailedToInsert
	}

	return model.IntentionSet{
		ID:            opt.ID,
		IntentionIDs:  opt.IntentionIDs,
		EffectiveDate: opt.EffectiveDate,
		CreatedAt:     now,
	}, nil
}

// ListIntentionSets returns all sets with their ordered member ids,
// oldest effective date first.
func (r *implRepository) ListIntentionSets(ctx context.Context) ([]model.IntentionSet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, effective_date, created_at FROM intention_sets ORDER BY effective_date ASC, created_at ASC`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListIntentionSets"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var sets []model.IntentionSet
	for rows.Next() {
		var s model.IntentionSet
		var createdAt string
		if err := rows.Scan(&s.ID, &s.EffectiveDate, &createdAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		s.CreatedAt = parseTime(createdAt)
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}

	for i := range sets {
		ids, err := r.listSetMembers(ctx, sets[i].ID)
		if err != nil {
			return nil, err
		}
		sets[i].IntentionIDs = ids
	}
	return sets, nil
}

func (r *implRepository) listSetMembers(ctx context.Context, setID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT intention_id FROM intention_set_members WHERE set_id = ? ORDER BY position ASC`, setID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("listSetMembers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, repo.ErrFailedToList
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return ids, nil
}
