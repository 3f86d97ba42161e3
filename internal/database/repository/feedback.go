package repository

import (
	"context"
	"database/sql"
)

// FeedbackRepo handles feedback submissions.
type FeedbackRepo struct {
	db *sql.DB
}

func NewFeedbackRepo(db *sql.DB) *FeedbackRepo { return &FeedbackRepo{db: db} }

func (r *FeedbackRepo) Insert(ctx context.Context, f Feedback) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO feedback(id, name, email, mobile, message, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`, f.ID, f.Name, f.Email, f.Mobile, f.Message, f.CreatedAt, f.UpdatedAt)
	return err
}

// List returns all feedback, newest first.
func (r *FeedbackRepo) List(ctx context.Context) ([]Feedback, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, email, mobile, message, created_at, updated_at
	FROM feedback ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Mobile, &f.Message, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FeedbackRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&n)
	return n, err
}
