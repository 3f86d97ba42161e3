package repository

import (
	"context"
	"database/sql"
)

// BannerRepo handles homepage banners.
type BannerRepo struct {
	db *sql.DB
}

func NewBannerRepo(db *sql.DB) *BannerRepo { return &BannerRepo{db: db} }

const bannerColumns = `id, banner, is_active, created_at, updated_at`

func (r *BannerRepo) Insert(ctx context.Context, b HomepageBanner) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO homepage_banners(id, banner, is_active, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	`, b.ID, b.Banner, b.IsActive, b.CreatedAt, b.UpdatedAt)
	return err
}

func (r *BannerRepo) Get(ctx context.Context, id string) (*HomepageBanner, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bannerColumns+` FROM homepage_banners WHERE id = ?`, id)
	b, err := scanBanner(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Update overwrites the mutable columns of an existing banner. It reports
// whether a row matched.
func (r *BannerRepo) Update(ctx context.Context, b HomepageBanner) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
	UPDATE homepage_banners SET banner = ?, is_active = ?, updated_at = ?
	WHERE id = ?
	`, b.Banner, b.IsActive, b.UpdatedAt, b.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns every banner, newest first.
func (r *BannerRepo) List(ctx context.Context) ([]HomepageBanner, error) {
	return r.query(ctx, `SELECT `+bannerColumns+` FROM homepage_banners ORDER BY created_at DESC, id DESC`)
}

// ListActive returns active banners that still carry an image, oldest first.
func (r *BannerRepo) ListActive(ctx context.Context) ([]HomepageBanner, error) {
	return r.query(ctx, `
	SELECT `+bannerColumns+` FROM homepage_banners
	WHERE is_active = 1 AND banner IS NOT NULL AND banner <> ''
	ORDER BY created_at, id`)
}

func (r *BannerRepo) query(ctx context.Context, q string, args ...any) ([]HomepageBanner, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []HomepageBanner
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBanner(s scanner) (HomepageBanner, error) {
	var b HomepageBanner
	err := s.Scan(&b.ID, &b.Banner, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}
