package repository

import (
	"context"
	"database/sql"
)

// ContactRepo handles the contact settings row.
type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// Get returns the settings row, or nil when it has not been seeded.
func (r *ContactRepo) Get(ctx context.Context) (*ContactSettings, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT en_address, mobile_number, email, fax, updated_at
	FROM contact_settings WHERE id = 1`)
	var c ContactSettings
	if err := row.Scan(&c.EnAddress, &c.MobileNumber, &c.Email, &c.Fax, &c.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Update writes every field of the settings row, creating it if needed.
func (r *ContactRepo) Update(ctx context.Context, c ContactSettings) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO contact_settings(id, en_address, mobile_number, email, fax, updated_at)
	VALUES (1, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 en_address=excluded.en_address,
	 mobile_number=excluded.mobile_number,
	 email=excluded.email,
	 fax=excluded.fax,
	 updated_at=excluded.updated_at;
	`, c.EnAddress, c.MobileNumber, c.Email, c.Fax, c.UpdatedAt)
	return err
}
