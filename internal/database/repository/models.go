package repository

import "time"

// ContactSettings is the singleton contact_settings row.
type ContactSettings struct {
	EnAddress    string    `json:"en_address"`
	MobileNumber string    `json:"mobileNumber"`
	Email        string    `json:"email"`
	Fax          string    `json:"fax"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Feedback represents a feedback row.
type Feedback struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HomepageBanner represents a homepage_banners row. Banner is the stored
// image filename and is nil once cleared.
type HomepageBanner struct {
	ID        string    `json:"id"`
	Banner    *string   `json:"banner"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
