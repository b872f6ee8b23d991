package domain

import "time"

// Profile is a user-owned communication board ("communicator").
type Profile struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id"`
	DisplayName string    `json:"display_name" db:"display_name"`
	Description *string   `json:"description" db:"description"`
	LayoutType  string    `json:"layout_type" db:"layout_type"`
	Language    string    `json:"language" db:"language"`
	IsPublic    bool      `json:"is_public" db:"is_public"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (p *Profile) IsOwnedBy(userID int) bool {
	return p.UserID == userID
}

// Readable reports whether userID may view this profile's contents.
func (p *Profile) Readable(userID int) bool {
	return p.IsOwnedBy(userID) || p.IsPublic
}
