package model

import "time"

// Category groups a user's tasks. Names are unique per owner,
// case-insensitively; the uniqueness check lives in the repository.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_owner_category,unique" json:"user_id"`
	Name      string    `gorm:"index:idx_owner_category,unique" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
