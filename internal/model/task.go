package model

import (
	"strings"
	"time"
)

// Task is a single item on a user's board. CategoryID is nil for
// uncategorized tasks; DueDate is date-only and optional.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index" json:"user_id"`
	CategoryID  *uint      `gorm:"index" json:"category_id"`
	StatusID    int        `json:"status_id"`
	PriorityID  int        `json:"priority_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskInput carries the caller-supplied fields for creating or updating a
// task. When CategoryName is set it wins over CategoryID: the category is
// resolved (or created) first and its id substituted.
type TaskInput struct {
	Title        string
	Description  string
	CategoryID   *uint
	CategoryName string
	StatusID     int
	PriorityID   int
	DueDate      *time.Time
}

// TaskFilter narrows a task listing. Zero values mean "no constraint".
type TaskFilter struct {
	Query         string // case-insensitive substring over title+description
	StatusID      int
	PriorityID    int
	CategoryID    *uint
	Uncategorized bool // only tasks with no category; mutually exclusive with CategoryID
}

// Matches reports whether the task passes the filter. The local strategy
// pushes the same conditions into SQL; the remote strategy filters fetched
// rows with this.
func (t Task) Matches(f TaskFilter) bool {
	if f.StatusID != 0 && t.StatusID != f.StatusID {
		return false
	}
	if f.PriorityID != 0 && t.PriorityID != f.PriorityID {
		return false
	}
	if f.Uncategorized && t.CategoryID != nil {
		return false
	}
	if f.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *f.CategoryID) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		text := strings.ToLower(t.Title)
		if t.Description != nil {
			text += " " + strings.ToLower(*t.Description)
		}
		if !strings.Contains(text, q) {
			return false
		}
	}
	return true
}
