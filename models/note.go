package models

import "time"

// Note is a free-form user note, optionally with a reminder.
type Note struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Title        string     `json:"title"`
	Content      *string    `json:"content"`
	Category     *string    `json:"category"`
	IsImportant  bool       `json:"is_important"`
	ReminderDate *time.Time `json:"reminder_date"`
	RemindedAt   *time.Time `json:"reminded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NoteUpdate is a partial note update. Only non-nil fields are written.
type NoteUpdate struct {
	ID           string     `json:"-"`
	UserID       string     `json:"-"`
	Title        *string    `json:"title,omitempty"`
	Content      *string    `json:"content,omitempty"`
	Category     *string    `json:"category,omitempty"`
	IsImportant  *bool      `json:"is_important,omitempty"`
	ReminderDate *time.Time `json:"reminder_date,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Category == nil && u.IsImportant == nil && u.ReminderDate == nil
}
