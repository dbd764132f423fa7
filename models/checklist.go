package models

import "time"

// ChecklistItem records whether a document required by the user's visa has
// been gathered. DocumentName is unique per user.
type ChecklistItem struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	DocumentName string    `json:"document_name"`
	IsCompleted  bool      `json:"is_completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ChecklistToggle flips the completion of DocumentName, given its current state.
type ChecklistToggle struct {
	DocumentName  string `json:"document_name"`
	CurrentStatus bool   `json:"current_status"`
}
