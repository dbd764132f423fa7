package models

import "time"

// Category is a user-defined document category.
type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Label     string    `json:"label"`
	Icon      *string   `json:"icon,omitempty"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuickAccess lists the documents pinned to the home screen.
type QuickAccess struct {
	DocumentIDs []string `json:"document_ids"`
}
