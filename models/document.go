package models

import (
	"io"
	"time"
)

// Document is a user document record. The file itself, when present, lives
// in the file storage under ObjectKey.
type Document struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	FileURL   *string   `json:"file_url"`
	FileType  *string   `json:"file_type"`
	ObjectKey *string   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasFile reports whether an uploaded file is attached to the document.
func (d Document) HasFile() bool {
	return d.ObjectKey != nil && *d.ObjectKey != ""
}

// DocumentFile is an uploaded file on its way to the file storage.
type DocumentFile struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// NewDocument is the input of document creation.
type NewDocument struct {
	UserID   string
	Name     string
	Category string
	File     *DocumentFile
}

// DocumentUpdate renames or re-categorizes a document. Nil fields are kept.
type DocumentUpdate struct {
	ID       string  `json:"-"`
	UserID   string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
}

// StoredObject is a file read back from the file storage.
type StoredObject struct {
	Content     io.ReadCloser
	ContentType string
	Size        int64
}
