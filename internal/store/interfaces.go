package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/voy/models"
)

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts the account together with its default profile in
	// one transaction.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
}

// ProfileRepository reads and writes the per-user profile row. Protected
// numbers pass through it as ciphertext.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)
}

// DocumentRepository persists document metadata.
type DocumentRepository interface {
	ListDocuments(ctx context.Context, userID string) ([]models.Document, error)
	GetDocument(ctx context.Context, userID, documentID string) (models.Document, error)
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)
	UpdateDocument(ctx context.Context, update models.DocumentUpdate) (models.Document, error)
	// DeleteDocument removes the row and returns it so that the caller can
	// clean up the stored object.
	DeleteDocument(ctx context.Context, userID, documentID string) (models.Document, error)
	// CountOwnedDocuments reports how many of ids belong to the user.
	CountOwnedDocuments(ctx context.Context, userID string, ids []string) (int, error)
}

// NoteRepository persists notes.
type NoteRepository interface {
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	GetNote(ctx context.Context, userID, noteID string) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	ToggleNoteImportant(ctx context.Context, userID, noteID string) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
	// ClaimDueReminders marks every note whose reminder is due at now and not
	// yet delivered as reminded, and returns them.
	ClaimDueReminders(ctx context.Context, now time.Time, limit uint64) ([]models.Note, error)
}

// CategoryRepository persists custom document categories.
type CategoryRepository interface {
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	RenameCategory(ctx context.Context, userID, categoryID, label string) (models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}

// QuickAccessRepository persists the documents pinned to the home screen.
type QuickAccessRepository interface {
	ListQuickAccess(ctx context.Context, userID string) ([]string, error)
	// ToggleQuickAccess pins the document when absent and unpins it when
	// present. It reports whether the document is pinned afterwards.
	ToggleQuickAccess(ctx context.Context, userID, documentID string) (bool, error)
	ReplaceQuickAccess(ctx context.Context, userID string, documentIDs []string) error
}

// ChecklistRepository persists the visa document checklist.
type ChecklistRepository interface {
	ListChecklist(ctx context.Context, userID string) ([]models.ChecklistItem, error)
	SetChecklistItem(ctx context.Context, item models.ChecklistItem) (models.ChecklistItem, error)
}

// AimaRepository persists the single AIMA process of a user.
type AimaRepository interface {
	GetAimaProcess(ctx context.Context, userID string) (models.AimaProcess, error)
	// SaveAimaProcess inserts the row on first write and updates it after.
	SaveAimaProcess(ctx context.Context, process models.AimaProcess) (models.AimaProcess, error)
}

// FileStorage keeps uploaded document files.
type FileStorage interface {
	PutObject(ctx context.Context, key string, content io.Reader, size int64, contentType string) error
	GetObject(ctx context.Context, key string) (models.StoredObject, error)
	RemoveObject(ctx context.Context, key string) error
}

// LoginAttempts counts failed logins per email.
type LoginAttempts interface {
	// Register records a login attempt and returns the number of attempts in
	// the current window.
	Register(ctx context.Context, email string) (int64, error)
	Reset(ctx context.Context, email string) error
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
