package service

import (
	"context"

	"github.com/MKhiriev/voy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error
	CheckPassword(ctx context.Context, password string) models.PasswordCheckResponse
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService returns profiles with protected numbers in plaintext and
// accepts plaintext numbers on update.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)
	UpdateNumber(ctx context.Context, userID string, update models.NumberUpdate) (models.Profile, error)
}

type DocumentService interface {
	ListDocuments(ctx context.Context, userID string) ([]models.Document, error)
	GetDocument(ctx context.Context, userID, documentID string) (models.Document, error)
	AddDocument(ctx context.Context, document models.NewDocument) (models.Document, error)
	UpdateDocument(ctx context.Context, update models.DocumentUpdate) (models.Document, error)
	DeleteDocument(ctx context.Context, userID, documentID string) error
	// DownloadDocument opens the stored file. The caller closes the content.
	DownloadDocument(ctx context.Context, userID, documentID string) (models.StoredObject, error)
}

type NoteService interface {
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	AddNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	ToggleImportant(ctx context.Context, userID, noteID string) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}

type CategoryService interface {
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	AddCategory(ctx context.Context, category models.Category) (models.Category, error)
	RenameCategory(ctx context.Context, userID, categoryID, label string) (models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}

type QuickAccessService interface {
	ListQuickAccess(ctx context.Context, userID string) ([]string, error)
	ToggleQuickAccess(ctx context.Context, userID, documentID string) (bool, error)
	ReplaceQuickAccess(ctx context.Context, userID string, documentIDs []string) error
}

type ChecklistService interface {
	ListChecklist(ctx context.Context, userID string) ([]models.ChecklistItem, error)
	ToggleChecklistItem(ctx context.Context, userID string, toggle models.ChecklistToggle) (models.ChecklistItem, error)
}

// AimaService manages the single AIMA process of a user. Protocol numbers
// are returned in plaintext.
type AimaService interface {
	// GetProcess returns nil when the user has not started a process.
	GetProcess(ctx context.Context, userID string) (*models.AimaProcess, error)
	UpdateProcess(ctx context.Context, update models.AimaProcessUpdate) (models.AimaProcess, error)
	SelectProcessType(ctx context.Context, userID, processType string) (models.AimaProcess, error)
	ToggleStep(ctx context.Context, userID, stepID string) (models.AimaProcess, error)
	AddImportantDate(ctx context.Context, userID string, date models.ImportantDate) (models.AimaProcess, error)
	AddProtocol(ctx context.Context, userID, protocol string) (models.AimaProcess, error)
	ClearProcess(ctx context.Context, userID string) (models.AimaProcess, error)
}

type CatalogService interface {
	ListVisaTypes(ctx context.Context) []models.VisaType
	GetVisaType(ctx context.Context, id string) (models.VisaType, error)
	ListQuestions(ctx context.Context) []string
	Ask(ctx context.Context, question string) (models.AssistantAnswer, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator issues identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
