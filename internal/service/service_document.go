package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/internal/validators"
	"github.com/MKhiriev/voy/models"
)

const (
	defaultFileExtension = "pdf"
	defaultContentType   = "application/octet-stream"
)

// contentTypes resolves the content type of an upload from its extension
// when the client did not send a usable one.
var contentTypes = map[string]string{
	"pdf":  "application/pdf",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"webp": "image/webp",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

type documentService struct {
	documentRepository store.DocumentRepository
	fileStorage        store.FileStorage
	validator          validators.Validator
	idGenerator        IDGenerator
	now                func() time.Time
	logger             *logger.Logger
}

func NewDocumentService(
	documentRepository store.DocumentRepository,
	fileStorage store.FileStorage,
	validator validators.Validator,
	idGenerator IDGenerator,
	logger *logger.Logger,
) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		fileStorage:        fileStorage,
		validator:          validator,
		idGenerator:        idGenerator,
		now:                time.Now,
		logger:             logger,
	}
}

func (s *documentService) ListDocuments(ctx context.Context, userID string) ([]models.Document, error) {
	documents, err := s.documentRepository.ListDocuments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return documents, nil
}

func (s *documentService) GetDocument(ctx context.Context, userID, documentID string) (models.Document, error) {
	document, err := s.documentRepository.GetDocument(ctx, userID, documentID)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to get document: %w", err)
	}
	return document, nil
}

// AddDocument stores the attached file first and then inserts the row. When
// the insert fails the stored file is removed again.
func (s *documentService) AddDocument(ctx context.Context, newDocument models.NewDocument) (models.Document, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, newDocument); err != nil {
		return models.Document{}, fmt.Errorf("invalid document: %w", err)
	}

	document := models.Document{
		ID:       s.idGenerator.Generate(),
		UserID:   newDocument.UserID,
		Name:     strings.TrimSpace(newDocument.Name),
		Category: strings.TrimSpace(newDocument.Category),
	}

	if file := newDocument.File; file != nil {
		ext := fileExtension(file.FileName)
		key := fmt.Sprintf("%s/documento_%d.%s", newDocument.UserID, s.now().UnixMilli(), ext)
		contentType := resolveContentType(file.ContentType, ext)

		if err := s.fileStorage.PutObject(ctx, key, file.Content, file.Size, contentType); err != nil {
			log.Err(err).Str("user_id", newDocument.UserID).Msg("failed to upload document file")
			return models.Document{}, fmt.Errorf("failed to upload document file: %w", err)
		}

		fileURL := documentFileURL(document.ID)
		document.ObjectKey = &key
		document.FileType = &contentType
		document.FileURL = &fileURL
	}

	created, err := s.documentRepository.CreateDocument(ctx, document)
	if err != nil {
		log.Err(err).Str("user_id", newDocument.UserID).Msg("failed to create document")
		if document.HasFile() {
			s.removeObject(ctx, *document.ObjectKey)
		}
		return models.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	log.Info().Str("user_id", created.UserID).Str("document_id", created.ID).Bool("has_file", created.HasFile()).Msg("document created")
	return created, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, update models.DocumentUpdate) (models.Document, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Document{}, fmt.Errorf("invalid document update: %w", err)
	}

	update.Name = trimmed(update.Name)
	update.Category = trimmed(update.Category)

	document, err := s.documentRepository.UpdateDocument(ctx, update)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to update document: %w", err)
	}
	return document, nil
}

// DeleteDocument removes the row and then its file. Quick-access references
// go with the row.
func (s *documentService) DeleteDocument(ctx context.Context, userID, documentID string) error {
	document, err := s.documentRepository.DeleteDocument(ctx, userID, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if document.HasFile() {
		s.removeObject(ctx, *document.ObjectKey)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Str("document_id", documentID).Msg("document deleted")
	return nil
}

func (s *documentService) DownloadDocument(ctx context.Context, userID, documentID string) (models.StoredObject, error) {
	document, err := s.documentRepository.GetDocument(ctx, userID, documentID)
	if err != nil {
		return models.StoredObject{}, fmt.Errorf("failed to get document: %w", err)
	}
	if !document.HasFile() {
		return models.StoredObject{}, ErrDocumentHasNoFile
	}

	object, err := s.fileStorage.GetObject(ctx, *document.ObjectKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("document_id", documentID).Msg("failed to read document file")
		return models.StoredObject{}, fmt.Errorf("failed to read document file: %w", err)
	}
	return object, nil
}

// removeObject deletes a stored file. Failures only leave an orphan object
// behind, so they are logged and not returned.
func (s *documentService) removeObject(ctx context.Context, key string) {
	if err := s.fileStorage.RemoveObject(ctx, key); err != nil {
		logger.FromContext(ctx).Err(err).Str("object_key", key).Msg("failed to remove document file")
	}
}

// fileExtension returns the lower-cased extension of fileName, or pdf.
func fileExtension(fileName string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(fileName), "."))
	if ext == "" {
		return defaultFileExtension
	}
	return ext
}

func resolveContentType(contentType, ext string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType != "" && contentType != defaultContentType {
		return contentType
	}
	if known, ok := contentTypes[ext]; ok {
		return known
	}
	return defaultContentType
}

func documentFileURL(documentID string) string {
	return "/api/documents/" + documentID + "/file"
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
