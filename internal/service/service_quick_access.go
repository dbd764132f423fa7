package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/internal/validators"
	"github.com/MKhiriev/voy/models"
)

// quickAccessService pins documents to the home screen. Only documents of the
// requesting user can be pinned.
type quickAccessService struct {
	quickAccessRepository store.QuickAccessRepository
	documentRepository    store.DocumentRepository
	validator             validators.Validator
	logger                *logger.Logger
}

func NewQuickAccessService(
	quickAccessRepository store.QuickAccessRepository,
	documentRepository store.DocumentRepository,
	validator validators.Validator,
	logger *logger.Logger,
) QuickAccessService {
	return &quickAccessService{
		quickAccessRepository: quickAccessRepository,
		documentRepository:    documentRepository,
		validator:             validator,
		logger:                logger,
	}
}

func (s *quickAccessService) ListQuickAccess(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.quickAccessRepository.ListQuickAccess(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quick access: %w", err)
	}
	return ids, nil
}

// ToggleQuickAccess pins or unpins documentID and reports whether it is
// pinned afterwards.
func (s *quickAccessService) ToggleQuickAccess(ctx context.Context, userID, documentID string) (bool, error) {
	if err := s.checkOwnership(ctx, userID, []string{documentID}); err != nil {
		return false, err
	}

	pinned, err := s.quickAccessRepository.ToggleQuickAccess(ctx, userID, documentID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle quick access: %w", err)
	}
	return pinned, nil
}

// ReplaceQuickAccess replaces the pinned set. Duplicate ids are collapsed and
// the first occurrence keeps its position.
func (s *quickAccessService) ReplaceQuickAccess(ctx context.Context, userID string, documentIDs []string) error {
	ids := unique(documentIDs)
	if len(ids) > 0 {
		if err := s.checkOwnership(ctx, userID, ids); err != nil {
			return err
		}
	}

	if err := s.quickAccessRepository.ReplaceQuickAccess(ctx, userID, ids); err != nil {
		return fmt.Errorf("failed to replace quick access: %w", err)
	}
	return nil
}

func (s *quickAccessService) checkOwnership(ctx context.Context, userID string, ids []string) error {
	if err := s.validator.Validate(ctx, models.QuickAccess{DocumentIDs: ids}); err != nil {
		return fmt.Errorf("invalid quick access: %w", err)
	}

	owned, err := s.documentRepository.CountOwnedDocuments(ctx, userID, ids)
	if err != nil {
		return fmt.Errorf("failed to check document ownership: %w", err)
	}
	if owned != len(ids) {
		logger.FromContext(ctx).Info().Str("user_id", userID).Int("requested", len(ids)).Int("owned", owned).Msg("quick access with foreign documents")
		return store.ErrDocumentNotFound
	}
	return nil
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
