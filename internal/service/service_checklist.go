package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/internal/validators"
	"github.com/MKhiriev/voy/models"
)

type checklistService struct {
	checklistRepository store.ChecklistRepository
	validator           validators.Validator
	idGenerator         IDGenerator
	logger              *logger.Logger
}

func NewChecklistService(checklistRepository store.ChecklistRepository, validator validators.Validator, idGenerator IDGenerator, logger *logger.Logger) ChecklistService {
	return &checklistService{
		checklistRepository: checklistRepository,
		validator:           validator,
		idGenerator:         idGenerator,
		logger:              logger,
	}
}

func (s *checklistService) ListChecklist(ctx context.Context, userID string) ([]models.ChecklistItem, error) {
	items, err := s.checklistRepository.ListChecklist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist: %w", err)
	}
	return items, nil
}

// ToggleChecklistItem stores the opposite of the state the client saw. The
// row is created on the first toggle of a document name.
func (s *checklistService) ToggleChecklistItem(ctx context.Context, userID string, toggle models.ChecklistToggle) (models.ChecklistItem, error) {
	if err := s.validator.Validate(ctx, toggle); err != nil {
		return models.ChecklistItem{}, fmt.Errorf("invalid checklist toggle: %w", err)
	}

	item, err := s.checklistRepository.SetChecklistItem(ctx, models.ChecklistItem{
		ID:           s.idGenerator.Generate(),
		UserID:       userID,
		DocumentName: strings.TrimSpace(toggle.DocumentName),
		IsCompleted:  !toggle.CurrentStatus,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("failed to toggle checklist item")
		return models.ChecklistItem{}, fmt.Errorf("failed to toggle checklist item: %w", err)
	}
	return item, nil
}
