package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voy/internal/catalog"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/models"
)

type catalogService struct {
	catalog *catalog.Catalog
	logger  *logger.Logger
}

func NewCatalogService(catalog *catalog.Catalog, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

func (s *catalogService) ListVisaTypes(ctx context.Context) []models.VisaType {
	return s.catalog.VisaTypes()
}

func (s *catalogService) GetVisaType(ctx context.Context, id string) (models.VisaType, error) {
	visa, err := s.catalog.VisaType(id)
	if err != nil {
		return models.VisaType{}, fmt.Errorf("failed to get visa type %q: %w", id, err)
	}
	return visa, nil
}

func (s *catalogService) ListQuestions(ctx context.Context) []string {
	return s.catalog.Questions()
}

// Ask answers one of the scripted questions and suggests a few others.
func (s *catalogService) Ask(ctx context.Context, question string) (models.AssistantAnswer, error) {
	answer, err := s.catalog.Ask(question)
	if err != nil {
		logger.FromContext(ctx).Debug().Str("question", question).Msg("unknown assistant question")
		return models.AssistantAnswer{}, fmt.Errorf("failed to answer: %w", err)
	}
	return answer, nil
}
