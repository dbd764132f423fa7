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

type categoryService struct {
	categoryRepository store.CategoryRepository
	validator          validators.Validator
	idGenerator        IDGenerator
	logger             *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, validator validators.Validator, idGenerator IDGenerator, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		validator:          validator,
		idGenerator:        idGenerator,
		logger:             logger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	categories, err := s.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) AddCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := s.validator.Validate(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("invalid category: %w", err)
	}

	category.ID = s.idGenerator.Generate()
	category.Label = strings.TrimSpace(category.Label)

	created, err := s.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", category.UserID).Msg("failed to create category")
		return models.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

func (s *categoryService) RenameCategory(ctx context.Context, userID, categoryID, label string) (models.Category, error) {
	if err := s.validator.Validate(ctx, models.Category{Label: label}); err != nil {
		return models.Category{}, fmt.Errorf("invalid category: %w", err)
	}

	category, err := s.categoryRepository.RenameCategory(ctx, userID, categoryID, strings.TrimSpace(label))
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to rename category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if err := s.categoryRepository.DeleteCategory(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
