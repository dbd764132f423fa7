package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/models"
)

type categoryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository] over the
// "custom_categories" table.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// ListCategories returns the user's categories, oldest first.
func (r *categoryRepository) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCategoriesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Str("user_id", userID).Msg("failed to list categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		category, scanErr := scanCategory(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query, args, err := buildCreateCategoryQuery(category)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "CreateCategory", query, args)
}

func (r *categoryRepository) RenameCategory(ctx context.Context, userID, categoryID, label string) (models.Category, error) {
	query, args, err := buildRenameCategoryQuery(userID, categoryID, label)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "RenameCategory", query, args)
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCategoryQuery(userID, categoryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Str("category_id", categoryID).Msg("failed to delete category")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) queryOne(ctx context.Context, fn string, query string, args []any) (models.Category, error) {
	log := logger.FromContext(ctx)

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository."+fn).Msg("category statement failed")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return category, nil
}
