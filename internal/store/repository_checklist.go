package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/models"
)

type checklistRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewChecklistRepository constructs a [ChecklistRepository] over the
// "user_documents" table.
func NewChecklistRepository(db *DB, logger *logger.Logger) ChecklistRepository {
	logger.Debug().Msg("creating checklist repository")
	return &checklistRepository{
		db:     db,
		logger: logger,
	}
}

func (r *checklistRepository) ListChecklist(ctx context.Context, userID string) ([]models.ChecklistItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListChecklistQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*checklistRepository.ListChecklist").Str("user_id", userID).Msg("failed to list checklist")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.ChecklistItem, 0)
	for rows.Next() {
		item, scanErr := scanChecklistItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// SetChecklistItem upserts the row keyed by (user_id, document_name). The id
// of item is used only when the row is created.
func (r *checklistRepository) SetChecklistItem(ctx context.Context, item models.ChecklistItem) (models.ChecklistItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertChecklistItemQuery(item)
	if err != nil {
		return models.ChecklistItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanChecklistItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*checklistRepository.SetChecklistItem").Str("user_id", item.UserID).Msg("failed to upsert checklist item")
		return models.ChecklistItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}
