package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/jackc/pgerrcode"
)

type quickAccessRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewQuickAccessRepository constructs a [QuickAccessRepository] over the
// "quick_access_documents" table.
func NewQuickAccessRepository(db *DB, logger *logger.Logger) QuickAccessRepository {
	logger.Debug().Msg("creating quick access repository")
	return &quickAccessRepository{
		db:     db,
		logger: logger,
	}
}

func (r *quickAccessRepository) ListQuickAccess(ctx context.Context, userID string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuickAccessQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*quickAccessRepository.ListQuickAccess").Str("user_id", userID).Msg("failed to list quick access")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ids = append(ids, id)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ids, nil
}

// ToggleQuickAccess removes the pin when it exists and creates it otherwise,
// inside one transaction.
func (r *quickAccessRepository) ToggleQuickAccess(ctx context.Context, userID, documentID string) (bool, error) {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteQuickAccessQuery(userID, documentID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := buildInsertQuickAccessQuery(userID, documentID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var pinned bool
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		if affected, _ := result.RowsAffected(); affected > 0 {
			pinned = false
			return nil
		}

		if _, execErr = tx.ExecContext(ctx, insertQuery, insertArgs...); execErr != nil {
			return r.insertError(execErr)
		}
		pinned = true
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*quickAccessRepository.ToggleQuickAccess").Str("document_id", documentID).Msg("failed to toggle quick access")
		return false, err
	}

	return pinned, nil
}

// ReplaceQuickAccess swaps the whole pinned set in one transaction.
func (r *quickAccessRepository) ReplaceQuickAccess(ctx context.Context, userID string, documentIDs []string) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteQuickAccessQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var insertQuery string
	var insertArgs []any
	if len(documentIDs) > 0 {
		insertQuery, insertArgs, err = buildInsertQuickAccessQuery(userID, documentIDs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, execErr := tx.ExecContext(ctx, deleteQuery, deleteArgs...); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		if insertQuery == "" {
			return nil
		}
		if _, execErr := tx.ExecContext(ctx, insertQuery, insertArgs...); execErr != nil {
			return r.insertError(execErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*quickAccessRepository.ReplaceQuickAccess").Str("user_id", userID).Msg("failed to replace quick access")
		return err
	}

	return nil
}

func (r *quickAccessRepository) insertError(err error) error {
	if postgresError(err) == pgerrcode.ForeignKeyViolation {
		return ErrDocumentNotFound
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
