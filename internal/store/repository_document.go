package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/models"
)

type documentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] over the
// "documents" table.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// ListDocuments returns the user's documents, newest first.
func (r *documentRepository) ListDocuments(ctx context.Context, userID string) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Str("user_id", userID).Msg("failed to list documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	documents := make([]models.Document, 0)
	for rows.Next() {
		document, scanErr := scanDocument(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*documentRepository.ListDocuments").Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		documents = append(documents, document)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return documents, nil
}

func (r *documentRepository) GetDocument(ctx context.Context, userID, documentID string) (models.Document, error) {
	query, args, err := buildGetDocumentQuery(userID, documentID)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "GetDocument", ErrExecutingQuery, query, args)
}

func (r *documentRepository) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	query, args, err := buildCreateDocumentQuery(document)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "CreateDocument", ErrExecutingStatement, query, args)
}

func (r *documentRepository) UpdateDocument(ctx context.Context, update models.DocumentUpdate) (models.Document, error) {
	query, args, err := buildUpdateDocumentQuery(update)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "UpdateDocument", ErrExecutingStatement, query, args)
}

// DeleteDocument removes the document row. Quick access references go with
// it through the foreign key cascade.
func (r *documentRepository) DeleteDocument(ctx context.Context, userID, documentID string) (models.Document, error) {
	query, args, err := buildDeleteDocumentQuery(userID, documentID)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "DeleteDocument", ErrExecutingStatement, query, args)
}

func (r *documentRepository) CountOwnedDocuments(ctx context.Context, userID string, ids []string) (int, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := buildCountOwnedDocumentsQuery(userID, ids)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*documentRepository.CountOwnedDocuments").Str("user_id", userID).Msg("failed to count documents")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *documentRepository) queryOne(ctx context.Context, fn string, failure error, query string, args []any) (models.Document, error) {
	log := logger.FromContext(ctx)

	document, err := scanDocument(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*documentRepository."+fn).Msg("document query failed")
		return models.Document{}, fmt.Errorf("%w: %w", failure, err)
	}

	return document, nil
}
