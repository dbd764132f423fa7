package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/models"
)

type aimaRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAimaRepository constructs an [AimaRepository] over the "aima_processes"
// table. List columns are stored as JSONB.
func NewAimaRepository(db *DB, logger *logger.Logger) AimaRepository {
	logger.Debug().Msg("creating aima repository")
	return &aimaRepository{
		db:     db,
		logger: logger,
	}
}

func (r *aimaRepository) GetAimaProcess(ctx context.Context, userID string) (models.AimaProcess, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAimaProcessQuery(userID)
	if err != nil {
		return models.AimaProcess{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	process, err := scanAimaProcess(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.AimaProcess{}, ErrAimaProcessNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*aimaRepository.GetAimaProcess").Str("user_id", userID).Msg("failed to read aima process")
		return models.AimaProcess{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return process, nil
}

func (r *aimaRepository) SaveAimaProcess(ctx context.Context, process models.AimaProcess) (models.AimaProcess, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertAimaProcessQuery(process)
	if err != nil {
		return models.AimaProcess{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanAimaProcess(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*aimaRepository.SaveAimaProcess").Str("user_id", process.UserID).Msg("failed to save aima process")
		return models.AimaProcess{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}
