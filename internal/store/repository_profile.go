package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/models"
)

type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] over the "profiles" table.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *profileRepository) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetProfileQuery(userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetProfile").Str("user_id", userID).Msg("error reading profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}

// UpdateProfile writes the non-nil fields of update and returns the stored row.
// An empty string clears a nullable text column.
func (r *profileRepository) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(update)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Str("user_id", update.UserID).Msg("error updating profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return profile, nil
}
