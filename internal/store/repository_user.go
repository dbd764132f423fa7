package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	ids    utils.UUIDGenerator
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and its default profile (language "pt",
// theme "light", display name from registration) in one transaction, and
// returns the user with CreatedAt filled in.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	userQuery, userArgs, err := buildCreateUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	profileQuery, profileArgs, err := buildCreateProfileQuery(r.ids.Generate(), user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		// create user in db
		if scanErr := tx.QueryRowContext(ctx, userQuery, userArgs...).Scan(&user.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
			if postgresError(scanErr) == pgerrcode.UniqueViolation {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}

		// create empty profile for the user
		if _, execErr := tx.ExecContext(ctx, profileQuery, profileArgs...); execErr != nil {
			log.Err(execErr).Str("func", "*userRepository.CreateUser").Msg("error inserting profile")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the account registered with email.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "email", email)
}

// FindUserByID retrieves the account with the given UUID.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "user_id", userID)
}

func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(column, value)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// find user
	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str("by", column).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdatePasswordHash replaces the stored password hash.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordHashQuery(userID, passwordHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePasswordHash").Str("user_id", userID).Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
