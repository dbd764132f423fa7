package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/models"
)

type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] over the "notes" table.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// ListNotes returns the user's notes, important ones first and newest first
// within each group.
func (r *noteRepository) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMany(ctx, "ListNotes", query, args)
}

func (r *noteRepository) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	query, args, err := buildGetNoteQuery(userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "GetNote", ErrExecutingQuery, query, args)
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	query, args, err := buildCreateNoteQuery(note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "CreateNote", ErrExecutingStatement, query, args)
}

// UpdateNote writes the non-nil fields of update. Setting a reminder date
// re-arms the reminder.
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	query, args, err := buildUpdateNoteQuery(update)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "UpdateNote", ErrExecutingStatement, query, args)
}

// ToggleNoteImportant flips is_important in place.
func (r *noteRepository) ToggleNoteImportant(ctx context.Context, userID, noteID string) (models.Note, error) {
	query, args, err := buildToggleNoteImportantQuery(userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "ToggleNoteImportant", ErrExecutingStatement, query, args)
}

func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(userID, noteID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Str("note_id", noteID).Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// ClaimDueReminders stamps reminded_at on at most limit due notes and returns
// them. Rows locked by a concurrent claim are skipped, so two workers never
// deliver the same reminder.
func (r *noteRepository) ClaimDueReminders(ctx context.Context, now time.Time, limit uint64) ([]models.Note, error) {
	query, args, err := buildClaimDueRemindersQuery(now, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMany(ctx, "ClaimDueReminders", query, args)
}

func (r *noteRepository) queryOne(ctx context.Context, fn string, failure error, query string, args []any) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteRepository."+fn).Msg("note query failed")
		return models.Note{}, fmt.Errorf("%w: %w", failure, err)
	}

	return note, nil
}

func (r *noteRepository) queryMany(ctx context.Context, fn string, query string, args []any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository."+fn).Msg("failed to execute notes query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*noteRepository."+fn).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}
