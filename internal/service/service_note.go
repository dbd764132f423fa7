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

type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.Validator
	idGenerator    IDGenerator
	logger         *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, validator validators.Validator, idGenerator IDGenerator, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validator,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

// ListNotes returns important notes first, newest first within each group.
func (s *noteService) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (s *noteService) AddNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := s.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("invalid note: %w", err)
	}

	note.ID = s.idGenerator.Generate()
	note.Title = strings.TrimSpace(note.Title)
	note.RemindedAt = nil

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", note.UserID).Msg("failed to create note")
		return models.Note{}, fmt.Errorf("failed to create note: %w", err)
	}
	return created, nil
}

func (s *noteService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Note{}, fmt.Errorf("invalid note update: %w", err)
	}

	update.Title = trimmed(update.Title)

	note, err := s.noteRepository.UpdateNote(ctx, update)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to update note: %w", err)
	}
	return note, nil
}

func (s *noteService) ToggleImportant(ctx context.Context, userID, noteID string) (models.Note, error) {
	note, err := s.noteRepository.ToggleNoteImportant(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to toggle note importance: %w", err)
	}
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := s.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
