package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/logger"
)

// Storages bundles every persistence component the services depend on.
type Storages struct {
	UserRepository        UserRepository
	ProfileRepository     ProfileRepository
	DocumentRepository    DocumentRepository
	NoteRepository        NoteRepository
	CategoryRepository    CategoryRepository
	QuickAccessRepository QuickAccessRepository
	ChecklistRepository   ChecklistRepository
	AimaRepository        AimaRepository
	FileStorage           FileStorage
	LoginAttempts         LoginAttempts

	closers []io.Closer
}

// NewStorages connects to Postgres, applies migrations, and opens the file
// storage and the login limiter selected by cfg.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	storages := NewRepositories(db, log)
	storages.closers = append(storages.closers, db)

	if err = db.Migrate(); err != nil {
		storages.Close()
		return nil, err
	}

	storages.FileStorage, err = NewFileStorage(ctx, cfg.Storage.Files, log)
	if err != nil {
		storages.Close()
		return nil, err
	}

	storages.LoginAttempts = NewNopLoginAttempts()
	if cfg.Limiter.RedisAddress != "" {
		limiter, client, limiterErr := NewRedisLoginAttempts(ctx, cfg.Limiter, log)
		if limiterErr != nil {
			storages.Close()
			return nil, limiterErr
		}
		storages.LoginAttempts = limiter
		storages.closers = append(storages.closers, client)
	}

	return storages, nil
}

// NewRepositories builds the Postgres repositories on top of an open DB.
func NewRepositories(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		ProfileRepository:     NewProfileRepository(db, log),
		DocumentRepository:    NewDocumentRepository(db, log),
		NoteRepository:        NewNoteRepository(db, log),
		CategoryRepository:    NewCategoryRepository(db, log),
		QuickAccessRepository: NewQuickAccessRepository(db, log),
		ChecklistRepository:   NewChecklistRepository(db, log),
		AimaRepository:        NewAimaRepository(db, log),
	}
}

// NewFileStorage opens the backend named by cfg.Backend.
func NewFileStorage(ctx context.Context, cfg config.Files, log *logger.Logger) (FileStorage, error) {
	switch cfg.Backend {
	case config.FilesBackendLocal:
		return NewLocalFileStorage(cfg.Dir, log)
	case config.FilesBackendMinIO:
		return NewMinIOFileStorage(ctx, cfg.MinIO, log)
	default:
		return nil, fmt.Errorf("unknown files backend %q", cfg.Backend)
	}
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
