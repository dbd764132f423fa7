package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/models"
)

// localFileStorage keeps document files under a directory on the server's
// filesystem, one sub-directory per user.
type localFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewLocalFileStorage creates dir when missing and returns a [FileStorage]
// rooted at it.
func NewLocalFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve files dir: %w", err)
	}
	if err = os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create files dir: %w", err)
	}

	logger.Debug().Str("dir", root).Msg("creating local file storage")
	return &localFileStorage{root: root, logger: logger}, nil
}

// PutObject writes content to a temporary file first and renames it into
// place, so a failed upload never leaves a truncated object behind.
func (s *localFileStorage) PutObject(ctx context.Context, key string, content io.Reader, _ int64, _ string) error {
	log := logger.FromContext(ctx)

	target, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp object: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, contextReader{ctx: ctx, r: content}); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "*localFileStorage.PutObject").Str("key", key).Msg("failed to write object")
		return fmt.Errorf("write object: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close object: %w", err)
	}

	if err = os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("store object: %w", err)
	}

	return nil
}

func (s *localFileStorage) GetObject(_ context.Context, key string) (models.StoredObject, error) {
	target, err := s.resolve(key)
	if err != nil {
		return models.StoredObject{}, err
	}

	f, err := os.Open(target)
	if errors.Is(err, fs.ErrNotExist) {
		return models.StoredObject{}, ErrObjectNotFound
	}
	if err != nil {
		return models.StoredObject{}, fmt.Errorf("open object: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return models.StoredObject{}, fmt.Errorf("stat object: %w", err)
	}

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return models.StoredObject{
		Content:     f,
		ContentType: contentType,
		Size:        info.Size(),
	}, nil
}

// RemoveObject deletes the object. A missing object is not an error.
func (s *localFileStorage) RemoveObject(_ context.Context, key string) error {
	target, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err = os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}

// resolve maps an object key to a path inside root.
func (s *localFileStorage) resolve(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidObjectKey
	}
	cleaned := path.Clean(key)
	if cleaned != key || cleaned == "." || strings.HasPrefix(cleaned, "../") || cleaned == ".." {
		return "", ErrInvalidObjectKey
	}

	return filepath.Join(s.root, filepath.FromSlash(cleaned)), nil
}

// contextReader stops a copy once the request context is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
