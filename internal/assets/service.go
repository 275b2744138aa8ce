package assets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"inkwell/internal/config"
	"inkwell/internal/domain"
)

// imageTypes maps the accepted upload extensions to their content types.
var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Service validates uploads and maps them to generated object names.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new asset service
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Upload validates the file and stores it under a fresh unique name.
// Returns the relative URL clients embed in markdown.
func (s *Service) Upload(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := imageTypes[ext]
	if !ok {
		return "", &domain.ValidationError{Message: "unsupported file type, expected jpg, jpeg, png, gif or webp"}
	}

	if size <= 0 {
		return "", &domain.ValidationError{Message: "file is empty"}
	}
	if size > config.MaxUploadBytes {
		return "", &domain.ValidationError{Message: "file exceeds the 5 MB limit"}
	}

	name := uuid.NewString() + ext
	if err := s.store.Put(ctx, name, contentType, r, size); err != nil {
		return "", err
	}

	s.logger.Info("asset stored", "name", name, "size", size)

	return "/assets/" + name, nil
}

// Open returns the named asset and its content type. Names that could not
// have been generated by Upload resolve to NotFound without touching the
// store.
func (s *Service) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if name != filepath.Base(name) || strings.Contains(name, "..") {
		return nil, "", fmt.Errorf("asset %s: %w", name, domain.ErrNotFound)
	}

	contentType, ok := imageTypes[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return nil, "", fmt.Errorf("asset %s: %w", name, domain.ErrNotFound)
	}

	r, err := s.store.Open(ctx, name)
	if err != nil {
		return nil, "", err
	}

	return r, contentType, nil
}
