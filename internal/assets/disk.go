package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"inkwell/internal/domain"
)

// DiskStore keeps assets as plain files in a single directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the directory if needed and returns the store
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create asset directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Put stores an object under name. Fails if the name is taken.
func (s *DiskStore) Put(ctx context.Context, name, contentType string, r io.Reader, size int64) error {
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create asset %s: %w", name, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write asset %s: %w", name, err)
	}

	return nil
}

// Open returns a reader over the named object, or domain.ErrNotFound
func (s *DiskStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("asset %s: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("open asset %s: %w", name, err)
	}
	return f, nil
}
