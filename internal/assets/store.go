// Package assets stores uploaded images under generated names. The core
// data model never references assets; documents link to them by relative
// URL inside their markdown content.
package assets

import (
	"context"
	"io"
)

// Store is the byte storage behind uploaded assets. Implementations map
// a generated object name to bytes; naming, validation and URL shaping
// live in the Service.
type Store interface {
	// Put stores an object under name. Fails if the name is taken.
	Put(ctx context.Context, name, contentType string, r io.Reader, size int64) error

	// Open returns a reader over the named object, or domain.ErrNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
