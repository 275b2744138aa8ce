package assets

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"inkwell/internal/domain"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("create disk store: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, logger)
}

func TestUploadValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{name: "jpg accepted", filename: "photo.jpg", size: 10},
		{name: "uppercase extension accepted", filename: "photo.PNG", size: 10},
		{name: "webp accepted", filename: "img.webp", size: 10},
		{name: "pdf rejected", filename: "doc.pdf", size: 10, wantErr: true},
		{name: "no extension rejected", filename: "mystery", size: 10, wantErr: true},
		{name: "empty file rejected", filename: "empty.png", size: 0, wantErr: true},
		{name: "oversized rejected", filename: "huge.png", size: 6 << 20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.NewReader(strings.Repeat("x", 10))
			url, err := svc.Upload(ctx, tt.filename, tt.size, body)

			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("Upload() error = %v, want ErrValidation", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Upload failed: %v", err)
			}
			if !strings.HasPrefix(url, "/assets/") {
				t.Errorf("url = %q, want /assets/ prefix", url)
			}
		})
	}
}

func TestUploadThenOpenRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	payload := "fake image bytes"
	url, err := svc.Upload(ctx, "pic.gif", int64(len(payload)), strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	name := strings.TrimPrefix(url, "/assets/")
	reader, contentType, err := svc.Open(ctx, name)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()

	if contentType != "image/gif" {
		t.Errorf("content type = %q, want image/gif", contentType)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read asset: %v", err)
	}
	if string(data) != payload {
		t.Errorf("asset bytes = %q, want %q", data, payload)
	}
}

func TestOpenRejectsSuspiciousNames(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		asset string
	}{
		{name: "path traversal", asset: "../secrets.png"},
		{name: "nested path", asset: "sub/dir.png"},
		{name: "wrong extension", asset: "object.exe"},
		{name: "absent object", asset: "11111111-2222-3333-4444-555555555555.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Open(ctx, tt.asset); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("Open(%q) error = %v, want ErrNotFound", tt.asset, err)
			}
		})
	}
}
