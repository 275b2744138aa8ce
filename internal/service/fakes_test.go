package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/markdown"
)

// fakeDocumentRepository is an in-memory DocumentRepository with the same
// ordering semantics as the postgres implementation: created_at descending,
// id ascending on ties.
type fakeDocumentRepository struct {
	docs map[string]*models.Document
}

func newFakeDocumentRepository() *fakeDocumentRepository {
	return &fakeDocumentRepository{docs: map[string]*models.Document{}}
}

func (f *fakeDocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	doc.ID = uuid.NewString()
	stored := *doc
	f.docs[doc.ID] = &stored
	return nil
}

func (f *fakeDocumentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	out := *doc
	return &out, nil
}

func (f *fakeDocumentRepository) GetByShareID(ctx context.Context, shareID string) (*models.Document, error) {
	for _, doc := range f.docs {
		if doc.ShareID == shareID {
			out := *doc
			return &out, nil
		}
	}
	return nil, fmt.Errorf("document %s: %w", shareID, domain.ErrNotFound)
}

func (f *fakeDocumentRepository) List(ctx context.Context, filter models.FolderFilter, offset, limit int) ([]models.DocumentListItem, int, error) {
	var matched []*models.Document
	for _, doc := range f.docs {
		switch filter.Scope {
		case models.FilterRoot:
			if doc.FolderID != nil {
				continue
			}
		case models.FilterFolder:
			if doc.FolderID == nil || *doc.FolderID != filter.FolderID {
				continue
			}
		}
		matched = append(matched, doc)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	var items []models.DocumentListItem
	for _, doc := range matched[offset:end] {
		items = append(items, models.DocumentListItem{
			ID:        doc.ID,
			Title:     doc.Title,
			Preview:   markdown.Preview(doc.Content),
			FolderID:  doc.FolderID,
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		})
	}

	return items, total, nil
}

func (f *fakeDocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	if _, ok := f.docs[doc.ID]; !ok {
		return fmt.Errorf("document %s: %w", doc.ID, domain.ErrNotFound)
	}
	stored := *doc
	f.docs[doc.ID] = &stored
	return nil
}

func (f *fakeDocumentRepository) Delete(ctx context.Context, id string) error {
	if _, ok := f.docs[id]; !ok {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeDocumentRepository) ClearFolder(ctx context.Context, folderID string) error {
	for _, doc := range f.docs {
		if doc.FolderID != nil && *doc.FolderID == folderID {
			doc.FolderID = nil
			doc.UpdatedAt = time.Now().UTC()
		}
	}
	return nil
}

// fakeFolderRepository is an in-memory FolderRepository. Document counts
// come from the paired document repository, like the SQL subselect does.
type fakeFolderRepository struct {
	folders map[string]*models.Folder
	docRepo *fakeDocumentRepository
}

func newFakeFolderRepository(docRepo *fakeDocumentRepository) *fakeFolderRepository {
	return &fakeFolderRepository{
		folders: map[string]*models.Folder{},
		docRepo: docRepo,
	}
}

func (f *fakeFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	folder.ID = uuid.NewString()
	stored := *folder
	f.folders[folder.ID] = &stored
	return nil
}

func (f *fakeFolderRepository) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	folder, ok := f.folders[id]
	if !ok {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	out := *folder
	return &out, nil
}

func (f *fakeFolderRepository) List(ctx context.Context) ([]models.Folder, error) {
	var folders []models.Folder
	for _, folder := range f.folders {
		annotated := *folder
		count, _ := f.CountDocuments(ctx, folder.ID)
		annotated.DocumentCount = count
		folders = append(folders, annotated)
	}
	sort.Slice(folders, func(i, j int) bool {
		return folders[i].Name < folders[j].Name
	})
	return folders, nil
}

func (f *fakeFolderRepository) Update(ctx context.Context, folder *models.Folder) error {
	if _, ok := f.folders[folder.ID]; !ok {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}
	stored := *folder
	f.folders[folder.ID] = &stored
	return nil
}

func (f *fakeFolderRepository) Delete(ctx context.Context, id string) error {
	if _, ok := f.folders[id]; !ok {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	delete(f.folders, id)
	return nil
}

func (f *fakeFolderRepository) CountDocuments(ctx context.Context, id string) (int, error) {
	count := 0
	for _, doc := range f.docRepo.docs {
		if doc.FolderID != nil && *doc.FolderID == id {
			count++
		}
	}
	return count, nil
}

// fakeTxManager runs the function directly; the fakes mutate shared maps
// so the cascade ordering is still observable.
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}
