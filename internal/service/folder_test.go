package service

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/domain"
)

func TestCreateFolderValidation(t *testing.T) {
	_, folderService, _, _ := newTestServices(t)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain name", input: "Recipes", want: "Recipes"},
		{name: "name is trimmed", input: "  Work Notes  ", want: "Work Notes"},
		{name: "empty name", input: "", wantErr: true},
		{name: "whitespace only", input: "   \t ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder, err := folderService.Create(context.Background(), tt.input)

			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("Create() error = %v, want ErrValidation", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if folder.Name != tt.want {
				t.Errorf("name = %q, want %q", folder.Name, tt.want)
			}
			if folder.DocumentCount != 0 {
				t.Errorf("document count = %d, want 0", folder.DocumentCount)
			}
			if folder.ID == "" {
				t.Error("expected server-assigned id")
			}
		})
	}
}

func TestListFoldersOrderAndCounts(t *testing.T) {
	docService, folderService, _, _ := newTestServices(t)
	ctx := context.Background()

	zebra, _ := folderService.Create(ctx, "zebra")
	apple, _ := folderService.Create(ctx, "apple")
	if _, err := folderService.Create(ctx, "mango"); err != nil {
		t.Fatalf("create folder: %v", err)
	}

	for i := 0; i < 3; i++ {
		doc, err := docService.Create(ctx, "content")
		if err != nil {
			t.Fatalf("create doc: %v", err)
		}
		target := apple.ID
		if i == 2 {
			target = zebra.ID
		}
		if _, err := docService.Move(ctx, doc.ID, &target); err != nil {
			t.Fatalf("move doc: %v", err)
		}
	}

	folders, err := folderService.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	wantNames := []string{"apple", "mango", "zebra"}
	wantCounts := []int{2, 0, 1}
	if len(folders) != len(wantNames) {
		t.Fatalf("got %d folders, want %d", len(folders), len(wantNames))
	}
	for i, folder := range folders {
		if folder.Name != wantNames[i] {
			t.Errorf("folder[%d].Name = %q, want %q", i, folder.Name, wantNames[i])
		}
		if folder.DocumentCount != wantCounts[i] {
			t.Errorf("folder[%d].DocumentCount = %d, want %d", i, folder.DocumentCount, wantCounts[i])
		}
	}
}

func TestUpdateFolder(t *testing.T) {
	docService, folderService, _, _ := newTestServices(t)
	ctx := context.Background()

	folder, err := folderService.Create(ctx, "Drafts")
	if err != nil {
		t.Fatalf("create folder: %v", err)
	}

	doc, err := docService.Create(ctx, "content")
	if err != nil {
		t.Fatalf("create doc: %v", err)
	}
	if _, err := docService.Move(ctx, doc.ID, &folder.ID); err != nil {
		t.Fatalf("move doc: %v", err)
	}

	updated, err := folderService.Update(ctx, folder.ID, "  Published  ")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Published" {
		t.Errorf("name = %q, want Published", updated.Name)
	}
	if updated.DocumentCount != 1 {
		t.Errorf("document count = %d, want 1", updated.DocumentCount)
	}
	if updated.UpdatedAt.Before(folder.UpdatedAt) {
		t.Error("updated_at went backwards")
	}

	if _, err := folderService.Update(ctx, folder.ID, " "); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("blank rename error = %v, want ErrValidation", err)
	}
	if _, err := folderService.Update(ctx, "3b1f8a52-79f4-4a6e-9c33-000000000001", "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("absent folder error = %v, want ErrNotFound", err)
	}
}

func TestDeleteFolderReparentsDocuments(t *testing.T) {
	docService, folderService, _, folderRepo := newTestServices(t)
	ctx := context.Background()

	folder, err := folderService.Create(ctx, "Doomed")
	if err != nil {
		t.Fatalf("create folder: %v", err)
	}

	var docIDs []string
	for i := 0; i < 2; i++ {
		doc, err := docService.Create(ctx, "survivor")
		if err != nil {
			t.Fatalf("create doc: %v", err)
		}
		if _, err := docService.Move(ctx, doc.ID, &folder.ID); err != nil {
			t.Fatalf("move doc: %v", err)
		}
		docIDs = append(docIDs, doc.ID)
	}

	if err := folderService.Delete(ctx, folder.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// The folder is gone
	if _, err := folderRepo.GetByID(ctx, folder.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("folder still resolvable after delete: %v", err)
	}

	// Its documents survive, reparented to the root
	for _, id := range docIDs {
		doc, err := docService.Get(ctx, id)
		if err != nil {
			t.Fatalf("document %s lost by folder deletion: %v", id, err)
		}
		if doc.FolderID != nil {
			t.Errorf("document %s folder_id = %v, want nil", id, *doc.FolderID)
		}
	}
}

func TestDeleteFolderNotFound(t *testing.T) {
	_, folderService, _, _ := newTestServices(t)

	err := folderService.Delete(context.Background(), "3b1f8a52-79f4-4a6e-9c33-000000000001")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}
