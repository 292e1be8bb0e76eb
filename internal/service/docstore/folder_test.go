package docstore

import (
	"context"
	"errors"
	"strings"
	"testing"

	"docuvault/internal/domain"
	docstoreSvc "docuvault/internal/domain/services/docstore"
	"docuvault/internal/httputil"
	"docuvault/internal/repository/memory"
)

func newFolderService(store *memory.Store) docstoreSvc.FolderService {
	return NewFolderService(store.Folders(), store.Documents(), testLogger())
}

func strPtr(s string) *string { return &s }

func TestFolderService_CreateFolder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newFolderService(store)

	root, err := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "Finance", Color: "#2563eb"})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if root.ID == "" || root.Path != "Finance" {
		t.Errorf("root = %+v", root)
	}

	child, err := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "Invoices", ParentID: &root.ID})
	if err != nil {
		t.Fatalf("CreateFolder child: %v", err)
	}
	if child.Path != "Finance/Invoices" {
		t.Errorf("child path = %q, want Finance/Invoices", child.Path)
	}
}

func TestFolderService_CreateFolderValidation(t *testing.T) {
	ctx := context.Background()
	svc := newFolderService(memory.NewStore())

	tests := []struct {
		name string
		req  docstoreSvc.CreateFolderRequest
	}{
		{name: "empty name", req: docstoreSvc.CreateFolderRequest{Name: ""}},
		{name: "whitespace name", req: docstoreSvc.CreateFolderRequest{Name: "   "}},
		{name: "slash in name", req: docstoreSvc.CreateFolderRequest{Name: "a/b"}},
		{name: "name too long", req: docstoreSvc.CreateFolderRequest{Name: strings.Repeat("x", 300)}},
		{name: "missing parent", req: docstoreSvc.CreateFolderRequest{Name: "ok", ParentID: strPtr("ghost")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateFolder(ctx, &tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestFolderService_DuplicateSiblingName(t *testing.T) {
	ctx := context.Background()
	svc := newFolderService(memory.NewStore())

	if _, err := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "Reports"}); err != nil {
		t.Fatal(err)
	}
	_, err := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "reports"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("case-insensitive duplicate should conflict, got %v", err)
	}

	// Same name under a different parent is fine
	parent, err := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "Archive"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "Reports", ParentID: &parent.ID}); err != nil {
		t.Errorf("same name under another parent should succeed, got %v", err)
	}
}

func TestFolderService_UpdateFolderRename(t *testing.T) {
	ctx := context.Background()
	svc := newFolderService(memory.NewStore())

	folder, err := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "Old"})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdateFolder(ctx, folder.ID, &docstoreSvc.UpdateFolderRequest{Name: strPtr("New")})
	if err != nil {
		t.Fatalf("UpdateFolder: %v", err)
	}
	if updated.Name != "New" || updated.Path != "New" {
		t.Errorf("updated = %+v", updated)
	}
}

func TestFolderService_MoveFolder(t *testing.T) {
	ctx := context.Background()
	svc := newFolderService(memory.NewStore())

	a, _ := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "A"})
	b, _ := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "B"})

	moved, err := svc.UpdateFolder(ctx, b.ID, &docstoreSvc.UpdateFolderRequest{
		ParentID: httputil.OptionalString{Present: true, Value: &a.ID},
	})
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved.Path != "A/B" {
		t.Errorf("path after move = %q, want A/B", moved.Path)
	}

	// Null parent moves back to root
	back, err := svc.UpdateFolder(ctx, b.ID, &docstoreSvc.UpdateFolderRequest{
		ParentID: httputil.OptionalString{Present: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("move to root: %v", err)
	}
	if back.ParentID != nil || back.Path != "B" {
		t.Errorf("after move to root = %+v", back)
	}
}

func TestFolderService_MoveRejectsCycles(t *testing.T) {
	ctx := context.Background()
	svc := newFolderService(memory.NewStore())

	a, _ := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "A"})
	b, _ := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "B", ParentID: &a.ID})
	c, _ := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "C", ParentID: &b.ID})

	tests := []struct {
		name   string
		target string
	}{
		{name: "into own child", target: b.ID},
		{name: "into own grandchild", target: c.ID},
		{name: "into itself", target: a.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateFolder(ctx, a.ID, &docstoreSvc.UpdateFolderRequest{
				ParentID: httputil.OptionalString{Present: true, Value: &tt.target},
			})
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestFolderService_DeleteFolder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newFolderService(store)

	parent, _ := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "Parent"})
	child, _ := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "Child", ParentID: &parent.ID})
	mustCreateDocument(t, store, "doc-1", "a.pdf", child.ID)

	// Non-empty without force is a conflict
	if err := svc.DeleteFolder(ctx, parent.ID, false); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected ErrConflict for non-empty folder, got %v", err)
	}

	// Force cascades through the subtree
	if err := svc.DeleteFolder(ctx, parent.ID, true); err != nil {
		t.Fatalf("force delete: %v", err)
	}
	if _, err := store.Folders().GetByID(ctx, child.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Error("child folder should be deleted by cascade")
	}
	if _, err := store.Documents().GetByID(ctx, "doc-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Error("document should be deleted by cascade")
	}
}

func TestFolderService_DeleteEmptyWithoutForce(t *testing.T) {
	ctx := context.Background()
	svc := newFolderService(memory.NewStore())

	folder, _ := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "Empty"})
	if err := svc.DeleteFolder(ctx, folder.ID, false); err != nil {
		t.Errorf("deleting an empty folder should succeed, got %v", err)
	}
}

func TestFolderService_GetFolderCounts(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newFolderService(store)

	parent, _ := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "Parent"})
	if _, err := svc.CreateFolder(ctx, &docstoreSvc.CreateFolderRequest{Name: "Child", ParentID: &parent.ID}); err != nil {
		t.Fatal(err)
	}
	mustCreateDocument(t, store, "doc-1", "a.pdf", parent.ID)
	mustCreateDocument(t, store, "doc-2", "b.pdf", parent.ID)

	got, err := svc.GetFolder(ctx, parent.ID)
	if err != nil {
		t.Fatalf("GetFolder: %v", err)
	}
	if got.FolderCount != 1 || got.DocumentCount != 2 {
		t.Errorf("counts = %d folders, %d documents; want 1, 2", got.FolderCount, got.DocumentCount)
	}
}
