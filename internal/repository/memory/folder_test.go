package memory

import (
	"context"
	"errors"
	"testing"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models/docstore"
)

func TestFolderRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Folders()

	folder := &docstore.Folder{Name: "Finance"}
	if err := repo.Create(ctx, folder); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if folder.ID == "" {
		t.Fatal("Create should assign an id")
	}
	if folder.CreatedAt.IsZero() || folder.UpdatedAt.IsZero() {
		t.Fatal("Create should fill timestamps")
	}

	got, err := repo.GetByID(ctx, folder.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Finance" {
		t.Errorf("Name = %q, want Finance", got.Name)
	}

	// Mutating the returned copy must not touch the stored record
	got.Name = "changed"
	again, _ := repo.GetByID(ctx, folder.ID)
	if again.Name != "Finance" {
		t.Error("GetByID should return an isolated copy")
	}
}

func TestFolderRepository_GetMissing(t *testing.T) {
	repo := NewStore().Folders()
	_, err := repo.GetByID(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFolderRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Folders()

	folder := &docstore.Folder{ID: "f1", Name: "A"}
	if err := repo.Create(ctx, folder); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, &docstore.Folder{ID: "f1", Name: "B"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestFolderRepository_GetAllInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Folders()

	for _, name := range []string{"c", "a", "b"} {
		if err := repo.Create(ctx, &docstore.Folder{ID: name, Name: name}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	folders, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	want := []string{"c", "a", "b"}
	if len(folders) != len(want) {
		t.Fatalf("len = %d, want %d", len(folders), len(want))
	}
	for i, name := range want {
		if folders[i].ID != name {
			t.Errorf("folders[%d].ID = %q, want %q", i, folders[i].ID, name)
		}
	}
}

func TestFolderRepository_ListChildren(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Folders()

	root := "root"
	if err := repo.Create(ctx, &docstore.Folder{ID: root, Name: "Root"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, &docstore.Folder{ID: "child-1", Name: "One", ParentID: &root}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, &docstore.Folder{ID: "child-2", Name: "Two", ParentID: &root}); err != nil {
		t.Fatal(err)
	}

	roots, err := repo.ListChildren(ctx, nil)
	if err != nil {
		t.Fatalf("ListChildren(nil): %v", err)
	}
	if len(roots) != 1 || roots[0].ID != root {
		t.Errorf("roots = %v, want only %q", roots, root)
	}

	children, err := repo.ListChildren(ctx, &root)
	if err != nil {
		t.Fatalf("ListChildren(root): %v", err)
	}
	if len(children) != 2 {
		t.Errorf("len(children) = %d, want 2", len(children))
	}
}

func TestFolderRepository_UpdateOptimisticConcurrency(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Folders()

	folder := &docstore.Folder{ID: "f1", Name: "A"}
	if err := repo.Create(ctx, folder); err != nil {
		t.Fatal(err)
	}

	first, _ := repo.GetByID(ctx, "f1")
	second, _ := repo.GetByID(ctx, "f1")

	first.Name = "renamed by first"
	if err := repo.Update(ctx, first); err != nil {
		t.Fatalf("first Update: %v", err)
	}

	second.Name = "renamed by second"
	err := repo.Update(ctx, second)
	if !errors.Is(err, domain.ErrStale) {
		t.Errorf("expected ErrStale for concurrent writer, got %v", err)
	}

	// The winning write advanced UpdatedAt on the passed record
	if !first.UpdatedAt.After(second.UpdatedAt) && !first.UpdatedAt.Equal(second.UpdatedAt) {
		t.Error("Update should advance UpdatedAt on success")
	}
}

func TestFolderRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Folders()

	if err := repo.Create(ctx, &docstore.Folder{ID: "f1", Name: "A"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, "f1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "f1"); !errors.Is(err, domain.ErrNotFound) {
		t.Error("folder should be gone after delete")
	}
	if err := repo.Delete(ctx, "f1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("deleting a missing folder should be ErrNotFound, got %v", err)
	}
}
