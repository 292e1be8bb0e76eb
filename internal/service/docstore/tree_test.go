package docstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"docuvault/internal/domain"
	models "docuvault/internal/domain/models/docstore"
	"docuvault/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustCreateFolder(t *testing.T, store *memory.Store, id, name string, parentID *string) {
	t.Helper()
	err := store.Folders().Create(context.Background(), &models.Folder{ID: id, Name: name, ParentID: parentID})
	if err != nil {
		t.Fatalf("create folder %s: %v", id, err)
	}
}

func mustCreateDocument(t *testing.T, store *memory.Store, id, fileName, folderID string) {
	t.Helper()
	err := store.Documents().Create(context.Background(), &models.Document{ID: id, FileName: fileName, FolderID: folderID})
	if err != nil {
		t.Fatalf("create document %s: %v", id, err)
	}
}

func TestTreeService_BuildTree(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	finance := "finance"
	mustCreateFolder(t, store, finance, "Finance", nil)
	mustCreateFolder(t, store, "invoices", "Invoices", &finance)
	mustCreateFolder(t, store, "legal", "Legal", nil)
	mustCreateDocument(t, store, "doc-1", "acme.pdf", "invoices")
	mustCreateDocument(t, store, "doc-2", "msa.pdf", "legal")

	svc := NewTreeService(store.Folders(), store.Documents(), testLogger())
	tree, err := svc.BuildTree(ctx)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}

	if len(tree.Folders) != 2 {
		t.Fatalf("root count = %d, want 2", len(tree.Folders))
	}
	// Roots keep insertion order
	if tree.Folders[0].ID != finance || tree.Folders[1].ID != "legal" {
		t.Errorf("root order = [%s %s], want [finance legal]", tree.Folders[0].ID, tree.Folders[1].ID)
	}

	financeNode := tree.Folders[0]
	if financeNode.Path != "Finance" {
		t.Errorf("Path = %q, want Finance", financeNode.Path)
	}
	if len(financeNode.Folders) != 1 {
		t.Fatalf("Finance child count = %d, want 1", len(financeNode.Folders))
	}
	invoices := financeNode.Folders[0]
	if invoices.Path != "Finance/Invoices" {
		t.Errorf("nested path = %q, want Finance/Invoices", invoices.Path)
	}
	if len(invoices.Documents) != 1 || invoices.Documents[0].ID != "doc-1" {
		t.Errorf("invoices documents = %v", invoices.Documents)
	}
	if invoices.Documents[0].Status != models.StatusPending {
		t.Errorf("derived status = %q, want pending", invoices.Documents[0].Status)
	}
	if len(tree.Documents) != 0 {
		t.Errorf("stray documents = %d, want 0", len(tree.Documents))
	}
	if tree.CountFolders() != 3 {
		t.Errorf("CountFolders() = %d, want 3", tree.CountFolders())
	}
}

func TestTreeService_StrayDocumentSurfacesAtRoot(t *testing.T) {
	store := memory.NewStore()
	mustCreateFolder(t, store, "a", "A", nil)
	mustCreateDocument(t, store, "doc-lost", "lost.pdf", "no-such-folder")

	svc := NewTreeService(store.Folders(), store.Documents(), testLogger())
	tree, err := svc.BuildTree(context.Background())
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if len(tree.Documents) != 1 || tree.Documents[0].ID != "doc-lost" {
		t.Errorf("stray documents = %v, want doc-lost at root", tree.Documents)
	}
}

func TestTreeService_CycleDetected(t *testing.T) {
	store := memory.NewStore()
	a, b := "a", "b"
	mustCreateFolder(t, store, a, "A", &b)
	mustCreateFolder(t, store, b, "B", &a)

	svc := NewTreeService(store.Folders(), store.Documents(), testLogger())
	_, err := svc.BuildTree(context.Background())

	var cycleErr *domain.CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CycleError, got %v", err)
	}
}

func TestTreeService_DanglingParentDetected(t *testing.T) {
	store := memory.NewStore()
	ghost := "ghost"
	mustCreateFolder(t, store, "orphan", "Orphan", &ghost)

	svc := NewTreeService(store.Folders(), store.Documents(), testLogger())
	_, err := svc.BuildTree(context.Background())

	var danglingErr *domain.DanglingParentError
	if !errors.As(err, &danglingErr) {
		t.Fatalf("expected DanglingParentError, got %v", err)
	}
	if danglingErr.FolderID != "orphan" || danglingErr.ParentID != ghost {
		t.Errorf("error identifies %s->%s, want orphan->ghost", danglingErr.FolderID, danglingErr.ParentID)
	}
}

func TestTreeService_SelfParentIsCycle(t *testing.T) {
	store := memory.NewStore()
	self := "self"
	mustCreateFolder(t, store, self, "Self", &self)

	svc := NewTreeService(store.Folders(), store.Documents(), testLogger())
	_, err := svc.BuildTree(context.Background())

	var cycleErr *domain.CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CycleError for self-parent, got %v", err)
	}
}

func TestTreeService_BuildSubtree(t *testing.T) {
	store := memory.NewStore()
	finance := "finance"
	invoices := "invoices"
	mustCreateFolder(t, store, finance, "Finance", nil)
	mustCreateFolder(t, store, invoices, "Invoices", &finance)
	mustCreateFolder(t, store, "q1", "Q1", &invoices)
	mustCreateDocument(t, store, "doc-1", "acme.pdf", "q1")

	svc := NewTreeService(store.Folders(), store.Documents(), testLogger())
	node, err := svc.BuildSubtree(context.Background(), invoices)
	if err != nil {
		t.Fatalf("BuildSubtree: %v", err)
	}
	if node.Path != "Finance/Invoices" {
		t.Errorf("subtree root path = %q, want Finance/Invoices", node.Path)
	}
	if len(node.Folders) != 1 || node.Folders[0].Path != "Finance/Invoices/Q1" {
		t.Errorf("nested path wrong: %+v", node.Folders)
	}
	if len(node.Folders[0].Documents) != 1 {
		t.Errorf("q1 documents = %d, want 1", len(node.Folders[0].Documents))
	}
}

func TestTreeService_BuildSubtreeMissing(t *testing.T) {
	store := memory.NewStore()
	svc := NewTreeService(store.Folders(), store.Documents(), testLogger())
	_, err := svc.BuildSubtree(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTreeService_DescendantIDs(t *testing.T) {
	store := memory.NewStore()
	root := "root"
	childA := "child-a"
	mustCreateFolder(t, store, root, "Root", nil)
	mustCreateFolder(t, store, childA, "A", &root)
	mustCreateFolder(t, store, "child-b", "B", &root)
	mustCreateFolder(t, store, "grandchild", "G", &childA)
	mustCreateFolder(t, store, "unrelated", "U", nil)

	svc := NewTreeService(store.Folders(), store.Documents(), testLogger())
	ids, err := svc.DescendantIDs(context.Background(), root)
	if err != nil {
		t.Fatalf("DescendantIDs: %v", err)
	}

	want := []string{"root", "child-a", "child-b", "grandchild"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], id)
		}
	}
}
