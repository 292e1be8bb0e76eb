package docstore

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"docuvault/internal/domain"
	models "docuvault/internal/domain/models/docstore"
	docstoreSvc "docuvault/internal/domain/services/docstore"
	"docuvault/internal/repository/memory"
)

func newDocumentService(store *memory.Store) docstoreSvc.DocumentService {
	return NewDocumentService(store.Folders(), store.Documents(), testLogger())
}

func TestDocumentService_CreateDocument(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	mustCreateFolder(t, store, "inbox", "Inbox", nil)
	svc := newDocumentService(store)

	doc, err := svc.CreateDocument(ctx, &docstoreSvc.CreateDocumentRequest{
		FileName: "scan.pdf",
		FileType: "PDF",
		FileSize: 1024,
		FolderID: "inbox",
		Tags:     []string{" acme ", "ACME", "", "q1"},
	})
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}

	if doc.FileType != "pdf" {
		t.Errorf("FileType = %q, want lowercased pdf", doc.FileType)
	}
	if doc.Status() != models.StatusPending {
		t.Errorf("new document status = %q, want pending", doc.Status())
	}
	// Tags trimmed, de-duplicated case-insensitively, order preserved
	if !reflect.DeepEqual(doc.Tags, []string{"acme", "q1"}) {
		t.Errorf("Tags = %v, want [acme q1]", doc.Tags)
	}
}

func TestDocumentService_CreateDocumentValidation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	mustCreateFolder(t, store, "inbox", "Inbox", nil)
	svc := newDocumentService(store)

	tests := []struct {
		name string
		req  docstoreSvc.CreateDocumentRequest
	}{
		{name: "empty file name", req: docstoreSvc.CreateDocumentRequest{FolderID: "inbox"}},
		{name: "slash in file name", req: docstoreSvc.CreateDocumentRequest{FileName: "a/b.pdf", FolderID: "inbox"}},
		{name: "missing folder id", req: docstoreSvc.CreateDocumentRequest{FileName: "a.pdf"}},
		{name: "unknown folder", req: docstoreSvc.CreateDocumentRequest{FileName: "a.pdf", FolderID: "ghost"}},
		{name: "negative size", req: docstoreSvc.CreateDocumentRequest{FileName: "a.pdf", FolderID: "inbox", FileSize: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateDocument(ctx, &tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestDocumentService_UpdateDocumentMove(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	mustCreateFolder(t, store, "inbox", "Inbox", nil)
	mustCreateFolder(t, store, "archive", "Archive", nil)
	svc := newDocumentService(store)

	doc, err := svc.CreateDocument(ctx, &docstoreSvc.CreateDocumentRequest{FileName: "a.pdf", FolderID: "inbox"})
	if err != nil {
		t.Fatal(err)
	}

	moved, err := svc.UpdateDocument(ctx, doc.ID, &docstoreSvc.UpdateDocumentRequest{FolderID: strPtr("archive")})
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved.FolderID != "archive" {
		t.Errorf("FolderID = %q, want archive", moved.FolderID)
	}

	// Moving into a missing folder is rejected and leaves the document alone
	_, err = svc.UpdateDocument(ctx, doc.ID, &docstoreSvc.UpdateDocumentRequest{FolderID: strPtr("ghost")})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	current, _ := svc.GetDocument(ctx, doc.ID)
	if current.FolderID != "archive" {
		t.Errorf("FolderID after failed move = %q, want archive", current.FolderID)
	}
}

func TestDocumentService_FilterByStatus(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	mustCreateFolder(t, store, "inbox", "Inbox", nil)
	svc := newDocumentService(store)

	mustCreateDocument(t, store, "doc-pending", "a.pdf", "inbox")
	err := store.Documents().Create(ctx, &models.Document{
		ID: "doc-done", FileName: "b.pdf", FolderID: "inbox",
		OCRResult: &models.OCRResult{Status: models.StatusCompleted},
	})
	if err != nil {
		t.Fatal(err)
	}

	completed, err := svc.FilterByStatus(ctx, "completed")
	if err != nil {
		t.Fatalf("FilterByStatus: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != "doc-done" {
		t.Errorf("completed = %v", completed)
	}

	unknown, err := svc.FilterByStatus(ctx, "archived")
	if err != nil {
		t.Fatalf("unknown status should not error: %v", err)
	}
	if unknown == nil || len(unknown) != 0 {
		t.Errorf("unknown status should yield an empty slice, got %v", unknown)
	}
}

func TestDocumentService_SearchBlankKeywordReturnsAll(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	mustCreateFolder(t, store, "inbox", "Inbox", nil)
	mustCreateDocument(t, store, "doc-1", "a.pdf", "inbox")
	mustCreateDocument(t, store, "doc-2", "b.pdf", "inbox")
	svc := newDocumentService(store)

	results, err := svc.Search(ctx, &models.SearchOptions{Keyword: "   "})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if results.Total != 2 {
		t.Errorf("Total = %d, want 2", results.Total)
	}
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	mustCreateFolder(t, store, "inbox", "Inbox", nil)
	mustCreateDocument(t, store, "doc-1", "a.pdf", "inbox")
	svc := newDocumentService(store)

	if err := svc.DeleteDocument(ctx, "doc-1"); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if err := svc.DeleteDocument(ctx, "doc-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
