package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models/docstore"
)

func seedDocuments(t *testing.T, repo *DocumentRepository) {
	t.Helper()
	ctx := context.Background()

	docs := []docstore.Document{
		{ID: "doc-1", FileName: "acme-invoice.pdf", FolderID: "finance", Tags: []string{"acme"}},
		{ID: "doc-2", FileName: "receipt-march.jpg", FolderID: "finance",
			OCRResult: &docstore.OCRResult{Status: docstore.StatusCompleted}},
		{ID: "doc-3", FileName: "contract-draft.pdf", FolderID: "legal",
			OCRResult: &docstore.OCRResult{Status: docstore.StatusFailed}},
	}
	for i := range docs {
		if err := repo.Create(ctx, &docs[i]); err != nil {
			t.Fatalf("Create %s: %v", docs[i].ID, err)
		}
	}
}

func TestDocumentRepository_ListByFolderIsNonRecursive(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Documents()
	seedDocuments(t, repo)

	docs, err := repo.ListByFolder(ctx, "finance")
	if err != nil {
		t.Fatalf("ListByFolder: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d, want 2", len(docs))
	}
	for _, doc := range docs {
		if doc.FolderID != "finance" {
			t.Errorf("document %s has folder %q", doc.ID, doc.FolderID)
		}
	}
}

func TestDocumentRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Documents()
	seedDocuments(t, repo)

	tests := []struct {
		name      string
		opts      docstore.SearchOptions
		wantIDs   []string
		wantTotal int
	}{
		{
			name:      "blank keyword returns everything",
			opts:      docstore.SearchOptions{},
			wantIDs:   []string{"doc-1", "doc-2", "doc-3"},
			wantTotal: 3,
		},
		{
			name:      "keyword matches file name",
			opts:      docstore.SearchOptions{Keyword: "INVOICE"},
			wantIDs:   []string{"doc-1"},
			wantTotal: 1,
		},
		{
			name:      "keyword matches tag",
			opts:      docstore.SearchOptions{Keyword: "acme"},
			wantIDs:   []string{"doc-1"},
			wantTotal: 1,
		},
		{
			name:      "status filter on derived status",
			opts:      docstore.SearchOptions{Status: "pending"},
			wantIDs:   []string{"doc-1"},
			wantTotal: 1,
		},
		{
			name:      "unknown status matches nothing",
			opts:      docstore.SearchOptions{Status: "archived"},
			wantIDs:   []string{},
			wantTotal: 0,
		},
		{
			name:      "pagination slices in insertion order",
			opts:      docstore.SearchOptions{Limit: 1, Offset: 1},
			wantIDs:   []string{"doc-2"},
			wantTotal: 3,
		},
		{
			name:      "offset past the end returns empty page",
			opts:      docstore.SearchOptions{Offset: 10},
			wantIDs:   []string{},
			wantTotal: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := repo.Search(ctx, &tt.opts)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if results.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", results.Total, tt.wantTotal)
			}
			if len(results.Documents) != len(tt.wantIDs) {
				t.Fatalf("len = %d, want %d", len(results.Documents), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if results.Documents[i].ID != id {
					t.Errorf("documents[%d].ID = %q, want %q", i, results.Documents[i].ID, id)
				}
			}
		})
	}
}

func TestDocumentRepository_SearchRejectsExcessiveLimit(t *testing.T) {
	repo := NewStore().Documents()
	_, err := repo.Search(context.Background(), &docstore.SearchOptions{Limit: docstore.MaxSearchLimit + 1})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestDocumentRepository_SearchIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Documents()
	seedDocuments(t, repo)

	opts := func() *docstore.SearchOptions { return &docstore.SearchOptions{Keyword: "pdf"} }
	first, err := repo.Search(ctx, opts())
	if err != nil {
		t.Fatal(err)
	}
	second, err := repo.Search(ctx, opts())
	if err != nil {
		t.Fatal(err)
	}
	if first.Total != second.Total || len(first.Documents) != len(second.Documents) {
		t.Error("repeated identical searches should return identical results")
	}
}

func TestDocumentRepository_UpdateStale(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Documents()
	seedDocuments(t, repo)

	first, _ := repo.GetByID(ctx, "doc-1")
	second, _ := repo.GetByID(ctx, "doc-1")

	first.FileName = "renamed.pdf"
	if err := repo.Update(ctx, first); err != nil {
		t.Fatalf("Update: %v", err)
	}

	second.FileName = "other.pdf"
	if err := repo.Update(ctx, second); !errors.Is(err, domain.ErrStale) {
		t.Errorf("expected ErrStale, got %v", err)
	}
}

func TestDocumentRepository_InsertionOrderSurvivesDeletes(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Documents()

	for i := 1; i <= 4; i++ {
		doc := &docstore.Document{ID: fmt.Sprintf("doc-%d", i), FileName: "f.pdf", FolderID: "x"}
		if err := repo.Create(ctx, doc); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.Delete(ctx, "doc-2"); err != nil {
		t.Fatal(err)
	}

	docs, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"doc-1", "doc-3", "doc-4"}
	for i, id := range want {
		if docs[i].ID != id {
			t.Errorf("docs[%d].ID = %q, want %q", i, docs[i].ID, id)
		}
	}
}
