// Package seed loads an initial folder/document dataset into a store. The
// in-memory driver seeds at startup so the API serves a browsable collection
// immediately; the seed command applies the same fixtures to postgres.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"docuvault/internal/domain/models/docstore"
	docstoreRepo "docuvault/internal/domain/repositories/docstore"
)

// Fixture is the YAML shape of a seed dataset. Folders must be listed
// parents-first; documents reference folders by their fixture ids.
type Fixture struct {
	Folders   []FolderSeed   `yaml:"folders"`
	Documents []DocumentSeed `yaml:"documents"`
}

type FolderSeed struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	ParentID    *string `yaml:"parent_id,omitempty"`
	Color       string  `yaml:"color,omitempty"`
	MenuSection string  `yaml:"menu_section,omitempty"`
}

type DocumentSeed struct {
	ID         string   `yaml:"id"`
	FileName   string   `yaml:"file_name"`
	FileType   string   `yaml:"file_type"`
	FileSize   int64    `yaml:"file_size"`
	FileURL    string   `yaml:"file_url,omitempty"`
	FolderID   string   `yaml:"folder_id"`
	Tags       []string `yaml:"tags,omitempty"`
	UploadedBy string   `yaml:"uploaded_by,omitempty"`
	OCR        *OCRSeed `yaml:"ocr,omitempty"` // omitted = pending
}

type OCRSeed struct {
	Status            string      `yaml:"status"`
	OverallConfidence float64     `yaml:"overall_confidence,omitempty"`
	Fields            []FieldSeed `yaml:"fields,omitempty"`
}

type FieldSeed struct {
	Label      string  `yaml:"label"`
	Value      string  `yaml:"value"`
	Type       string  `yaml:"type,omitempty"`
	Confidence float64 `yaml:"confidence"`
}

// LoadFile reads a fixture from a YAML file.
func LoadFile(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var fixture Fixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &fixture, nil
}

// Apply writes the fixture into the repositories. Folder order matters:
// children must follow their parents.
func Apply(
	ctx context.Context,
	folderRepo docstoreRepo.FolderRepository,
	docRepo docstoreRepo.DocumentRepository,
	fixture *Fixture,
	logger *slog.Logger,
) error {
	for _, seed := range fixture.Folders {
		folder := &docstore.Folder{
			ID:          seed.ID,
			Name:        seed.Name,
			ParentID:    seed.ParentID,
			Color:       seed.Color,
			MenuSection: seed.MenuSection,
		}
		if err := folderRepo.Create(ctx, folder); err != nil {
			return fmt.Errorf("seed folder %q: %w", seed.Name, err)
		}
	}

	for _, seed := range fixture.Documents {
		doc := &docstore.Document{
			ID:         seed.ID,
			FileName:   seed.FileName,
			FileType:   seed.FileType,
			FileSize:   seed.FileSize,
			FileURL:    seed.FileURL,
			FolderID:   seed.FolderID,
			Tags:       seed.Tags,
			UploadedBy: seed.UploadedBy,
		}
		if seed.OCR != nil {
			result, err := buildResult(seed)
			if err != nil {
				return fmt.Errorf("seed document %q: %w", seed.FileName, err)
			}
			doc.OCRResult = result
		}
		if err := docRepo.Create(ctx, doc); err != nil {
			return fmt.Errorf("seed document %q: %w", seed.FileName, err)
		}
	}

	logger.Info("seed applied",
		"folder_count", len(fixture.Folders),
		"document_count", len(fixture.Documents),
	)
	return nil
}

func buildResult(seed DocumentSeed) (*docstore.OCRResult, error) {
	status, ok := docstore.ParseStatus(seed.OCR.Status)
	if !ok {
		return nil, fmt.Errorf("unknown status %q", seed.OCR.Status)
	}

	fields := make([]docstore.OCRField, 0, len(seed.OCR.Fields))
	for i, f := range seed.OCR.Fields {
		fieldType := docstore.FieldType(f.Type)
		if f.Type == "" {
			fieldType = docstore.FieldTypeText
		}
		fields = append(fields, docstore.OCRField{
			ID:         fmt.Sprintf("field-%d", i+1),
			Label:      f.Label,
			Value:      f.Value,
			Confidence: f.Confidence,
			Type:       fieldType,
			BoundingBox: docstore.BoundingBox{
				X: 60, Y: 90 + i*46, Width: 730, Height: 28,
			},
		})
	}

	result := &docstore.OCRResult{
		ID:                "ocr-" + seed.ID,
		DocumentID:        seed.ID,
		FileName:          seed.FileName,
		Fields:            fields,
		Status:            status,
		OverallConfidence: seed.OCR.OverallConfidence,
	}
	if status == docstore.StatusCompleted || status == docstore.StatusFailed {
		processedAt := time.Now()
		result.ProcessedAt = &processedAt
	}
	return result, nil
}

// Default returns the built-in development dataset: a small folder tree with
// documents in every lifecycle state.
func Default() *Fixture {
	finance := "folder-finance"
	legal := "folder-legal"
	return &Fixture{
		Folders: []FolderSeed{
			{ID: finance, Name: "Finance", Color: "#2563eb", MenuSection: "workspace"},
			{ID: "folder-invoices", Name: "Invoices", ParentID: &finance, Color: "#2563eb"},
			{ID: "folder-receipts", Name: "Receipts", ParentID: &finance, Color: "#16a34a"},
			{ID: legal, Name: "Legal", Color: "#9333ea", MenuSection: "workspace"},
			{ID: "folder-contracts", Name: "Contracts", ParentID: &legal, Color: "#9333ea"},
			{ID: "folder-inbox", Name: "Inbox", Color: "#6b7280", MenuSection: "system"},
		},
		Documents: []DocumentSeed{
			{
				ID: "doc-acme-invoice", FileName: "acme-invoice-march.pdf", FileType: "pdf",
				FileSize: 182_344, FolderID: "folder-invoices",
				Tags: []string{"acme", "q1"}, UploadedBy: "dana",
				OCR: &OCRSeed{
					Status: "completed", OverallConfidence: 0.94,
					Fields: []FieldSeed{
						{Label: "Invoice Number", Value: "INV-2031", Confidence: 0.98},
						{Label: "Issue Date", Value: "2026-03-04", Type: "date", Confidence: 0.95},
						{Label: "Total Amount", Value: "1840.00", Type: "number", Confidence: 0.89},
					},
				},
			},
			{
				ID: "doc-office-receipt", FileName: "office-supplies.jpg", FileType: "jpg",
				FileSize: 94_120, FolderID: "folder-receipts",
				Tags: []string{"supplies"}, UploadedBy: "dana",
				OCR: &OCRSeed{
					Status: "completed", OverallConfidence: 0.88,
					Fields: []FieldSeed{
						{Label: "Store Name", Value: "Staves & Co", Confidence: 0.91},
						{Label: "Purchase Date", Value: "2026-02-18", Type: "date", Confidence: 0.86},
						{Label: "Total Amount", Value: "64.37", Type: "number", Confidence: 0.87},
					},
				},
			},
			{
				ID: "doc-vendor-msa", FileName: "vendor-msa-draft.pdf", FileType: "pdf",
				FileSize: 412_009, FolderID: "folder-contracts",
				Tags: []string{"msa", "draft"}, UploadedBy: "sam",
				OCR: &OCRSeed{Status: "processing"},
			},
			{
				ID: "doc-blurry-scan", FileName: "blurry-scan.png", FileType: "png",
				FileSize: 1_204_551, FolderID: "folder-inbox",
				UploadedBy: "sam",
				OCR:        &OCRSeed{Status: "failed"},
			},
			{
				ID: "doc-new-upload", FileName: "new-upload.pdf", FileType: "pdf",
				FileSize: 58_230, FolderID: "folder-inbox",
				Tags: []string{"untriaged"}, UploadedBy: "dana",
			},
		},
	}
}
