// Package mock implements an OCR engine that fabricates plausible extraction
// results. Used for development and tests without a real inference backend.
package mock

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	loremgen "github.com/bozaro/golorem"

	"docuvault/internal/domain/models/docstore"
	ocrSvc "docuvault/internal/domain/services/ocr"
)

// fieldTemplate declares one field the engine "reads" off a document type.
type fieldTemplate struct {
	Label string
	Type  docstore.FieldType
}

// templates maps each document type to the fields it yields. The invoice set
// is the default when callers do not specify a type.
var templates = map[docstore.DocumentType][]fieldTemplate{
	docstore.DocTypeInvoice: {
		{Label: "Invoice Number", Type: docstore.FieldTypeText},
		{Label: "Issue Date", Type: docstore.FieldTypeDate},
		{Label: "Due Date", Type: docstore.FieldTypeDate},
		{Label: "Vendor Name", Type: docstore.FieldTypeText},
		{Label: "Subtotal", Type: docstore.FieldTypeNumber},
		{Label: "Tax", Type: docstore.FieldTypeNumber},
		{Label: "Total Amount", Type: docstore.FieldTypeNumber},
	},
	docstore.DocTypeReceipt: {
		{Label: "Store Name", Type: docstore.FieldTypeText},
		{Label: "Purchase Date", Type: docstore.FieldTypeDate},
		{Label: "Payment Method", Type: docstore.FieldTypeText},
		{Label: "Total Amount", Type: docstore.FieldTypeNumber},
	},
	docstore.DocTypeContract: {
		{Label: "Contract Title", Type: docstore.FieldTypeText},
		{Label: "Party A", Type: docstore.FieldTypeText},
		{Label: "Party B", Type: docstore.FieldTypeText},
		{Label: "Effective Date", Type: docstore.FieldTypeDate},
		{Label: "Expiration Date", Type: docstore.FieldTypeDate},
		{Label: "Contract Value", Type: docstore.FieldTypeNumber},
	},
	docstore.DocTypeForm: {
		{Label: "Applicant Name", Type: docstore.FieldTypeText},
		{Label: "Submission Date", Type: docstore.FieldTypeDate},
		{Label: "Reference Code", Type: docstore.FieldTypeText},
		{Label: "Department", Type: docstore.FieldTypeText},
	},
	docstore.DocTypeOther: {
		{Label: "Title", Type: docstore.FieldTypeText},
		{Label: "Date", Type: docstore.FieldTypeDate},
		{Label: "Notes", Type: docstore.FieldTypeText},
	},
}

// Page geometry for fabricated bounding boxes, in pixels.
const (
	pageWidth   = 850
	fieldLeft   = 60
	fieldTop    = 90
	fieldHeight = 28
	fieldStride = 46 // vertical distance between consecutive fields
)

// Engine is a mock OCR engine that generates lorem ipsum field values.
// Used for testing and development without a real extraction service.
type Engine struct {
	generator *loremgen.Lorem

	mu  sync.Mutex
	rng *rand.Rand

	failureRate float64
	delay       time.Duration
}

// NewEngine creates a mock engine. failureRate (0.0 - 1.0) is the fraction of
// extractions that fail; delay simulates per-document inference latency.
func NewEngine(failureRate float64, delay time.Duration) *Engine {
	return &Engine{
		generator:   loremgen.New(),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		failureRate: failureRate,
		delay:       delay,
	}
}

// Name returns the engine name
func (e *Engine) Name() string {
	return "mock"
}

// Extract fabricates a completed result for the document. The simulated
// latency is context-cancellable, like a real remote inference call.
func (e *Engine) Extract(ctx context.Context, req *ocrSvc.ExtractRequest) (*docstore.OCRResult, error) {
	if req.Document == nil {
		return nil, fmt.Errorf("mock engine: no document")
	}

	if e.delay > 0 {
		select {
		case <-time.After(e.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if e.roll() < e.failureRate {
		return nil, fmt.Errorf("mock engine: extraction failed for %s", req.Document.FileName)
	}

	docType := req.DocumentType
	if _, ok := templates[docType]; !ok {
		docType = docstore.DocTypeOther
	}

	now := time.Now()
	fields := make([]docstore.OCRField, 0, len(templates[docType]))
	var confidenceSum float64
	for i, tmpl := range templates[docType] {
		confidence := e.confidence()
		confidenceSum += confidence
		fields = append(fields, docstore.OCRField{
			ID:         fmt.Sprintf("field-%d", i+1),
			Label:      tmpl.Label,
			Value:      e.value(tmpl.Type, now),
			Confidence: confidence,
			BoundingBox: docstore.BoundingBox{
				X:      fieldLeft,
				Y:      fieldTop + i*fieldStride,
				Width:  pageWidth - 2*fieldLeft,
				Height: fieldHeight,
			},
			Type: tmpl.Type,
		})
	}

	return &docstore.OCRResult{
		FileName:          req.Document.FileName,
		Fields:            fields,
		Status:            docstore.StatusCompleted,
		OverallConfidence: confidenceSum / float64(len(fields)),
		ProcessedAt:       &now,
	}, nil
}

// value fabricates a field value for the given type.
func (e *Engine) value(fieldType docstore.FieldType, now time.Time) string {
	switch fieldType {
	case docstore.FieldTypeDate:
		daysAgo := e.intn(365)
		return now.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	case docstore.FieldTypeNumber:
		return fmt.Sprintf("%.2f", 10+e.roll()*4990)
	default:
		return capitalizeWords(e.words(2 + e.intn(3)))
	}
}

// words generates n lorem words joined by spaces.
func (e *Engine) words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = e.word()
	}
	return strings.Join(parts, " ")
}

func (e *Engine) word() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generator.Word(3, 10)
}

func (e *Engine) confidence() float64 {
	return 0.82 + e.roll()*0.17
}

func (e *Engine) roll() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

func capitalizeWords(s string) string {
	parts := strings.Fields(s)
	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
