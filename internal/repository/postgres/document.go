package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models/docstore"
	docstoreRepo "docuvault/internal/domain/repositories/docstore"
)

// PostgresDocumentRepository implements the DocumentRepository interface.
// The OCR result rides along as a JSONB column: it is one-to-one with the
// document and always read and written together with it.
type PostgresDocumentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *RepositoryConfig) docstoreRepo.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const documentColumns = `id, file_name, file_type, file_size, file_url, folder_id, tags, uploaded_by, ocr_result, uploaded_at, updated_at`

// Create creates a new document
func (r *PostgresDocumentRepository) Create(ctx context.Context, doc *docstore.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	now := time.Now()
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = now
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = now
	}

	resultJSON, err := marshalResult(doc.OCRResult)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, r.tables.Documents, documentColumns)

	_, err = r.pool.Exec(ctx, query,
		doc.ID,
		doc.FileName,
		doc.FileType,
		doc.FileSize,
		doc.FileURL,
		doc.FolderID,
		doc.Tags,
		doc.UploadedBy,
		resultJSON,
		doc.UploadedAt,
		doc.UpdatedAt,
	)
	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("document %s already exists", doc.ID),
				ResourceType: "document",
				ResourceID:   doc.ID,
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("%w: folder does not exist", domain.ErrValidation)
		}
		return fmt.Errorf("create document: %w", err)
	}

	return nil
}

// GetByID retrieves a document by ID
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id string) (*docstore.Document, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE id = $1
	`, documentColumns, r.tables.Documents)

	doc, err := scanDocument(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	return doc, nil
}

// GetAll retrieves all documents in insertion order
func (r *PostgresDocumentRepository) GetAll(ctx context.Context) ([]docstore.Document, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY uploaded_at ASC, id ASC
	`, documentColumns, r.tables.Documents)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

// ListByFolder lists documents directly attached to one folder
func (r *PostgresDocumentRepository) ListByFolder(ctx context.Context, folderID string) ([]docstore.Document, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE folder_id = $1 ORDER BY uploaded_at ASC, id ASC
	`, documentColumns, r.tables.Documents)

	rows, err := r.pool.Query(ctx, query, folderID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

// Update replaces a document, guarded by the updated_at the caller last read
func (r *PostgresDocumentRepository) Update(ctx context.Context, doc *docstore.Document) error {
	resultJSON, err := marshalResult(doc.OCRResult)
	if err != nil {
		return err
	}

	now := time.Now()
	query := fmt.Sprintf(`
		UPDATE %s
		SET file_name = $1, file_type = $2, file_size = $3, file_url = $4,
		    folder_id = $5, tags = $6, uploaded_by = $7, ocr_result = $8, updated_at = $9
		WHERE id = $10 AND updated_at = $11
	`, r.tables.Documents)

	tag, err := r.pool.Exec(ctx, query,
		doc.FileName,
		doc.FileType,
		doc.FileSize,
		doc.FileURL,
		doc.FolderID,
		doc.Tags,
		doc.UploadedBy,
		resultJSON,
		now,
		doc.ID,
		doc.UpdatedAt,
	)
	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("%w: folder does not exist", domain.ErrValidation)
		}
		return fmt.Errorf("update document: %w", err)
	}

	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, doc.ID); err != nil {
			return err
		}
		return &domain.StaleUpdateError{ResourceType: "document", ResourceID: doc.ID}
	}

	doc.UpdatedAt = now
	return nil
}

// Delete removes a document by id
func (r *PostgresDocumentRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Documents)

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Search filters on the server where possible. The derived status lives in
// the JSONB result (absent result = pending), so the status predicate is a
// CASE over that column.
func (r *PostgresDocumentRepository) Search(ctx context.Context, opts *docstore.SearchOptions) (*docstore.SearchResults, error) {
	opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	where := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if keyword := strings.TrimSpace(opts.Keyword); keyword != "" {
		args = append(args, "%"+keyword+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			`(file_name ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) tag WHERE tag ILIKE $%d))`, n, n))
	}
	if opts.FolderID != nil {
		args = append(args, *opts.FolderID)
		where = append(where, fmt.Sprintf(`folder_id = $%d`, len(args)))
	}
	if opts.Status != "" {
		if _, ok := docstore.ParseStatus(opts.Status); !ok {
			// Unknown status matches nothing
			return &docstore.SearchResults{
				Documents: []docstore.Document{},
				Total:     0,
				Limit:     opts.Limit,
				Offset:    opts.Offset,
			}, nil
		}
		args = append(args, opts.Status)
		where = append(where, fmt.Sprintf(
			`(CASE WHEN ocr_result IS NULL THEN 'pending' ELSE ocr_result->>'status' END) = $%d`, len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = "WHERE " + strings.Join(where, " AND ")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, r.tables.Documents, clause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	args = append(args, opts.Limit, opts.Offset)
	query := fmt.Sprintf(`
		SELECT %s FROM %s %s
		ORDER BY uploaded_at ASC, id ASC
		LIMIT $%d OFFSET $%d
	`, documentColumns, r.tables.Documents, clause, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}
	defer rows.Close()

	docs, err := collectDocuments(rows)
	if err != nil {
		return nil, err
	}

	return &docstore.SearchResults{
		Documents: docs,
		Total:     total,
		Limit:     opts.Limit,
		Offset:    opts.Offset,
	}, nil
}

func marshalResult(result *docstore.OCRResult) ([]byte, error) {
	if result == nil {
		return nil, nil
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode ocr result: %w", err)
	}
	return payload, nil
}

func scanDocument(row pgx.Row) (*docstore.Document, error) {
	var doc docstore.Document
	var resultJSON []byte
	err := row.Scan(
		&doc.ID,
		&doc.FileName,
		&doc.FileType,
		&doc.FileSize,
		&doc.FileURL,
		&doc.FolderID,
		&doc.Tags,
		&doc.UploadedBy,
		&resultJSON,
		&doc.UploadedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(resultJSON) > 0 {
		var result docstore.OCRResult
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return nil, fmt.Errorf("decode ocr result for document %s: %w", doc.ID, err)
		}
		doc.OCRResult = &result
	}

	return &doc, nil
}

func collectDocuments(rows pgx.Rows) ([]docstore.Document, error) {
	docs := make([]docstore.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}
