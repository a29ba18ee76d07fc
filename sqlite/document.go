package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/Sravan-create/fedreg"
	"github.com/cespare/xxhash/v2"
)

// Compile-time interface verification.
var _ fedreg.DocumentService = (*DocumentService)(nil)

// DocumentService implements fedreg.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashDocument computes an xxHash over the fields a re-ingested document
// could plausibly drift on, returned as a hex string. The hash lets an
// operator detect upstream revisions that insert-if-absent skipped.
func hashDocument(doc *fedreg.Document, agenciesJSON string) string {
	var h xxhash.Digest
	h.WriteString(doc.Title)
	h.WriteString(doc.Type)
	h.WriteString(formatDate(doc.PublicationDate))
	h.WriteString(doc.HTMLURL)
	h.WriteString(doc.PDFURL)
	h.WriteString(agenciesJSON)
	h.WriteString(doc.Citation)

	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h.Sum64())
	return hex.EncodeToString(b)
}

// CreateDocument creates a new document. If a document with the same
// document number already exists, the call is a no-op and the stored row is
// left untouched.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *fedreg.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	agenciesJSON, err := marshalAgencies(doc.Agencies)
	if err != nil {
		return fedreg.Errorf(fedreg.EINVALID, "cannot serialize agencies: %v", err)
	}

	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now().UTC()
	}
	doc.ContentHash = hashDocument(doc, agenciesJSON)

	_, err = s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO documents
			(document_number, title, type, publication_date, html_url, pdf_url, agencies_json, citation, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Title, doc.Type, formatDate(doc.PublicationDate), doc.HTMLURL, doc.PDFURL,
		agenciesJSON, doc.Citation, doc.ContentHash, doc.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return storeError(err)
	}

	return nil
}

// FindDocumentByID retrieves a document by its document number.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*fedreg.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE document_number = ?
	`, id)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, fedreg.Errorf(fedreg.ENOTFOUND, "document %q not found", id)
	}
	if err != nil {
		return nil, storeError(err)
	}

	return doc, nil
}

// FindDocuments retrieves documents matching the filter, newest publication
// date first. Filter terms are OR-ed: a document qualifies when any term is
// a case-insensitive substring of its title or serialized agency list.
func (s *DocumentService) FindDocuments(ctx context.Context, filter fedreg.DocumentFilter) ([]*fedreg.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents")

	if len(filter.Terms) > 0 {
		conditions := make([]string, 0, len(filter.Terms))
		for _, term := range filter.Terms {
			pattern := "%" + strings.ToLower(term) + "%"
			conditions = append(conditions, "(lower(title) LIKE ? OR lower(agencies_json) LIKE ?)")
			args = append(args, pattern, pattern)
		}
		query.WriteString(" WHERE " + strings.Join(conditions, " OR "))
	}

	query.WriteString(" ORDER BY publication_date DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, storeError(err)
	}
	defer rows.Close()

	var docs []*fedreg.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, storeError(err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(err)
	}
	return docs, nil
}

// CountDocuments returns the total number of stored documents.
func (s *DocumentService) CountDocuments(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents").Scan(&n); err != nil {
		return 0, storeError(err)
	}
	return n, nil
}

const documentColumns = "document_number, title, type, publication_date, html_url, pdf_url, agencies_json, citation, content_hash, fetched_at"

// scanner captures the Scan method shared by sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanDocument scans one documents row into a fixed Document struct,
// deserializing the agency list at the storage boundary.
func scanDocument(row scanner) (*fedreg.Document, error) {
	var doc fedreg.Document
	var pubDate, agenciesJSON, fetchedAt string

	if err := row.Scan(&doc.ID, &doc.Title, &doc.Type, &pubDate, &doc.HTMLURL, &doc.PDFURL,
		&agenciesJSON, &doc.Citation, &doc.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	var err error
	if doc.PublicationDate, err = parseDate(pubDate); err != nil {
		return nil, err
	}
	if doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(agenciesJSON), &doc.Agencies); err != nil {
		return nil, fedreg.Errorf(fedreg.EINTERNAL, "corrupt agencies for document %q: %v", doc.ID, err)
	}

	return &doc, nil
}

func marshalAgencies(agencies []fedreg.Agency) (string, error) {
	if agencies == nil {
		agencies = []fedreg.Agency{}
	}
	b, err := json.Marshal(agencies)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// storeError wraps a database error as a store-unavailable condition so
// callers can distinguish storage failures from empty results.
func storeError(err error) error {
	return fedreg.Errorf(fedreg.EUNAVAILABLE, "document store unavailable: %v", err)
}
