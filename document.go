package fedreg

import (
	"context"
	"time"
)

// Agency represents a government agency associated with a document.
type Agency struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

// Document represents a Federal Register document.
type Document struct {
	// ID is the Federal Register document number, assigned by the source
	// API. It is the primary key of the store.
	ID string `json:"id"`

	Title           string    `json:"title"`
	Type            string    `json:"type"`
	PublicationDate time.Time `json:"publicationDate"`
	HTMLURL         string    `json:"htmlUrl"`
	PDFURL          string    `json:"pdfUrl"`
	Agencies        []Agency  `json:"agencies"`
	Citation        string    `json:"citation"`

	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document number required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	return nil
}

// DocumentService represents a service for managing documents.
// Documents are created once during ingestion and are immutable thereafter;
// the query pipeline only reads.
type DocumentService interface {
	// CreateDocument creates a new document. Creating a document whose ID
	// already exists is a no-op: the stored document is never overwritten.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by its document number.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, ordered by
	// publication date descending.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// CountDocuments returns the total number of stored documents.
	CountDocuments(ctx context.Context) (int, error)
}

// DocumentFilter represents a filter for FindDocuments.
//
// Each term is matched as a case-insensitive substring of a document's title
// or its serialized agency list. A document qualifies if any term matches
// either field. An empty Terms slice matches all documents.
type DocumentFilter struct {
	Terms []string `json:"terms"`
	Limit int      `json:"limit"`
}
