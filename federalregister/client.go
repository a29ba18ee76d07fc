// Package federalregister provides a client for the Federal Register
// documents API, implementing fedreg.DocumentSource for ingestion.
package federalregister

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Sravan-create/fedreg"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Federal Register documents endpoint.
const DefaultBaseURL = "https://www.federalregister.gov/api/v1/documents.json"

// DefaultFetchTimeout is the default timeout for a single page request.
const DefaultFetchTimeout = 30 * time.Second

// DefaultPerPage is the page size requested from the API, its maximum.
const DefaultPerPage = 100

// DefaultRequestsPerSecond is the default rate limit against the API.
const DefaultRequestsPerSecond = 1.0

// Ensure Client implements fedreg.DocumentSource at compile time.
var _ fedreg.DocumentSource = (*Client)(nil)

// Client retrieves paginated document listings from the Federal Register API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	timeout    time.Duration
	perPage    int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRateLimit sets the request rate against the API in requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithPerPage sets the requested page size.
func WithPerPage(n int) Option {
	return func(c *Client) { c.perPage = n }
}

// NewClient creates a new Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultFetchTimeout,
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		perPage: DefaultPerPage,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient = &http.Client{Timeout: c.timeout}
	return c
}

// apiAgency mirrors the agency records embedded in API results.
type apiAgency struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// apiDocument mirrors one result in the API response.
type apiDocument struct {
	DocumentNumber  string      `json:"document_number"`
	Title           string      `json:"title"`
	Type            string      `json:"type"`
	PublicationDate string      `json:"publication_date"`
	HTMLURL         string      `json:"html_url"`
	PDFURL          string      `json:"pdf_url"`
	Agencies        []apiAgency `json:"agencies"`
	Citation        string      `json:"citation"`
}

// apiResponse mirrors the top-level API response envelope.
type apiResponse struct {
	Count       int           `json:"count"`
	TotalPages  int           `json:"total_pages"`
	NextPageURL string        `json:"next_page_url"`
	Results     []apiDocument `json:"results"`
}

// FetchPage retrieves one page of documents published within the window.
func (c *Client) FetchPage(ctx context.Context, window fedreg.DateWindow, page int) (*fedreg.DocumentPage, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, fedreg.Errorf(fedreg.EINVALID, "page must be >= 1, got %d", page)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL(window, page), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.baseURL)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode API response: %w", err)
	}

	result := &fedreg.DocumentPage{
		Count:       body.Count,
		TotalPages:  body.TotalPages,
		NextPageURL: body.NextPageURL,
	}
	for _, d := range body.Results {
		doc, err := d.toDocument()
		if err != nil {
			return nil, err
		}
		result.Documents = append(result.Documents, doc)
	}

	return result, nil
}

func (c *Client) pageURL(window fedreg.DateWindow, page int) string {
	params := url.Values{}
	params.Set("conditions[publication_date][gte]", window.From.Format(time.DateOnly))
	params.Set("conditions[publication_date][lte]", window.To.Format(time.DateOnly))
	params.Set("per_page", strconv.Itoa(c.perPage))
	params.Set("page", strconv.Itoa(page))
	return c.baseURL + "?" + params.Encode()
}

func (d apiDocument) toDocument() (*fedreg.Document, error) {
	doc := &fedreg.Document{
		ID:       d.DocumentNumber,
		Title:    d.Title,
		Type:     d.Type,
		HTMLURL:  d.HTMLURL,
		PDFURL:   d.PDFURL,
		Citation: d.Citation,
	}
	if d.PublicationDate != "" {
		date, err := time.Parse(time.DateOnly, d.PublicationDate)
		if err != nil {
			return nil, fmt.Errorf("document %s has malformed publication date %q: %w", d.DocumentNumber, d.PublicationDate, err)
		}
		doc.PublicationDate = date
	}
	for _, a := range d.Agencies {
		doc.Agencies = append(doc.Agencies, fedreg.Agency{ID: a.ID, Name: a.Name})
	}
	return doc, nil
}
