// Package gemini provides a fedreg.Generator backed by Google Gemini.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sravan-create/fedreg"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for answer generation.
const DefaultModel = "gemini-2.5-flash"

// DefaultTimeout bounds a single generation run, retries included.
// The model call must never hang a query indefinitely.
const DefaultTimeout = 60 * time.Second

// DefaultRetryDelays returns the backoff delays for transient model
// failures: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure Generator implements fedreg.Generator at compile time.
var _ fedreg.Generator = (*Generator)(nil)

// Generator implements fedreg.Generator using Google Gemini.
type Generator struct {
	client      *genai.Client
	model       string
	timeout     time.Duration
	retryDelays []time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithModel overrides the generation model.
func WithModel(model string) Option {
	return func(g *Generator) { g.model = model }
}

// WithTimeout overrides the overall generation timeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

// WithRetryDelays overrides the backoff delays. Useful for fast tests.
func WithRetryDelays(delays []time.Duration) Option {
	return func(g *Generator) { g.retryDelays = delays }
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, opts ...Option) *Generator {
	g := &Generator{
		client:      client,
		model:       DefaultModel,
		timeout:     DefaultTimeout,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate answers the query grounded on the formatted document context.
// Transient model failures are retried with backoff; malformed-request
// failures are not. Every failure surfaces as an EGENERATION error with a
// human-readable cause.
func (g *Generator) Generate(ctx context.Context, query, docContext string) (string, error) {
	if query == "" {
		return "", fedreg.Errorf(fedreg.EINVALID, "query required")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := BuildConfig(query, docContext)
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: query}},
	}}

	var lastErr error
	for attempt := 0; attempt <= len(g.retryDelays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", generationError(ctx.Err())
			case <-time.After(g.retryDelays[attempt-1]):
			}
		}

		result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
		if err == nil {
			if result == nil || result.Text() == "" {
				return "", fedreg.Errorf(fedreg.EGENERATION, "model returned an empty response")
			}
			return result.Text(), nil
		}

		lastErr = err
		if !retryable(err) {
			break
		}
	}

	return "", generationError(lastErr)
}

// retryable reports whether a model call failure is worth retrying.
// Malformed requests and other client-side API errors are permanent;
// rate limiting and server-side failures are transient.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 {
			return true
		}
		return apiErr.Code >= 500
	}
	// Connectivity failures carry no API status.
	return true
}

// generationError converts a failure into the EGENERATION outcome with a
// diagnostic cause. The raw error never reaches the caller.
func generationError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fedreg.Errorf(fedreg.EGENERATION, "model call timed out")
	case errors.Is(err, context.Canceled):
		return fedreg.Errorf(fedreg.EGENERATION, "model call canceled")
	default:
		return fedreg.Errorf(fedreg.EGENERATION, "model call failed: %v", err)
	}
}

// BuildConfig returns the GenerateContentConfig for a query. The system
// instruction embeds the query and the full document context; the low
// temperature favors factual grounding over creativity.
func BuildConfig(query, docContext string) *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: BuildSystemInstruction(query, docContext)}},
		},
		Temperature: &temp,
	}
}

// BuildSystemInstruction builds the grounding instruction for a query.
func BuildSystemInstruction(query, docContext string) string {
	return fmt.Sprintf(`You are analyzing United States Federal Register documents to answer: %s

Use only the information in the documents below. If the documents do not contain the answer, say so.

%s`, query, docContext)
}
