package fedreg

import "context"

// Answer is the outcome of a successful question-answering run.
type Answer struct {
	// Text is the generated answer.
	Text string `json:"text"`

	// SourceContext is the formatted document context the answer was
	// grounded on, suitable for display alongside the answer.
	SourceContext string `json:"sourceContext"`
}

// AnswerService answers natural language questions about stored documents.
// This is the seam a front-end binds to.
type AnswerService interface {
	// AnswerQuery runs the full retrieve-format-generate pipeline for a
	// query. Failures carry a distinguishing code: EINVALID when the query
	// is too short to search, EUNAVAILABLE when the store cannot be
	// reached, ENOTFOUND when no documents match, and EGENERATION when the
	// model call fails.
	AnswerQuery(ctx context.Context, query string) (*Answer, error)
}

// Generator produces a grounded answer from a query and a formatted
// document context by invoking a generative model.
type Generator interface {
	// Generate returns the model's answer text. Failures are returned as
	// EGENERATION errors carrying a human-readable cause; raw transport
	// errors never escape this boundary.
	Generate(ctx context.Context, query, docContext string) (string, error)
}
