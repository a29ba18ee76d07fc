// Package fedreg provides a local question-answering tool for United States
// Federal Register documents. Documents are ingested from the Federal
// Register API into a local store, retrieved by keyword match, and passed as
// grounding context to a generative model that answers natural language
// questions about them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, federalregister/).
package fedreg
