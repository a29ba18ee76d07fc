package fedreg

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// NoDocumentsSentinel is returned by FormatDocuments for an empty document
// set so the generator never receives an empty context block.
const NoDocumentsSentinel = "No relevant documents found."

// DefaultTitleBudget is the character budget for titles in formatted context.
const DefaultTitleBudget = 500

// notAvailable marks missing fields in formatted context.
const notAvailable = "N/A"

// FormatDocuments renders documents into a grounding context block for the
// generative model. Each document becomes a delimited block with a 1-based
// ordinal, a budget-truncated title, publication date, agency names, and the
// canonical URL. Blocks appear in input order, separated by blank lines.
// A titleBudget <= 0 uses DefaultTitleBudget.
func FormatDocuments(docs []*Document, titleBudget int) string {
	if len(docs) == 0 {
		return NoDocumentsSentinel
	}
	if titleBudget <= 0 {
		titleBudget = DefaultTitleBudget
	}

	blocks := make([]string, 0, len(docs))
	for i, doc := range docs {
		var sb strings.Builder
		fmt.Fprintf(&sb, "--- Document %d ---\n", i+1)
		fmt.Fprintf(&sb, "Title: %s\n", Shorten(doc.Title, titleBudget))
		fmt.Fprintf(&sb, "Date: %s\n", formatDate(doc.PublicationDate))
		fmt.Fprintf(&sb, "Agencies: %s\n", formatAgencies(doc.Agencies))
		fmt.Fprintf(&sb, "URL: %s", formatURL(doc))
		blocks = append(blocks, sb.String())
	}

	return strings.Join(blocks, "\n\n")
}

func formatDate(d time.Time) string {
	if d.IsZero() {
		return notAvailable
	}
	return d.Format(time.DateOnly)
}

func formatAgencies(agencies []Agency) string {
	names := make([]string, 0, len(agencies))
	for _, a := range agencies {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	if len(names) == 0 {
		return notAvailable
	}
	return strings.Join(names, ", ")
}

func formatURL(doc *Document) string {
	switch {
	case doc.HTMLURL != "":
		return doc.HTMLURL
	case doc.PDFURL != "":
		return doc.PDFURL
	default:
		return notAvailable
	}
}

// shortenMarker is appended to truncated text.
const shortenMarker = "..."

// Shorten collapses whitespace in s and truncates it to at most budget
// characters, marker included. Truncation happens at a word boundary when
// one fits within the budget; a single overlong word is cut mid-word rather
// than exceeding the budget.
func Shorten(s string, budget int) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	if len(collapsed) <= budget {
		return collapsed
	}

	cut := budget - len(shortenMarker)
	if cut <= 0 {
		return shortenMarker[:budget]
	}

	truncated := collapsed[:cut]
	if i := strings.LastIndexByte(truncated, ' '); i > 0 {
		truncated = truncated[:i]
	} else {
		// No boundary fits; cut mid-word but never mid-rune.
		for len(truncated) > 0 {
			r, size := utf8.DecodeLastRuneInString(truncated)
			if r != utf8.RuneError || size > 1 {
				break
			}
			truncated = truncated[:len(truncated)-1]
		}
	}
	return truncated + shortenMarker
}
