package fedreg_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/Sravan-create/fedreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormatDocuments(t *testing.T) {
	t.Parallel()

	t.Run("formats single document", func(t *testing.T) {
		t.Parallel()

		docs := []*fedreg.Document{{
			ID:              "2024-09233",
			Title:           "EPA Clean Air Rule",
			PublicationDate: date("2024-05-01"),
			HTMLURL:         "https://www.federalregister.gov/d/2024-09233",
			Agencies: []fedreg.Agency{
				{Name: "Environmental Protection Agency"},
			},
		}}

		result := fedreg.FormatDocuments(docs, 0)

		expected := "--- Document 1 ---\n" +
			"Title: EPA Clean Air Rule\n" +
			"Date: 2024-05-01\n" +
			"Agencies: Environmental Protection Agency\n" +
			"URL: https://www.federalregister.gov/d/2024-09233"
		assert.Equal(t, expected, result)
	})

	t.Run("one block per document in input order", func(t *testing.T) {
		t.Parallel()

		docs := []*fedreg.Document{
			{Title: "First Rule"},
			{Title: "Second Rule"},
			{Title: "Third Rule"},
		}

		result := fedreg.FormatDocuments(docs, 0)

		blocks := strings.Split(result, "\n\n")
		require.Len(t, blocks, 3)
		assert.Contains(t, blocks[0], "--- Document 1 ---")
		assert.Contains(t, blocks[0], "First Rule")
		assert.Contains(t, blocks[1], "--- Document 2 ---")
		assert.Contains(t, blocks[1], "Second Rule")
		assert.Contains(t, blocks[2], "--- Document 3 ---")
		assert.Contains(t, blocks[2], "Third Rule")
	})

	t.Run("missing fields render as N/A", func(t *testing.T) {
		t.Parallel()

		docs := []*fedreg.Document{{Title: "Untitled Rule"}}

		result := fedreg.FormatDocuments(docs, 0)

		assert.Contains(t, result, "Date: N/A")
		assert.Contains(t, result, "Agencies: N/A")
		assert.Contains(t, result, "URL: N/A")
	})

	t.Run("joins agency names with commas", func(t *testing.T) {
		t.Parallel()

		docs := []*fedreg.Document{{
			Title: "Joint Rule",
			Agencies: []fedreg.Agency{
				{Name: "Environmental Protection Agency"},
				{Name: "Department of Energy"},
			},
		}}

		result := fedreg.FormatDocuments(docs, 0)

		assert.Contains(t, result, "Agencies: Environmental Protection Agency, Department of Energy")
	})

	t.Run("falls back to PDF URL when HTML URL missing", func(t *testing.T) {
		t.Parallel()

		docs := []*fedreg.Document{{
			Title:  "PDF Only Rule",
			PDFURL: "https://www.govinfo.gov/content/pkg/FR-2024-05-01.pdf",
		}}

		result := fedreg.FormatDocuments(docs, 0)

		assert.Contains(t, result, "URL: https://www.govinfo.gov/content/pkg/FR-2024-05-01.pdf")
	})

	t.Run("empty input returns sentinel verbatim", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "No relevant documents found.", fedreg.FormatDocuments(nil, 0))
		assert.Equal(t, "No relevant documents found.", fedreg.FormatDocuments([]*fedreg.Document{}, 0))
	})

	t.Run("truncates long titles to budget", func(t *testing.T) {
		t.Parallel()

		docs := []*fedreg.Document{{
			Title: strings.Repeat("regulation ", 100),
		}}

		result := fedreg.FormatDocuments(docs, 50)

		line := strings.Split(result, "\n")[1]
		title := strings.TrimPrefix(line, "Title: ")
		assert.LessOrEqual(t, len(title), 50)
		assert.True(t, strings.HasSuffix(title, "..."))
	})
}

func TestShorten(t *testing.T) {
	t.Parallel()

	t.Run("returns short text unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "EPA Clean Air Rule", fedreg.Shorten("EPA Clean Air Rule", 500))
	})

	t.Run("collapses internal whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "EPA Clean Air", fedreg.Shorten("EPA\n Clean\t\tAir", 500))
	})

	t.Run("truncates at word boundary with marker", func(t *testing.T) {
		t.Parallel()

		got := fedreg.Shorten("Air Plan Approval Designation of Areas for Quality Planning", 30)

		assert.Equal(t, "Air Plan Approval...", got)
		assert.LessOrEqual(t, len(got), 30)
	})

	t.Run("never exceeds budget including marker", func(t *testing.T) {
		t.Parallel()

		for _, budget := range []int{10, 25, 47, 100} {
			got := fedreg.Shorten(strings.Repeat("word ", 50), budget)
			assert.LessOrEqual(t, len(got), budget)
			assert.True(t, strings.HasSuffix(got, "..."))
		}
	})

	t.Run("never splits a multibyte rune", func(t *testing.T) {
		t.Parallel()

		got := fedreg.Shorten(strings.Repeat("é", 40), 10)

		assert.True(t, utf8.ValidString(got))
		assert.LessOrEqual(t, len(got), 10)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("cuts mid-word when no boundary fits", func(t *testing.T) {
		t.Parallel()

		got := fedreg.Shorten("Antidisestablishmentarianism", 10)

		assert.Equal(t, "Antidis...", got)
	})
}
