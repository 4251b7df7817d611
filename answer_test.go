package docfinder_test

import (
	"testing"
	"time"

	"github.com/fwojciec/docfinder"
	"github.com/fwojciec/docfinder/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembler_Ask(t *testing.T) {
	t.Parallel()

	pages := []docfinder.PageMatch{{
		URL:      "https://docs.example.com/guides",
		Category: "guides",
		Reason:   "Matched category: guides",
	}}
	finder := &mock.PageFinder{
		FindPagesFn: func(question string) []docfinder.PageMatch {
			return pages
		},
	}
	clock := func() time.Time {
		return time.Date(2025, 8, 14, 9, 30, 0, 0, time.UTC)
	}

	assembler := docfinder.NewAssembler(finder, docfinder.WithClock(clock))
	result := assembler.Ask("How Do I Start?")

	require.NotNil(t, result)
	assert.Equal(t, "How Do I Start?", result.Question)
	assert.Equal(t, pages, result.Pages)
	assert.True(t, result.FetchNeeded)
	assert.Equal(t, "2025-08-14T09:30:00Z", result.Timestamp)
}

func TestAssembler_Ask_TimestampIsUTC(t *testing.T) {
	t.Parallel()

	finder := &mock.PageFinder{
		FindPagesFn: func(string) []docfinder.PageMatch { return nil },
	}
	cet := time.FixedZone("CET", 60*60)
	clock := func() time.Time {
		return time.Date(2025, 8, 14, 10, 30, 0, 0, cet)
	}

	assembler := docfinder.NewAssembler(finder, docfinder.WithClock(clock))
	result := assembler.Ask("anything")

	assert.Equal(t, "2025-08-14T09:30:00Z", result.Timestamp)
}

func TestAssembler_FormatPrompt(t *testing.T) {
	t.Parallel()

	assembler := docfinder.NewAssembler(docfinder.FeatBitCatalog())

	t.Run("renders documents in input order", func(t *testing.T) {
		t.Parallel()

		contents := []docfinder.FetchedContent{
			{URL: "https://docs.example.com/a", Content: "Alpha."},
			{URL: "https://docs.example.com/b", Content: "Beta."},
		}

		got := assembler.FormatPrompt("How do I start?", contents)

		want := "Please answer the question based on the following FeatBit official documentation content.\n\n" +
			"Question: How do I start?\n\n" +
			"Official Documentation Content:\n\n" +
			"\n## Document 1: https://docs.example.com/a\n\nAlpha.\n\n---\n" +
			"\n## Document 2: https://docs.example.com/b\n\nBeta.\n\n---\n" +
			"\nAnswer requirements:\n" +
			"1. Answer in English (or match question language)\n" +
			"2. Provide direct answer, do not repeat the question\n" +
			"3. If code is involved, provide runnable code examples\n" +
			"4. Must attach source links at the end of answer\n" +
			"5. If no answer in docs, say \"information not found in official documentation\"\n"
		assert.Equal(t, want, got)
	})

	t.Run("no contents still yields question and requirements", func(t *testing.T) {
		t.Parallel()

		got := assembler.FormatPrompt("Where are the docs?", nil)

		assert.Contains(t, got, "Question: Where are the docs?")
		assert.Contains(t, got, "Answer requirements:")
		assert.NotContains(t, got, "## Document")
	})
}
