package docfinder

import (
	"fmt"
	"strings"
	"time"
)

// QueryResult is the outcome of resolving a question to documentation
// pages. FetchNeeded is always true: this system never retrieves page
// content itself. The JSON field names are part of the CLI's output
// contract.
type QueryResult struct {
	Question    string      `json:"question"`
	Pages       []PageMatch `json:"pages"`
	FetchNeeded bool        `json:"fetch_needed"`
	Timestamp   string      `json:"timestamp"`
}

// FetchedContent pairs a documentation URL with its retrieved content.
// Values are supplied by the caller (or the fetch collaborator); this
// package only reads them when rendering the answer prompt.
type FetchedContent struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Assembler resolves questions against a PageFinder and renders the answer
// prompt for a text model. Both entry points are pure functions of their
// arguments plus the static catalog and are safe for concurrent use.
type Assembler struct {
	finder PageFinder
	now    func() time.Time
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithClock overrides the clock used to stamp query results.
func WithClock(now func() time.Time) AssemblerOption {
	return func(a *Assembler) {
		a.now = now
	}
}

// NewAssembler creates an Assembler over the given finder.
func NewAssembler(finder PageFinder, opts ...AssemblerOption) *Assembler {
	a := &Assembler{
		finder: finder,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ask resolves the question to documentation pages and stamps the result.
// Timestamps are RFC 3339 in UTC.
func (a *Assembler) Ask(question string) *QueryResult {
	return &QueryResult{
		Question:    question,
		Pages:       a.finder.FindPages(question),
		FetchNeeded: true,
		Timestamp:   a.now().UTC().Format(time.RFC3339),
	}
}

// FormatPrompt renders the instruction prompt for a text model from the
// question and the fetched page contents, in input order. It performs no
// network access and no content validation: the output is a deterministic
// function of its arguments. The section order and wording are a
// compatibility contract.
func (a *Assembler) FormatPrompt(question string, contents []FetchedContent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, promptHeader, question)

	for i, content := range contents {
		fmt.Fprintf(&sb, "\n## Document %d: %s\n\n", i+1, content.URL)
		fmt.Fprintf(&sb, "%s\n\n", content.Content)
		sb.WriteString("---\n")
	}

	sb.WriteString(answerRequirements)
	return sb.String()
}

// promptHeader opens the answer prompt and restates the question.
const promptHeader = `Please answer the question based on the following FeatBit official documentation content.

Question: %s

Official Documentation Content:

`

// answerRequirements is the fixed trailing instruction block of the answer
// prompt.
const answerRequirements = `
Answer requirements:
1. Answer in English (or match question language)
2. Provide direct answer, do not repeat the question
3. If code is involved, provide runnable code examples
4. Must attach source links at the end of answer
5. If no answer in docs, say "information not found in official documentation"
`
