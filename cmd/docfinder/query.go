package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fwojciec/docfinder"
	"github.com/fwojciec/docfinder/fetch"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	// --list-pages ignores the question entirely.
	if c.ListPages {
		return c.runListPages(deps)
	}

	result := deps.Assembler.Ask(c.Question)

	if c.JSON {
		return c.runJSON(deps, result)
	}
	if c.Answer {
		return c.runAnswer(deps, result)
	}
	if c.Fetch {
		return c.runFetch(deps, result)
	}

	return c.runListing(deps, result)
}

func (c *QueryCmd) runListPages(deps *Dependencies) error {
	urls := deps.Finder.AllPageURLs()
	sort.Strings(urls)

	fmt.Fprintf(deps.Stdout, "Total %d documentation pages:\n\n", len(urls))
	for _, u := range urls {
		fmt.Fprintf(deps.Stdout, "  %s\n", u)
	}

	return nil
}

func (c *QueryCmd) runJSON(deps *Dependencies, result *docfinder.QueryResult) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}

func (c *QueryCmd) runListing(deps *Dependencies, result *docfinder.QueryResult) error {
	fmt.Fprintf(deps.Stdout, "\nQuestion: %s\n\n", result.Question)
	fmt.Fprintf(deps.Stdout, "Need to fetch %d pages:\n\n", len(result.Pages))

	for i, page := range result.Pages {
		fmt.Fprintf(deps.Stdout, "%d. [%s] %s\n", i+1, page.Category, page.URL)
		fmt.Fprintf(deps.Stdout, "   Reason: %s\n\n", page.Reason)
	}

	fmt.Fprintln(deps.Stdout, "\nNext steps:")
	fmt.Fprintln(deps.Stdout, "1. Run again with --fetch to print the documentation as an answer prompt")
	fmt.Fprintln(deps.Stdout, "2. Run again with --answer to have Gemini answer from the fetched pages")

	return nil
}

func (c *QueryCmd) runFetch(deps *Dependencies, result *docfinder.QueryResult) error {
	contents, err := c.retrieve(deps, result)
	if err != nil {
		return err
	}

	fmt.Fprint(deps.Stdout, deps.Assembler.FormatPrompt(result.Question, contents))
	return nil
}

func (c *QueryCmd) runAnswer(deps *Dependencies, result *docfinder.QueryResult) error {
	contents, err := c.retrieve(deps, result)
	if err != nil {
		return err
	}

	prompt := deps.Assembler.FormatPrompt(result.Question, contents)

	answer, err := deps.Asker.Ask(deps.Ctx, prompt)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docfinder.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}

// retrieve fetches the matched pages. Progress goes to stderr so stdout
// stays clean for the prompt or answer.
func (c *QueryCmd) retrieve(deps *Dependencies, result *docfinder.QueryResult) ([]docfinder.FetchedContent, error) {
	urls := make([]string, 0, len(result.Pages))
	for _, page := range result.Pages {
		urls = append(urls, page.URL)
	}

	progress := func(event fetch.ProgressEvent) {
		switch event.Type {
		case fetch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", event.URL, event.Error)
		case fetch.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", event.Completed, event.Total, event.URL)
		}
	}

	contents, err := deps.Retriever.Retrieve(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching: %s\n", docfinder.ErrorMessage(err))
		return nil, err
	}

	return contents, nil
}
