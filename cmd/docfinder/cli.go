package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docfinder"
	"github.com/fwojciec/docfinder/fetch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Finder    docfinder.PageFinder
	Assembler *docfinder.Assembler

	// Retriever is wired only for --fetch and --answer.
	Retriever *fetch.Retriever

	// Asker is wired only for --answer.
	Asker docfinder.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	ListPages   bool          `help:"List every documentation page URL and exit"`
	JSON        bool          `help:"Emit the match result as JSON"`
	Fetch       bool          `help:"Fetch the matched pages and print the assembled prompt"`
	Answer      bool          `help:"Fetch the matched pages and answer the question with Gemini (requires GEMINI_API_KEY)"`
	Verbose     bool          `short:"v" help:"Log operations to stderr"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Question    string        `arg:"" optional:"" help:"Question to match against the documentation catalog"`
}

// QueryCmd handles the main query operation.
type QueryCmd struct {
	Question  string
	ListPages bool
	JSON      bool
	Fetch     bool
	Answer    bool
}
