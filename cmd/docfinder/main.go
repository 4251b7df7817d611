package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docfinder"
	"github.com/fwojciec/docfinder/fetch"
	"github.com/fwojciec/docfinder/gemini"
	"github.com/fwojciec/docfinder/goquery"
	"github.com/fwojciec/docfinder/htmltomarkdown"
	dochttp "github.com/fwojciec/docfinder/http"
	docslog "github.com/fwojciec/docfinder/slog"
	"github.com/fwojciec/docfinder/trafilatura"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docfinder"),
		kong.Description("Match FeatBit questions to official documentation pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Running without arguments is a documented way to ask for usage, so it
	// succeeds instead of failing like a malformed invocation.
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Without a question there is nothing to match; --list-pages is the
	// only mode that works on the catalog alone.
	if cli.Question == "" && !cli.ListPages {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Each run gets an id so the find/fetch/ask log lines of a single
	// invocation can be correlated.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil)).With("run_id", uuid.NewString())
	}

	finder := docslog.NewLoggingFinder(docfinder.FeatBitCatalog(), logger)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Finder:    finder,
		Assembler: docfinder.NewAssembler(finder),
	}

	if cli.Fetch || cli.Answer {
		timeout := cli.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}

		fetcher := dochttp.NewFetcher(dochttp.WithTimeout(timeout))
		defer fetcher.Close()

		concurrency := cli.Concurrency
		if concurrency <= 0 {
			concurrency = 3
		}

		deps.Retriever = &fetch.Retriever{
			Fetcher:   docslog.NewLoggingFetcher(fetcher, logger),
			Extractor: trafilatura.NewExtractor(),
			// The SDK catalog pages live on github.com, where the content
			// worth keeping is the rendered README.
			Extractors: map[string]docfinder.Extractor{
				"github.com": goquery.NewReadmeExtractor(),
			},
			Converter:   htmltomarkdown.NewConverter(),
			RateLimiter: fetch.NewDomainLimiter(1.0),
			Concurrency: concurrency,
		}
	}

	if cli.Answer {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = docslog.NewLoggingAsker(gemini.NewAsker(client), logger)
	}

	cmd := &QueryCmd{
		Question:  cli.Question,
		ListPages: cli.ListPages,
		JSON:      cli.JSON,
		Fetch:     cli.Fetch,
		Answer:    cli.Answer,
	}

	return cmd.Run(deps)
}
