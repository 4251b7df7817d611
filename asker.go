package docfinder

import "context"

// Asker answers a fully assembled documentation prompt using a text model.
type Asker interface {
	// Ask sends the prompt to the model and returns its answer.
	// The prompt should come from Assembler.FormatPrompt so the model
	// receives the question together with the fetched page contents.
	Ask(ctx context.Context, prompt string) (string, error)
}
