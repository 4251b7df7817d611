// Package gemini provides a docfinder.Asker backed by the Google Gemini API.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/docfinder"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements docfinder.Asker at compile time.
var _ docfinder.Asker = (*Asker)(nil)

// Asker implements docfinder.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client) *Asker {
	return &Asker{client: client}
}

// Ask sends the assembled documentation prompt to Gemini and returns the
// model's answer.
func (a *Asker) Ask(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", docfinder.Errorf(docfinder.EINVALID, "prompt required")
	}

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docfinder.Errorf(docfinder.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The prompt already carries the question, the documentation content, and
// the answer requirements, so the system instruction only fixes the
// assistant's role.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about FeatBit, the open source feature flag service. Answer based only on the documentation provided. If the answer is not in the documentation, say so.",
			}},
		},
		Temperature: &temp,
	}
}
