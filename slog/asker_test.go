package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docfinder/mock"
	docfinderslog "github.com/fwojciec/docfinder/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAsker_Ask(t *testing.T) {
	t.Parallel()

	t.Run("logs prompt and answer sizes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Asker{
			AskFn: func(ctx context.Context, prompt string) (string, error) {
				return "use docker compose", nil
			},
		}

		asker := docfinderslog.NewLoggingAsker(inner, logger)
		answer, err := asker.Ask(context.Background(), "How do I deploy FeatBit?")

		require.NoError(t, err)
		assert.Equal(t, "use docker compose", answer)
		output := buf.String()
		assert.Contains(t, output, "ask")
		assert.Contains(t, output, "prompt_bytes=24")
		assert.Contains(t, output, "answer_bytes=18")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Asker{
			AskFn: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("api quota exceeded")
			},
		}

		asker := docfinderslog.NewLoggingAsker(inner, logger)
		_, err := asker.Ask(context.Background(), "any prompt")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"api quota exceeded\"")
	})
}
