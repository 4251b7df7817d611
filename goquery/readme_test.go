package goquery_test

import (
	"testing"

	"github.com/fwojciec/docfinder"
	"github.com/fwojciec/docfinder/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure ReadmeExtractor implements docfinder.Extractor at compile time.
var _ docfinder.Extractor = (*goquery.ReadmeExtractor)(nil)

func TestReadmeExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts readme from repository page", func(t *testing.T) {
		t.Parallel()

		// Current GitHub markup: the README is the article with itemprop=text.
		html := `<!DOCTYPE html>
<html>
<head>
<title>GitHub - featbit/featbit-go-sdk</title>
<meta property="og:title" content="featbit/featbit-go-sdk">
</head>
<body>
<nav aria-label="Repository">Code Issues Pull requests</nav>
<div class="file-tree">
<a href="/featbit/featbit-go-sdk/blob/main/client.go">client.go</a>
<a href="/featbit/featbit-go-sdk/blob/main/go.mod">go.mod</a>
</div>
<div id="readme">
<article class="markdown-body entry-content" itemprop="text">
<h1>FeatBit Server-Side SDK for Go</h1>
<p>Install with <code>go get github.com/featbit/featbit-go-sdk</code>.</p>
</article>
</div>
<footer>© 2024 GitHub</footer>
</body>
</html>`

		ext := goquery.NewReadmeExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "featbit/featbit-go-sdk", result.Title)
		assert.Contains(t, result.ContentHTML, "FeatBit Server-Side SDK for Go")
		assert.Contains(t, result.ContentHTML, "go get github.com/featbit/featbit-go-sdk")
		assert.NotContains(t, result.ContentHTML, "Pull requests")
		assert.NotContains(t, result.ContentHTML, "file-tree")
	})

	t.Run("falls back to markdown-body selector", func(t *testing.T) {
		t.Parallel()

		// Older GitHub markup without itemprop.
		html := `<html>
<head><title>featbit/featbit-js-client-sdk</title></head>
<body>
<div id="readme">
<div class="markdown-body">
<h1>JavaScript Client SDK</h1>
<p>Works in all modern browsers.</p>
</div>
</div>
</body>
</html>`

		ext := goquery.NewReadmeExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "JavaScript Client SDK")
	})

	t.Run("falls back to document title", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<head><title>featbit/featbit-python-sdk</title></head>
<body>
<article itemprop="text"><h1>Python SDK</h1></article>
</body>
</html>`

		ext := goquery.NewReadmeExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "featbit/featbit-python-sdk", result.Title)
	})

	t.Run("returns ENOTFOUND when page has no readme", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="file-tree">only files here</div></body></html>`

		ext := goquery.NewReadmeExtractor()
		_, err := ext.Extract(html)

		require.Error(t, err)
		assert.Equal(t, docfinder.ENOTFOUND, docfinder.ErrorCode(err))
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewReadmeExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, docfinder.EINVALID, docfinder.ErrorCode(err))
	})
}
