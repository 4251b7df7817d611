package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/docfinder"
	"github.com/fwojciec/docfinder/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements docfinder.Extractor at compile time.
var _ docfinder.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Deployment Options - FeatBit</title>
<meta property="og:title" content="Deployment Options">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Deployment Options</h1>
<p>FeatBit can be deployed with Docker Compose or Kubernetes.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Connect an SDK</title></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Connect an SDK</h1>
<p>Every SDK needs an environment secret to connect to FeatBit.</p>
<pre><code>client, err := featbit.NewClient(envSecret)</code></pre>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "environment secret")
		assert.Contains(t, result.ContentHTML, "featbit.NewClient")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Targeting Rules</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/feature-flags">Feature Flags</a></li>
<li><a href="/installation">Installation</a></li>
</ul>
</nav>
<main>
<h1>Targeting Rules</h1>
<p>Rules decide which users receive which flag variation.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "which flag variation")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Percentage Rollouts</title></head>
<body>
<article>
<h1>Percentage Rollouts</h1>
<p>Roll a flag out gradually to a growing share of users.</p>
</article>
<footer>
<p>Copyright 2024 Example Corp</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "growing share of users")
		assert.NotContains(t, result.ContentHTML, "Copyright 2024 Example Corp")
	})

	t.Run("handles GitBook-style documentation", func(t *testing.T) {
		t.Parallel()

		// Simplified structure of a docs.featbit.co page
		html := `<!DOCTYPE html>
<html>
<head>
<title>Docker Compose | FeatBit</title>
<meta property="og:title" content="Docker Compose">
</head>
<body>
<header class="site-header">
<a href="/">FeatBit</a>
<a href="/installation">Installation</a>
</header>
<div class="sidebar">
<ul>
<li><a href="/installation/deployment-options">Deployment Options</a></li>
<li><a href="/installation/docker-compose">Docker Compose</a></li>
</ul>
</div>
<main>
<article>
<h1>Docker Compose</h1>
<p>The fastest way to try FeatBit is docker compose up on a single host.</p>
<h2>Prerequisites</h2>
<p>Docker Engine 20.10 or later must be installed.</p>
</article>
</main>
<footer class="site-footer">
<p>Powered by GitBook</p>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "docker compose up")
		assert.Contains(t, result.ContentHTML, "Prerequisites")
	})

	t.Run("preserves code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Go SDK</title></head>
<body>
<article>
<h1>Go SDK</h1>
<p>Initialize the client:</p>
<pre><code class="language-go">package main

import "fmt"

func main() {
    fmt.Println("flag evaluated")
}
</code></pre>
<p>And here is inline code: <code>go run main.go</code></p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "fmt.Println")
		assert.Contains(t, result.ContentHTML, "flag evaluated")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
