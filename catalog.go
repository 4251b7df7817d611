package docfinder

import (
	"fmt"
	"net/url"
	"strings"
)

// PageMatch is one resolved documentation page plus metadata explaining why
// it matched. Matches are created fresh per query and carry no identity.
type PageMatch struct {
	URL      string `json:"url"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// PageFinder locates documentation pages relevant to a free-text question.
type PageFinder interface {
	// FindPages returns the pages relevant to the question. The result is
	// never empty: when nothing matches, it contains the fallback page.
	FindPages(question string) []PageMatch

	// AllPageURLs returns every page URL in the catalog, deduplicated.
	// Order is unspecified; callers sort for display.
	AllPageURLs() []string
}

// CategoryRule pairs a category in the page table with the lexicon tag whose
// trigger phrases select it. Rules run in declaration order and the first
// hit wins.
type CategoryRule struct {
	Category string
	Tag      string
}

// CatalogConfig holds the static data needed to construct a Catalog.
type CatalogConfig struct {
	// Pages maps category -> subtopic -> URL.
	Pages map[string]map[string]string

	// Lexicon maps topic-tag -> lowercase trigger phrases. A phrase matches
	// when it appears as a substring of the lowercased question.
	Lexicon map[string][]string

	// Platforms lists the lexicon tags treated as platforms, in detection
	// order.
	Platforms []string

	// Rules lists the category predicates in priority order.
	Rules []CategoryRule

	// Fallback is returned when no category or platform resolves to a page.
	Fallback PageMatch
}

// Catalog holds the static category/subtopic/URL table and the keyword
// lexicon used to match questions against it. It is immutable after
// construction and safe for concurrent use.
type Catalog struct {
	pages     map[string]map[string]string
	lexicon   map[string][]string
	platforms []string
	rules     []CategoryRule
	fallback  PageMatch
}

// Ensure Catalog implements PageFinder at compile time.
var _ PageFinder = (*Catalog)(nil)

// The subtopic a category falls back to when no platform page exists.
const overviewSubtopic = "overview"

// NewCatalog constructs a Catalog from cfg, validating the data first.
// The catalog is static, so malformed data (empty categories, relative URLs,
// uppercase trigger phrases, rules referencing unknown tags or categories)
// is a startup bug: it returns EINVALID here rather than surfacing at query
// time.
func NewCatalog(cfg CatalogConfig) (*Catalog, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &Catalog{
		pages:     cfg.Pages,
		lexicon:   cfg.Lexicon,
		platforms: cfg.Platforms,
		rules:     cfg.Rules,
		fallback:  cfg.Fallback,
	}, nil
}

// FindPages resolves a question to documentation pages. Matching is
// case-insensitive substring search; the original casing of the question is
// never altered. The result always contains at least one page.
//
// Platform detection is first-match: the platform tags are tried in their
// declared order and detection stops at the first tag with a matching
// phrase, so a question naming several platforms resolves to whichever tag
// comes first. Category detection runs the rules in priority order the same
// way. This ordering is a behavioral contract, not a scoring system.
func (c *Catalog) FindPages(question string) []PageMatch {
	q := strings.ToLower(question)

	platform := c.detectPlatform(q)
	category := c.detectCategory(q)

	var matches []PageMatch
	if category != "" {
		subtopics := c.pages[category]
		if platform != "" {
			if pageURL, ok := subtopics[platform]; ok {
				matches = append(matches, PageMatch{
					URL:      pageURL,
					Category: category,
					Reason:   fmt.Sprintf("Matched category: %s, platform: %s", category, platform),
				})
			}
		}
		if len(matches) == 0 {
			// Categories without an overview entry produce no match here
			// and fall through to the fallback page.
			if pageURL, ok := subtopics[overviewSubtopic]; ok {
				matches = append(matches, PageMatch{
					URL:      pageURL,
					Category: category,
					Reason:   "Matched category: " + category,
				})
			}
		}
	}

	if len(matches) == 0 {
		matches = append(matches, c.fallback)
	}

	return matches
}

// AllPageURLs returns every subtopic URL across all categories with
// duplicates removed (some subtopics, e.g. the kubernetes and helm charts,
// intentionally share a URL). Order is unspecified.
func (c *Catalog) AllPageURLs() []string {
	seen := make(map[string]bool)
	var urls []string
	for _, subtopics := range c.pages {
		for _, pageURL := range subtopics {
			if !seen[pageURL] {
				seen[pageURL] = true
				urls = append(urls, pageURL)
			}
		}
	}
	return urls
}

// detectPlatform returns the first platform tag with a trigger phrase
// present in q, or "" when none match.
func (c *Catalog) detectPlatform(q string) string {
	for _, tag := range c.platforms {
		if containsAny(q, c.lexicon[tag]) {
			return tag
		}
	}
	return ""
}

// detectCategory returns the category of the first rule with a trigger
// phrase present in q, or "" when none match.
func (c *Catalog) detectCategory(q string) string {
	for _, rule := range c.rules {
		if containsAny(q, c.lexicon[rule.Tag]) {
			return rule.Category
		}
	}
	return ""
}

// containsAny reports whether any phrase appears as a substring of q.
func containsAny(q string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}

func validateConfig(cfg CatalogConfig) error {
	if len(cfg.Pages) == 0 {
		return Errorf(EINVALID, "catalog requires at least one category")
	}
	for category, subtopics := range cfg.Pages {
		if len(subtopics) == 0 {
			return Errorf(EINVALID, "category %q has no subtopics", category)
		}
		for subtopic, pageURL := range subtopics {
			if !isAbsoluteHTTP(pageURL) {
				return Errorf(EINVALID, "category %q subtopic %q: URL %q is not absolute http(s)", category, subtopic, pageURL)
			}
		}
	}
	for tag, phrases := range cfg.Lexicon {
		if len(phrases) == 0 {
			return Errorf(EINVALID, "lexicon tag %q has no trigger phrases", tag)
		}
		for _, phrase := range phrases {
			if phrase == "" {
				return Errorf(EINVALID, "lexicon tag %q has an empty trigger phrase", tag)
			}
			if phrase != strings.ToLower(phrase) {
				return Errorf(EINVALID, "lexicon tag %q: trigger phrase %q must be lowercase", tag, phrase)
			}
		}
	}
	for _, platform := range cfg.Platforms {
		if _, ok := cfg.Lexicon[platform]; !ok {
			return Errorf(EINVALID, "platform tag %q missing from lexicon", platform)
		}
	}
	for _, rule := range cfg.Rules {
		if _, ok := cfg.Lexicon[rule.Tag]; !ok {
			return Errorf(EINVALID, "category rule %q references unknown lexicon tag %q", rule.Category, rule.Tag)
		}
		if _, ok := cfg.Pages[rule.Category]; !ok {
			return Errorf(EINVALID, "category rule %q has no entry in the page table", rule.Category)
		}
	}
	if !isAbsoluteHTTP(cfg.Fallback.URL) {
		return Errorf(EINVALID, "fallback URL %q is not absolute http(s)", cfg.Fallback.URL)
	}
	return nil
}

// isAbsoluteHTTP reports whether raw parses as an absolute http or https URL.
func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
