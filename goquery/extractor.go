// Package goquery implements link extraction from HTML using the
// goquery library.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/crawlkit"
)

// Ensure Extractor implements crawlkit.LinkExtractor.
var _ crawlkit.LinkExtractor = (*Extractor)(nil)

// DefaultSelector matches every anchor carrying an href attribute.
const DefaultSelector = "a[href]"

// Extractor extracts in-scope links from HTML documents. Relative hrefs
// are resolved against the document's own URL, fragments are stripped,
// and links pointing off-host or back to the document itself are
// dropped. Results preserve document order with duplicates removed.
type Extractor struct {
	selector   string
	pathPrefix string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelector overrides the CSS selector used to find links.
func WithSelector(selector string) Option {
	return func(e *Extractor) {
		e.selector = selector
	}
}

// WithPathPrefix restricts extracted links to those whose path starts
// with the given prefix, e.g. "/docs".
func WithPathPrefix(prefix string) Option {
	return func(e *Extractor) {
		e.pathPrefix = prefix
	}
}

// NewExtractor creates an Extractor with the given options.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{selector: DefaultSelector}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the in-scope link identifiers found in content.
// The id is the URL the content was fetched from; it anchors relative
// reference resolution and the same-host filter.
func (e *Extractor) Extract(id string, content string) ([]string, error) {
	base, err := url.Parse(id)
	if err != nil {
		return nil, crawlkit.Errorf(crawlkit.EINVALID, "invalid document URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, crawlkit.Errorf(crawlkit.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find(e.selector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		if !isSameHost(base, resolved) {
			return
		}

		if e.pathPrefix != "" && !hasPathPrefix(resolved, e.pathPrefix) {
			return
		}

		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}

// resolveURL resolves a relative href against the document URL.
// Returns empty string if the href cannot be parsed or resolves back to
// the document itself (e.g. anchor-only links). Fragments are stripped
// so links differing only by fragment deduplicate.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base
// URL. Exact host matching; subdomains count as different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

func hasPathPrefix(rawURL, prefix string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.HasPrefix(u.Path, prefix)
}
