// Package trafilatura implements a content processor that strips
// boilerplate from HTML pages using the go-trafilatura library.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/crawlkit"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Processor implements crawlkit.Processor at compile time.
var _ crawlkit.Processor = (*Processor)(nil)

// Processor extracts the main content from HTML, discarding
// navigation, sidebars and footers. The output is the extracted
// content rendered back to HTML, so it composes with downstream
// processors such as the Markdown converter.
type Processor struct{}

// NewProcessor creates a new Processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Process returns the main content of the page as HTML.
func (p *Processor) Process(id string, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", crawlkit.Errorf(crawlkit.EINVALID, "empty HTML input for %q", id)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(content), opts)
	if err != nil {
		return "", err
	}

	if result.ContentNode == nil {
		return "", crawlkit.Errorf(crawlkit.EINVALID, "no extractable content in %q", id)
	}

	return renderNode(result.ContentNode)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
