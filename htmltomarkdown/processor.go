// Package htmltomarkdown implements a content processor that converts
// fetched HTML to Markdown using the html-to-markdown library.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/crawlkit"
)

// Ensure Processor implements crawlkit.Processor at compile time.
var _ crawlkit.Processor = (*Processor)(nil)

// Processor converts HTML content to Markdown.
type Processor struct {
	conv *converter.Converter
}

// NewProcessor creates a new Processor.
func NewProcessor() *Processor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Processor{conv: conv}
}

// Process transforms HTML content into Markdown. The id identifies the
// resource the content was fetched from and is not used by the
// conversion itself.
func (p *Processor) Process(id string, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", crawlkit.Errorf(crawlkit.EINVALID, "empty HTML input for %q", id)
	}

	result, err := p.conv.ConvertString(content)
	if err != nil {
		return "", err
	}

	return result, nil
}
