package report

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// RenderHTML converts the Markdown report into HTML for web delivery.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ValidateMarkdown checks the report parses as Markdown. Goldmark is very
// permissive, so this is a basic sanity gate before delivery.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	doc := parser.Parse(reader)
	return doc != nil
}
