package report

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/goliatone/go-adoc/internal/runtimeconfig"
	"github.com/goliatone/go-adoc/pkg/interfaces"
)

// HTMLFormatter renders the Markdown report through goldmark and scrubs the
// result with a bluemonday UGC policy. Raw HTML found in .adoc content is
// never emitted unescaped.
type HTMLFormatter struct {
	markdown *MarkdownFormatter
	engine   goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewHTMLFormatter constructs the HTML formatter.
func NewHTMLFormatter(labels runtimeconfig.LabelsConfig) *HTMLFormatter {
	return &HTMLFormatter{
		markdown: NewMarkdownFormatter(labels),
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Format writes a standalone HTML document in one critical section.
func (f *HTMLFormatter) Format(_ context.Context, sink *Sink, result *interfaces.ScanResult) error {
	body, err := f.Render(result)
	if err != nil {
		return err
	}
	return sink.Print(func(w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
			html.EscapeString(result.Directory), body)
		return err
	})
}

// Render converts the result into sanitised HTML body content.
func (f *HTMLFormatter) Render(result *interfaces.ScanResult) ([]byte, error) {
	source, err := f.markdown.Render(result)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := f.engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("html render: %w", err)
	}
	return f.policy.SanitizeBytes(buf.Bytes()), nil
}
