package report

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-adoc/internal/runtimeconfig"
	"github.com/goliatone/go-adoc/pkg/interfaces"
)

// MarkdownFormatter renders each file as a Markdown section.
type MarkdownFormatter struct {
	labels runtimeconfig.LabelsConfig
}

// NewMarkdownFormatter constructs a formatter using the given section labels.
func NewMarkdownFormatter(labels runtimeconfig.LabelsConfig) *MarkdownFormatter {
	return &MarkdownFormatter{labels: labelsOrDefault(labels)}
}

// Format prints one Markdown section per outcome.
func (f *MarkdownFormatter) Format(_ context.Context, sink *Sink, result *interfaces.ScanResult) error {
	for _, outcome := range result.Outcomes {
		err := sink.Print(func(w io.Writer) error {
			return f.writeSection(w, outcome)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Render returns the Markdown document for the full result.
func (f *MarkdownFormatter) Render(result *interfaces.ScanResult) ([]byte, error) {
	var buf bytes.Buffer
	for _, outcome := range result.Outcomes {
		if err := f.writeSection(&buf, outcome); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (f *MarkdownFormatter) writeSection(w io.Writer, outcome interfaces.ScanOutcome) error {
	doc := outcome.Document
	bw := bufio.NewWriter(w)

	bw.WriteString("## " + f.labels.Worker + " #" + strconv.Itoa(outcome.Index) + ": ")
	bw.WriteString("`" + strings.ReplaceAll(doc.Path, "`", "'") + "`\n\n")
	if doc.Title != "" {
		bw.WriteString("_" + escapeMarkdown(doc.Title) + "_\n\n")
	}

	bw.WriteString("### " + f.labels.Headers + "\n\n")
	for _, header := range doc.Headers {
		bw.WriteString("- " + escapeMarkdown(header) + "\n")
	}
	if len(doc.Headers) > 0 {
		bw.WriteString("\n")
	}

	bw.WriteString("### " + f.labels.Paragraphs + "\n\n")
	for _, paragraph := range doc.Paragraphs {
		bw.WriteString(escapeMarkdown(paragraph) + "\n\n")
	}

	bw.WriteString("### " + f.labels.OrderedLists + "\n\n")
	for i, item := range doc.OrderedListItems {
		bw.WriteString(strconv.Itoa(i+1) + ". " + escapeMarkdown(item) + "\n")
	}
	if len(doc.OrderedListItems) > 0 {
		bw.WriteString("\n")
	}

	bw.WriteString("---\n\n")
	return bw.Flush()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"|", `\|`,
	"&", `\&`,
)

// orderedMarker matches a line start that Markdown would read as an ordered
// list marker.
var orderedMarker = regexp.MustCompile(`^(\d+)([.)])`)

// escapeMarkdown renders value as literal text on a line of its own. Inline
// syntax is backslash-escaped, a leading block marker (bullet, rule, setext
// underline, fence, ordered marker) is neutralised, and leading whitespace
// becomes non-breaking spaces so it cannot open an indented code block.
func escapeMarkdown(value string) string {
	rest := strings.TrimLeft(value, " \t")
	indent := value[:len(value)-len(rest)]

	var sb strings.Builder
	for _, r := range indent {
		if r == '\t' {
			sb.WriteString(strings.Repeat("&nbsp;", 4))
			continue
		}
		sb.WriteString("&nbsp;")
	}

	escaped := markdownEscaper.Replace(rest)
	switch {
	case escaped == "":
	case strings.ContainsRune("-+=~", rune(escaped[0])):
		sb.WriteByte('\\')
	case orderedMarker.MatchString(escaped):
		escaped = orderedMarker.ReplaceAllString(escaped, `$1\$2`)
	}
	sb.WriteString(escaped)
	return sb.String()
}
