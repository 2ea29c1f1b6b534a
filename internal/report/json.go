package report

import (
	"context"
	"io"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-adoc/pkg/interfaces"
)

// JSONFormatter writes the whole scan as a single JSON document.
type JSONFormatter struct{}

// NewJSONFormatter constructs the JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonReport struct {
	Directory string     `json:"directory"`
	Files     []jsonFile `json:"files"`
}

type jsonFile struct {
	Worker           int      `json:"worker"`
	Path             string   `json:"path"`
	Title            string   `json:"title,omitempty"`
	Headers          []string `json:"headers"`
	Paragraphs       []string `json:"paragraphs"`
	OrderedListItems []string `json:"ordered_list_items"`
	Lines            int      `json:"lines"`
	Checksum         string   `json:"checksum"`
	Error            string   `json:"error,omitempty"`
}

// Format encodes the result in one critical section.
func (f *JSONFormatter) Format(_ context.Context, sink *Sink, result *interfaces.ScanResult) error {
	payload := jsonReport{
		Directory: result.Directory,
		Files:     make([]jsonFile, 0, len(result.Outcomes)),
	}
	for _, outcome := range result.Outcomes {
		doc := outcome.Document
		file := jsonFile{
			Worker:           outcome.Index,
			Path:             doc.Path,
			Title:            doc.Title,
			Headers:          nonNil(doc.Headers),
			Paragraphs:       nonNil(doc.Paragraphs),
			OrderedListItems: nonNil(doc.OrderedListItems),
			Lines:            doc.Lines,
			Checksum:         formatChecksum(doc.Checksum),
		}
		if outcome.Err != nil {
			file.Error = outcome.Err.Error()
		}
		payload.Files = append(payload.Files, file)
	}

	return sink.Print(func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	})
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func formatChecksum(sum uint64) string {
	const hex = "0123456789abcdef"
	var buf [16]byte
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = hex[sum&0xf]
		sum >>= 4
	}
	return string(buf[:])
}
