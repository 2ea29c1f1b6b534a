package report

import (
	"bufio"
	"context"
	"io"
	"strconv"

	"github.com/goliatone/go-adoc/internal/runtimeconfig"
	"github.com/goliatone/go-adoc/pkg/interfaces"
)

// TextFormatter reproduces the classified lines literally, one block per
// file:
//
//	Worker #1: File docs/a.adoc
//	File: docs/a.adoc
//	Headers:
//	...
//
//	Paragraphs:
//	...
//
//	Ordered lists:
//	...
//	---------------------------------------------
type TextFormatter struct {
	labels runtimeconfig.LabelsConfig
}

// NewTextFormatter constructs the default console formatter.
func NewTextFormatter(labels runtimeconfig.LabelsConfig) *TextFormatter {
	return &TextFormatter{labels: labelsOrDefault(labels)}
}

// Format prints each outcome as its own critical section on the sink.
func (f *TextFormatter) Format(_ context.Context, sink *Sink, result *interfaces.ScanResult) error {
	for _, outcome := range result.Outcomes {
		err := sink.Print(func(w io.Writer) error {
			return f.writeBlock(w, outcome)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) writeBlock(w io.Writer, outcome interfaces.ScanOutcome) error {
	doc := outcome.Document
	bw := bufio.NewWriter(w)

	bw.WriteString(f.labels.Worker + " #")
	bw.WriteString(strconv.Itoa(outcome.Index))
	bw.WriteString(": " + f.labels.File + " " + doc.Path + "\n")
	bw.WriteString(f.labels.File + ": " + doc.Path + "\n")

	writeSection(bw, f.labels.Headers, doc.Headers)
	bw.WriteString("\n")
	writeSection(bw, f.labels.Paragraphs, doc.Paragraphs)
	bw.WriteString("\n")
	writeSection(bw, f.labels.OrderedLists, doc.OrderedListItems)
	bw.WriteString(f.labels.Separator + "\n")

	return bw.Flush()
}

func writeSection(bw *bufio.Writer, label string, lines []string) {
	bw.WriteString(label + ":\n")
	for _, line := range lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
}
