package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-adoc/internal/logging"
	"github.com/goliatone/go-adoc/internal/runtimeconfig"
	"github.com/goliatone/go-adoc/pkg/interfaces"
)

const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Formatter renders a completed scan into the sink.
type Formatter interface {
	Format(ctx context.Context, sink *Sink, result *interfaces.ScanResult) error
}

// Options configures a Reporter.
type Options struct {
	Format string
	Labels runtimeconfig.LabelsConfig
	Logger interfaces.Logger
}

// Reporter prints a scan result: diagnostics first, then one block per file
// in the order the outcomes are stored.
type Reporter struct {
	format    string
	formatter Formatter
	logger    interfaces.Logger
}

// New constructs a Reporter for the requested format ("text" when empty).
func New(opts Options) (*Reporter, error) {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = FormatText
	}

	var formatter Formatter
	switch format {
	case FormatText:
		formatter = NewTextFormatter(opts.Labels)
	case FormatJSON:
		formatter = NewJSONFormatter()
	case FormatMarkdown:
		formatter = NewMarkdownFormatter(opts.Labels)
	case FormatHTML:
		formatter = NewHTMLFormatter(opts.Labels)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, opts.Format)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Reporter{format: format, formatter: formatter, logger: logger}, nil
}

// Format returns the normalised format name.
func (r *Reporter) Format() string {
	return r.format
}

// Report writes one diagnostic per failed outcome, then the formatted output.
func (r *Reporter) Report(ctx context.Context, sink *Sink, result *interfaces.ScanResult) error {
	if result == nil {
		return errors.New("report: scan result is nil")
	}
	for _, outcome := range result.Outcomes {
		if outcome.Err != nil {
			sink.Diagnose(outcome.Err)
		}
	}

	if err := r.formatter.Format(ctx, sink, result); err != nil {
		r.logger.Error("report.write.failed", "format", r.format, "error", err)
		return fmt.Errorf("report %s: %w", r.format, err)
	}
	r.logger.Debug("report.written", "format", r.format, "files", len(result.Outcomes))
	return nil
}

func labelsOrDefault(labels runtimeconfig.LabelsConfig) runtimeconfig.LabelsConfig {
	if labels == (runtimeconfig.LabelsConfig{}) {
		return runtimeconfig.DefaultLabels()
	}
	return labels
}
