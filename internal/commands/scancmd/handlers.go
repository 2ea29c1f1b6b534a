package scancmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-adoc/internal/commands"
	"github.com/goliatone/go-adoc/internal/logging"
	"github.com/goliatone/go-adoc/internal/report"
	"github.com/goliatone/go-adoc/internal/runtimeconfig"
	"github.com/goliatone/go-adoc/pkg/interfaces"
)

const scanOperation = "scan.directory"

var _ command.Commander[ScanDirectoryCommand] = (*ScanDirectoryHandler)(nil)

// Settings carries the configuration values the handler applies to every
// command. ReportLogger defaults to the handler logger.
type Settings struct {
	Extension    string
	Labels       runtimeconfig.LabelsConfig
	ReportLogger interfaces.Logger
}

// ScanDirectoryHandler runs a scan and prints its report through the shared sink.
type ScanDirectoryHandler struct {
	inner *commands.Handler[ScanDirectoryCommand]
}

// NewScanDirectoryHandler creates a handler bound to the supplied scanner and
// sink. The handler has no execution timeout unless one is passed in opts.
func NewScanDirectoryHandler(scanner interfaces.Scanner, sink *report.Sink, settings Settings, logger interfaces.Logger, opts ...commands.HandlerOption[ScanDirectoryCommand]) *ScanDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	reportLogger := settings.ReportLogger
	if reportLogger == nil {
		reportLogger = baseLogger
	}

	exec := func(ctx context.Context, msg ScanDirectoryCommand) error {
		reporter, err := report.New(report.Options{
			Format: msg.Format,
			Labels: settings.Labels,
			Logger: logging.WithFields(reportLogger, map[string]any{"directory": msg.Directory}),
		})
		if err != nil {
			return err
		}

		result, err := scanner.Scan(ctx, msg.Directory, interfaces.ScanOptions{
			Workers:     msg.Workers,
			Extension:   settings.Extension,
			FrontMatter: msg.FrontMatter,
		})
		if err != nil {
			return err
		}

		if err := reporter.Report(ctx, sink, result); err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"files":  len(result.Outcomes),
			"failed": result.Failed(),
			"format": reporter.Format(),
		}).Info("scan.command.directory.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ScanDirectoryCommand]{
		commands.WithLogger[ScanDirectoryCommand](baseLogger),
		commands.WithOperation[ScanDirectoryCommand](scanOperation),
		commands.WithTimeout[ScanDirectoryCommand](0),
		commands.WithMessageFields(func(msg ScanDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.Format != "" {
				fields["format"] = msg.Format
			}
			if msg.Workers > 0 {
				fields["workers"] = msg.Workers
			}
			if msg.FrontMatter {
				fields["front_matter"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ScanDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ScanDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ScanDirectoryCommand].
func (h *ScanDirectoryHandler) Execute(ctx context.Context, msg ScanDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
