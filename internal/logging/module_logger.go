package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-adoc/pkg/interfaces"
)

const (
	rootModule       = "adoc"
	scanModule       = "adoc.scan"
	classifierModule = "adoc.classifier"
	reportModule     = "adoc.report"
)

const (
	fieldFilePath  = "file_path"
	fieldWorker    = "worker"
	fieldRunID     = "run_id"
	fieldDirectory = "directory"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field on every entry.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ScanLogger returns the logger namespace reserved for the directory driver.
func ScanLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, scanModule)
}

// ClassifierLogger returns the logger namespace reserved for line classification.
func ClassifierLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, classifierModule)
}

// ReportLogger returns the logger namespace reserved for output rendering.
func ReportLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, reportModule)
}

// WithFileContext enriches the logger with the file path and worker index.
// Empty paths and non-positive indexes are skipped.
func WithFileContext(logger interfaces.Logger, path string, worker int) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldFilePath] = trimmed
	}
	if worker > 0 {
		fields[fieldWorker] = worker
	}
	return WithFields(logger, fields)
}

// WithRunContext returns a context tagged with the run identifier and target
// directory so console loggers include them on every entry.
func WithRunContext(ctx context.Context, runID, directory string) context.Context {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(runID); trimmed != "" {
		fields[fieldRunID] = trimmed
	}
	if trimmed := strings.TrimSpace(directory); trimmed != "" {
		fields[fieldDirectory] = trimmed
	}
	return ContextWithFields(ctx, fields)
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
