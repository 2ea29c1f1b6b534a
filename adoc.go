package adoc

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-adoc/internal/commands"
	"github.com/goliatone/go-adoc/internal/commands/scancmd"
	"github.com/goliatone/go-adoc/internal/logging"
	"github.com/goliatone/go-adoc/internal/logging/console"
	"github.com/goliatone/go-adoc/internal/logging/gologger"
	"github.com/goliatone/go-adoc/internal/report"
	"github.com/goliatone/go-adoc/internal/scan"
	"github.com/goliatone/go-adoc/pkg/interfaces"
)

// Document exports the per-file classification record.
type Document = interfaces.Document

// ScanOptions exports the driver options.
type ScanOptions = interfaces.ScanOptions

// ScanOutcome exports one file's result within a scan.
type ScanOutcome = interfaces.ScanOutcome

// ScanResult exports the ordered outcomes of a scan.
type ScanResult = interfaces.ScanResult

// ScanDirectoryCommand exports the command message executed by ScanDirectory.
type ScanDirectoryCommand = scancmd.ScanDirectoryCommand

// Option customises module construction.
type Option func(*Module)

// WithLoggerProvider overrides the provider derived from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.loggerProvider = provider
		}
	}
}

// WithOutput sets the writers for the report and for diagnostics.
func WithOutput(out, diag io.Writer) Option {
	return func(m *Module) {
		if out != nil {
			m.out = out
		}
		if diag != nil {
			m.diag = diag
		}
	}
}

// WithProgramName sets the prefix printed in front of diagnostics.
func WithProgramName(name string) Option {
	return func(m *Module) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			m.program = trimmed
		}
	}
}

// Module wires the scanner, the report sink and the logger provider from a Config.
type Module struct {
	cfg            Config
	loggerProvider interfaces.LoggerProvider
	out            io.Writer
	diag           io.Writer
	program        string
	scanner        *scan.Service
	sink           *report.Sink
}

// New validates cfg and constructs a module.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{
		cfg:     cfg,
		out:     os.Stdout,
		diag:    os.Stderr,
		program: "adocscan",
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.loggerProvider == nil {
		provider, err := configureLoggerProvider(cfg.Logging, m.diag)
		if err != nil {
			return nil, err
		}
		m.loggerProvider = provider
	}

	m.scanner = scan.NewService(
		logging.ScanLogger(m.loggerProvider),
		scan.WithFileLogger(logging.ClassifierLogger(m.loggerProvider)),
	)
	m.sink = report.NewSink(m.out, m.diag, m.program)
	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Scanner exposes the concurrent directory scanner.
func (m *Module) Scanner() interfaces.Scanner {
	return m.scanner
}

// LoggerProvider returns the provider used by every module logger.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.loggerProvider
}

// Scan classifies the directory with the configured options and returns the
// result without printing anything.
func (m *Module) Scan(ctx context.Context, dir string) (*ScanResult, error) {
	return m.scanner.Scan(ctx, dir, ScanOptions{
		Workers:     m.cfg.Scan.Workers,
		Extension:   m.cfg.Scan.Extension,
		FrontMatter: m.cfg.Scan.FrontMatter,
	})
}

// ScanDirectory scans dir and prints the report in the configured format.
func (m *Module) ScanDirectory(ctx context.Context, dir string) error {
	return m.Execute(ctx, ScanDirectoryCommand{
		Directory:   dir,
		Format:      m.cfg.Output.Format,
		Workers:     m.cfg.Scan.Workers,
		FrontMatter: m.cfg.Scan.FrontMatter,
	})
}

// Execute runs a scan command through the command handler.
func (m *Module) Execute(ctx context.Context, cmd ScanDirectoryCommand) error {
	handler := scancmd.NewScanDirectoryHandler(
		m.scanner,
		m.sink,
		scancmd.Settings{
			Extension:    m.cfg.Scan.Extension,
			Labels:       m.cfg.Output.Labels,
			ReportLogger: logging.ReportLogger(m.loggerProvider),
		},
		commands.CommandLogger(m.loggerProvider, "scan"),
	)
	return handler.Execute(ctx, cmd)
}

func configureLoggerProvider(cfg LoggingConfig, diag io.Writer) (interfaces.LoggerProvider, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	case "", "console":
		opts := console.Options{Writer: diag}
		if level := strings.TrimSpace(cfg.Level); level != "" {
			parsed, err := console.ParseLevel(level)
			if err != nil {
				return nil, err
			}
			opts.MinLevel = &parsed
		}
		return console.NewProvider(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}
