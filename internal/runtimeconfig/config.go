package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrScanExtensionRequired = errors.New("adoc config: scan extension is required")
var ErrScanExtensionInvalid = errors.New("adoc config: scan extension must start with a dot")
var ErrScanWorkersInvalid = errors.New("adoc config: scan workers must be zero or positive")
var ErrOutputFormatInvalid = errors.New("adoc config: output format is invalid")
var ErrLoggingProviderRequired = errors.New("adoc config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("adoc config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("adoc config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("adoc config: logging format is invalid")

// Config aggregates every knob the scanner exposes. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	Scan    ScanConfig    `yaml:"scan"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ScanConfig controls discovery and the worker fan-out. Workers bounds the
// pool; 0 starts one worker per file.
type ScanConfig struct {
	Extension   string `yaml:"extension"`
	Workers     int    `yaml:"workers"`
	FrontMatter bool   `yaml:"front_matter"`
}

// OutputConfig selects the report format and the text labels.
type OutputConfig struct {
	Format string       `yaml:"format"`
	Labels LabelsConfig `yaml:"labels"`
}

// LabelsConfig holds the strings printed by the text report. Empty values
// fall back to the defaults.
type LabelsConfig struct {
	Worker       string `yaml:"worker"`
	File         string `yaml:"file"`
	Headers      string `yaml:"headers"`
	Paragraphs   string `yaml:"paragraphs"`
	OrderedLists string `yaml:"ordered_lists"`
	Separator    string `yaml:"separator"`
}

// LoggingConfig captures provider-specific options for runtime logging.
// Logging is off unless Enabled is set; diagnostics are printed regardless.
type LoggingConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// DefaultConfig returns the configuration used when no file or flag
// overrides anything.
func DefaultConfig() Config {
	return Config{
		Scan: ScanConfig{
			Extension: ".adoc",
			Workers:   0,
		},
		Output: OutputConfig{
			Format: "text",
			Labels: DefaultLabels(),
		},
		Logging: LoggingConfig{
			Enabled:  false,
			Provider: "console",
			Level:    "info",
		},
	}
}

// DefaultLabels returns the text report labels.
func DefaultLabels() LabelsConfig {
	return LabelsConfig{
		Worker:       "Worker",
		File:         "File",
		Headers:      "Headers",
		Paragraphs:   "Paragraphs",
		OrderedLists: "Ordered lists",
		Separator:    strings.Repeat("-", 45),
	}
}

// LoadFile reads a YAML configuration file on top of DefaultConfig, so keys
// missing from the file keep their defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("adoc config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("adoc config: parse %s: %w", path, err)
	}
	cfg.Output.Labels = cfg.Output.Labels.withDefaults()
	return cfg, nil
}

func (l LabelsConfig) withDefaults() LabelsConfig {
	defaults := DefaultLabels()
	if strings.TrimSpace(l.Worker) == "" {
		l.Worker = defaults.Worker
	}
	if strings.TrimSpace(l.File) == "" {
		l.File = defaults.File
	}
	if strings.TrimSpace(l.Headers) == "" {
		l.Headers = defaults.Headers
	}
	if strings.TrimSpace(l.Paragraphs) == "" {
		l.Paragraphs = defaults.Paragraphs
	}
	if strings.TrimSpace(l.OrderedLists) == "" {
		l.OrderedLists = defaults.OrderedLists
	}
	if l.Separator == "" {
		l.Separator = defaults.Separator
	}
	return l
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	ext := strings.TrimSpace(cfg.Scan.Extension)
	if ext == "" {
		return ErrScanExtensionRequired
	}
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
		return fmt.Errorf("%w: %s", ErrScanExtensionInvalid, ext)
	}
	if cfg.Scan.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrScanWorkersInvalid, cfg.Scan.Workers)
	}
	if !IsSupportedFormat(cfg.Output.Format) {
		return fmt.Errorf("%w: %s", ErrOutputFormatInvalid, cfg.Output.Format)
	}

	if !cfg.Logging.Enabled {
		return nil
	}
	provider := normalize(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedLogFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// IsSupportedFormat reports whether the report format is known.
func IsSupportedFormat(format string) bool {
	switch normalize(format) {
	case "text", "json", "markdown", "html":
		return true
	default:
		return false
	}
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedLogFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
