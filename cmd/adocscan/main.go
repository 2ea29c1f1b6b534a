package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-adoc"
	"github.com/goliatone/go-adoc/internal/asciidoc"
	"github.com/goliatone/go-adoc/internal/logging"
)

const programName = "adocscan"

var moduleBuilder = adoc.New

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] <directory>\n", programName)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "Path to a YAML configuration file")
	format := fs.String("format", "text", "Report format: text, json, markdown or html")
	workers := fs.Int("workers", 0, "Maximum concurrent files (0 starts one worker per file)")
	frontMatter := fs.Bool("front-matter", false, "Strip a leading YAML front matter block before classifying")
	logLevel := fs.String("log-level", "info", "Log level; setting any -log flag enables logging")
	logProvider := fs.String("log-provider", "console", "Logging provider: console or gologger")
	logFormat := fs.String("log-format", "", "go-logger output format: json, console or pretty")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 1 {
		diagnose(stderr, asciidoc.UsageError())
		fs.Usage()
		return 1
	}
	directory := fs.Arg(0)

	cfg := adoc.DefaultConfig()
	if path := strings.TrimSpace(*configPath); path != "" {
		loaded, err := adoc.LoadConfig(path)
		if err != nil {
			diagnose(stderr, err)
			return 1
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Output.Format = *format
		case "workers":
			cfg.Scan.Workers = *workers
		case "front-matter":
			cfg.Scan.FrontMatter = *frontMatter
		case "log-level":
			cfg.Logging.Enabled = true
			cfg.Logging.Level = *logLevel
		case "log-provider":
			cfg.Logging.Enabled = true
			cfg.Logging.Provider = *logProvider
		case "log-format":
			cfg.Logging.Enabled = true
			cfg.Logging.Format = *logFormat
		}
	})

	module, err := moduleBuilder(cfg,
		adoc.WithOutput(stdout, stderr),
		adoc.WithProgramName(programName),
	)
	if err != nil {
		diagnose(stderr, err)
		return 1
	}

	ctx := logging.WithRunContext(context.Background(), uuid.NewString(), directory)
	if err := module.ScanDirectory(ctx, directory); err != nil {
		diagnose(stderr, err)
		return 1
	}
	return 0
}

// diagnose prints one line for a fatal error, preferring the scanner's own
// message over the command wrapper's.
func diagnose(w io.Writer, err error) {
	var invalid *asciidoc.InvalidPathError
	switch {
	case errors.As(err, &invalid):
		fmt.Fprintf(w, "%s: %v\n", programName, invalid)
	case errors.Is(err, asciidoc.ErrDirectoryRequired):
		fmt.Fprintf(w, "%s: %v\n", programName, asciidoc.ErrDirectoryRequired)
	default:
		fmt.Fprintf(w, "%s: %v\n", programName, err)
	}
}
