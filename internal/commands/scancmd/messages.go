package scancmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-adoc/internal/runtimeconfig"
)

const scanDirectoryMessageType = "adoc.scan.directory"

// ScanDirectoryCommand classifies every matching file directly inside
// Directory and prints the report.
type ScanDirectoryCommand struct {
	// Directory is the filesystem path (relative or absolute) to scan. Subdirectories are not descended.
	Directory string `json:"directory"`
	// Format selects the report format. Empty means text.
	Format string `json:"format,omitempty"`
	// Workers caps the number of concurrent classifications. Zero starts one worker per file.
	Workers int `json:"workers,omitempty"`
	// FrontMatter strips a leading YAML front matter block before classification.
	FrontMatter bool `json:"front_matter,omitempty"`
}

// Type implements command.Message.
func (ScanDirectoryCommand) Type() string { return scanDirectoryMessageType }

// Validate ensures the directory is present and options are in range.
func (cmd ScanDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("adoc.scan.directory.directory_required", "directory is required")
			}
			return nil
		})),
		validation.Field(&cmd.Workers, validation.Min(0)),
		validation.Field(&cmd.Format, validation.By(func(value any) error {
			format, _ := value.(string)
			if format == "" || runtimeconfig.IsSupportedFormat(format) {
				return nil
			}
			return validation.NewError("adoc.scan.directory.format_invalid", "format must be one of text, json, markdown, html")
		})),
	)
}
