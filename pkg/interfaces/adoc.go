package interfaces

import (
	"context"
	"time"
)

// Document is the per-file container of classified lines. It is created with
// only Path set, populated by exactly one worker and read-only afterwards.
type Document struct {
	Path             string   `json:"path"`
	Headers          []string `json:"headers"`
	Paragraphs       []string `json:"paragraphs"`
	OrderedListItems []string `json:"ordered_list_items"`
	// Title is populated from the front matter block when stripping is enabled.
	Title string `json:"title,omitempty"`
	// Lines counts every line scanned, including dropped ones.
	Lines int `json:"lines"`
	// Checksum is the xxh3 digest of the bytes read before classification stopped.
	Checksum uint64 `json:"checksum"`
}

// ScanOptions tunes a directory scan.
type ScanOptions struct {
	// Workers bounds the worker pool. Zero starts one worker per file.
	Workers int
	// Extension selects the file suffix to collect, ".adoc" when empty.
	Extension string
	// FrontMatter strips a leading YAML front matter block before classifying.
	FrontMatter bool
}

// ScanOutcome is the result of classifying one file. Document is never nil;
// on failure it carries whatever was parsed before Err occurred.
type ScanOutcome struct {
	// Index is the 1-based position of the file in the sorted path list.
	Index    int
	Document *Document
	Err      error
}

// ScanResult aggregates the outcomes of a scan in sorted path order.
type ScanResult struct {
	Directory string
	Outcomes  []ScanOutcome
	Duration  time.Duration
}

// Failed reports how many outcomes carry an error.
func (r *ScanResult) Failed() int {
	if r == nil {
		return 0
	}
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Err != nil {
			count++
		}
	}
	return count
}

// Scanner discovers and classifies every matching file in a directory.
type Scanner interface {
	Scan(ctx context.Context, dir string, opts ScanOptions) (*ScanResult, error)
}
