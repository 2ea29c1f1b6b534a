package scan

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-adoc/internal/asciidoc"
	"github.com/goliatone/go-adoc/internal/logging"
	"github.com/goliatone/go-adoc/pkg/interfaces"
)

// Service implements interfaces.Scanner: enumerate, sort, fan out one
// classification per file, wait for all of them, return outcomes in sorted
// order.
type Service struct {
	logger     interfaces.Logger
	fileLogger interfaces.Logger
	now        func() time.Time
}

var _ interfaces.Scanner = (*Service)(nil)

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithFileLogger sets the logger used for per-file entries. Defaults to the
// service logger.
func WithFileLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.fileLogger = logger
		}
	}
}

// NewService constructs a scan service. A nil logger disables logging.
func NewService(logger interfaces.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	s := &Service{logger: logger, fileLogger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan classifies every matching file directly inside dir. Discovery errors
// are fatal and returned before any worker starts. Per-file failures are
// recorded on their outcome and never stop other workers.
func (s *Service) Scan(ctx context.Context, dir string, opts interfaces.ScanOptions) (*interfaces.ScanResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := s.now()
	logger := s.logger.WithContext(ctx)

	paths, err := asciidoc.NewLoader(asciidoc.LoaderConfig{Extension: opts.Extension}).Discover(ctx, dir)
	if err != nil {
		logger.Error("scan.discover.failed", "error", err)
		return nil, asciidoc.Categorize(err)
	}

	workers := resolveWorkers(opts.Workers, len(paths))
	logger.Debug("scan.start", "files", len(paths), "workers", workers)

	outcomes := make([]interfaces.ScanOutcome, len(paths))
	for i, path := range paths {
		outcomes[i] = interfaces.ScanOutcome{
			Index:    i + 1,
			Document: asciidoc.NewDocument(path),
		}
	}

	fileOpts := asciidoc.FileOptions{FrontMatter: opts.FrontMatter}
	if workers == len(paths) {
		s.runUnbounded(ctx, outcomes, fileOpts)
	} else {
		s.runPool(ctx, outcomes, workers, fileOpts)
	}

	result := &interfaces.ScanResult{
		Directory: dir,
		Outcomes:  outcomes,
		Duration:  s.now().Sub(start),
	}
	logger.Info("scan.completed",
		"files", len(outcomes),
		"failed", result.Failed(),
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}

// runUnbounded starts one goroutine per file. Each goroutine owns exactly
// one slot of outcomes until wg.Wait returns.
func (s *Service) runUnbounded(ctx context.Context, outcomes []interfaces.ScanOutcome, opts asciidoc.FileOptions) {
	var wg sync.WaitGroup
	for i := range outcomes {
		wg.Add(1)
		go func(outcome *interfaces.ScanOutcome) {
			defer wg.Done()
			s.classify(ctx, outcome, opts)
		}(&outcomes[i])
	}
	wg.Wait()
}

// runPool feeds slot indexes to a fixed number of workers.
func (s *Service) runPool(ctx context.Context, outcomes []interfaces.ScanOutcome, workers int, opts asciidoc.FileOptions) {
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s.classify(ctx, &outcomes[i], opts)
			}
		}()
	}
	for i := range outcomes {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

func (s *Service) classify(ctx context.Context, outcome *interfaces.ScanOutcome, opts asciidoc.FileOptions) {
	logger := logging.WithFileContext(s.fileLogger, outcome.Document.Path, outcome.Index).WithContext(ctx)
	if err := asciidoc.ClassifyFile(ctx, outcome.Document, opts); err != nil {
		outcome.Err = err
		logger.Warn("scan.file.failed", "error", err)
		return
	}
	logger.Debug("scan.file.classified",
		"headers", len(outcome.Document.Headers),
		"paragraphs", len(outcome.Document.Paragraphs),
		"ordered_list_items", len(outcome.Document.OrderedListItems),
	)
}

// resolveWorkers returns the number of goroutines to start. Zero or a bound
// at least as large as the file count means one worker per file.
func resolveWorkers(requested, files int) int {
	if requested <= 0 || requested >= files {
		return files
	}
	return requested
}
