package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-adoc/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "adoc.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ScanLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != scanModule {
		t.Fatalf("expected module %s, got %v", scanModule, provider.requested)
	}
	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}
	if got := rec.fields[0]["module"]; got != scanModule {
		t.Fatalf("expected module field %s, got %v", scanModule, got)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestNamedLoggersRequestTheirModules(t *testing.T) {
	cases := []struct {
		name   string
		build  func(interfaces.LoggerProvider) interfaces.Logger
		module string
	}{
		{"classifier", ClassifierLogger, classifierModule},
		{"report", ReportLogger, reportModule},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &stubProvider{logger: &recordingLogger{}}
			_ = tc.build(provider)
			if len(provider.requested) == 0 || provider.requested[0] != tc.module {
				t.Fatalf("expected %s module request, got %v", tc.module, provider.requested)
			}
		})
	}
}

func TestWithFileContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}
	_ = WithFileContext(rec, "  ", 0)
	if len(rec.fields) != 0 {
		t.Fatalf("expected no fields for empty context, got %v", rec.fields)
	}

	_ = WithFileContext(rec, "docs/a.adoc", 2)
	if len(rec.fields) != 1 {
		t.Fatalf("expected one field set, got %d", len(rec.fields))
	}
	if rec.fields[0][fieldFilePath] != "docs/a.adoc" || rec.fields[0][fieldWorker] != 2 {
		t.Fatalf("unexpected fields %v", rec.fields[0])
	}
}

func TestWithRunContextMergesFields(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"existing": true})
	ctx = WithRunContext(ctx, "run-1", "docs")

	fields := ContextFields(ctx)
	if fields["existing"] != true {
		t.Fatalf("expected existing field to be preserved, got %v", fields)
	}
	if fields[fieldRunID] != "run-1" || fields[fieldDirectory] != "docs" {
		t.Fatalf("expected run fields, got %v", fields)
	}
}
