package gologger

import (
	"context"
	"testing"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-adoc/internal/logging"
	"github.com/goliatone/go-adoc/pkg/interfaces"
)

func TestNewProviderCreatesLogger(t *testing.T) {
	p, err := NewProvider(Config{
		Level:  "debug",
		Format: "console",
	})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}

	logger := p.GetLogger("adoc.scan")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}

	child := logging.WithFields(logger, map[string]any{"module": "adoc.scan"})
	if child == nil {
		t.Fatal("expected WithFields to return logger")
	}

	// Ensure chained operations do not panic.
	child.Debug("adapter.initialised")
}

func TestAdapterDelegatesToUnderlyingLogger(t *testing.T) {
	stub := &stubLogger{}
	adapted := wrap(stub)

	adapted.Trace("trace", "key", "value")
	adapted.Debug("debug")
	adapted.Info("info")
	adapted.Warn("warn")
	adapted.Error("error")
	adapted.Fatal("fatal")

	fields := map[string]any{"file_path": "docs/a.adoc"}
	fieldsLogger, ok := adapted.(interfaces.FieldsLogger)
	if !ok {
		t.Fatalf("expected adapter to implement FieldsLogger, got %T", adapted)
	}
	child := fieldsLogger.WithFields(fields)
	if child == nil {
		t.Fatal("expected WithFields to return logger")
	}

	fields["file_path"] = "docs/b.adoc"
	if len(stub.fields) != 1 {
		t.Fatalf("expected fields to be recorded once, got %d", len(stub.fields))
	}
	if stub.fields[0]["file_path"] != "docs/a.adoc" {
		t.Fatalf("expected fields to be cloned, got %v", stub.fields[0]["file_path"])
	}

	ctx := context.WithValue(context.Background(), struct{}{}, "value")
	adapted.WithContext(ctx)
	if len(stub.contexts) != 1 || stub.contexts[0] != ctx {
		t.Fatalf("expected context propagation, got %#v", stub.contexts)
	}

	wantCalls := []string{"trace", "debug", "info", "warn", "error", "fatal"}
	if len(stub.calls) != len(wantCalls) {
		t.Fatalf("expected %d calls, got %d", len(wantCalls), len(stub.calls))
	}
	for i, want := range wantCalls {
		if stub.calls[i] != want {
			t.Fatalf("call %d: expected %q, got %q", i, want, stub.calls[i])
		}
	}
}

func TestAdapterWithContextFlattensContextFields(t *testing.T) {
	stub := &stubLogger{}
	adapted := wrap(stub)

	ctx := logging.WithRunContext(context.Background(), "run-42", "docs")
	adapted.WithContext(ctx)

	if len(stub.contexts) != 1 {
		t.Fatalf("expected context to be forwarded once, got %d", len(stub.contexts))
	}
	if len(stub.fields) != 1 {
		t.Fatalf("expected context fields to be applied, got %d", len(stub.fields))
	}
	if stub.fields[0]["run_id"] != "run-42" || stub.fields[0]["directory"] != "docs" {
		t.Fatalf("unexpected fields %v", stub.fields[0])
	}
}

func TestAdapterWithContextWithoutFieldsOnlyForwards(t *testing.T) {
	stub := &stubLogger{}
	wrap(stub).WithContext(context.Background())

	if len(stub.contexts) != 1 {
		t.Fatalf("expected context to be forwarded once, got %d", len(stub.contexts))
	}
	if len(stub.fields) != 0 {
		t.Fatalf("expected no fields for a bare context, got %v", stub.fields)
	}
}

func TestNormalizeFocusDropsBlankNames(t *testing.T) {
	got := normalizeFocus([]string{" adoc.scan ", "", "   ", "adoc.report"})
	if len(got) != 2 || got[0] != "adoc.scan" || got[1] != "adoc.report" {
		t.Fatalf("unexpected focus list %v", got)
	}
	if got := normalizeFocus(nil); len(got) != 0 {
		t.Fatalf("expected empty focus list, got %v", got)
	}
}

func TestNewProviderAcceptsFocus(t *testing.T) {
	p, err := NewProvider(Config{Level: "info", Format: "json", Focus: []string{" adoc.scan "}})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}
	if logger := p.GetLogger("adoc.scan"); logger == nil {
		t.Fatal("expected focused logger, got nil")
	}
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNilProviderReturnsNoOp(t *testing.T) {
	var p *Provider
	if logger := p.GetLogger("adoc"); logger == nil {
		t.Fatal("expected no-op logger from nil provider")
	}
}

type stubLogger struct {
	calls    []string
	fields   []map[string]any
	contexts []context.Context
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)
	return s
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.fields = append(s.fields, copied)
	return s
}
