package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
)

func TestSinkPrintKeepsBlocksContiguous(t *testing.T) {
	var out bytes.Buffer
	sink := NewSink(&out, &bytes.Buffer{}, "")

	const writers = 32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = sink.Print(func(w io.Writer) error {
				for line := 0; line < 5; line++ {
					fmt.Fprintf(w, "block-%02d line-%d\n", id, line)
				}
				return nil
			})
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != writers*5 {
		t.Fatalf("expected %d lines, got %d", writers*5, len(lines))
	}
	for start := 0; start < len(lines); start += 5 {
		prefix := lines[start][:len("block-00")]
		for offset := 0; offset < 5; offset++ {
			want := fmt.Sprintf("%s line-%d", prefix, offset)
			if lines[start+offset] != want {
				t.Fatalf("interleaved output at line %d: %q, want %q", start+offset, lines[start+offset], want)
			}
		}
	}
}

func TestSinkDiagnoseWritesProgramPrefix(t *testing.T) {
	var out, diag bytes.Buffer
	sink := NewSink(&out, &diag, "adocscan")

	sink.Diagnose(errors.New("path missing does not exist"))
	sink.Diagnose(nil)

	if diag.String() != "adocscan: path missing does not exist\n" {
		t.Fatalf("unexpected diagnostic output %q", diag.String())
	}
	if out.Len() != 0 {
		t.Fatalf("expected diagnostics to stay off the output writer, got %q", out.String())
	}
}

func TestSinkPrintPropagatesErrors(t *testing.T) {
	sink := NewSink(&bytes.Buffer{}, &bytes.Buffer{}, "")
	boom := errors.New("boom")
	if err := sink.Print(func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
