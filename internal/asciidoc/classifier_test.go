package asciidoc

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		line string
		kind Kind
		text string
	}{
		{"== Introduction", KindHeader, "Introduction"},
		{"= Title", KindHeader, "Title"},
		{"===\tTabbed", KindHeader, "Tabbed"},
		{"==   Spaced", KindHeader, "Spaced"},
		{"= ", KindHeader, ""},
		{"==Introduction", KindNone, ""},
		{"=", KindNone, ""},
		{"1. Buy milk", KindListItem, "Buy milk"},
		{"12.  Two spaces", KindListItem, "Two spaces"},
		{"  3. Indented", KindListItem, "Indented"},
		{"1. ", KindNone, ""},
		{"1.Buy", KindNone, ""},
		{"1text without delimiter", KindNone, ""},
		{"123abc", KindNone, ""},
		{"Hello world", KindParagraph, "Hello world"},
		{"* bullet item", KindParagraph, "* bullet item"},
		{" leading space", KindParagraph, " leading space"},
		{"x", KindNone, ""},
		{"", KindNone, ""},
	}

	for _, tc := range cases {
		kind, text := ClassifyLine(tc.line)
		if kind != tc.kind || text != tc.text {
			t.Fatalf("ClassifyLine(%q) = (%s, %q), want (%s, %q)", tc.line, kind, text, tc.kind, tc.text)
		}
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindNone:      "none",
		KindHeader:    "header",
		KindListItem:  "list_item",
		KindParagraph: "paragraph",
		Kind(42):      "none",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}

func TestClassifyBucketsLinesInFileOrder(t *testing.T) {
	source := strings.Join([]string{
		"= Shopping",
		"",
		"Things to get this week.",
		"1. Buy milk",
		"2. Buy bread",
		"== Notes",
		"1text without delimiter",
		"Remember the receipt.",
	}, "\n")

	doc := NewDocument("list.adoc")
	if err := Classify(strings.NewReader(source), doc); err != nil {
		t.Fatalf("Classify: %v", err)
	}

	assertStrings(t, "headers", doc.Headers, []string{"Shopping", "Notes"})
	assertStrings(t, "paragraphs", doc.Paragraphs, []string{"Things to get this week.", "Remember the receipt."})
	assertStrings(t, "list items", doc.OrderedListItems, []string{"Buy milk", "Buy bread"})
	if doc.Lines != 8 {
		t.Fatalf("expected 8 lines scanned, got %d", doc.Lines)
	}
}

func TestClassifyHandlesCRLF(t *testing.T) {
	doc := NewDocument("crlf.adoc")
	if err := Classify(strings.NewReader("== Title\r\nBody text\r\n1. Item\r\n"), doc); err != nil {
		t.Fatalf("Classify: %v", err)
	}
	assertStrings(t, "headers", doc.Headers, []string{"Title"})
	assertStrings(t, "paragraphs", doc.Paragraphs, []string{"Body text"})
	assertStrings(t, "list items", doc.OrderedListItems, []string{"Item"})
}

func TestClassifyPartitionsEveryLine(t *testing.T) {
	lines := []string{
		"= Doc", "para one", "1. first", "", "9 not a list", "== Sub", "  2. second",
		"===", "tail paragraph", "7.", "=no space",
	}

	doc := NewDocument("partition.adoc")
	if err := Classify(strings.NewReader(strings.Join(lines, "\n")), doc); err != nil {
		t.Fatalf("Classify: %v", err)
	}

	// Rebuild the kept lines from the three buckets using each line's own
	// classification and compare against the original order.
	var want, got []string
	next := map[Kind]int{}
	buckets := map[Kind][]string{
		KindHeader:    doc.Headers,
		KindListItem:  doc.OrderedListItems,
		KindParagraph: doc.Paragraphs,
	}
	for _, line := range lines {
		kind, text := ClassifyLine(line)
		if kind == KindNone {
			continue
		}
		want = append(want, text)
		bucket := buckets[kind]
		if next[kind] >= len(bucket) {
			t.Fatalf("bucket %s exhausted at line %q", kind, line)
		}
		got = append(got, bucket[next[kind]])
		next[kind]++
	}
	assertStrings(t, "reconstructed", got, want)

	total := len(doc.Headers) + len(doc.Paragraphs) + len(doc.OrderedListItems)
	if total != len(want) {
		t.Fatalf("expected %d classified lines, got %d", len(want), total)
	}
}

func TestClassifyKeepsPartialContentOnReadError(t *testing.T) {
	boom := errors.New("disk went away")
	source := io.MultiReader(
		strings.NewReader("== Before\nStill readable\n"),
		iotest.ErrReader(boom),
	)

	doc := NewDocument("broken.adoc")
	err := Classify(source, doc)
	if !errors.Is(err, boom) {
		t.Fatalf("expected read error, got %v", err)
	}
	assertStrings(t, "headers", doc.Headers, []string{"Before"})
	assertStrings(t, "paragraphs", doc.Paragraphs, []string{"Still readable"})
}

func TestClassifyRejectsOverlongLines(t *testing.T) {
	doc := NewDocument("long.adoc")
	source := strings.NewReader("ok line\n" + strings.Repeat("a", maxLineLength+1))
	if err := Classify(source, doc); err == nil {
		t.Fatal("expected error for overlong line")
	}
	assertStrings(t, "paragraphs", doc.Paragraphs, []string{"ok line"})
}

func assertStrings(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %d entries %q, got %d %q", label, len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s[%d]: expected %q, got %q", label, i, want[i], got[i])
		}
	}
}
