package asciidoc

import (
	"bufio"
	"io"
	"regexp"

	"github.com/goliatone/go-adoc/pkg/interfaces"
)

// Kind identifies the bucket a line was classified into.
type Kind int

const (
	// KindNone marks a line that produced no entry.
	KindNone Kind = iota
	// KindHeader marks a "="-prefixed section title.
	KindHeader
	// KindListItem marks a numbered list entry.
	KindListItem
	// KindParagraph marks any other text line.
	KindParagraph
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindListItem:
		return "list_item"
	case KindParagraph:
		return "paragraph"
	default:
		return "none"
	}
}

// The character classes keep the rules disjoint: headers start with '=',
// list items with optional whitespace then a digit, paragraphs with anything
// else. Digit-leading lines that are not list items are dropped.
var (
	headerPattern    = regexp.MustCompile(`^=+\s+(.*)$`)
	listItemPattern  = regexp.MustCompile(`^\s*\d+\.\s+(.+)$`)
	paragraphPattern = regexp.MustCompile(`^[^=\d].+$`)
)

// maxLineLength caps a single line; longer lines fail the read.
const maxLineLength = 16 * 1024 * 1024

// ClassifyLine applies the header, list and paragraph rules in that order and
// returns the first match with the text to record. Unmatched lines return
// KindNone.
func ClassifyLine(line string) (Kind, string) {
	if m := headerPattern.FindStringSubmatch(line); m != nil {
		return KindHeader, m[1]
	}
	if m := listItemPattern.FindStringSubmatch(line); m != nil {
		return KindListItem, m[1]
	}
	if paragraphPattern.MatchString(line) {
		return KindParagraph, line
	}
	return KindNone, ""
}

// Classify scans r line by line and appends every match to doc. On a read
// failure doc keeps the lines classified so far and the error is returned.
func Classify(r io.Reader, doc *interfaces.Document) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		doc.Lines++
		kind, text := ClassifyLine(scanner.Text())
		switch kind {
		case KindHeader:
			doc.Headers = append(doc.Headers, text)
		case KindListItem:
			doc.OrderedListItems = append(doc.OrderedListItems, text)
		case KindParagraph:
			doc.Paragraphs = append(doc.Paragraphs, text)
		}
	}
	return scanner.Err()
}
