package asciidoc

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/adrg/frontmatter"
	"github.com/zeebo/xxh3"

	"github.com/goliatone/go-adoc/pkg/interfaces"
)

// FileOptions tunes how a single file is classified.
type FileOptions struct {
	// FrontMatter strips a leading YAML front matter block (as written for
	// Jekyll-style AsciiDoc sites) and records its title.
	FrontMatter bool
}

// NewDocument returns an empty record holding only the path.
func NewDocument(path string) *interfaces.Document {
	return &interfaces.Document{Path: path}
}

// ClassifyFile opens doc.Path and classifies it into doc. Any failure is a
// *FileReadError; doc keeps what was parsed before it. The checksum covers
// the bytes read, so a partial read hashes a prefix.
func ClassifyFile(ctx context.Context, doc *interfaces.Document, opts FileOptions) error {
	if err := ctx.Err(); err != nil {
		return newFileReadError(doc.Path, "open", err)
	}

	file, err := os.Open(doc.Path)
	if err != nil {
		return newFileReadError(doc.Path, "open", err)
	}
	defer file.Close()

	hasher := xxh3.New()
	source := io.TeeReader(file, hasher)
	defer func() { doc.Checksum = hasher.Sum64() }()

	if opts.FrontMatter {
		source, err = stripFrontMatter(source, doc)
		if err != nil {
			return newFileReadError(doc.Path, "parse", err)
		}
	}

	if err := Classify(source, doc); err != nil {
		return newFileReadError(doc.Path, "read", err)
	}
	return nil
}

type frontMatterEnvelope struct {
	Title string `yaml:"title"`
}

// stripFrontMatter consumes r and returns the body that follows the front
// matter block. Files without front matter come back unchanged.
func stripFrontMatter(r io.Reader, doc *interfaces.Document) (io.Reader, error) {
	var meta frontMatterEnvelope
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return nil, err
	}
	doc.Title = meta.Title
	return bytes.NewReader(body), nil
}
