// Package asciidoc discovers AsciiDoc files in a directory and classifies
// their lines into headers, paragraphs and ordered-list items. Every line is
// tested on its own; there is no block structure, no attribute handling and
// no include processing.
package asciidoc
