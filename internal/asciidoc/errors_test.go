package asciidoc

import (
	"errors"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestCategorizeTagsTypedErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		category goerrors.Category
	}{
		{"usage", ErrDirectoryRequired, goerrors.CategoryValidation},
		{"invalid path", &InvalidPathError{Path: "docs", Err: ErrNotDirectory}, goerrors.CategoryNotFound},
		{"file read", &FileReadError{Path: "docs/a.adoc", Op: "read", Err: errors.New("io")}, goerrors.CategoryOperation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tagged := Categorize(tc.err)
			if !goerrors.IsCategory(tagged, tc.category) {
				t.Fatalf("expected category %v, got %v", tc.category, tagged)
			}
			if Categorize(tagged) != tagged {
				t.Fatal("expected already tagged errors to pass through")
			}
		})
	}
}

func TestCategorizePassesThroughOtherErrors(t *testing.T) {
	if Categorize(nil) != nil {
		t.Fatal("expected nil to stay nil")
	}
	plain := errors.New("plain")
	if Categorize(plain) != plain {
		t.Fatal("expected untyped errors to pass through")
	}
}

func TestErrorMessagesNameThePath(t *testing.T) {
	readErr := &FileReadError{Path: "docs/a.adoc", Op: "open", Err: errors.New("permission denied")}
	if got := readErr.Error(); got != "open docs/a.adoc: permission denied" {
		t.Fatalf("unexpected message %q", got)
	}

	invalid := &InvalidPathError{Path: "missing", Err: ErrNotDirectory}
	if !strings.Contains(invalid.Error(), "missing") {
		t.Fatalf("expected path in message, got %q", invalid.Error())
	}
	if !errors.Is(invalid, ErrNotDirectory) {
		t.Fatal("expected InvalidPathError to unwrap to its cause")
	}
}
