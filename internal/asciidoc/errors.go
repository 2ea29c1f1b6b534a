package asciidoc

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeUsage       = "ADOC_USAGE"
	TextCodeInvalidPath = "ADOC_INVALID_PATH"
	TextCodeFileRead    = "ADOC_FILE_READ"
)

var (
	// ErrDirectoryRequired is returned when no directory argument was supplied.
	ErrDirectoryRequired = errors.New("missing directory argument")
	// ErrNotDirectory is the cause recorded when the path exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// InvalidPathError reports a directory argument that does not exist, is not
// a directory, or cannot be listed.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("path %s does not exist or is not a directory: %v", e.Path, e.Err)
}

func (e *InvalidPathError) Unwrap() error { return e.Err }

// FileReadError reports a file that could not be opened or failed mid-read.
// It is local to one worker and never aborts the scan.
type FileReadError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

func newFileReadError(path, op string, err error) *FileReadError {
	return &FileReadError{Path: path, Op: op, Err: unwrapPathError(err)}
}

// UsageError tags a missing directory argument with the validation category.
func UsageError() error {
	return goerrors.Wrap(ErrDirectoryRequired, goerrors.CategoryValidation, "usage: adocscan <directory>").
		WithTextCode(TextCodeUsage)
}

// Categorize tags the scanner's typed errors with a go-errors category and
// text code so command handlers keep them instead of re-wrapping. Other
// errors, and errors that are already tagged, pass through.
func Categorize(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}

	var invalid *InvalidPathError
	if errors.As(err, &invalid) {
		return goerrors.Wrap(err, goerrors.CategoryNotFound, invalid.Error()).
			WithTextCode(TextCodeInvalidPath)
	}
	var read *FileReadError
	if errors.As(err, &read) {
		return goerrors.Wrap(err, goerrors.CategoryOperation, read.Error()).
			WithTextCode(TextCodeFileRead)
	}
	if errors.Is(err, ErrDirectoryRequired) {
		return UsageError()
	}
	return err
}
