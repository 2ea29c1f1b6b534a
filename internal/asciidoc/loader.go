package asciidoc

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const defaultExtension = ".adoc"

// LoaderConfig configures how files are discovered in a directory.
type LoaderConfig struct {
	// Extension limits discovery to names with this suffix (defaults to ".adoc").
	Extension string
}

// Loader lists the candidate files of a single directory. Discovery is never
// recursive.
type Loader struct {
	extension string
}

// NewLoader constructs a Loader for the supplied configuration.
func NewLoader(cfg LoaderConfig) *Loader {
	ext := strings.TrimSpace(cfg.Extension)
	if ext == "" {
		ext = defaultExtension
	}
	return &Loader{extension: ext}
}

// Extension returns the suffix the loader matches.
func (l *Loader) Extension() string {
	return l.extension
}

// Discover returns the paths of the regular files directly inside dir whose
// extension matches, sorted ascending. Symlinks are followed when deciding
// whether an entry is a regular file. The returned order is the worker
// numbering and print order for the whole run.
func (l *Loader) Discover(ctx context.Context, dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrDirectoryRequired
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, &InvalidPathError{Path: dir, Err: unwrapPathError(err)}
	}
	if !info.IsDir() {
		return nil, &InvalidPathError{Path: dir, Err: ErrNotDirectory}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &InvalidPathError{Path: dir, Err: unwrapPathError(err)}
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !l.matches(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		target, err := os.Stat(path)
		if err != nil || !target.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}

	sort.Strings(paths)
	return paths, nil
}

// matches compares the name suffix case-sensitively, so multi-dot extensions
// such as ".tar.gz" work. A name that is only the extension (".adoc") is a
// dotfile without an extension and is skipped.
func (l *Loader) matches(name string) bool {
	return strings.HasSuffix(name, l.extension) && name != l.extension
}

func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
