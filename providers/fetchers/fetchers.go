/*
Package fetchers provides file content fetching for local and remote
project trees.

The release checks only ever need single files (README.md, CHANGELOG.md,
a source file), so the abstraction is a one-method interface that every
source implements: the local filesystem, an in-memory map for tests, or
a GitHub repository.
*/
package fetchers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrFileNotFound is returned when the requested file does not
	// exist in the source.
	ErrFileNotFound = errors.New("file not found")
)

// FileFetcher interface defines fetchers methods.
type FileFetcher interface {
	FileContent(ctx context.Context, path string) ([]byte, error)
}

// MemoryFetcher stores file contents in memory. Useful for testing or
// for building custom source logic.
type MemoryFetcher struct {
	Files map[string][]byte
}

// FileContent retrieves contents from the map using path as the key.
func (mf MemoryFetcher) FileContent(ctx context.Context, path string) ([]byte, error) {
	b, ok := mf.Files[path]
	if !ok {
		return nil, ErrFileNotFound
	}
	return b, nil
}

// OSFetcher reads files from the local filesystem. Relative paths are
// resolved against Root when it is set, otherwise against the working
// directory, which for 'go test' is the package directory.
type OSFetcher struct {
	Root string
}

// FileContent reads the file at path.
func (of OSFetcher) FileContent(ctx context.Context, path string) ([]byte, error) {
	if of.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(of.Root, path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return b, nil
}

// Text fetches path and returns it as text with "\r\n" line boundaries
// normalized to "\n", so '^' and '$' behave identically for files saved
// with either line ending.
func Text(ctx context.Context, fetcher FileFetcher, path string) (string, error) {
	b, err := fetcher.FileContent(ctx, path)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(b), "\r\n", "\n"), nil
}
