package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageDocURLs(t *testing.T) {
	src := `// Package foo does things.
//
// Documentation: https://docs.rs/foo/1.2.3/ and the project page,
// https://example.net/foo.
package foo
`
	urls, err := PackageDocURLs("foo.go", src)
	require.NoError(t, err)
	require.Len(t, urls, 2)

	assert.Equal(t, "https://docs.rs/foo/1.2.3/", urls[0].URL)
	assert.Equal(t, 3, urls[0].Line)

	// Trailing sentence punctuation is not part of the URL.
	assert.Equal(t, "https://example.net/foo", urls[1].URL)
	assert.Equal(t, 4, urls[1].Line)
}

func TestPackageDocURLs_BlockComment(t *testing.T) {
	src := `/*
Package foo does things.

See https://pkg.go.dev/example.net/foo@v1.2.3 for documentation.
*/
package foo
`
	urls, err := PackageDocURLs("foo.go", src)
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, "https://pkg.go.dev/example.net/foo@v1.2.3", urls[0].URL)
	assert.Equal(t, 4, urls[0].Line)
}

func TestPackageDocURLs_Mailto(t *testing.T) {
	src := `// Package foo is maintained via mailto:foo@example.net
package foo
`
	urls, err := PackageDocURLs("foo.go", src)
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, "mailto:foo@example.net", urls[0].URL)
}

func TestPackageDocURLs_NoDocComment(t *testing.T) {
	urls, err := PackageDocURLs("foo.go", "package foo\n")
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestPackageDocURLs_DetachedComment(t *testing.T) {
	// A comment separated from the package clause by a blank line is
	// not the package doc comment.
	src := `// https://docs.rs/foo/9.9.9/

package foo
`
	urls, err := PackageDocURLs("foo.go", src)
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestPackageDocURLs_ParseError(t *testing.T) {
	_, err := PackageDocURLs("foo.go", "not go source")
	require.Error(t, err)
}
