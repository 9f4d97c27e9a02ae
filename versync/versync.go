/*
Package versync provides release hygiene checks that keep the version
numbers mentioned in documentation, changelogs and source files in sync
with the declared package version.

A typical configuration runs the checks from a test:

	func TestVersionNumbers(t *testing.T) {
		c := versync.New("versync", "1.2.3")
		c.AssertContainsSubstring(t, "CHANGELOG.md", "## Version {version}")
		c.AssertMarkdownDeps(t, "README.md")
		c.AssertOnlyContainsRegexp(t, "README.md", "docs.rs/{name}/{version}/")
	}

Templates may mention the current package through the '{name}' and
'{version}' placeholders. Checks read files relative to the test's
working directory by default; WithFetcher switches them to any other
source, including a remote repository (see NewGitChecker).
*/
package versync

import (
	"os"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dephub/versync/providers/fetchers"
)

// Checker runs release hygiene checks for one package name and version
// against the files of a project tree.
//
// A Checker holds no state across checks, the same instance may be used
// from concurrent tests.
type Checker struct {
	name    string
	version string
	fetcher fetchers.FileFetcher
	log     *log.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithFetcher makes the checker read files through the given fetcher
// instead of the local filesystem.
func WithFetcher(fetcher fetchers.FileFetcher) Option {
	return func(c *Checker) { c.fetcher = fetcher }
}

// WithLogger replaces the per-match status logger. Status lines are a
// human readable side channel and are not part of the check results.
func WithLogger(logger *log.Logger) Option {
	return func(c *Checker) { c.log = logger }
}

// New constructs a Checker for the given package name and version.
func New(name, version string, opts ...Option) *Checker {
	c := &Checker{
		name:    name,
		version: version,
		fetcher: fetchers.OSFetcher{},
		log:     log.New(os.Stdout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ModuleInfo returns the main module path and version recorded in the
// calling binary's build info, as a convenience for wiring New. The
// version has its leading 'v' stripped. Binaries built from a working
// tree report no usable version ('devel'), so tests usually pass the
// version explicitly instead.
func ModuleInfo() (name, version string, ok bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}
	return bi.Main.Path, strings.TrimPrefix(bi.Main.Version, "v"), true
}

// indent prefixes every line in text with four spaces.
func indent(text string) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}
