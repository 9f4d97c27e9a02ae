package versync

import (
	"context"
	"fmt"

	"github.com/dephub/versync/providers/fetchers"
	"github.com/dephub/versync/providers/parsers"
	"github.com/dephub/versync/providers/patterns"
	"github.com/dephub/versync/providers/versioneer"
)

// ContainsSubstring checks that the file at path contains the template
// at least once after placeholder expansion. The expanded template is
// searched for as a plain substring, see ContainsRegexp for regular
// expression matching.
func (c *Checker) ContainsSubstring(ctx context.Context, path, template string) error {
	pattern := patterns.Expand(template, c.name, c.version)

	text, err := fetchers.Text(ctx, c.fetcher, path)
	if err != nil {
		return fmt.Errorf("could not read %s: %v", path, err)
	}

	c.log.Printf("Searching for %q in %s...", template, path)
	m := patterns.FindSubstring(text, pattern)
	if m == nil {
		return fmt.Errorf("could not find %q in %s", pattern, path)
	}
	c.log.Printf("%s (line %d) ... ok", path, m.Line)
	return nil
}

// ContainsRegexp checks that the file at path matches the regular
// expression given by template at least once.
//
// The name and version substituted for the placeholders are escaped, so
// a package name with regexp metacharacters still matches literally.
// Matching is multi-line: '^' and '$' match at every line boundary of
// the file, not only at its ends.
func (c *Checker) ContainsRegexp(ctx context.Context, path, template string) error {
	pattern := patterns.ExpandRegexp(template, c.name, c.version)
	re, err := patterns.CompileMultiline(pattern)
	if err != nil {
		return fmt.Errorf("could not parse template: %v", err)
	}

	text, err := fetchers.Text(ctx, c.fetcher, path)
	if err != nil {
		return fmt.Errorf("could not read %s: %v", path, err)
	}

	c.log.Printf("Searching for %q in %s...", pattern, path)
	m := patterns.FindRegexp(text, re)
	if m == nil {
		return fmt.Errorf("could not find %q in %s", pattern, path)
	}
	c.log.Printf("%s (line %d) ... ok", path, m.Line)
	return nil
}

// OnlyContainsRegexp checks that every match of template in the file at
// path carries a version compatible with the package version.
//
// Where ContainsRegexp verifies the existence of at least one match,
// this check widens '{version}' into an expression matching any SemVer
// version number, finds all matches and verifies every version found in
// them. Partial versions are enough when compatible: 'foo/{version}'
// accepts 'foo/1.2' and 'foo/1' while the package is at 1.2.3. Zero
// matches is a failure of its own, distinct from matches carrying wrong
// versions.
func (c *Checker) OnlyContainsRegexp(ctx context.Context, path, template string) error {
	version, err := versioneer.NewVersion(c.version)
	if err != nil {
		return err
	}

	pattern := patterns.ExpandAnyVersion(template, c.name)
	re, err := patterns.CompileMultiline(pattern)
	if err != nil {
		return fmt.Errorf("could not parse template: %v", err)
	}

	text, err := fetchers.Text(ctx, c.fetcher, path)
	if err != nil {
		return fmt.Errorf("could not read %s: %v", path, err)
	}

	c.log.Printf("Searching for %q in %s...", template, path)
	records, matched, err := patterns.ScanVersions(text, re, version)
	if err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("%s ... found no matches for %q", path, template)
	}

	failed := 0
	for _, record := range records {
		if record.Err != nil {
			failed++
			c.log.Printf("%s (line %d) ... found %q, which does not match version %q: %v",
				path, record.Line, record.Constraint, c.version, record.Err)
			continue
		}
		c.log.Printf("%s (line %d) ... ok", path, record.Line)
	}
	if failed > 0 {
		return fmt.Errorf("%s ... found %d errors", path, failed)
	}
	return nil
}

// MarkdownDeps checks dependencies in the TOML code blocks of the
// Markdown file at path.
//
// Every TOML block is expected to declare a dependency on the package
// with a version requirement compatible with the package version. A
// block fails the check when its requirement does not match, when it has
// no dependency on the package at all, or when it cannot be parsed as
// TOML. Blocks can opt out by adding 'no_sync' to the fence language
// line.
func (c *Checker) MarkdownDeps(ctx context.Context, path string) error {
	text, err := fetchers.Text(ctx, c.fetcher, path)
	if err != nil {
		return fmt.Errorf("could not read %s: %v", path, err)
	}
	version, err := versioneer.NewVersion(c.version)
	if err != nil {
		return err
	}

	c.log.Printf("Checking code blocks in %s...", path)
	failed := false
	for _, block := range parsers.FindTOMLBlocks(text) {
		constr, err := parsers.ExtractConstraints(block.Content, c.name)
		if err == nil {
			err = constr.Matches(version)
		}
		if err != nil {
			failed = true
			c.log.Printf("%s (line %d) ... %v in", path, block.FirstLine, err)
			c.log.Printf("%s\n", indent(block.Content))
			continue
		}
		c.log.Printf("%s (line %d) ... ok", path, block.FirstLine)
	}

	if failed {
		return fmt.Errorf("dependency errors in %s", path)
	}
	return nil
}

// DocComments checks the version numbers of documentation URLs in the
// package doc comment of the Go source file at path.
//
// Every URL pointing at a documentation host the checker understands
// (docs.rs and pkg.go.dev) must name the package and a version
// compatible with the package version. URLs on other hosts cannot be
// verified and always pass. Partial versions ('.../foo/1.2/') are
// accepted when compatible.
func (c *Checker) DocComments(ctx context.Context, path string) error {
	text, err := fetchers.Text(ctx, c.fetcher, path)
	if err != nil {
		return fmt.Errorf("could not read %s: %v", path, err)
	}
	version, err := versioneer.NewVersion(c.version)
	if err != nil {
		return err
	}

	urls, err := parsers.PackageDocURLs(path, text)
	if err != nil {
		return fmt.Errorf("could not parse %s: %v", path, err)
	}

	c.log.Printf("Checking doc comments in %s...", path)
	failed := false
	for _, u := range urls {
		if err := urlMatches(u.URL, c.name, version); err != nil {
			failed = true
			c.log.Printf("%s (line %d) ... %v in", path, u.Line, err)
			c.log.Printf("    %s", u.URL)
			continue
		}
		c.log.Printf("%s (line %d) ... ok", path, u.Line)
	}

	if failed {
		return fmt.Errorf("doc comment errors in %s", path)
	}
	return nil
}
