/*
Package patterns provides placeholder template expansion and the pattern
matching engines behind the release checks.

Templates may contain the literal tokens '{name}' and '{version}', each
appearing any number of times (including zero). Depending on the target
syntax the substituted values are inserted verbatim, escaped for use
inside a regular expression, or '{version}' is widened into an expression
matching any SemVer version number.
*/
package patterns

import (
	"regexp"
	"strings"
)

// Placeholder tokens recognized in templates.
const (
	NameToken    = "{name}"
	VersionToken = "{version}"
)

// SemverRgx matches a full or partial SemVer version number following the
// canonical grammar: numeric segments without leading zeros, dot separated
// alphanumeric-or-hyphen pre-release and build metadata identifiers. Only
// the major segment is required.
const SemverRgx = `(?P<major>0|[1-9]\d*)` +
	`(?:\.(?P<minor>0|[1-9]\d*)` +
	`(?:\.(?P<patch>0|[1-9]\d*)` +
	`(?:-(?P<prerelease>(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)` +
	`(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
	`(?:\+(?P<buildmetadata>[0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?` +
	`)?)?`

// semverRgxCompiled is compiled from SemverRgx.
var semverRgxCompiled = regexp.MustCompile(SemverRgx)

// Expand replaces the placeholder tokens with name and version for plain
// substring searching. No escaping is performed.
func Expand(template, name, version string) string {
	pattern := strings.ReplaceAll(template, NameToken, name)
	return strings.ReplaceAll(pattern, VersionToken, version)
}

// ExpandRegexp replaces the placeholder tokens with name and version for
// use inside a regular expression. The values are escaped, so a package
// name like 'foo*bar' matches itself and nothing else.
func ExpandRegexp(template, name, version string) string {
	pattern := strings.ReplaceAll(template, NameToken, regexp.QuoteMeta(name))
	return strings.ReplaceAll(pattern, VersionToken, regexp.QuoteMeta(version))
}

// ExpandAnyVersion replaces '{name}' with the escaped name and '{version}'
// with an expression matching any full or partial SemVer version number.
// The result is used by the exhaustive check to also find outdated
// occurrences of the package version.
func ExpandAnyVersion(template, name string) string {
	pattern := strings.ReplaceAll(template, NameToken, regexp.QuoteMeta(name))
	return strings.ReplaceAll(pattern, VersionToken, SemverRgx)
}

// CompileMultiline compiles pattern in multi-line mode, so '^' and '$'
// match at every line boundary. The pattern is validated exactly as
// written first: compile diagnostics must read as if multi-line matching
// were an inherent property of the search, not a flag prepended to the
// caller's pattern.
func CompileMultiline(pattern string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, err
	}
	return regexp.Compile("(?m)" + pattern)
}
