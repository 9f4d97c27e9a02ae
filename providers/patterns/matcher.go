package patterns

import (
	"fmt"
	"regexp"
	"strings"

	semver "github.com/Masterminds/semver/v3"

	"github.com/dephub/versync/providers/versioneer"
)

// Match represents one pattern match inside a text body.
type Match struct {
	// Text is the matched text.
	Text string
	// Line is the 1-based line number of the match start.
	Line int
}

// Record is the verdict for one version expression found inside a match
// of the exhaustive scan.
type Record struct {
	// Constraint is the raw version expression that was found.
	Constraint string
	// Line is the 1-based line number of the enclosing match.
	Line int
	// Err is nil when the expression is compatible with the package
	// version, otherwise a *versioneer.MismatchError.
	Err error
}

// lineAt returns the 1-based line number of the byte offset: the number
// of newline characters strictly before it, plus one.
func lineAt(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}

// FindSubstring locates the first occurrence of the literal pattern in
// text. It returns nil when there is none.
func FindSubstring(text, pattern string) *Match {
	idx := strings.Index(text, pattern)
	if idx < 0 {
		return nil
	}
	return &Match{Text: pattern, Line: lineAt(text, idx)}
}

// FindRegexp locates the first match of the compiled expression in text.
// It returns nil when there is none.
func FindRegexp(text string, re *regexp.Regexp) *Match {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return nil
	}
	return &Match{Text: text[loc[0]:loc[1]], Line: lineAt(text, loc[0])}
}

// ScanVersions iterates over every non-overlapping match of the compiled
// expression and checks each SemVer version expression embedded in a
// match for compatibility with version.
//
// One Record per version expression is returned, in text order, each
// carrying its own verdict. The boolean reports whether the expression
// matched at all: no matches is a different outcome than matches with
// wrong versions, and the caller must treat it as a failure of its own.
//
// A version expression that cannot be verified (see
// versioneer.Constraints.Matches) yields a compatible Record, so widened
// patterns may match old-style ranges without false failures.
func ScanVersions(text string, re *regexp.Regexp, version *semver.Version) ([]Record, bool, error) {
	var records []Record
	matched := false

	for _, loc := range re.FindAllStringIndex(text, -1) {
		matched = true
		line := lineAt(text, loc[0])

		for _, expr := range semverRgxCompiled.FindAllString(text[loc[0]:loc[1]], -1) {
			constr, err := versioneer.NewConstraints(expr)
			if err != nil {
				return nil, matched, fmt.Errorf("could not parse version: %w", err)
			}
			records = append(records, Record{
				Constraint: expr,
				Line:       line,
				Err:        constr.Matches(version),
			})
		}
	}

	return records, matched, nil
}
