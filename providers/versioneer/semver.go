package versioneer

import (
	"fmt"
	"regexp"
	"strconv"
)

/*
SemVer comparator parsing implementation.
*/

// semverConfig is used to store the comparator parser configuration.
type semverConfig struct {
	operators             map[string]Op  // Supported operator strings mapped to Op values (e.g. '>=')
	comparatorRgx         string         // Comparator regexp (e.g. '>= v1.2.*-rc1')
	comparatorRgxCompiled *regexp.Regexp // Compiled comparator regexp
}

// semverCfg is the global comparator parser configuration.
var semverCfg semverConfig

// Comparator parser config initialization and expression compiling.
func init() {
	semverCfg.operators = map[string]Op{
		"":   OpCompatible,
		"^":  OpCompatible,
		"=":  OpExact,
		"~":  OpTilde,
		">=": OpGreaterEq,
		"<=": OpLessEq,
		">":  OpGreater,
		"<":  OpLess,
	}
	// Longer operators come first in the alternation so '>=' is not
	// consumed as '>'.
	segment := `(\d+|\*|x|X)`
	identifiers := `[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*`
	semverCfg.comparatorRgx = fmt.Sprintf(
		`^\s*(>=|<=|\^|~|=|>|<)?\s*v?%[1]s(?:\.%[1]s)?(?:\.%[1]s)?(?:-(%[2]s))?(?:\+(%[2]s))?\s*$`,
		segment, identifiers,
	)
	semverCfg.comparatorRgxCompiled = regexp.MustCompile(semverCfg.comparatorRgx)
}

// parseComparator is a utility function to convert one raw unary
// comparator string into a Comparator.
func parseComparator(s string) (*Comparator, error) {
	matches := semverCfg.comparatorRgxCompiled.FindStringSubmatch(s)
	if matches == nil {
		return nil, fmt.Errorf("comparator not supported: %q", s)
	}

	cmp := &Comparator{
		Op:    semverCfg.operators[matches[1]],
		Pre:   matches[5],
		Build: matches[6],
	}

	// Segments after the first wildcard are treated as omitted, so
	// '1.*' and '1.*.3' both verify the major segment only.
	wildcard := false
	for i, dst := range []**uint64{&cmp.Major, &cmp.Minor, &cmp.Patch} {
		raw := matches[2+i]
		if raw == "" || wildcard {
			break
		}
		if raw == "*" || raw == "x" || raw == "X" {
			wildcard = true
			continue
		}
		segment, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("segment parse error: %w", err)
		}
		*dst = &segment
	}

	// A bare wildcard form ('*', '1.*') is its own operator.
	if wildcard && matches[1] == "" {
		cmp.Op = OpWildcard
	}

	return cmp, nil
}
