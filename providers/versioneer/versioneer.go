/*
Package versioneer provides semantic version and version constraints parsing
used by the release checks.

Versions are fixed SemVer versions (e.g. '1.2.3-rc1'), constraints are
Cargo-style requirement expressions made of comma separated comparators
(e.g. '^1.2', '>=1.0, <2.0' or '1.5.*').
*/
package versioneer

import (
	"fmt"
	"strings"

	semver "github.com/Masterminds/semver/v3"
)

// Op represents a single comparator operator (e.g. '>=').
type Op string

// Supported comparator operators.
const (
	// OpCompatible is the caret operator. A bare version ('1.2.3') is
	// shorthand for it.
	OpCompatible = Op("^")
	OpExact      = Op("=")
	OpTilde      = Op("~")
	OpGreater    = Op(">")
	OpGreaterEq  = Op(">=")
	OpLess       = Op("<")
	OpLessEq     = Op("<=")
	// OpWildcard marks comparators written with wildcard segments ('1.*').
	OpWildcard = Op("*")
)

// Comparator represents one clause of a constraint expression.
//
// Omitted segments are nil and act as wildcards: '1' matches any 1.x.y
// and '1.2' matches any 1.2.y.
type Comparator struct {
	Op                  Op
	Major, Minor, Patch *uint64
	// Pre holds the dot separated pre-release identifiers, empty when absent.
	Pre string
	// Build holds the build metadata, never compared.
	Build string
}

// Constraints represent a parsed constraint expression.
type Constraints struct {
	value       string
	comparators []Comparator
}

// Value method returns original unmodified raw value of the constraints.
func (c Constraints) Value() string {
	return c.value
}

// Comparators method returns the parsed comparator clauses in order.
func (c Constraints) Comparators() []Comparator {
	return c.comparators
}

// NewVersion parses a fixed package version. Parsing is strict: all three
// of major, minor and patch are required.
func NewVersion(value string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(value)
	if err != nil {
		return nil, fmt.Errorf("bad package version %q: %w", value, err)
	}
	return v, nil
}

// Mismatch components reported by MismatchError.
const (
	ComponentMajor      = "major"
	ComponentMinor      = "minor"
	ComponentPatch      = "patch"
	ComponentPreRelease = "pre-release"
)

// MismatchError describes a constraint segment that is incompatible with
// the package version. Expected is the package version segment, Found is
// the segment extracted from the constraint.
type MismatchError struct {
	Component string
	Expected  string
	Found     string
}

// Error method renders the mismatch in its human facing form.
func (e *MismatchError) Error() string {
	if e.Component == ComponentPreRelease {
		return fmt.Sprintf("expected pre-release %q, found %q", e.Expected, e.Found)
	}
	return fmt.Sprintf("expected %s version %s, found %s", e.Component, e.Expected, e.Found)
}

// Matches method validates that the version is compatible with the
// constraints. The returned error is a *MismatchError naming the first
// incompatible segment, or nil.
//
// Only requirements that reduce to a single comparator using one of the
// operators ^, =, ~, >, >= or a wildcard are actively verified, every
// other expression passes vacuously: the checks only flag known-bad
// versions and never claim to validate full range algebra.
func (c Constraints) Matches(v *semver.Version) error {
	if len(c.comparators) != 1 {
		// Can only handle simple requirements.
		return nil
	}

	cmp := c.comparators[0]
	switch cmp.Op {
	case OpCompatible, OpExact, OpTilde, OpGreater, OpGreaterEq, OpWildcard:
	default:
		// We cannot check the remaining operators.
		return nil
	}

	if cmp.Major != nil && *cmp.Major != v.Major() {
		return &MismatchError{
			Component: ComponentMajor,
			Expected:  fmt.Sprint(v.Major()),
			Found:     fmt.Sprint(*cmp.Major),
		}
	}
	if cmp.Minor != nil && *cmp.Minor != v.Minor() {
		return &MismatchError{
			Component: ComponentMinor,
			Expected:  fmt.Sprint(v.Minor()),
			Found:     fmt.Sprint(*cmp.Minor),
		}
	}
	if cmp.Patch != nil {
		if *cmp.Patch != v.Patch() {
			return &MismatchError{
				Component: ComponentPatch,
				Expected:  fmt.Sprint(v.Patch()),
				Found:     fmt.Sprint(*cmp.Patch),
			}
		}
		// A comparator carrying a pre-release implies a full
		// major.minor.patch, so the pre-release is only compared here.
		if cmp.Pre != v.Prerelease() {
			return &MismatchError{
				Component: ComponentPreRelease,
				Expected:  v.Prerelease(),
				Found:     cmp.Pre,
			}
		}
	}

	return nil
}

// NewConstraints constructs ready-to-use Constraints from a raw
// requirement expression.
func NewConstraints(value string) (Constraints, error) {
	parts := strings.Split(value, ",")
	comparators := make([]Comparator, 0, len(parts))
	for _, part := range parts {
		cmp, err := parseComparator(part)
		if err != nil {
			return Constraints{}, err
		}
		comparators = append(comparators, *cmp)
	}
	return Constraints{value: value, comparators: comparators}, nil
}
