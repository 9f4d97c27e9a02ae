package versync

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	semver "github.com/Masterminds/semver/v3"

	"github.com/dephub/versync/providers/versioneer"
)

// Documentation hosts the checker can reason about.
const (
	docsRSHost   = "docs.rs"
	pkgGoDevHost = "pkg.go.dev"
)

// urlMatches validates that a documentation URL names pkgName and a
// version compatible with version.
//
// URLs on hosts other than docs.rs and pkg.go.dev pass vacuously. Both
// hosts redirect plain HTTP, so the scheme must be https; a missing
// scheme is a failure as well, naming the (empty) scheme found.
func urlMatches(value, pkgName string, version *semver.Version) error {
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("parse error: %v", err)
	}

	host := u.Hostname()
	if host != "" && host != docsRSHost && host != pkgGoDevHost {
		// We cannot verify third-party documentation hosts.
		return nil
	}

	if u.Scheme != "https" {
		return fmt.Errorf("expected \"https\", found %q", u.Scheme)
	}

	if host == pkgGoDevHost {
		return pkgGoDevMatches(u.Path, pkgName, version)
	}
	return docsRSMatches(u.Path, pkgName, version)
}

// docsRSMatches validates a docs.rs path: the first segment is the
// package name, the second is the version.
func docsRSMatches(path, pkgName string, version *semver.Version) error {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")

	if len(segments) < 1 || segments[0] == "" {
		return errors.New("missing package name")
	}
	name := segments[0]

	if len(segments) < 2 || segments[1] == "" {
		return errors.New("missing version number")
	}
	request := segments[1]

	if name != pkgName {
		return fmt.Errorf("expected package %q, found %q", pkgName, name)
	}
	return requestMatches(request, version)
}

// pkgGoDevMatches validates a pkg.go.dev path: the full import path with
// an '@vVERSION' suffix on its last segment.
func pkgGoDevMatches(path, pkgName string, version *semver.Version) error {
	trimmed := strings.Trim(path, "/")
	name, request, versioned := strings.Cut(trimmed, "@")

	if name == "" {
		return errors.New("missing package name")
	}
	if !versioned || request == "" {
		return errors.New("missing version number")
	}
	if name != pkgName {
		return fmt.Errorf("expected package %q, found %q", pkgName, name)
	}
	return requestMatches(request, version)
}

// requestMatches parses the version segment of a URL as a requirement
// and checks it. Partial versions like '1' or '1.2' act as wildcards on
// the omitted segments.
func requestMatches(request string, version *semver.Version) error {
	constr, err := versioneer.NewConstraints(request)
	if err != nil {
		return fmt.Errorf("could not parse version in URL: %v", err)
	}
	return constr.Matches(version)
}

