package versync

import (
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/dephub/versync/providers/fetchers"
)

// gitAddrRgx is used to parse repository info from a git-compatible
// address string.
//
// Examples matching the expression:
//
//	'git@github.com:vendor/reponame.git'
//	'https://github.com/vendor/reponame' and so on...
var gitAddrRgx = regexp.MustCompile(`^(?:git@|git://|ssh://(?:git@)?|https?://)([\w.-]+)[:/]([\w.-]+)/([\w.-]+?)(?:\.git)?/?$`)

// supGitSrcs - supported git sources.
var supGitSrcs = []string{"github.com"}

// NewGitChecker constructs a Checker that reads files from a remote git
// repository instead of a local tree, so release checks can run against
// a pushed revision.
//
// repoAddr is the repository address (e.g.
// 'git@github.com:vendor/reponame.git'), ref may be a commit SHA, branch
// or tag (empty for the default branch). httpClient can carry OAuth2 or
// BasicAuth information for private repositories and increased rate
// limits; nil means the default client.
func NewGitChecker(httpClient *http.Client, repoAddr, ref, pkgName, pkgVersion string, opts ...Option) (*Checker, error) {
	matches := gitAddrRgx.FindStringSubmatch(strings.TrimSpace(repoAddr))
	if matches == nil {
		return nil, fmt.Errorf("unsupported git repository format %q", repoAddr)
	}
	host, owner, repo := matches[1], matches[2], matches[3]

	if !slices.Contains(supGitSrcs, host) {
		return nil, fmt.Errorf("git source %q is not supported", host)
	}

	fetcher := fetchers.NewGitHubFetcher(httpClient, owner, repo, ref)
	return New(pkgName, pkgVersion, append([]Option{WithFetcher(fetcher)}, opts...)...), nil
}
