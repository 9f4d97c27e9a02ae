package fetchers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v33/github"
)

// GitHubFetcher fetches files from a repository on github.com, so the
// release checks can run against the tree of a pushed revision instead
// of the local checkout.
//
// Owner and Repo follow the '{owner}/{repo}' notation. Ref may be a
// commit SHA, branch or tag; when empty the default branch is used.
type GitHubFetcher struct {
	Owner string
	Repo  string
	Ref   string
	cli   *github.Client
}

// NewGitHubFetcher constructs a GitHubFetcher. httpClient may carry
// authentication (OAuth2, BasicAuth) for private repositories and
// better rate limits; nil means the default client.
func NewGitHubFetcher(httpClient *http.Client, owner, repo, ref string) *GitHubFetcher {
	return &GitHubFetcher{
		Owner: owner,
		Repo:  repo,
		Ref:   ref,
		cli:   github.NewClient(httpClient),
	}
}

// FileContent fetches the repository-root-relative path at the
// configured ref.
func (gf *GitHubFetcher) FileContent(ctx context.Context, path string) ([]byte, error) {
	opts := github.RepositoryContentGetOptions{Ref: gf.Ref}

	fc, dc, resp, err := gf.cli.Repositories.GetContents(ctx, gf.Owner, gf.Repo, path, &opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("unable to fetch %q from github: %w", path, err)
	}
	if len(dc) != 0 || fc == nil {
		return nil, fmt.Errorf("%q is a directory, not a file", path)
	}

	content, err := fc.GetContent()
	if err != nil {
		return nil, fmt.Errorf("unable to decode %q content: %w", path, err)
	}
	return []byte(content), nil
}
