package versync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dephub/versync/providers/fetchers"
)

func TestNewGitChecker(t *testing.T) {
	addresses := []string{
		"git@github.com:vendor/reponame.git",
		"git://github.com/vendor/reponame.git",
		"ssh://git@github.com/vendor/reponame.git",
		"https://github.com/vendor/reponame",
		"https://github.com/vendor/reponame/",
		"http://github.com/vendor/reponame.git",
	}

	for _, addr := range addresses {
		t.Run(addr, func(t *testing.T) {
			c, err := NewGitChecker(nil, addr, "main", "foobar", "1.2.3")
			require.NoError(t, err)

			gf, ok := c.fetcher.(*fetchers.GitHubFetcher)
			require.True(t, ok, "expected a github fetcher, got %T", c.fetcher)
			assert.Equal(t, "vendor", gf.Owner)
			assert.Equal(t, "reponame", gf.Repo)
			assert.Equal(t, "main", gf.Ref)
		})
	}
}

func TestNewGitChecker_BadAddress(t *testing.T) {
	_, err := NewGitChecker(nil, "not a git address", "", "foobar", "1.2.3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported git repository format")
}

func TestNewGitChecker_UnsupportedSource(t *testing.T) {
	_, err := NewGitChecker(nil, "git@gitlab.com:vendor/reponame.git", "", "foobar", "1.2.3")
	require.Error(t, err)
	assert.Equal(t, `git source "gitlab.com" is not supported`, err.Error())
}

func TestNewGitChecker_Options(t *testing.T) {
	mem := fetchers.MemoryFetcher{}
	c, err := NewGitChecker(nil, "https://github.com/vendor/reponame", "", "foobar", "1.2.3",
		WithFetcher(mem))
	require.NoError(t, err)

	// Explicit options win over the fetcher derived from the address.
	_, ok := c.fetcher.(fetchers.MemoryFetcher)
	assert.True(t, ok, "expected the option fetcher, got %T", c.fetcher)
}
