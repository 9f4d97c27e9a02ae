package versync

import "context"

// TestingT is the subset of testing.TB the assertion helpers need.
// *testing.T satisfies it.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

// tHelper marks helper frames when the TestingT implementation supports it.
type tHelper interface {
	Helper()
}

// fail reports err on t and aborts the test. The status lines with the
// full diagnostic trail have already been emitted at this point.
func fail(t TestingT, err error) {
	if err == nil {
		return
	}
	t.Errorf("%v", err)
	t.FailNow()
}

// AssertContainsSubstring runs ContainsSubstring and aborts the test on
// failure.
func (c *Checker) AssertContainsSubstring(t TestingT, path, template string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	fail(t, c.ContainsSubstring(context.Background(), path, template))
}

// AssertContainsRegexp runs ContainsRegexp and aborts the test on
// failure.
func (c *Checker) AssertContainsRegexp(t TestingT, path, template string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	fail(t, c.ContainsRegexp(context.Background(), path, template))
}

// AssertOnlyContainsRegexp runs OnlyContainsRegexp and aborts the test
// on failure.
func (c *Checker) AssertOnlyContainsRegexp(t TestingT, path, template string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	fail(t, c.OnlyContainsRegexp(context.Background(), path, template))
}

// AssertMarkdownDeps runs MarkdownDeps and aborts the test on failure.
func (c *Checker) AssertMarkdownDeps(t TestingT, path string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	fail(t, c.MarkdownDeps(context.Background(), path))
}

// AssertDocComments runs DocComments and aborts the test on failure.
func (c *Checker) AssertDocComments(t TestingT, path string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	fail(t, c.DocComments(context.Background(), path))
}
