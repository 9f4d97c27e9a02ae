package fetchers

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryFetcher(t *testing.T) {
	mf := MemoryFetcher{Files: map[string][]byte{
		"README.md": []byte("# Hello"),
	}}

	b, err := mf.FileContent(context.Background(), "README.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "# Hello" {
		t.Errorf("unexpected content %q", string(b))
	}

	_, err = mf.FileContent(context.Background(), "missing.md")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestOSFetcher(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "CHANGELOG.md"), []byte("## 1.0.0"), 0o644); err != nil {
		t.Fatal(err)
	}

	of := OSFetcher{Root: dir}
	b, err := of.FileContent(context.Background(), "CHANGELOG.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "## 1.0.0" {
		t.Errorf("unexpected content %q", string(b))
	}

	_, err = of.FileContent(context.Background(), "no-such-file.md")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestText_NormalizesLineEndings(t *testing.T) {
	mf := MemoryFetcher{Files: map[string][]byte{
		"README.md": []byte("first line\r\nsecond line\r\nthird line\r\n"),
	}}

	text, err := Text(context.Background(), mf, "README.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "first line\nsecond line\nthird line\n" {
		t.Errorf("line endings not normalized: %q", text)
	}
}

// configureClient configures a client that intercepts all requests and
// forwards them into the specified handler.
func configureClient(t *testing.T, handleFunc http.Handler) *http.Client {
	t.Helper()
	srv := httptest.NewTLSServer(handleFunc)
	t.Cleanup(srv.Close)

	return &http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, network, _ string) (net.Conn, error) {
				return net.Dial(network, srv.Listener.Addr().String())
			},
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
}

func TestGitHubFetcher(t *testing.T) {
	cl := configureClient(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte(`{"content": "## Version 1.2.3"}`))
	}))

	gf := NewGitHubFetcher(cl, "dephub", "versync", "main")
	b, err := gf.FileContent(context.Background(), "CHANGELOG.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "## Version 1.2.3" {
		t.Errorf("unexpected content %q", string(b))
	}
}

func TestGitHubFetcher_NotFound(t *testing.T) {
	cl := configureClient(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
		_, _ = rw.Write([]byte(`{"message": "Not Found"}`))
	}))

	gf := NewGitHubFetcher(cl, "dephub", "versync", "")
	_, err := gf.FileContent(context.Background(), "missing.md")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestGitHubFetcher_Directory(t *testing.T) {
	cl := configureClient(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte(`[
			{"name": "README.md", "path": "docs/README.md"},
			{"name": "usage.md", "path": "docs/usage.md"}
		]`))
	}))

	gf := NewGitHubFetcher(cl, "dephub", "versync", "")
	_, err := gf.FileContent(context.Background(), "docs")
	if err == nil {
		t.Error("expected error for directory path, got none")
	}
}
