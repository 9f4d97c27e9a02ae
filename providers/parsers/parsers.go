/*
Package parsers provides the text extraction collaborators used by the
release checks.

Goals:
 - Finding TOML fenced code blocks in Markdown texts
 - Extracting dependency version requirements from TOML manifests
 - Collecting documentation URLs from Go package doc comments
*/
package parsers

// CodeBlock represents a fenced code block found in a Markdown text.
type CodeBlock struct {
	// Content is the text between the fences.
	Content string
	// FirstLine is the 1-based line number of the first content line.
	FirstLine int
	// Info is the raw info string following the opening fence.
	Info string
}

// DocURL represents one URL found in a doc comment.
type DocURL struct {
	// URL as written, with trailing sentence punctuation stripped.
	URL string
	// Line number starting with 1.
	Line int
}
