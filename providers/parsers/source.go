package parsers

import (
	"go/parser"
	"go/token"
	"regexp"
	"strings"
)

// docURLRgx matches absolute URLs inside comment text. The mailto form
// has no authority part and is matched separately.
var docURLRgx = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://[^\s"'()<>\[\]]+|mailto:[^\s"'()<>\[\]]+`)

// PackageDocURLs parses src as a Go source file and returns every URL
// appearing in its package documentation comment, with the 1-based line
// each URL starts on. A file without a package doc comment yields no
// URLs and no error.
func PackageDocURLs(filename, src string) ([]DocURL, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	if file.Doc == nil {
		return nil, nil
	}

	var urls []DocURL
	for _, comment := range file.Doc.List {
		base := fset.Position(comment.Pos()).Line
		for offset, line := range strings.Split(comment.Text, "\n") {
			for _, url := range docURLRgx.FindAllString(line, -1) {
				urls = append(urls, DocURL{
					URL:  strings.TrimRight(url, ".,;:!?"),
					Line: base + offset,
				})
			}
		}
	}
	return urls, nil
}
