package parsers

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// FindTOMLBlocks returns every fenced code block in the Markdown text
// whose info string marks it as TOML code, in document order. Indented
// code blocks have no info string and are never returned.
func FindTOMLBlocks(markdown string) []CodeBlock {
	src := []byte(markdown)
	root := goldmark.DefaultParser().Parse(gtext.NewReader(src))

	var blocks []CodeBlock
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		info := string(fcb.Info.Segment.Value(src))
		if !IsTOMLInfo(info) {
			return ast.WalkContinue, nil
		}

		var content strings.Builder
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			content.Write(seg.Value(src))
		}

		// The info string sits on the fence line, so the first content
		// line is one further down.
		fenceLine := strings.Count(markdown[:fcb.Info.Segment.Start], "\n") + 1
		blocks = append(blocks, CodeBlock{
			Content:   content.String(),
			FirstLine: fenceLine + 1,
			Info:      info,
		})
		return ast.WalkContinue, nil
	})

	return blocks
}

// IsTOMLInfo reports whether a fence info string says the block is TOML
// code. The info string is split into tokens on anything that is not a
// letter, digit, '_' or '-': a block is TOML when one of the tokens is
// 'toml', unless another token is 'no_sync' which opts the block out of
// checking entirely.
func IsTOMLInfo(info string) bool {
	hasTOML := false
	tokens := strings.FieldsFunc(info, func(r rune) bool {
		return !(r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	for _, token := range tokens {
		switch token {
		case "no_sync":
			return false
		case "toml":
			hasTOML = true
		}
	}
	return hasTOML
}
