package main

import (
	"go/scanner"
	"go/token"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// highlightSource applies token-class highlighting to a Go source snippet.
// Whitespace between tokens is preserved, so stripping the ANSI codes from
// the result yields the input unchanged. Scan errors are ignored; partial
// snippets are highlighted for their valid portions.
func highlightSource(src string) string {
	if src == "" {
		return ""
	}

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	var s scanner.Scanner
	s.Init(file, []byte(src), nil, scanner.ScanComments)

	var result strings.Builder
	last := 0
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		// Implicit semicolons have no source text of their own; the
		// newline that triggered them is emitted as inter-token space.
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		off := file.Offset(pos)
		if off > last {
			result.WriteString(src[last:off])
		}
		text := lit
		if text == "" {
			text = tok.String()
		}
		result.WriteString(tokenStyle(tok).Render(text))
		last = off + len(text)
	}
	if last < len(src) {
		result.WriteString(src[last:])
	}
	return result.String()
}

// tokenStyle maps a token to its highlight class.
func tokenStyle(tok token.Token) lipgloss.Style {
	switch {
	case tok == token.COMMENT:
		return commentStyle
	case tok.IsKeyword():
		return keywordStyle
	case tok == token.STRING || tok == token.CHAR:
		return stringStyle
	case tok == token.IDENT:
		return identStyle
	case tok.IsLiteral(): // INT, FLOAT, IMAG
		return literalStyle
	case tok.IsOperator():
		return operatorStyle
	default:
		return defaultStyle
	}
}
