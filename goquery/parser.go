// Package goquery implements dataminer.Parser and dataminer.Node on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dataminer"
	"golang.org/x/net/html"
)

// Ensure Parser implements dataminer.Parser at compile time.
var _ dataminer.Parser = (*Parser)(nil)

// Parser parses HTML using the HTML5 parsing algorithm of golang.org/x/net/html.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the document root. The HTML5 algorithm repairs malformed
// markup, so the only failure mode is a reader error, which cannot happen
// for an in-memory string; an empty document is returned in that case.
func (p *Parser) Parse(markup string) dataminer.Node {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		root = &html.Node{Type: html.DocumentNode}
	}
	return &Node{sel: goquery.NewDocumentFromNode(root).Selection}
}
