package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dataminer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Node implements dataminer.Node at compile time.
var _ dataminer.Node = (*Node)(nil)

// Node wraps a single-element goquery selection.
type Node struct {
	sel *goquery.Selection
}

// SelectAll returns all descendants matching locator in document order.
// goquery compiles an invalid selector into a matcher that matches nothing.
func (n *Node) SelectAll(locator string) []dataminer.Node {
	var nodes []dataminer.Node
	n.sel.Find(locator).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// SelectOne returns the first descendant matching locator.
func (n *Node) SelectOne(locator string) (dataminer.Node, bool) {
	s := n.sel.Find(locator).First()
	if s.Length() == 0 {
		return nil, false
	}
	return &Node{sel: s}, true
}

// Text returns the trimmed text fragments of the node joined without a
// separator. Script and style contents are not text.
func (n *Node) Text() string {
	if n.sel.Length() == 0 {
		return ""
	}
	var b strings.Builder
	appendText(&b, n.sel.Get(0))
	return b.String()
}

func appendText(b *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		b.WriteString(strings.TrimSpace(node.Data))
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if node.DataAtom == atom.Script || node.DataAtom == atom.Style {
			return
		}
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		appendText(b, c)
	}
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}
