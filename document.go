package dataminer

// Node is a queryable element of a parsed HTML document.
// Locators are CSS selectors evaluated relative to the node.
type Node interface {
	// SelectAll returns every descendant matching locator, in document order.
	// An invalid locator matches nothing.
	SelectAll(locator string) []Node

	// SelectOne returns the first descendant matching locator.
	SelectOne(locator string) (Node, bool)

	// Text returns the node's text content. Each text fragment is trimmed
	// and the fragments are joined without a separator.
	Text() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
}

// Parser turns markup into a queryable document.
type Parser interface {
	// Parse never fails: malformed markup is repaired on a best-effort basis.
	Parse(html string) Node
}
