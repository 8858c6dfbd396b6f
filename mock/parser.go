package mock

import "github.com/fwojciec/dataminer"

var _ dataminer.Parser = (*Parser)(nil)

// Parser is a mock implementation of dataminer.Parser.
type Parser struct {
	ParseFn func(html string) dataminer.Node
}

func (p *Parser) Parse(html string) dataminer.Node {
	return p.ParseFn(html)
}
