package docgen

import (
	"go.jacobcolvin.com/ndoc/doccomment"
	"go.jacobcolvin.com/ndoc/doccomment/javadoc"
	"go.jacobcolvin.com/ndoc/doccomment/plain"
	"go.jacobcolvin.com/ndoc/doccomment/xmldoc"
)

// DefaultDialects is the default parser priority order.
var DefaultDialects = []string{javadoc.Name, xmldoc.Name, plain.Name}

// DefaultRegistry returns a registry of every built-in dialect.
func DefaultRegistry() doccomment.Registry {
	r := doccomment.Registry{}
	r.Register(javadoc.Name, javadoc.NewParser)
	r.Register(xmldoc.Name, xmldoc.NewParser)
	r.Register(plain.Name, plain.NewParser)

	return r
}
