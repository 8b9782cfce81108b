package cssengine

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is the identity of a UI element for style queries.
type Element struct {
	Tag     string
	ID      string
	Classes []string
}

// Query returns the query string for the element: "#id .class ..." when it
// has an id or classes, its tag name otherwise.
func (e Element) Query() string {
	var b strings.Builder
	if e.ID != "" {
		b.WriteByte('#')
		b.WriteString(e.ID)
	}
	for _, c := range e.Classes {
		if c == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('.')
		b.WriteString(c)
	}
	if b.Len() == 0 {
		return e.Tag
	}
	return b.String()
}

// ElementForNode returns the identity of an HTML element node.
func ElementForNode(n *html.Node) Element {
	e := Element{Tag: n.Data}
	if n.DataAtom != 0 {
		e.Tag = n.DataAtom.String()
	}
	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		switch atom.Lookup([]byte(a.Key)) {
		case atom.Id:
			e.ID = strings.TrimSpace(a.Val)
		case atom.Class:
			e.Classes = strings.Fields(a.Val)
		}
	}
	return e
}

// QueryForNode returns the query string of an HTML element node, or "" for
// other node types.
func QueryForNode(n *html.Node) string {
	if n.Type != html.ElementNode {
		return ""
	}
	return ElementForNode(n).Query()
}
