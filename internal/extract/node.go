package extract

import "encoding/xml"

// node is a generic XML tree element: every descendant is captured via
// the catch-all ",any" tag, giving the same arbitrary-depth descendant
// walk that the original parser ran over a roxmltree document, built
// instead on the standard library's encoding/xml.
type node struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
	Nodes   []node `xml:",any"`
}

// descendants returns every node in the subtree rooted at n, in
// document order, n included first.
func (n *node) descendants() []*node {
	var out []*node
	var walk func(cur *node)
	walk = func(cur *node) {
		out = append(out, cur)
		for i := range cur.Nodes {
			walk(&cur.Nodes[i])
		}
	}
	walk(n)
	return out
}

// find returns the first descendant (n included) whose tag name
// equals name.
func (n *node) find(name string) (*node, bool) {
	for _, d := range n.descendants() {
		if d.XMLName.Local == name {
			return d, true
		}
	}
	return nil, false
}

// findAll returns every descendant (n included) whose tag name equals
// name, in document order.
func (n *node) findAll(name string) []*node {
	var out []*node
	for _, d := range n.descendants() {
		if d.XMLName.Local == name {
			out = append(out, d)
		}
	}
	return out
}

// text returns the node's own character data, trimmed the way the
// original extractor's Node::text() effectively always was by its
// callers.
func (n *node) text() string {
	return trimSpace(n.Text)
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isXMLSpace(s[start]) {
		start++
	}
	for end > start && isXMLSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isXMLSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
