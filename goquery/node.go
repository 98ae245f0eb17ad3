package goquery

import (
	"github.com/fwojciec/wordhord"
	"golang.org/x/net/html"
)

// Ensure node implements wordhord.Node at compile time.
var _ wordhord.Node = node{}

// node adapts an *html.Node to wordhord.Node.
type node struct {
	n *html.Node
}

func wrap(n *html.Node) wordhord.Node {
	return node{n: n}
}

func (n node) Type() wordhord.NodeType {
	switch n.n.Type {
	case html.ElementNode:
		return wordhord.ElementNode
	case html.TextNode:
		return wordhord.TextNode
	default:
		return wordhord.OtherNode
	}
}

func (n node) Name() string {
	if n.n.Type != html.ElementNode {
		return ""
	}
	return n.n.Data
}

func (n node) Attr(key string) (string, bool) {
	for _, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (n node) Text() string {
	if n.n.Type != html.TextNode {
		return ""
	}
	return n.n.Data
}

func (n node) Children() []wordhord.Node {
	var children []wordhord.Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, wrap(c))
	}
	return children
}
