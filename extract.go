package wordhord

import "strings"

// NodeType identifies the kind of a Node.
type NodeType int

// NodeType constants.
const (
	OtherNode NodeType = iota
	ElementNode
	TextNode
)

// Node is a read-only view of one node of a parsed HTML tree.
// Extraction walks Nodes only, so it does not depend on a particular
// HTML parser.
type Node interface {
	// Type reports whether the node is an element, a text node or
	// something else (comment, doctype, ...).
	Type() NodeType

	// Name returns the lowercase tag name of an element node.
	Name() string

	// Attr returns the value of the named attribute of an element node.
	Attr(key string) (string, bool)

	// Text returns the raw content of a text node.
	Text() string

	// Children returns the direct children in document order.
	Children() []Node
}

// Marker identifies the anchor that tags a paragraph as a dictionary entry.
type Marker struct {
	// Attr is the attribute carrying the marker, usually "id".
	Attr string

	// Prefix is the required prefix of the attribute value.
	Prefix string
}

// DefaultMarker matches the headword anchors of the Project Gutenberg
// Anglo-Saxon dictionary: <p><a id="word_..."></a><b>...</b> ...</p>.
var DefaultMarker = Marker{Attr: "id", Prefix: "word_"}

// boldTag is the element holding the headword.
const boldTag = "b"

// IsEntryParagraph reports whether p is a dictionary entry. The first child
// node of p must be an element whose marker attribute starts with the
// marker prefix. Any leading text, including whitespace, disqualifies p.
func IsEntryParagraph(p Node, marker Marker) bool {
	_, ok := markerValue(p, marker)
	return ok
}

// ParseEntry recovers the headword and definition of an entry paragraph.
//
// The headword is the trimmed first text child of the first bold
// descendant. The definition concatenates, in document order, the first
// text child of every direct child of p, with newlines flattened to spaces.
// Returns EMALFORMED if no headword can be found.
func ParseEntry(p Node) (*Entry, error) {
	bold := firstDescendant(p, boldTag)
	if bold == nil {
		return nil, Errorf(EMALFORMED, "no <%s> headword element", boldTag)
	}

	text := firstChild(bold)
	if text == nil || text.Type() != TextNode {
		return nil, Errorf(EMALFORMED, "headword element has no leading text")
	}

	word := strings.TrimSpace(text.Text())
	if word == "" {
		return nil, Errorf(EMALFORMED, "headword is empty")
	}

	var definition strings.Builder
	for _, child := range p.Children() {
		first := firstChild(child)
		if first == nil || first.Type() != TextNode {
			continue
		}
		definition.WriteString(strings.ReplaceAll(first.Text(), "\n", " "))
		definition.WriteByte(' ')
	}

	return &Entry{
		Word:       word,
		Definition: strings.TrimSpace(definition.String()),
	}, nil
}

// ExtractEntries returns the entries of all qualifying paragraphs in
// document order. Paragraphs that are not marked as entries are skipped.
// The first marked paragraph that fails to parse aborts extraction with
// EMALFORMED.
func ExtractEntries(paragraphs []Node, marker Marker) ([]*Entry, error) {
	var entries []*Entry
	for i, p := range paragraphs {
		id, ok := markerValue(p, marker)
		if !ok {
			continue
		}

		entry, err := ParseEntry(p)
		if err != nil {
			return nil, Errorf(EMALFORMED, "malformed dictionary: paragraph %d (%s=%q): %s",
				i+1, marker.Attr, id, ErrorMessage(err))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// markerValue returns the marker attribute value of p's first child.
func markerValue(p Node, marker Marker) (string, bool) {
	first := firstChild(p)
	if first == nil || first.Type() != ElementNode {
		return "", false
	}
	v, ok := first.Attr(marker.Attr)
	if !ok || !strings.HasPrefix(v, marker.Prefix) {
		return "", false
	}
	return v, true
}

func firstChild(n Node) Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// firstDescendant returns the first element below n named tag, depth-first
// in document order.
func firstDescendant(n Node, tag string) Node {
	for _, child := range n.Children() {
		if child.Type() != ElementNode {
			continue
		}
		if child.Name() == tag {
			return child
		}
		if found := firstDescendant(child, tag); found != nil {
			return found
		}
	}
	return nil
}
