// Package goquery implements wikisum.HTMLDocument and wikisum.Extractor
// on top of goquery and golang.org/x/net/html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikisum"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Document implements wikisum.HTMLDocument at compile time.
var _ wikisum.HTMLDocument = (*Document)(nil)

// Document is a parsed HTML tree that supports selection and removal.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses rawHTML into a Document. Scripting is disabled so
// <noscript> content parses as elements rather than raw markup text.
func NewDocument(rawHTML string) (*Document, error) {
	root, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, wikisum.Errorf(wikisum.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// Select returns the elements matching sel.
func (d *Document) Select(sel wikisum.Selector) wikisum.Nodes {
	return &Nodes{sel: d.doc.Find(sel.String())}
}

// Text returns the concatenated text nodes of the tree in document order.
// Line breaks come from the whitespace between block elements in the source
// and from <br> elements.
func (d *Document) Text() string {
	var sb strings.Builder
	for _, n := range d.doc.Nodes {
		writeText(&sb, n)
	}
	return sb.String()
}

// HTML renders the contents of the document body.
func (d *Document) HTML() (string, error) {
	return d.doc.Find("body").Html()
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		if n.DataAtom == atom.Br {
			sb.WriteByte('\n')
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
}

// Ensure Nodes implements wikisum.Nodes at compile time.
var _ wikisum.Nodes = (*Nodes)(nil)

// Nodes wraps a goquery selection.
type Nodes struct {
	sel *goquery.Selection
}

// Len returns the number of matched elements.
func (n *Nodes) Len() int {
	return n.sel.Length()
}

// Remove detaches the matched elements from the document.
func (n *Nodes) Remove() {
	n.sel.Remove()
}
