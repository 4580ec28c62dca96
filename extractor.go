package wikisum

// Extractor reduces rendered article HTML to clean plain text.
type Extractor interface {
	// Extract parses raw HTML, removes boilerplate and returns the
	// surviving text lines joined by newlines.
	// Returns ENOTFOUND if no content survives cleanup.
	Extract(html string) (string, error)
}

// HTMLDocument is a parsed, mutable HTML tree.
type HTMLDocument interface {
	// Select returns the nodes matching sel.
	Select(sel Selector) Nodes

	// Text returns the text content of the tree in document order.
	Text() string
}

// Nodes is a set of nodes matched in an HTMLDocument.
type Nodes interface {
	Len() int

	// Remove detaches the nodes and their subtrees from the document.
	Remove()
}

// Selector matches elements by tag name, optionally narrowed by class or id.
type Selector struct {
	Tag   string
	Class string
	ID    string
}

// String returns the selector in CSS syntax, e.g. "div.navbox" or "div#toc".
func (s Selector) String() string {
	out := s.Tag
	if s.Class != "" {
		out += "." + s.Class
	}
	if s.ID != "" {
		out += "#" + s.ID
	}
	return out
}

// BoilerplateSelectors lists the elements stripped from article HTML before
// text conversion. Headings are dropped because they otherwise leak into the
// text as disconnected fragments.
var BoilerplateSelectors = []Selector{
	{Tag: "script"},
	{Tag: "style"},
	{Tag: "table"},
	{Tag: "sup"},
	{Tag: "div", Class: "reflist"},
	{Tag: "div", Class: "navbox"},
	{Tag: "div", Class: "infobox"},
	{Tag: "div", Class: "metadata"},
	{Tag: "div", Class: "hatnote"},
	{Tag: "div", Class: "dablink"},
	{Tag: "div", Class: "relarticle"},
	{Tag: "div", Class: "tright"},
	{Tag: "div", Class: "tleft"},
	{Tag: "div", Class: "thumb"},
	{Tag: "span", Class: "mw-editsection"},
	{Tag: "div", ID: "toc"},
	{Tag: "div", Class: "toc"},
	{Tag: "h2"},
	{Tag: "h3"},
	{Tag: "h4"},
	{Tag: "h5"},
	{Tag: "h6"},
}
