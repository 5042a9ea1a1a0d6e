package scanner

import (
	"bytes"
	"io"
	"strconv"

	"draftassist-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Rect is a rendered bounding box in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Element abstracts one node of a rendered page: text, bounding box,
// parent. Extraction is written against this so the heuristics stay
// independent of the rendering engine supplying the snapshot.
type Element interface {
	TagName() string
	Attr(name string) string
	// combined text, whitespace collapsed
	Text() string
	// approximated rendered text lines
	Lines() []string
	Parent() (Element, bool)
	Children() []Element
	// Find matches descendants against a CSS selector.
	Find(selector string) []Element
	// Bounds is optional: snapshot sources that carry layout
	// information expose it, plain HTML sources do not.
	Bounds() (Rect, bool)
}

type htmlElement struct {
	node *html.Node
}

// ParseDocument parses an HTML snapshot into the element tree the
// extractors walk.
func ParseDocument(r io.Reader) (Element, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return htmlElement{node: doc.Selection.Nodes[0]}, nil
}

func ParseDocumentString(s string) (Element, error) {
	return ParseDocument(bytes.NewReader([]byte(s)))
}

func (e htmlElement) TagName() string {
	if e.node.Type != html.ElementNode {
		return ""
	}
	return e.node.Data
}

func (e htmlElement) Attr(name string) string {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func (e htmlElement) Text() string {
	return htmlutil.CollapseText(e.node)
}

func (e htmlElement) Lines() []string {
	return htmlutil.GetLines(e.node)
}

func (e htmlElement) Parent() (Element, bool) {
	p := e.node.Parent
	if p == nil || p.Type == html.DocumentNode {
		return nil, false
	}
	return htmlElement{node: p}, true
}

func (e htmlElement) Children() []Element {
	var out []Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, htmlElement{node: c})
		}
	}
	return out
}

func (e htmlElement) Find(selector string) []Element {
	sel := goquery.NewDocumentFromNode(e.node).Find(selector)
	out := make([]Element, 0, len(sel.Nodes))
	for _, n := range sel.Nodes {
		out = append(out, htmlElement{node: n})
	}
	return out
}

func (e htmlElement) Bounds() (Rect, bool) {
	x, okX := e.boundsAttr("data-x")
	y, okY := e.boundsAttr("data-y")
	w, okW := e.boundsAttr("data-w")
	h, okH := e.boundsAttr("data-h")
	if !okX || !okY || !okW || !okH {
		return Rect{}, false
	}
	return Rect{X: x, Y: y, W: w, H: h}, true
}

func (e htmlElement) boundsAttr(name string) (float64, bool) {
	raw := e.Attr(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ownText returns only the text held directly by the element, not by
// its descendants.
func ownText(e Element) string {
	he, ok := e.(htmlElement)
	if !ok {
		return e.Text()
	}
	var buf bytes.Buffer
	for c := he.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			buf.WriteString(c.Data)
		}
	}
	return buf.String()
}

// walk visits every element below root in document order.
func walk(root Element, visit func(Element)) {
	visit(root)
	for _, c := range root.Children() {
		walk(c, visit)
	}
}

// climb walks up at most maxDepth ancestors, returning the first one
// the predicate accepts.
func climb(e Element, maxDepth int, pred func(Element) bool) (Element, bool) {
	current := e
	for i := 0; i < maxDepth; i++ {
		parent, ok := current.Parent()
		if !ok {
			return nil, false
		}
		if pred(parent) {
			return parent, true
		}
		current = parent
	}
	return nil, false
}
