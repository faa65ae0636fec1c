// Provides a resilient parser for SVG markup.
// The markup is first decoded as a structured XML tree; when that fails
// (markup produced by generators is often truncated or badly escaped),
// the parser falls back to the raw text, from which the root attributes
// can still be extracted with regular expressions and the drawable
// primitives salvaged with a tolerant lexer.
package svgparse

import (
	"encoding/xml"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrorMode determines how elements the parser does not know are handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unknown elements.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs unknown elements to Options.Logger.
	WarnErrorMode
	// StrictErrorMode makes the structured parse fail on unknown elements,
	// so that the document is only available as raw text.
	StrictErrorMode
)

// Options tune the structured parse.
type Options struct {
	ErrorMode ErrorMode
	Logger    *log.Logger // optional
}

// Document is the result of Parse: either a *Structured tree
// or a *RawFallback holding the raw markup.
type Document interface {
	// Attr returns the named attribute of the root svg element.
	Attr(name string) (string, bool)
	isDocument()
}

// Structured is a successfully decoded document.
type Structured struct {
	Root *Element
}

// RawFallback is returned when the markup could not be decoded.
type RawFallback struct {
	Markup string
	Err    error // the decoding error
}

func (*Structured) isDocument()  {}
func (*RawFallback) isDocument() {}

func (s *Structured) Attr(name string) (string, bool) { return s.Root.Attr(name) }

func (r *RawFallback) Attr(name string) (string, bool) { return RootAttr(r.Markup, name) }

// Element is a node of a structured document.
type Element struct {
	Name      string // local name, without namespace prefix
	Attrs     []xml.Attr
	Children  []*Element
	Text      string    // character data directly inside the element
	Primitive Primitive // computed when the element is closed
}

// Attr returns the value of the non namespaced attribute name.
func (e *Element) Attr(name string) (string, bool) { return lookupAttr(e.Attrs, name) }

// InnerText returns the character data of the element and all its descendants,
// in document order.
func (e *Element) InnerText() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	b.WriteString(e.Text)
	for _, c := range e.Children {
		c.writeText(b)
	}
}

// Walk calls fn for e and all its descendants, depth first.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Parse decodes markup with the default options.
func Parse(markup string) Document {
	return ParseWith(markup, Options{})
}

// ParseWith decodes markup as a structured tree, and returns
// a *RawFallback if that is not possible. It never fails.
func ParseWith(markup string, opts Options) Document {
	root, err := decodeTree(markup, opts)
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.Debug("structured parse failed, using raw markup", "err", err)
		}
		return &RawFallback{Markup: markup, Err: err}
	}
	return &Structured{Root: root}
}

// Primitives returns the primitives found in doc.
// For a structured document, every element of the tree is visited;
// unknown elements are skipped. For a raw document, the primitives
// are salvaged from the markup.
func Primitives(doc Document) []Primitive {
	switch doc := doc.(type) {
	case *Structured:
		var out []Primitive
		doc.Root.Walk(func(e *Element) {
			if _, unknown := e.Primitive.(Unknown); e.Primitive != nil && !unknown {
				out = append(out, e.Primitive)
			}
		})
		return out
	case *RawFallback:
		return Salvage(doc.Markup)
	}
	return nil
}
