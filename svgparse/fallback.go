package svgparse

import (
	"encoding/xml"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	xmllex "github.com/tdewolff/parse/v2/xml"
)

// the opening tag of the root element, possibly truncated;
// quoted values may contain '>'
var rootTagRe = regexp.MustCompile(`(?is)<(?:[a-z_][\w.-]*:)?svg\b(?:"[^"]*"|'[^']*'|[^>])*`)

var rootAttrRes = map[string]*regexp.Regexp{
	"width":   attrRegexp("width"),
	"height":  attrRegexp("height"),
	"viewBox": attrRegexp("viewBox"),
}

// attrRegexp matches name="value" or name='value', case insensitively.
// The name must not be the suffix of another name, such as stroke-width.
func attrRegexp(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)(?:^|[\s"'])` + regexp.QuoteMeta(name) + `\s*=\s*(?:"([^"]*)"|'([^']*)')`)
}

// RootAttr extracts an attribute of the root element from raw markup,
// without decoding it. The search is restricted to the first <svg> opening
// tag when there is one, and covers the whole text otherwise.
func RootAttr(markup, name string) (string, bool) {
	scope := markup
	if loc := rootTagRe.FindStringIndex(markup); loc != nil {
		scope = markup[loc[0]:loc[1]]
	}
	re, ok := rootAttrRes[name]
	if !ok {
		re = attrRegexp(name)
	}
	m := re.FindStringSubmatchIndex(scope)
	if m == nil {
		return "", false
	}
	// one of the two quoted groups matched
	if m[2] >= 0 {
		return scope[m[2]:m[3]], true
	}
	return scope[m[4]:m[5]], true
}

// pendingElement is a start tag being read by Salvage
type pendingElement struct {
	name  string
	attrs []xml.Attr
	text  strings.Builder
}

// Salvage scans malformed markup with a tolerant lexer and returns
// the primitives of every complete start tag. Truncated tags
// are dropped. Nesting is not checked.
func Salvage(markup string) []Primitive {
	var (
		out    []Primitive
		cur    *pendingElement // start tag being read
		inText *pendingElement // open <text> element
	)
	emit := func(el *pendingElement) {
		if pf, ok := primitiveFuncs[el.name]; ok {
			out = append(out, pf(el.attrs, el.text.String()))
		}
	}

	l := xmllex.NewLexer(parse.NewInputString(markup))
	for {
		tt, data := l.Next()
		switch tt {
		case xmllex.ErrorToken:
			return out
		case xmllex.StartTagToken:
			cur = &pendingElement{name: localName(l.Text())}
		case xmllex.AttributeToken:
			if cur != nil {
				cur.attrs = append(cur.attrs, xml.Attr{
					Name:  xml.Name{Local: localName(l.Text())},
					Value: unquote(l.AttrVal()),
				})
			}
		case xmllex.StartTagCloseToken:
			if cur == nil {
				continue
			}
			if cur.name == "text" {
				inText = cur
			} else if inText == nil {
				emit(cur)
			}
			cur = nil
		case xmllex.StartTagCloseVoidToken:
			if cur != nil && inText == nil {
				emit(cur)
			}
			cur = nil
		case xmllex.TextToken:
			if inText != nil {
				inText.text.Write(data)
			}
		case xmllex.CDATAToken:
			if inText != nil {
				inText.text.Write(l.Text())
			}
		case xmllex.EndTagToken:
			if inText != nil && localName(l.Text()) == "text" {
				emit(inText)
				inText = nil
			}
		}
	}
}

// localName strips the namespace prefix of a tag or attribute name.
func localName(b []byte) string {
	s := string(b)
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		return s[i+1:]
	}
	return s
}

func unquote(b []byte) string {
	s := string(b)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
