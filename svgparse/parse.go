package svgparse

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	errNoElement       = errors.New("invalid svg xml: no element")
	errMultipleRoots   = errors.New("invalid svg xml: junk after document element")
	errTextOutsideRoot = errors.New("invalid svg xml: text outside of the document element")
)

// treeCursor is used while decoding the markup
type treeCursor struct {
	opts  Options
	root  *Element
	stack []*Element
}

func (c *treeCursor) top() *Element { return c.stack[len(c.stack)-1] }

func (c *treeCursor) readStartElement(se xml.StartElement) error {
	if c.root != nil && len(c.stack) == 0 {
		return errMultipleRoots
	}
	el := &Element{Name: se.Name.Local, Attrs: se.Attr}
	if len(c.stack) == 0 {
		c.root = el
	} else {
		parent := c.top()
		parent.Children = append(parent.Children, el)
	}
	c.stack = append(c.stack, el)
	return nil
}

func (c *treeCursor) readEndElement() error {
	el := c.top()
	c.stack = c.stack[:len(c.stack)-1]

	pf, ok := primitiveFuncs[el.Name]
	if !ok {
		el.Primitive = Unknown{Name: el.Name}
		if structuralTags[el.Name] {
			return nil
		}
		errStr := "cannot process svg element " + el.Name
		switch c.opts.ErrorMode {
		case StrictErrorMode:
			return errors.New(errStr)
		case WarnErrorMode:
			if c.opts.Logger != nil {
				c.opts.Logger.Warn(errStr)
			}
		}
		return nil
	}
	el.Primitive = pf(el.Attrs, el.InnerText())
	return nil
}

func (c *treeCursor) readCharData(data xml.CharData) error {
	if len(c.stack) == 0 {
		if strings.TrimSpace(string(data)) != "" {
			return errTextOutsideRoot
		}
		return nil
	}
	el := c.top()
	el.Text += string(data)
	return nil
}

// decodeTree decodes the markup as-is, without any repair.
func decodeTree(markup string, opts Options) (*Element, error) {
	cursor := &treeCursor{opts: opts}
	decoder := xml.NewDecoder(strings.NewReader(markup))
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			err = cursor.readStartElement(se)
		case xml.EndElement:
			err = cursor.readEndElement()
		case xml.CharData:
			err = cursor.readCharData(se)
		}
		if err != nil {
			return nil, err
		}
	}
	if cursor.root == nil {
		return nil, errNoElement
	}
	return cursor.root, nil
}
