package svgparse

import (
	"strings"
	"unicode"
)

// ViewBox is the coordinate system declared by the root element.
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

// Valid returns true if the size is not negative.
func (vb ViewBox) Valid() bool { return vb.Width >= 0 && vb.Height >= 0 }

// ParseViewBox reads a viewBox attribute. It must contain exactly
// four numbers, separated by spaces or commas, and describe a valid box.
func ParseViewBox(s string) (ViewBox, bool) {
	fields := splitOnCommaOrSpace(s)
	if len(fields) != 4 {
		return ViewBox{}, false
	}
	var points [4]float64
	for i, f := range fields {
		n := ParseNumber(f)
		if !n.OK {
			return ViewBox{}, false
		}
		points[i] = n.Value
	}
	vb := ViewBox{MinX: points[0], MinY: points[1], Width: points[2], Height: points[3]}
	return vb, vb.Valid()
}

// DocumentViewBox returns the valid viewBox of the root element, if any.
func DocumentViewBox(doc Document) (ViewBox, bool) {
	v, ok := doc.Attr("viewBox")
	if !ok {
		return ViewBox{}, false
	}
	return ParseViewBox(v)
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
}

// SplitPoints splits a list of coordinates, such as a points attribute.
func SplitPoints(s string) []string { return splitOnCommaOrSpace(s) }
