package svgparse

import (
	"encoding/xml"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/benoitkugler/svgcanvas/svgunit"
)

// DefaultFontSize is used for text elements without a readable font-size.
const DefaultFontSize = 12

// Number is an optional numeric attribute. A missing attribute
// takes its default value and is OK; an attribute which is present
// but not a finite number is not OK.
type Number struct {
	Value float64
	OK    bool
}

// Primitive is a drawable element, reduced to the attributes needed
// to bound it. It is one of Rect, Circle, Ellipse, Line, Polyline,
// Path, Text or Unknown.
type Primitive interface {
	Tag() string
}

type (
	Rect struct {
		X, Y, Width, Height Number
	}

	Circle struct {
		CX, CY, R Number
	}

	Ellipse struct {
		CX, CY, RX, RY Number
	}

	Line struct {
		X1, Y1, X2, Y2 Number
	}

	// Polyline is also used for polygons, with Closed set.
	Polyline struct {
		Points string // raw points attribute
		Closed bool
	}

	Path struct {
		D string // raw path data
	}

	Text struct {
		X, Y, FontSize Number
		Content        string // whitespace collapsed
	}

	// Unknown is any other element, including containers.
	Unknown struct {
		Name string
	}
)

func (Rect) Tag() string    { return "rect" }
func (Circle) Tag() string  { return "circle" }
func (Ellipse) Tag() string { return "ellipse" }
func (Line) Tag() string    { return "line" }
func (p Polyline) Tag() string {
	if p.Closed {
		return "polygon"
	}
	return "polyline"
}
func (Path) Tag() string      { return "path" }
func (Text) Tag() string      { return "text" }
func (u Unknown) Tag() string { return u.Name }

// elements accepted without warning even though they are not drawn
var structuralTags = map[string]bool{
	"svg": true, "g": true, "defs": true, "symbol": true, "use": true,
	"title": true, "desc": true, "metadata": true, "style": true,
	"linearGradient": true, "radialGradient": true, "stop": true,
	"clipPath": true, "mask": true, "pattern": true, "marker": true,
	"filter": true, "tspan": true, "a": true, "switch": true,
}

type primitiveFunc func(attrs []xml.Attr, text string) Primitive

var primitiveFuncs = map[string]primitiveFunc{
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  ellipseF,
	"line":     lineF,
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
	"text":     textF,
}

// ParseNumber reads a plain number, such as an SVG coordinate.
// Units are not accepted.
func ParseNumber(v string) Number {
	b := []byte(strings.TrimSpace(v))
	f, n := strconv.ParseFloat(b)
	if n == 0 || n != len(b) || math.IsInf(f, 0) || math.IsNaN(f) {
		return Number{}
	}
	return Number{Value: f, OK: true}
}

// numberAttr returns the number stored in attribute name, or def if it is missing.
func numberAttr(attrs []xml.Attr, name string, def float64) Number {
	v, ok := lookupAttr(attrs, name)
	if !ok {
		return Number{Value: def, OK: true}
	}
	return ParseNumber(v)
}

func lookupAttr(attrs []xml.Attr, name string) (string, bool) {
	for _, attr := range attrs {
		if attr.Name.Space == "" && attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

func rectF(attrs []xml.Attr, _ string) Primitive {
	return Rect{
		X:      numberAttr(attrs, "x", 0),
		Y:      numberAttr(attrs, "y", 0),
		Width:  numberAttr(attrs, "width", 0),
		Height: numberAttr(attrs, "height", 0),
	}
}

func circleF(attrs []xml.Attr, _ string) Primitive {
	return Circle{
		CX: numberAttr(attrs, "cx", 0),
		CY: numberAttr(attrs, "cy", 0),
		R:  numberAttr(attrs, "r", 0),
	}
}

func ellipseF(attrs []xml.Attr, _ string) Primitive {
	return Ellipse{
		CX: numberAttr(attrs, "cx", 0),
		CY: numberAttr(attrs, "cy", 0),
		RX: numberAttr(attrs, "rx", 0),
		RY: numberAttr(attrs, "ry", 0),
	}
}

func lineF(attrs []xml.Attr, _ string) Primitive {
	return Line{
		X1: numberAttr(attrs, "x1", 0),
		Y1: numberAttr(attrs, "y1", 0),
		X2: numberAttr(attrs, "x2", 0),
		Y2: numberAttr(attrs, "y2", 0),
	}
}

func polylineF(attrs []xml.Attr, _ string) Primitive {
	points, _ := lookupAttr(attrs, "points")
	return Polyline{Points: points}
}

func polygonF(attrs []xml.Attr, text string) Primitive {
	p := polylineF(attrs, text).(Polyline)
	p.Closed = true
	return p
}

func pathF(attrs []xml.Attr, _ string) Primitive {
	d, _ := lookupAttr(attrs, "d")
	return Path{D: d}
}

func textF(attrs []xml.Attr, text string) Primitive {
	return Text{
		X:        numberAttr(attrs, "x", 0),
		Y:        numberAttr(attrs, "y", 0),
		FontSize: fontSizeAttr(attrs),
		Content:  strings.Join(strings.Fields(text), " "),
	}
}

// font-size is commonly written with a unit, such as "16px".
func fontSizeAttr(attrs []xml.Attr) Number {
	v, ok := lookupAttr(attrs, "font-size")
	if !ok {
		return Number{Value: DefaultFontSize, OK: true}
	}
	l, err := svgunit.Parse(v)
	if err != nil {
		return Number{}
	}
	return Number{Value: l.Pixels(), OK: true}
}
