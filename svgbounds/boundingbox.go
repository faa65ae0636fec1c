// Computes axis aligned bounding boxes of SVG primitives.
//
// The boxes are estimates, meant to size a canvas: path data is bounded
// by its numbers read as alternating x/y coordinates (curve control
// points count, arc radii and flags are read as coordinates too), and
// text by a glyph advance heuristic.
package svgbounds

import (
	"math"
	"regexp"
	"unicode/utf8"

	"github.com/benoitkugler/svgcanvas/svgparse"
)

const (
	// GlyphAdvance is the estimated advance of a glyph, relative to the font size.
	GlyphAdvance = 0.6
)

// Box is an axis aligned bounding box. The zero value is the empty box,
// which is distinct from a box of zero area.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
	set                    bool
}

// NewBox returns the smallest box containing the two corners.
func NewBox(x0, y0, x1, y1 float64) Box {
	var b Box
	b.Add(x0, y0)
	b.Add(x1, y1)
	return b
}

// Empty returns true if no point was added to the box.
func (b Box) Empty() bool { return !b.set }

// Width returns 0 for an empty box.
func (b Box) Width() float64 {
	if !b.set {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns 0 for an empty box.
func (b Box) Height() float64 {
	if !b.set {
		return 0
	}
	return b.MaxY - b.MinY
}

// Add extends the box to include (x, y).
func (b *Box) Add(x, y float64) {
	if !b.set {
		*b = Box{MinX: x, MinY: y, MaxX: x, MaxY: y, set: true}
		return
	}
	b.MinX = math.Min(x, b.MinX)
	b.MinY = math.Min(y, b.MinY)
	b.MaxX = math.Max(x, b.MaxX)
	b.MaxY = math.Max(y, b.MaxY)
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	switch {
	case !o.set:
		return b
	case !b.set:
		return o
	}
	b.Add(o.MinX, o.MinY)
	b.Add(o.MaxX, o.MaxY)
	return b
}

// Union returns the union of the boxes of every primitive.
// Primitives without a box are skipped. The result is empty if
// no primitive has a box.
func Union(prims []svgparse.Primitive) Box {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	found := false
	for _, p := range prims {
		b, ok := Of(p)
		if !ok {
			continue
		}
		found = true
		minX = math.Min(b.MinX, minX)
		minY = math.Min(b.MinY, minY)
		maxX = math.Max(b.MaxX, maxX)
		maxY = math.Max(b.MaxY, maxY)
	}
	if !found {
		return Box{}
	}
	return Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY, set: true}
}

// Of returns the bounding box of p, or false if p is not drawable
// or has unreadable geometry attributes.
func Of(p svgparse.Primitive) (Box, bool) {
	switch p := p.(type) {
	case svgparse.Rect:
		return rectBox(p)
	case svgparse.Circle:
		return circleBox(p)
	case svgparse.Ellipse:
		return ellipseBox(p)
	case svgparse.Line:
		return lineBox(p)
	case svgparse.Polyline:
		return PointsBox(p.Points)
	case svgparse.Path:
		return PathBox(p.D)
	case svgparse.Text:
		return textBox(p)
	}
	return Box{}, false
}

// values returns the values of ns, or false if one of them is not OK.
func values(ns ...svgparse.Number) ([]float64, bool) {
	out := make([]float64, len(ns))
	for i, n := range ns {
		if !n.OK {
			return nil, false
		}
		out[i] = n.Value
	}
	return out, true
}

func rectBox(r svgparse.Rect) (Box, bool) {
	v, ok := values(r.X, r.Y, r.Width, r.Height)
	if !ok {
		return Box{}, false
	}
	x, y, w, h := v[0], v[1], v[2], v[3]
	return NewBox(x, y, x+w, y+h), true
}

func circleBox(c svgparse.Circle) (Box, bool) {
	v, ok := values(c.CX, c.CY, c.R)
	if !ok {
		return Box{}, false
	}
	cx, cy, r := v[0], v[1], v[2]
	return NewBox(cx-r, cy-r, cx+r, cy+r), true
}

func ellipseBox(e svgparse.Ellipse) (Box, bool) {
	v, ok := values(e.CX, e.CY, e.RX, e.RY)
	if !ok {
		return Box{}, false
	}
	cx, cy, rx, ry := v[0], v[1], v[2], v[3]
	return NewBox(cx-rx, cy-ry, cx+rx, cy+ry), true
}

func lineBox(l svgparse.Line) (Box, bool) {
	v, ok := values(l.X1, l.Y1, l.X2, l.Y2)
	if !ok {
		return Box{}, false
	}
	return NewBox(v[0], v[1], v[2], v[3]), true
}

// flatBox bounds coords read as x0 y0 x1 y1 ...; a trailing
// x without y still counts. At least minLen values are required.
func flatBox(coords []float64, minLen int) (Box, bool) {
	if len(coords) < minLen || len(coords) < 2 {
		return Box{}, false
	}
	b := Box{MinX: coords[0], MaxX: coords[0], MinY: coords[1], MaxY: coords[1], set: true}
	for i, c := range coords {
		if i%2 == 0 {
			b.MinX = math.Min(c, b.MinX)
			b.MaxX = math.Max(c, b.MaxX)
		} else {
			b.MinY = math.Min(c, b.MinY)
			b.MaxY = math.Max(c, b.MaxY)
		}
	}
	return b, true
}

// PointsBox bounds a points attribute of a polyline or polygon.
// At least two points are required.
func PointsBox(points string) (Box, bool) {
	fields := svgparse.SplitPoints(points)
	coords := make([]float64, len(fields))
	for i, f := range fields {
		n := svgparse.ParseNumber(f)
		if !n.OK {
			return Box{}, false
		}
		coords[i] = n.Value
	}
	return flatBox(coords, 4)
}

var pathNumberRe = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)

// PathBox approximates the bounds of path data by reading all of its
// numbers as alternating x/y coordinates, ignoring the commands.
func PathBox(d string) (Box, bool) {
	tokens := pathNumberRe.FindAllString(d, -1)
	coords := make([]float64, len(tokens))
	for i, tok := range tokens {
		n := svgparse.ParseNumber(tok)
		if !n.OK { // overflow
			return Box{}, false
		}
		coords[i] = n.Value
	}
	return flatBox(coords, 2)
}

// textBox estimates the extent of a single line of text, whose
// baseline starts at (x, y).
func textBox(t svgparse.Text) (Box, bool) {
	v, ok := values(t.X, t.Y, t.FontSize)
	if !ok {
		return Box{}, false
	}
	x, y, fontSize := v[0], v[1], v[2]
	width := float64(utf8.RuneCountInString(t.Content)) * GlyphAdvance * fontSize
	height := fontSize
	return NewBox(x, y-height, x+width, y), true
}
