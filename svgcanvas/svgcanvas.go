// Package svgcanvas decides the pixel size at which SVG markup should be
// rasterized.
//
// Two strategies are provided. ResolveDimensions follows what the author
// declared: explicit width and height, then the viewBox, then a default.
// ComputeBounds also looks at the drawn content, and enlarges the canvas
// when the shapes overflow the viewBox.
//
// Both accept any string, including malformed or empty markup, and always
// return a usable canvas. They keep no state and may be called concurrently.
package svgcanvas

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/benoitkugler/svgcanvas/svgbounds"
	"github.com/benoitkugler/svgcanvas/svgparse"
	"github.com/benoitkugler/svgcanvas/svgunit"
)

// Canvas is a raster size, in pixels.
type Canvas struct {
	Width, Height int
}

func (c Canvas) String() string { return fmt.Sprintf("%dx%d", c.Width, c.Height) }

// Source tells which rule decided a canvas.
type Source uint8

const (
	SourceDefault  Source = iota // nothing could be resolved
	SourceExplicit               // width and height attributes
	SourceViewBox                // viewBox size
	SourceContent                // content bounds
)

func (s Source) String() string {
	switch s {
	case SourceExplicit:
		return "explicit"
	case SourceViewBox:
		return "viewBox"
	case SourceContent:
		return "content"
	default:
		return "default"
	}
}

// Resolution is a canvas with the rule which produced it.
type Resolution struct {
	Canvas Canvas
	Source Source
	// Content is the union of the primitive boxes, when the content was analyzed.
	Content svgbounds.Box
}

var discardLogger = log.New(io.Discard)

var defaultResolver = &Resolver{Config: DefaultConfig()}

// Resolver resolves canvases with a given configuration.
// The zero value is not usable: use New or set Config.
type Resolver struct {
	Config    Config
	ErrorMode svgparse.ErrorMode
	Logger    *log.Logger // optional
}

// New returns a resolver using cfg, logging to logger if it is not nil.
func New(cfg Config, logger *log.Logger) *Resolver {
	return &Resolver{Config: cfg, Logger: logger}
}

// ResolveDimensions returns the canvas declared by markup, using the default configuration.
func ResolveDimensions(markup string) Canvas {
	return defaultResolver.Dimensions(markup).Canvas
}

// ComputeBounds returns the canvas fitting the content of markup, using the default configuration.
func ComputeBounds(markup string) Canvas {
	return defaultResolver.Bounds(markup).Canvas
}

// ContentBounds returns the union of the boxes of the primitives of markup.
// It is empty when no primitive could be bounded.
func ContentBounds(markup string) svgbounds.Box {
	return defaultResolver.ContentBounds(markup)
}

func (r *Resolver) logger() *log.Logger {
	if r.Logger == nil {
		return discardLogger
	}
	return r.Logger
}

func (r *Resolver) parse(markup string) svgparse.Document {
	return svgparse.ParseWith(markup, svgparse.Options{ErrorMode: r.ErrorMode, Logger: r.Logger})
}

// ContentBounds is the same as the package level function, with r's error mode.
func (r *Resolver) ContentBounds(markup string) svgbounds.Box {
	return svgbounds.Union(svgparse.Primitives(r.parse(markup)))
}

func (r *Resolver) resolved(res Resolution) Resolution {
	r.logger().Debug("canvas resolved", "source", res.Source, "width", res.Canvas.Width, "height", res.Canvas.Height)
	return res
}

func (r *Resolver) defaultResolution() Resolution {
	return r.resolved(Resolution{
		Canvas: Canvas{Width: r.Config.DefaultWidth, Height: r.Config.DefaultHeight},
		Source: SourceDefault,
	})
}

// explicitCanvas returns the width and height attributes of the root,
// when both are present and positive.
func explicitCanvas(doc svgparse.Document) (Canvas, bool) {
	w, okW := doc.Attr("width")
	h, okH := doc.Attr("height")
	if !okW || !okH {
		return Canvas{}, false
	}
	wpx, errW := svgunit.Normalize(w)
	hpx, errH := svgunit.Normalize(h)
	if errW != nil || errH != nil || wpx <= 0 || hpx <= 0 {
		return Canvas{}, false
	}
	return Canvas{Width: wpx, Height: hpx}, true
}

// viewBox returns the valid viewBox of doc, logging an invalid one.
func (r *Resolver) viewBox(doc svgparse.Document) (svgparse.ViewBox, bool) {
	v, ok := doc.Attr("viewBox")
	if !ok {
		return svgparse.ViewBox{}, false
	}
	vb, ok := svgparse.ParseViewBox(v)
	if !ok {
		r.logger().Debug("ignoring invalid viewBox", "viewBox", v)
	}
	return vb, ok
}

// floored applies the content floor to a pixel size.
func (r *Resolver) floored(size float64) int {
	return max(toInt(size), r.Config.MinContentSize)
}

func (r *Resolver) viewBoxCanvas(vb svgparse.ViewBox) Canvas {
	return Canvas{
		Width:  r.floored(math.RoundToEven(vb.Width)),
		Height: r.floored(math.RoundToEven(vb.Height)),
	}
}

func toInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
