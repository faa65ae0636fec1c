package svgcanvas

import (
	"math"

	"github.com/benoitkugler/svgcanvas/svgbounds"
	"github.com/benoitkugler/svgcanvas/svgparse"
)

// Dimensions resolves the declared canvas of markup:
//   - explicit width and height, both positive once converted to pixels, are returned as is;
//   - otherwise, the viewBox size is used, floored at Config.MinContentSize;
//   - otherwise, the default canvas is returned.
func (r *Resolver) Dimensions(markup string) Resolution {
	doc := r.parse(markup)
	if c, ok := explicitCanvas(doc); ok {
		return r.resolved(Resolution{Canvas: c, Source: SourceExplicit})
	}
	if vb, ok := r.viewBox(doc); ok {
		return r.resolved(Resolution{Canvas: r.viewBoxCanvas(vb), Source: SourceViewBox})
	}
	return r.defaultResolution()
}

// Bounds resolves a canvas large enough for the content of markup:
//   - explicit width and height win, as in Dimensions;
//   - with a viewBox, the canvas is the viewBox size, enlarged when the
//     content overflows it, symmetrically around the origin;
//   - without a viewBox, the content box plus Config.ContentMargin on every side;
//   - the default canvas when nothing could be bounded.
//
// Canvases derived from the viewBox or the content are floored at Config.MinContentSize.
// When markup is malformed, its primitives are only salvaged if a viewBox was found.
func (r *Resolver) Bounds(markup string) Resolution {
	doc := r.parse(markup)
	if c, ok := explicitCanvas(doc); ok {
		return r.resolved(Resolution{Canvas: c, Source: SourceExplicit})
	}

	vb, hasViewBox := r.viewBox(doc)
	if _, raw := doc.(*svgparse.RawFallback); raw && !hasViewBox {
		return r.defaultResolution()
	}

	content := svgbounds.Union(svgparse.Primitives(doc))
	switch {
	case hasViewBox && content.Empty():
		return r.resolved(Resolution{Canvas: r.viewBoxCanvas(vb), Source: SourceViewBox})
	case hasViewBox:
		return r.resolved(r.overflowCanvas(vb, content))
	case content.Empty():
		return r.defaultResolution()
	}

	margin := 2 * float64(r.Config.ContentMargin)
	return r.resolved(Resolution{
		Canvas: Canvas{
			Width:  r.floored(math.Ceil(content.Width() + margin)),
			Height: r.floored(math.Ceil(content.Height() + margin)),
		},
		Source:  SourceContent,
		Content: content,
	})
}

// overflowCanvas keeps the viewBox size in each direction the content fits in,
// and otherwise uses the content size plus twice its offset from the origin.
func (r *Resolver) overflowCanvas(vb svgparse.ViewBox, content svgbounds.Box) Resolution {
	res := Resolution{Source: SourceViewBox, Content: content}
	needW := content.Width() + 2*math.Abs(content.MinX)
	needH := content.Height() + 2*math.Abs(content.MinY)

	res.Canvas = r.viewBoxCanvas(vb)
	if needW > vb.Width {
		res.Canvas.Width = r.floored(math.Ceil(needW))
		res.Source = SourceContent
	}
	if needH > vb.Height {
		res.Canvas.Height = r.floored(math.Ceil(needH))
		res.Source = SourceContent
	}
	return res
}
