package cli

import (
	"encoding/json"
	"io"

	"github.com/benoitkugler/svgcanvas/svgcanvas"
)

// result is the printed form of a resolution.
type result struct {
	Input   string      `json:"input"`
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Source  string      `json:"source"`
	Content *contentBox `json:"content,omitempty"`
}

type contentBox struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

func newResult(input string, res svgcanvas.Resolution) result {
	out := result{
		Input:  input,
		Width:  res.Canvas.Width,
		Height: res.Canvas.Height,
		Source: res.Source.String(),
	}
	if b := res.Content; !b.Empty() {
		out.Content = &contentBox{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
	}
	return out
}

// writeJSON prints one JSON object per line.
func writeJSON(w io.Writer, results []result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
