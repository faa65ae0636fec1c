package svgbounds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benoitkugler/svgcanvas/svgparse"
)

func num(v float64) svgparse.Number { return svgparse.Number{Value: v, OK: true} }

var bad = svgparse.Number{}

func TestPrimitiveBoxes(t *testing.T) {
	tests := []struct {
		name string
		prim svgparse.Primitive
		want Box
		ok   bool
	}{
		{"rect", svgparse.Rect{X: num(10), Y: num(20), Width: num(30), Height: num(40)}, NewBox(10, 20, 40, 60), true},
		{"rect defaults", svgparse.Rect{X: num(0), Y: num(0), Width: num(0), Height: num(0)}, NewBox(0, 0, 0, 0), true},
		{"rect bad x", svgparse.Rect{X: bad, Y: num(0), Width: num(10), Height: num(10)}, Box{}, false},
		{"circle", svgparse.Circle{CX: num(50), CY: num(50), R: num(40)}, NewBox(10, 10, 90, 90), true},
		{"circle bad r", svgparse.Circle{CX: num(50), CY: num(50), R: bad}, Box{}, false},
		{"ellipse", svgparse.Ellipse{CX: num(0), CY: num(0), RX: num(4), RY: num(2)}, NewBox(-4, -2, 4, 2), true},
		{"line", svgparse.Line{X1: num(90), Y1: num(5), X2: num(10), Y2: num(50)}, NewBox(10, 5, 90, 50), true},
		{"polyline", svgparse.Polyline{Points: "0,0 10,-5 3,20"}, NewBox(0, -5, 10, 20), true},
		{"polygon one point", svgparse.Polyline{Points: "5 5", Closed: true}, Box{}, false},
		{"polygon bad point", svgparse.Polyline{Points: "0 0 a 5", Closed: true}, Box{}, false},
		{"polyline odd count", svgparse.Polyline{Points: "0 0 10 10 30"}, NewBox(0, 0, 30, 10), true},
		{"path", svgparse.Path{D: "M10 20 L 30,-40 C 50 60 70 80 90 100 Z"}, NewBox(10, -40, 90, 100), true},
		{"path compact", svgparse.Path{D: "M10-20l.5.5"}, NewBox(0.5, -20, 10, 0.5), true},
		{"path without numbers", svgparse.Path{D: "Z"}, Box{}, false},
		{"path single number", svgparse.Path{D: "M 5"}, Box{}, false},
		{"text", svgparse.Text{X: num(10), Y: num(30), FontSize: num(20), Content: "Hello"}, NewBox(10, 10, 70, 30), true},
		{"text runes", svgparse.Text{X: num(0), Y: num(12), FontSize: num(10), Content: "été"}, NewBox(0, 2, 18, 12), true},
		{"text empty", svgparse.Text{X: num(0), Y: num(0), FontSize: num(12)}, NewBox(0, -12, 0, 0), true},
		{"text bad size", svgparse.Text{X: num(0), Y: num(0), FontSize: bad, Content: "a"}, Box{}, false},
		{"unknown", svgparse.Unknown{Name: "g"}, Box{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Of(tt.prim)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want.MinX, got.MinX, 1e-9)
				assert.InDelta(t, tt.want.MinY, got.MinY, 1e-9)
				assert.InDelta(t, tt.want.MaxX, got.MaxX, 1e-9)
				assert.InDelta(t, tt.want.MaxY, got.MaxY, 1e-9)
				assert.False(t, got.Empty())
			}
		})
	}
}

func TestUnion(t *testing.T) {
	prims := []svgparse.Primitive{
		svgparse.Circle{CX: num(50), CY: num(50), R: num(40)},
		svgparse.Rect{X: bad, Y: num(0), Width: num(500), Height: num(500)},
		svgparse.Line{X1: num(-20), Y1: num(0), X2: num(0), Y2: num(120)},
		svgparse.Unknown{Name: "defs"},
	}
	got := Union(prims)
	assert.Equal(t, NewBox(-20, 0, 90, 120), got)
	assert.Equal(t, 110.0, got.Width())
	assert.Equal(t, 120.0, got.Height())
}

func TestUnionEmpty(t *testing.T) {
	got := Union([]svgparse.Primitive{svgparse.Unknown{Name: "g"}, svgparse.Path{D: ""}})
	assert.True(t, got.Empty())
	assert.Equal(t, 0.0, got.Width())
	assert.Equal(t, Box{}, got)

	assert.True(t, Union(nil).Empty())
}

func TestBoxUnion(t *testing.T) {
	var empty Box
	b := NewBox(0, 0, 1, 1)
	assert.Equal(t, b, empty.Union(b))
	assert.Equal(t, b, b.Union(empty))
	assert.Equal(t, NewBox(-1, 0, 1, 3), b.Union(NewBox(-1, 3, 0, 2)))

	zero := NewBox(5, 5, 5, 5) // zero area, but not empty
	assert.False(t, zero.Empty())
	assert.Equal(t, 0.0, zero.Width())
}
