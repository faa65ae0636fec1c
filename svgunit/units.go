// Package svgunit converts SVG length strings, such as "12pt", "2in" or "50%",
// into pixel counts.
//
// Percentages are resolved against a fixed reference base (PercentBase) rather
// than the real viewport, which is unknown when sizing a canvas.
package svgunit

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrNotParseable is returned when the numeric part of a length can't be read.
var ErrNotParseable = errors.New("svgunit: length is not parseable")

// PercentBase is the reference length percentages are resolved against.
const PercentBase = 1000.0

// Unit is the unit tag of a Length.
type Unit uint8

const (
	Unspecified Unit = iota
	Px
	Pt
	Pc
	Mm
	Cm
	In
	Percent
)

// UnitNames holds the suffix of each unit, as written in SVG attributes.
var UnitNames = [...]string{
	Unspecified: "",
	Px:          "px",
	Pt:          "pt",
	Pc:          "pc",
	Mm:          "mm",
	Cm:          "cm",
	In:          "in",
	Percent:     "%",
}

// pixels per unit
var unitFactors = [...]float64{
	Unspecified: 1,
	Px:          1,
	Pt:          1.33,
	Pc:          16,
	Mm:          3.78,
	Cm:          37.8,
	In:          96,
}

func (u Unit) String() string {
	if int(u) < len(UnitNames) {
		return UnitNames[u]
	}
	return "?"
}

// Factor returns the number of pixels in one u.
// Percent has no fixed factor and returns PercentBase / 100.
func (u Unit) Factor() float64 {
	if u == Percent {
		return PercentBase / 100
	}
	if int(u) < len(unitFactors) {
		return unitFactors[u]
	}
	return 1
}

// lookupUnit returns the unit for the (lower case) suffix s.
// Unknown suffixes are read as pixels.
func lookupUnit(s string) Unit {
	for u, name := range UnitNames[:Percent] {
		if name == s {
			return Unit(u)
		}
	}
	return Px
}

// Length is a magnitude with a unit.
type Length struct {
	Value float64
	Unit  Unit
}

func (l Length) String() string { return fmt.Sprintf("%g%s", l.Value, l.Unit) }

// Pixels returns the length in pixels, without rounding.
func (l Length) Pixels() float64 { return l.Value * l.Unit.Factor() }

// Normalized returns the length as an integer number of pixels: percentages
// are rounded half to even, other units are floored.
func (l Length) Normalized() int {
	var px float64
	if l.Unit == Percent {
		px = math.RoundToEven(l.Pixels())
	} else {
		px = math.Floor(l.Pixels())
	}
	return clampInt(px)
}

// Parse reads a length such as "10", "1.5cm" or "25%".
// The unit is given by at most two letters following the number;
// unknown units are read as pixels and any further text is ignored.
// Negative magnitudes are not parseable.
func Parse(raw string) (Length, error) {
	s := strings.TrimSpace(raw)
	if strings.HasSuffix(s, "%") {
		num := strings.TrimSpace(s[:len(s)-1])
		f, n := strconv.ParseFloat([]byte(num))
		if n == 0 || n != len(num) || !isFinite(f) || f < 0 {
			return Length{}, ErrNotParseable
		}
		return Length{Value: f, Unit: Percent}, nil
	}

	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || !isFinite(f) || f < 0 {
		return Length{}, ErrNotParseable
	}
	suffix := strings.ToLower(strings.TrimSpace(s[n:]))
	letters := 0
	for letters < len(suffix) && letters < 2 && isLetter(suffix[letters]) {
		letters++
	}
	unit := Unspecified
	if letters > 0 {
		unit = lookupUnit(suffix[:letters])
	} else if suffix != "" {
		unit = Px
	}
	return Length{Value: f, Unit: unit}, nil
}

// Normalize parses raw and converts it to pixels, see Length.Normalized.
func Normalize(raw string) (int, error) {
	l, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	return l.Normalized(), nil
}

func isLetter(c byte) bool { return 'a' <= c && c <= 'z' }

func isFinite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }

func clampInt(f float64) int {
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
