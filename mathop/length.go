package mathop

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/mathml/opdict"
	"golang.org/x/image/math/fixed"
)

// Unit is the unit of a Length.
type Unit uint8

const (
	UnitNone    Unit = iota // unitless, a multiple of the reference value
	UnitEm                  // em
	UnitEx                  // ex
	UnitPx                  // CSS pixel
	UnitIn                  // inch
	UnitCm                  // centimeter
	UnitMm                  // millimeter
	UnitPt                  // point, 1/72 in
	UnitPc                  // pica, 12 pt
	UnitPercent             // percentage of the reference value
	UnitMath                // math unit, 1/18 em; used by named spaces
)

var unitNames = [...]string{"", "em", "ex", "px", "in", "cm", "mm", "pt", "pc", "%", "mu"}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// Length is a MathML length value.
type Length struct {
	Value float64
	Unit  Unit
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'g', -1, 64) + l.Unit.String()
}

// namedSpaces maps the named spaces of MathML to math units.
var namedSpaces = map[string]float64{
	"veryverythinmathspace":          1,
	"verythinmathspace":              2,
	"thinmathspace":                  3,
	"mediummathspace":                4,
	"thickmathspace":                 5,
	"verythickmathspace":             6,
	"veryverythickmathspace":         7,
	"negativeveryverythinmathspace":  -1,
	"negativeverythinmathspace":      -2,
	"negativethinmathspace":          -3,
	"negativemediummathspace":        -4,
	"negativethickmathspace":         -5,
	"negativeverythickmathspace":     -6,
	"negativeveryverythickmathspace": -7,
}

var units = []Unit{UnitEm, UnitEx, UnitPx, UnitIn, UnitCm, UnitMm, UnitPt, UnitPc, UnitPercent}

// ParseLength parses a MathML length, which is either a named space
// (e.g. "thinmathspace") or a number followed by an optional unit
// (e.g. "0.5em", "-2px", "150%").
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if mu, ok := namedSpaces[s]; ok {
		return Length{Value: mu, Unit: UnitMath}, nil
	}
	num, unit := s, UnitNone
	for _, u := range units {
		if strings.HasSuffix(s, u.String()) {
			num, unit = strings.TrimSuffix(s, u.String()), u
			break
		}
	}
	if !isNumber(num) {
		return Length{}, ErrInvalidLength
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, ErrInvalidLength
	}
	return Length{Value: v, Unit: unit}, nil
}

// isNumber checks for the number syntax of MathML: an optional sign,
// followed by digits with at most one decimal point.
// Exponents, hex floats and special values are not allowed.
func isNumber(s string) bool {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	digits, dot := 0, false
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

// Metrics provides the font dependent sizes needed to resolve lengths.
// Device units are CSS pixels, 96 per inch.
type Metrics struct {
	EmSize fixed.Int26_6 // font size
	ExSize fixed.Int26_6 // x-height; zero means EmSize/2
}

func (m Metrics) ex() fixed.Int26_6 {
	if m.ExSize == 0 {
		return m.EmSize / 2
	}
	return m.ExSize
}

const pxPerInch = 96.0

// Resolve converts l to device units. ref is the value a percentage or a
// unitless number refers to.
func (l Length) Resolve(m Metrics, ref fixed.Int26_6) fixed.Int26_6 {
	var px float64
	switch l.Unit {
	case UnitNone:
		px = l.Value * float64(ref) / 64
	case UnitPercent:
		px = l.Value / 100 * float64(ref) / 64
	case UnitEm:
		px = l.Value * float64(m.EmSize) / 64
	case UnitEx:
		px = l.Value * float64(m.ex()) / 64
	case UnitMath:
		px = l.Value * opdict.MathUnit * float64(m.EmSize) / 64
	case UnitPx:
		px = l.Value
	case UnitIn:
		px = l.Value * pxPerInch
	case UnitCm:
		px = l.Value * pxPerInch / 2.54
	case UnitMm:
		px = l.Value * pxPerInch / 25.4
	case UnitPt:
		px = l.Value * pxPerInch / 72
	case UnitPc:
		px = l.Value * pxPerInch / 6
	}
	return toFixed(px)
}

// toFixed rounds px to 26.6 fixed point, saturating at the limits of the
// representable range.
func toFixed(px float64) fixed.Int26_6 {
	v := math.Round(px * 64)
	switch {
	case v >= math.MaxInt32:
		return fixed.Int26_6(math.MaxInt32)
	case v <= math.MinInt32:
		return fixed.Int26_6(math.MinInt32)
	}
	return fixed.Int26_6(v)
}

// MathUnits converts a spacing in math units to device units.
func MathUnits(mu uint8, m Metrics) fixed.Int26_6 {
	return Length{Value: float64(mu), Unit: UnitMath}.Resolve(m, 0)
}
