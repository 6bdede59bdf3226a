package mathop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want Length
	}{
		{"0.5em", Length{0.5, UnitEm}},
		{" -2px ", Length{-2, UnitPx}},
		{"150%", Length{150, UnitPercent}},
		{".5ex", Length{0.5, UnitEx}},
		{"0", Length{0, UnitNone}},
		{"+3mm", Length{3, UnitMm}},
		{"thinmathspace", Length{3, UnitMath}},
		{"negativeveryverythickmathspace", Length{-7, UnitMath}},
	}
	for _, tt := range tests {
		l, err := ParseLength(tt.in)
		require.NoError(t, err, "ParseLength(%q)", tt.in)
		assert.Equal(t, tt.want, l, "ParseLength(%q)", tt.in)
	}
}

func TestParseLengthInvalid(t *testing.T) {
	for _, in := range []string{"", "em", "1e3", "NaN", "Inf", "0x10px", "1.2.3em", "wide", "-", "3furlong", "1 pt", "2 em"} {
		_, err := ParseLength(in)
		assert.ErrorIs(t, err, ErrInvalidLength, "ParseLength(%q)", in)
	}
}

func TestLengthResolve(t *testing.T) {
	m := Metrics{EmSize: fixed.I(16)}
	ref := fixed.I(10)
	tests := []struct {
		l    Length
		want fixed.Int26_6
	}{
		{Length{1, UnitEm}, fixed.I(16)},
		{Length{1, UnitEx}, fixed.I(8)},
		{Length{3, UnitPx}, fixed.I(3)},
		{Length{1, UnitIn}, fixed.I(96)},
		{Length{2.54, UnitCm}, fixed.I(96)},
		{Length{25.4, UnitMm}, fixed.I(96)},
		{Length{72, UnitPt}, fixed.I(96)},
		{Length{6, UnitPc}, fixed.I(96)},
		{Length{50, UnitPercent}, fixed.I(5)},
		{Length{2, UnitNone}, fixed.I(20)},
		{Length{18, UnitMath}, fixed.I(16)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.l.Resolve(m, ref), "resolving %s", tt.l)
	}
	m.ExSize = fixed.I(7)
	assert.Equal(t, fixed.I(7), Length{1, UnitEx}.Resolve(m, ref))
}

func TestLengthResolveSaturates(t *testing.T) {
	m := Metrics{EmSize: fixed.I(16)}
	huge := []Length{{100000000, UnitPx}, {99999999999999, UnitEm}, {1e300, UnitNone}}
	for _, l := range huge {
		assert.Equal(t, fixed.Int26_6(math.MaxInt32), l.Resolve(m, fixed.I(10)), "resolving %s", l)
		l.Value = -l.Value
		assert.Equal(t, fixed.Int26_6(math.MinInt32), l.Resolve(m, fixed.I(10)), "resolving %s", l)
	}
	attrs, err := ParseAttributes(map[string]string{"lspace": "100000000px", "rspace": "99999999999999em"})
	require.NoError(t, err)
	lead, trail := Resolve("+", attrs, 1, 3).Spacing(m)
	assert.Positive(t, int32(lead))
	assert.Positive(t, int32(trail))
}

func TestLengthString(t *testing.T) {
	assert.Equal(t, "0.5em", Length{0.5, UnitEm}.String())
	assert.Equal(t, "150%", Length{150, UnitPercent}.String())
	assert.Equal(t, "Unit(42)", Unit(42).String())
}
