package mathop

import (
	"errors"
	"testing"

	"github.com/npillmayer/mathml/opdict"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/math/fixed"
)

// --- Test Suite Preparation ------------------------------------------------

type OperatorTestEnviron struct {
	suite.Suite
	metrics Metrics
}

// listen for 'go test' command --> run test methods
func TestOperatorFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathml.operator")
	defer teardown()
	suite.Run(t, new(OperatorTestEnviron))
}

// run once, before test suite methods
func (env *OperatorTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("mathml.operator").SetTraceLevel(tracing.LevelInfo)
	// 18px font: one math unit is one pixel
	env.metrics = Metrics{EmSize: fixed.I(18)}
}

// --- Tests -----------------------------------------------------------------

func (env *OperatorTestEnviron) TestOperatorChar() {
	tests := []struct {
		text     string
		ok       bool
		r        rune
		vertical bool
	}{
		{"+", true, '+', true},
		{" (\n", true, '(', true},
		{"-", true, '−', true},
		{"→", true, '→', false},
		{"≠", true, '≠', true},
		{"ab", false, 0, true},
		{"", false, 0, true},
		{"  ", false, 0, true},
		{"\U0001EEF0", true, 0x1EEF0, false},
		{"\uFFFD", true, 0xFFFD, true},
		{"\xff", false, 0, true},
		{"\xe2\x88", false, 0, true},
	}
	for _, tt := range tests {
		c, ok := OperatorChar(tt.text)
		env.Equal(tt.ok, ok, "OperatorChar(%q)", tt.text)
		env.Equal(tt.r, c.Rune, "OperatorChar(%q): expected %#U, is %#U", tt.text, tt.r, c.Rune)
		env.Equal(tt.vertical, c.Vertical, "OperatorChar(%q): stretch direction", tt.text)
	}
}

func (env *OperatorTestEnviron) TestInferForm() {
	env.Equal(opdict.Prefix, InferForm(0, 3))
	env.Equal(opdict.Infix, InferForm(1, 3))
	env.Equal(opdict.Postfix, InferForm(2, 3))
	env.Equal(opdict.Infix, InferForm(0, 1), "a lone operator is infix")
	env.Equal(opdict.Postfix, InferForm(1, 2))
}

func (env *OperatorTestEnviron) TestResolveFromDictionary() {
	op := Resolve("(", Attributes{}, 0, 3)
	env.True(op.InDictionary)
	env.Equal(opdict.Prefix, op.Form)
	env.True(op.IsStretchy())
	env.True(op.Flags.Has(opdict.Fence | opdict.Symmetric))
	//
	op = Resolve("+", Attributes{}, 0, 1)
	env.Equal(opdict.Property{Form: opdict.Infix, LeadingSpace: 4, TrailingSpace: 4}, op.Property)
	//
	op = Resolve("-", Attributes{}, 0, 2)
	env.Equal('−', op.Rune)
	env.Equal(opdict.Property{Form: opdict.Prefix, LeadingSpace: 0, TrailingSpace: 1}, op.Property)
}

func (env *OperatorTestEnviron) TestResolveFallback() {
	// closing fence at the start of a row: no prefix form, fall back
	op := Resolve(")", Attributes{}, 0, 3)
	env.True(op.InDictionary)
	env.Equal(opdict.Postfix, op.Form)
	// an explicit form is never replaced
	op = Resolve(")", Attributes{Form: opdict.Prefix, ExplicitForm: true}, 2, 3)
	env.False(op.InDictionary)
	env.Equal(opdict.DefaultProperty(opdict.Prefix), op.Property)
}

func (env *OperatorTestEnviron) TestResolveDefaults() {
	op := Resolve("x", Attributes{}, 1, 3)
	env.False(op.InDictionary)
	env.Equal(opdict.DefaultProperty(opdict.Infix), op.Property)
	op = Resolve("", Attributes{}, 1, 3)
	env.Zero(op.Rune)
	env.False(op.InDictionary)
	env.Contains(op.String(), "anonymous")
}

func (env *OperatorTestEnviron) TestAttributeOverrides() {
	attrs, err := ParseAttributes(map[string]string{
		"stretchy":    "false",
		"largeop":     "true",
		"lspace":      "0em",
		"rspace":      "thinmathspace",
		"mathvariant": "bold",
	})
	env.Require().NoError(err)
	op := Resolve("(", attrs, 0, 3)
	env.False(op.IsStretchy())
	env.True(op.Flags.Has(opdict.LargeOp | opdict.Fence))
	lead, trail := op.Spacing(env.metrics)
	env.Equal(fixed.Int26_6(0), lead)
	env.Equal(fixed.I(3), trail)
}

func (env *OperatorTestEnviron) TestSpacing() {
	op := Resolve("+", Attributes{}, 1, 3)
	lead, trail := op.Spacing(env.metrics)
	env.Equal(fixed.I(4), lead)
	env.Equal(fixed.I(4), trail)
	//
	attrs, err := ParseAttributes(map[string]string{"rspace": "200%", "lspace": "0.5"})
	env.Require().NoError(err)
	op = Resolve("+", attrs, 1, 3)
	lead, trail = op.Spacing(env.metrics)
	env.Equal(fixed.I(2), lead)
	env.Equal(fixed.I(8), trail)
}

func (env *OperatorTestEnviron) TestAttributeErrors() {
	attrs, err := ParseAttributes(map[string]string{
		"lspace":   "wide",
		"stretchy": "yes",
		"form":     "circumfix",
		"rspace":   "1em",
	})
	env.Require().Error(err)
	env.True(errors.Is(err, ErrInvalidLength))
	env.True(errors.Is(err, ErrInvalidBool))
	env.True(errors.Is(err, ErrInvalidForm))
	var aerr *AttributeError
	env.Require().True(errors.As(err, &aerr))
	env.Equal("form", aerr.Attr)
	env.NotNil(attrs.RSpace, "valid attributes are kept")
	env.Nil(attrs.LSpace)
	env.False(attrs.ExplicitForm)
}
