package mathop

import (
	"fmt"

	"github.com/npillmayer/mathml/opdict"
	"golang.org/x/image/math/fixed"
)

// Operator is a resolved `<mo>` element.
type Operator struct {
	Char

	// Form, spacing in math units and flags in effect.
	opdict.Property

	// InDictionary is set if Property has been found in the operator
	// dictionary.
	InDictionary bool

	// Spacing set by attributes. Nil for dictionary spacing.
	LSpace, RSpace *Length
}

// Resolve determines the layout properties of an `<mo>` element with text
// content text and attributes attrs, which is element number index of count
// elements in its parent row.
//
// Operators not found in the dictionary get default spacing and no flags.
// Attributes override dictionary values.
func Resolve(text string, attrs Attributes, index, count int) Operator {
	var op Operator
	op.Char, _ = OperatorChar(text)
	form := attrs.Form
	if !attrs.ExplicitForm {
		form = InferForm(index, count)
	}
	if p, ok := opdict.Search(op.Rune, form, attrs.ExplicitForm); ok {
		op.Property, op.InDictionary = p, true
	} else {
		op.Property = opdict.DefaultProperty(form)
	}
	op.Flags = (op.Flags | attrs.FlagsOn) &^ attrs.FlagsOff
	op.LSpace, op.RSpace = attrs.LSpace, attrs.RSpace
	tracer().Debugf("resolved operator %s", op)
	return op
}

// Spacing returns the leading and trailing space of op in device units.
// Explicit lspace and rspace values override the dictionary spacing; a
// percentage refers to the dictionary spacing.
func (op Operator) Spacing(m Metrics) (lead, trail fixed.Int26_6) {
	lead = MathUnits(op.LeadingSpace, m)
	trail = MathUnits(op.TrailingSpace, m)
	if op.LSpace != nil {
		lead = op.LSpace.Resolve(m, lead)
	}
	if op.RSpace != nil {
		trail = op.RSpace.Resolve(m, trail)
	}
	return
}

// IsStretchy reports whether op is stretchy.
func (op Operator) IsStretchy() bool {
	return op.Flags.Has(opdict.Stretchy)
}

func (op Operator) String() string {
	ch := "anonymous"
	if op.Rune != 0 {
		ch = fmt.Sprintf("%#U", op.Rune)
	}
	dir := "horizontal"
	if op.Vertical {
		dir = "vertical"
	}
	return fmt.Sprintf("[%s %s dict=%v %s]", ch, op.Property, op.InDictionary, dir)
}
