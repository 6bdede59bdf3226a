/*
Package mathml provides layout information for MathML operators.

The operator dictionary itself lives in package opdict, resolution of
complete `<mo>` elements in package mathop. This package offers
convenience functions for the most common use cases.

# Links

MathML3, appendix C, Operator Dictionary:
https://www.w3.org/TR/MathML3/appendixc.html

MathML Core, operator layout:
https://www.w3.org/TR/mathml-core/#operator-fence-separator-or-accent-mo

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package mathml

import (
	"github.com/npillmayer/mathml/mathop"
	"github.com/npillmayer/mathml/opdict"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mathml'
func tracer() tracing.Trace {
	return tracing.Select("mathml")
}

// LookupOperator returns the dictionary properties for the operator with
// text content text in form form. The form is treated as inferred, i.e. the
// dictionary may fall back to another form of the operator.
//
// If text is not a single operator character or the character is not in the
// dictionary, LookupOperator returns false.
func LookupOperator(text string, form opdict.Form) (opdict.Property, bool) {
	c, ok := mathop.OperatorChar(text)
	if !ok {
		return opdict.Property{}, false
	}
	return opdict.Search(c.Rune, form, false)
}

// ResolveOperator resolves an `<mo>` element with text content text and
// attributes attrs, which is element number index of count elements in its
// parent row.
//
// Malformed attribute values are reported as an error, but the operator is
// resolved nevertheless, with the malformed attributes ignored.
func ResolveOperator(text string, attrs map[string]string, index, count int) (mathop.Operator, error) {
	a, err := mathop.ParseAttributes(attrs)
	if err != nil {
		tracer().Errorf("operator %q: %v", text, err)
	}
	return mathop.Resolve(text, a, index, count), err
}
