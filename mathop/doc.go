/*
Package mathop resolves the layout properties of MathML `<mo>` elements.

An operator element carries text content, optional attributes, and a
position within its parent row. Resolution proceeds in steps:

▪︎ the operator character is extracted from the text content (see OperatorChar),

▪︎ the form is taken from the `form` attribute or inferred from the position
of the operator within its row (see InferForm),

▪︎ the operator dictionary of package opdict delivers default spacing and flags,

▪︎ attributes override spacing and flags.

Spacing values are lengths in the sense of MathML and are converted to
fixed-point device units with Operator.Spacing.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package mathop

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mathml.operator'
func tracer() tracing.Trace {
	return tracing.Select("mathml.operator")
}
