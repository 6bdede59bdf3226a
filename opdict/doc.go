/*
Package opdict is the MathML operator dictionary.

The dictionary maps a pair (character, form) to the default layout
properties of an operator: spacing in front of and after the operator,
measured in math units (1/18 em), and a set of flags such as Stretchy or
LargeOp. Data is taken from the Operator Dictionary of MathML3, appendix C.

A layout engine asks for an operator with the form it has determined from
the operator's position within its row:

	p, ok := opdict.Search('+', opdict.Prefix, false)

If the requested form is not present and the form has not been set
explicitly by markup, Search falls back to the first form present for the
character, in the order Infix, Prefix, Postfix. This handles markup like
"<mo>(</mo><mi>a</mi><mo>)</mo><mo>(</mo><mi>b</mi><mo>)</mo>", where the
inner fences would otherwise be treated as infix operators.

Stretchy operators stretch vertically unless they are listed as horizontal
operators, see IsVertical.

All data of this package is read-only. Every function is safe for
concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package opdict
