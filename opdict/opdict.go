package opdict

import (
	"fmt"
	"strings"
)

// Form is the syntactic position of an operator within its row.
//
// The numeric order of forms is significant: dictionary rows for the same
// character are ordered by form, and this order is the fallback priority
// of Search.
type Form uint8

const (
	Infix   Form = iota // a + b
	Prefix              // -a
	Postfix             // a!
)

func (f Form) String() string {
	switch f {
	case Infix:
		return "infix"
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	}
	return fmt.Sprintf("Form(%d)", uint8(f))
}

// ParseForm parses the value of a MathML `form` attribute.
func ParseForm(s string) (Form, error) {
	switch strings.TrimSpace(s) {
	case "infix":
		return Infix, nil
	case "prefix":
		return Prefix, nil
	case "postfix":
		return Postfix, nil
	}
	return Infix, fmt.Errorf("invalid operator form %q", s)
}

// Flags is a set of boolean operator properties.
type Flags uint8

const (
	Accent        Flags = 0x1  // operator is an accent (over/under script)
	Fence         Flags = 0x2  // paired delimiter; no visual effect
	LargeOp       Flags = 0x4  // drawn larger in display style
	MovableLimits Flags = 0x8  // limits move to sub/sup position in inline style
	Separator     Flags = 0x10 // list separator; no visual effect
	Stretchy      Flags = 0x20 // may grow to the size of surrounding content
	Symmetric     Flags = 0x40 // stretches symmetrically around the math axis
)

// AllFlags is the union of all operator flags.
const AllFlags = Accent | Fence | LargeOp | MovableLimits | Separator | Stretchy | Symmetric

var flagNames = [...]string{"accent", "fence", "largeop", "movablelimits", "separator", "stretchy", "symmetric"}

// Has reports whether all flags of g are set in f.
func (f Flags) Has(g Flags) bool {
	return f&g == g
}

// String returns the names of the flags set, joined by '|', or "-" for an
// empty set.
func (f Flags) String() string {
	if f == 0 {
		return "-"
	}
	var names []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if rest := f &^ AllFlags; rest != 0 {
		names = append(names, fmt.Sprintf("0x%02x", uint8(rest)))
	}
	return strings.Join(names, "|")
}

// FlagByName returns the flag for a MathML attribute name, e.g. "largeop".
func FlagByName(name string) (Flags, bool) {
	for i, n := range flagNames {
		if n == name {
			return 1 << i, true
		}
	}
	return 0, false
}

// MathUnit is the unit of operator spacing, in em.
const MathUnit = 1.0 / 18.0

// Default spacing for operators not found in the dictionary
// ("thickmathspace").
const (
	DefaultLeadingSpace  = 5
	DefaultTrailingSpace = 5
)

// Property holds the layout properties of an operator in a given form.
// Spacing is measured in math units and lies in the range 0…7.
type Property struct {
	Form          Form
	LeadingSpace  uint8
	TrailingSpace uint8
	Flags         Flags
}

// DefaultProperty returns the properties a layout engine should assume for
// an operator of form f which is not found in the dictionary.
func DefaultProperty(f Form) Property {
	return Property{
		Form:          f,
		LeadingSpace:  DefaultLeadingSpace,
		TrailingSpace: DefaultTrailingSpace,
	}
}

// LeadingEm returns the leading space in em.
func (p Property) LeadingEm() float64 {
	return float64(p.LeadingSpace) * MathUnit
}

// TrailingEm returns the trailing space in em.
func (p Property) TrailingEm() float64 {
	return float64(p.TrailingSpace) * MathUnit
}

func (p Property) String() string {
	return fmt.Sprintf("(%s lspace=%d rspace=%d flags=%s)", p.Form, p.LeadingSpace, p.TrailingSpace, p.Flags)
}

// Entry is a dictionary entry: an operator character together with its
// properties for one form.
type Entry struct {
	Char rune
	Property
}

// row is the packed representation of a dictionary entry.
type row struct {
	ch     rune
	form   Form
	lspace uint8
	rspace uint8
	flags  Flags
}

func (r row) property() Property {
	return Property{
		Form:          r.form,
		LeadingSpace:  r.lspace,
		TrailingSpace: r.rspace,
		Flags:         r.flags,
	}
}
