package mathop

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/mathml/opdict"
	"golang.org/x/text/unicode/norm"
)

const (
	hyphenMinus = '-'
	minusSign   = '−'
)

// xmlSpace is the set of white space characters of XML.
const xmlSpace = " \t\n\r"

// Char is the character of an operator element.
type Char struct {
	Rune     rune // 0 for anonymous operators
	Vertical bool // stretch direction, if the operator is stretchy
}

// OperatorChar extracts the operator character from the text content of an
// `<mo>` element.
//
// The text is normalized to NFC and stripped of surrounding white space.
// It has to consist of exactly one code point, otherwise OperatorChar
// returns false and a Char for an anonymous operator. A hyphen-minus is
// replaced by U+2212 MINUS SIGN, which renders better. The stretch direction
// is determined from the character as given in the text.
func OperatorChar(text string) (Char, bool) {
	s := strings.Trim(norm.NFC.String(text), xmlSpace)
	if utf8.RuneCountInString(s) != 1 {
		return Char{Vertical: opdict.IsVertical(0)}, false
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return Char{Vertical: opdict.IsVertical(0)}, false
	}
	c := Char{Rune: r, Vertical: opdict.IsVertical(r)}
	if c.Rune == hyphenMinus {
		c.Rune = minusSign
	}
	return c, true
}

// InferForm determines the form of an operator without an explicit `form`
// attribute, given its index within a row of count elements.
// The first of several elements is a prefix operator, the last of several
// elements is a postfix operator. Everything else, including an operator
// standing alone, is infix.
func InferForm(index, count int) opdict.Form {
	if count > 1 {
		switch index {
		case 0:
			return opdict.Prefix
		case count - 1:
			return opdict.Postfix
		}
	}
	return opdict.Infix
}
