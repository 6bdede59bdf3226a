package mathop

import (
	"errors"
	"strings"

	"github.com/npillmayer/mathml/opdict"
)

// Attributes holds the `<mo>` attributes relevant for operator layout.
// Flags set explicitly to "true" are collected in FlagsOn, flags set
// explicitly to "false" in FlagsOff.
type Attributes struct {
	Form         opdict.Form
	ExplicitForm bool
	LSpace       *Length
	RSpace       *Length
	FlagsOn      opdict.Flags
	FlagsOff     opdict.Flags
}

// flagAttrs lists the boolean operator attributes in a fixed order.
var flagAttrs = []string{"stretchy", "symmetric", "fence", "accent", "largeop", "movablelimits", "separator"}

// ParseAttributes extracts operator attributes from the attribute map of an
// `<mo>` element. Attributes without relevance for operator layout are
// ignored. Errors for all malformed values are joined; attributes parsed
// successfully are set in the result nevertheless.
func ParseAttributes(attrs map[string]string) (Attributes, error) {
	var a Attributes
	var errs []error
	if v, ok := attrs["form"]; ok {
		if f, err := opdict.ParseForm(v); err != nil {
			errs = append(errs, &AttributeError{Attr: "form", Value: v, Err: ErrInvalidForm})
		} else {
			a.Form, a.ExplicitForm = f, true
		}
	}
	for _, name := range []string{"lspace", "rspace"} {
		v, ok := attrs[name]
		if !ok {
			continue
		}
		l, err := ParseLength(v)
		if err != nil {
			errs = append(errs, &AttributeError{Attr: name, Value: v, Err: err})
			continue
		}
		if name == "lspace" {
			a.LSpace = &l
		} else {
			a.RSpace = &l
		}
	}
	for _, name := range flagAttrs {
		v, ok := attrs[name]
		if !ok {
			continue
		}
		flag, _ := opdict.FlagByName(name)
		switch strings.TrimSpace(v) {
		case "true":
			a.FlagsOn |= flag
		case "false":
			a.FlagsOff |= flag
		default:
			errs = append(errs, &AttributeError{Attr: name, Value: v, Err: ErrInvalidBool})
		}
	}
	if len(errs) > 0 {
		tracer().Debugf("mo attributes: %d malformed value(s)", len(errs))
	}
	return a, errors.Join(errs...)
}
