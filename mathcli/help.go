package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg(0))
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "form", "forms":
		pterm.Info.Println("Operator forms")
		pterm.Println(`
	An operator occurs in one of three forms:
	+---------+-------------------------------------------+
	| prefix  | first element of a row with more elements |
	| infix   | any other position                        |
	| postfix | last element of a row with more elements  |
	+---------+-------------------------------------------+
	Looking up a form which is not in the dictionary falls back to
	the first form present, in the order infix, prefix, postfix,
	unless the form is given as 'explicit'.
	`)
	case "flags":
		pterm.Info.Println("Operator flags")
		pterm.Println(`
	accent, fence, largeop, movablelimits, separator, stretchy, symmetric.
	Spacing is given in math units of 1/18 em.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	lookup:<cp>[:<form>[:explicit]]   dictionary entry, e.g. lookup:2B:prefix
	vertical:<cp>                     stretch direction
	forms:<cp>                        all forms of an operator
	list[:<from>-<to>]                dictionary entries, e.g. list:2190-21FF
	resolve:<text>[:<index>/<count>]  resolve an <mo> element; <text> may contain ':'
	font:<path>                       load a font
	cover[:<cp>]                      operator coverage of the loaded font
	help[:form|flags]                 this text
	quit
	`)
	}
}
