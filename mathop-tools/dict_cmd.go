package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathml/internal/codepoint"
	"github.com/npillmayer/mathml/opdict"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/runenames"
)

func runDumpCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	from, to := rune(0), rune(0x10FFFF)
	if r := optString(flags["range"], "range"); r != "" {
		var err error
		if from, to, err = codepoint.ParseRange(r); err != nil {
			fatalf("%v", err)
		}
	}
	if mustFlagBool(flags["horizontal"], "horizontal") {
		for ch := range opdict.HorizontalOperators() {
			if ch >= from && ch <= to {
				fmt.Printf("%U\t%s\n", ch, runenames.Name(ch))
			}
		}
		return
	}
	want, err := parseFlags(optString(flags["flags"], "flags"))
	if err != nil {
		fatalf("%v", err)
	}
	n := 0
	for e := range opdict.Entries() {
		if e.Char < from || e.Char > to || !e.Flags.Has(want) {
			continue
		}
		fmt.Println(formatEntry(e))
		n++
	}
	fmt.Printf("entries: %d\n", n)
}

// parseOperators parses a list of operators. Variadic arguments arrive
// joined by commas.
func parseOperators(spec string) ([]rune, error) {
	return codepoint.ParseList(spec)
}

// parseFlags parses a list of flag names, e.g. "stretchy,fence".
func parseFlags(spec string) (opdict.Flags, error) {
	var flags opdict.Flags
	for _, name := range codepoint.Split(spec) {
		f, ok := opdict.FlagByName(strings.ToLower(name))
		if !ok {
			return 0, fmt.Errorf("unknown operator flag %q", name)
		}
		flags |= f
	}
	return flags, nil
}

func formatLookup(ch rune, form opdict.Form, explicit bool) string {
	p, ok := opdict.Search(ch, form, explicit)
	if !ok {
		return fmt.Sprintf("%U\t%s\tnot found", ch, form)
	}
	return formatEntry(opdict.Entry{Char: ch, Property: p})
}

func formatEntry(e opdict.Entry) string {
	return fmt.Sprintf("%U\t%s\tlspace=%d rspace=%d\t%s\t%s", e.Char, e.Form,
		e.LeadingSpace, e.TrailingSpace, e.Flags, runenames.Name(e.Char))
}
