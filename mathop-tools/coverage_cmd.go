package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathml/fontcover"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/runenames"
)

func runCoverageCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	mustConfigureTracing(flags)
	path := strings.TrimSpace(args["font"].Value)
	if path == "" {
		fatalf("font path is required")
	}
	f, err := fontcover.Load(path)
	if err != nil {
		fatalf("cannot load font %s: %v", path, err)
	}
	r := f.Report()
	fmt.Printf("Font: %s\n", r.Font)
	fmt.Printf("Operators: %d of %d (%.1f%%)\n", len(r.Operators)-len(r.Missing()),
		len(r.Operators), 100*r.Ratio())
	horizontal := 0
	for _, g := range r.Horizontal {
		if g.Present {
			horizontal++
		}
	}
	fmt.Printf("Horizontal: %d of %d\n", horizontal, len(r.Horizontal))
	if !mustFlagBool(flags["missing"], "missing") {
		return
	}
	scripts, groups := r.MissingByScript()
	for _, s := range scripts {
		fmt.Printf("%s:\n", s)
		for _, ch := range groups[s] {
			fmt.Printf("  %U\t%s\n", ch, runenames.Name(ch))
		}
	}
}
