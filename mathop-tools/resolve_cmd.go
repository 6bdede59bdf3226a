package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathml/mathop"
	"github.com/thatisuday/commando"
	"golang.org/x/image/math/fixed"
)

func runResolveCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	mustConfigureTracing(flags)
	attrs, err := parseAttrList(optString(flags["attrs"], "attrs"))
	if err != nil {
		fatalf("%v", err)
	}
	index := mustFlagInt(flags["index"], "index")
	count := mustFlagInt(flags["count"], "count")
	if count < 1 || index < 0 || index >= count {
		fatalf("--index must be in [0, --count)")
	}
	em := mustFlagInt(flags["em"], "em")
	if em <= 0 {
		fatalf("--em must be > 0")
	}
	a, err := mathop.ParseAttributes(attrs)
	if err != nil {
		fmt.Printf("warning: %v\n", err)
	}
	op := mathop.Resolve(args["text"].Value, a, index, count)
	lead, trail := op.Spacing(mathop.Metrics{EmSize: fixed.I(em)})
	fmt.Println(op)
	fmt.Printf("lspace=%v rspace=%v (px, 26.6)\n", lead, trail)
}

// parseAttrList parses "key=value" pairs separated by commas.
func parseAttrList(spec string) (map[string]string, error) {
	attrs := make(map[string]string)
	if spec == "" {
		return attrs, nil
	}
	for _, item := range strings.Split(spec, ",") {
		k, v, ok := strings.Cut(item, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid attribute %q, expected key=value", item)
		}
		attrs[k] = strings.TrimSpace(v)
	}
	return attrs, nil
}
