package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/mathml/opdict"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

var traceKeys = []string{"mathml", "mathml.fonts", "mathml.operator"}

// configureTracing routes library tracing to the Go logger, at level Debug
// if verbose is set and at level Error otherwise.
func configureTracing(verbose bool) error {
	level := tracing.LevelError
	if verbose {
		level = tracing.LevelDebug
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range traceKeys {
		conf["trace."+key] = level.String()
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	return nil
}

func mustConfigureTracing(flags map[string]commando.FlagValue) {
	if err := configureTracing(mustFlagBool(flags["verbose"], "verbose")); err != nil {
		fatalf("cannot configure tracing: %v", err)
	}
}

func main() {
	commando.
		SetExecutableName("mathop-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for querying the MathML operator dictionary.")

	commando.
		Register("lookup").
		SetDescription("Look up operators in the operator dictionary.").
		SetShortDescription("dictionary lookup").
		AddArgument("codepoints...", "operators as codepoints (e.g. U+2211,2B) or characters", "").
		AddFlag("form,f", "operator form: infix|prefix|postfix", commando.String, "infix").
		AddFlag("explicit,x", "treat form as explicit, i.e. do not fall back to other forms", commando.Bool, nil).
		SetAction(runLookupCommand)

	commando.
		Register("dump").
		SetDescription("Print dictionary entries, optionally restricted to a codepoint range or flags.").
		SetShortDescription("dump dictionary").
		AddFlag("range,r", "codepoint range (e.g. 2190-21FF)", commando.String, "-").
		AddFlag("flags,F", "only entries with all of these flags (e.g. stretchy,fence)", commando.String, "-").
		AddFlag("horizontal,H", "print the horizontally stretching operators instead", commando.Bool, nil).
		SetAction(runDumpCommand)

	commando.
		Register("resolve").
		SetDescription("Resolve an <mo> element from text content, attributes and position.").
		SetShortDescription("resolve <mo>").
		AddArgument("text", "text content of the <mo> element", "").
		AddFlag("attrs,a", "attributes (e.g. form=prefix,lspace=0.2em,stretchy=false)", commando.String, "-").
		AddFlag("index,i", "index of the operator in its row (0-based)", commando.Int, 0).
		AddFlag("count,c", "number of elements in the row", commando.Int, 1).
		AddFlag("em,e", "font size in pixels", commando.Int, 16).
		AddFlag("verbose,V", "trace operator resolution", commando.Bool, nil).
		SetAction(runResolveCommand)

	commando.
		Register("coverage").
		SetDescription("Report which dictionary operators an OpenType font has glyphs for.").
		SetShortDescription("font coverage").
		AddArgument("font", "OpenType font file path", "").
		AddFlag("missing,m", "list missing operators", commando.Bool, nil).
		AddFlag("verbose,V", "trace font loading", commando.Bool, nil).
		SetAction(runCoverageCommand)

	commando.Parse(nil)
}

func runLookupCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	runes, err := parseOperators(args["codepoints"].Value)
	if err != nil {
		fatalf("%v", err)
	}
	if len(runes) == 0 {
		fatalf("no operators given")
	}
	formName, err := flags["form"].GetString()
	if err != nil {
		fatalf("invalid --form flag: %v", err)
	}
	form, err := opdict.ParseForm(strings.ToLower(formName))
	if err != nil {
		fatalf("%v", err)
	}
	explicit := mustFlagBool(flags["explicit"], "explicit")
	for _, ch := range runes {
		fmt.Println(formatLookup(ch, form, explicit))
	}
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

// optString returns the value of a string flag, with "-" meaning unset.
func optString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "-" {
		return ""
	}
	return s
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "mathop-tools: "+format+"\n", args...)
	os.Exit(1)
}
