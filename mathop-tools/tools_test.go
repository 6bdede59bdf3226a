package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/mathml/opdict"
	"github.com/npillmayer/schuko/tracing"
)

func TestParseAttrList(t *testing.T) {
	attrs, err := parseAttrList("form=prefix, lspace = 0.2em,stretchy=false")
	if err != nil {
		t.Fatal(err)
	}
	if len(attrs) != 3 || attrs["form"] != "prefix" || attrs["lspace"] != "0.2em" || attrs["stretchy"] != "false" {
		t.Errorf("unexpected attributes %v", attrs)
	}
	if attrs, err = parseAttrList(""); err != nil || len(attrs) != 0 {
		t.Errorf("empty attribute list: %v, %v", attrs, err)
	}
	if _, err = parseAttrList("form"); err == nil {
		t.Errorf("expected error for attribute without value")
	}
}

func TestParseFlags(t *testing.T) {
	f, err := parseFlags("Stretchy,fence")
	if err != nil || f != opdict.Stretchy|opdict.Fence {
		t.Errorf("parseFlags = %v, %v", f, err)
	}
	if f, err = parseFlags(""); err != nil || f != 0 {
		t.Errorf("empty flag list = %v, %v", f, err)
	}
	if _, err = parseFlags("stretchy,wobbly"); err == nil {
		t.Errorf("expected error for unknown flag")
	}
}

func TestFormatLookup(t *testing.T) {
	s := formatLookup('+', opdict.Postfix, true)
	if !strings.Contains(s, "not found") {
		t.Errorf("expected explicit postfix '+' to be missing, got %q", s)
	}
	s = formatLookup('+', opdict.Postfix, false)
	if !strings.Contains(s, "infix") || !strings.Contains(s, "lspace=4 rspace=4") {
		t.Errorf("expected fallback to infix '+', got %q", s)
	}
	s = formatLookup(0x2211, opdict.Prefix, true)
	if !strings.Contains(s, "N-ARY SUMMATION") || !strings.Contains(s, "largeop") {
		t.Errorf("unexpected entry for U+2211: %q", s)
	}
}

func TestParseOperators(t *testing.T) {
	runes, err := parseOperators("U+2211,(,2B")
	if err != nil {
		t.Fatal(err)
	}
	if string(runes) != "∑(+" {
		t.Errorf("parseOperators = %q", string(runes))
	}
}

func TestConfigureTracing(t *testing.T) {
	for _, verbose := range []bool{true, false} {
		if err := configureTracing(verbose); err != nil {
			t.Fatal(err)
		}
		want := tracing.LevelError
		if verbose {
			want = tracing.LevelDebug
		}
		for _, key := range traceKeys {
			if level := tracing.Select(key).GetTraceLevel(); level != want {
				t.Errorf("verbose=%v: tracer %q has level %s, expected %s", verbose, key, level, want)
			}
		}
	}
}
