/*
Package codepoint parses code points given on the command line.

Code points may be given as hexadecimal numbers, optionally prefixed by
"U+" or "0x", or as a single literal character.
*/
package codepoint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrEmpty is returned for empty code point tokens.
var ErrEmpty = errors.New("empty codepoint token")

// Parse parses one code point token, e.g. "U+2211", "0x28", "2B" or "∑".
//
// Tokens consisting of a single character which is not a hex digit are
// taken literally.
func Parse(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, ErrEmpty
	}
	if r, size := utf8.DecodeRuneInString(token); size == len(token) && !isHexDigit(r) {
		return r, nil
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > utf8.MaxRune {
		return 0, fmt.Errorf("codepoint %q out of range", token)
	}
	return rune(u), nil
}

// ParseList parses a list of code point tokens separated by commas or
// white space.
func ParseList(spec string) ([]rune, error) {
	parts := Split(spec)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := Parse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ParseRange parses a range "from-to" of code points. A single code point
// is a range of length one.
func ParseRange(spec string) (from, to rune, err error) {
	lo, hi, isRange := strings.Cut(strings.TrimSpace(spec), "-")
	if from, err = Parse(lo); err != nil {
		return
	}
	to = from
	if isRange {
		if to, err = Parse(hi); err != nil {
			return
		}
	}
	if to < from {
		err = fmt.Errorf("invalid codepoint range %q", spec)
	}
	return
}

// Split splits a comma or space separated list into its items.
func Split(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}
