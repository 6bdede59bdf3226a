package codepoint

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token    string
		expected rune
	}{
		{"U+2211", 0x2211},
		{"u+28", '('},
		{"0x2B", '+'},
		{"2b", '+'},
		{"∑", '∑'},
		{"(", '('},
		{"a", 0xA},
		{" 1EEF0 ", 0x1EEF0},
	}
	for _, tt := range tests {
		r, err := Parse(tt.token)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.token, err)
			continue
		}
		if r != tt.expected {
			t.Errorf("Parse(%q) = %#U; want %#U", tt.token, r, tt.expected)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse(" "); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	for _, token := range []string{"U+", "xyz", "110000", "0x"} {
		if r, err := Parse(token); err == nil {
			t.Errorf("Parse(%q) = %#U; expected error", token, r)
		}
	}
}

func TestParseList(t *testing.T) {
	runes, err := ParseList("U+0028, 2B 0x29")
	if err != nil {
		t.Fatal(err)
	}
	if string(runes) != "(+)" {
		t.Errorf("ParseList = %q; want \"(+)\"", string(runes))
	}
	if _, err := ParseList("28,zz"); err == nil {
		t.Errorf("expected error for invalid list item")
	}
}

func TestParseRange(t *testing.T) {
	from, to, err := ParseRange("2190-21FF")
	if err != nil || from != 0x2190 || to != 0x21FF {
		t.Errorf("ParseRange = %#U, %#U, %v", from, to, err)
	}
	from, to, err = ParseRange("U+2211")
	if err != nil || from != to {
		t.Errorf("single codepoint range = %#U, %#U, %v", from, to, err)
	}
	if _, _, err = ParseRange("30-20"); err == nil {
		t.Errorf("expected error for inverted range")
	}
}
