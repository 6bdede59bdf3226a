package opdict

import "testing"

func TestFlagsString(t *testing.T) {
	tests := []struct {
		flags    Flags
		expected string
	}{
		{0, "-"},
		{Stretchy, "stretchy"},
		{Symmetric | Fence | Stretchy, "fence|stretchy|symmetric"},
		{AllFlags, "accent|fence|largeop|movablelimits|separator|stretchy|symmetric"},
		{Accent | 0x80, "accent|0x80"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.expected {
			t.Errorf("Flags(%#x).String() = %q; want %q", uint8(tt.flags), got, tt.expected)
		}
	}
}

func TestFlagByName(t *testing.T) {
	for i, name := range flagNames {
		f, ok := FlagByName(name)
		if !ok || f != 1<<i {
			t.Errorf("FlagByName(%q) = %v, %v", name, f, ok)
		}
	}
	if _, ok := FlagByName("bogus"); ok {
		t.Errorf("expected unknown flag name to be rejected")
	}
}

func TestParseForm(t *testing.T) {
	for _, f := range []Form{Infix, Prefix, Postfix} {
		g, err := ParseForm(f.String())
		if err != nil || g != f {
			t.Errorf("ParseForm(%q) = %v, %v", f.String(), g, err)
		}
	}
	if _, err := ParseForm("circumfix"); err == nil {
		t.Errorf("expected error for invalid form")
	}
}

func TestPropertySpacing(t *testing.T) {
	p := DefaultProperty(Postfix)
	if p.Form != Postfix || p.Flags != 0 {
		t.Errorf("unexpected default property %v", p)
	}
	if em := p.LeadingEm(); em != 5.0/18.0 {
		t.Errorf("LeadingEm() = %v; want 5/18", em)
	}
	if em := (Property{TrailingSpace: 3}).TrailingEm(); em != 3.0/18.0 {
		t.Errorf("TrailingEm() = %v; want 3/18", em)
	}
}
