package opdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryIsSorted(t *testing.T) {
	for i := 1; i < len(dictionary); i++ {
		prev, this := dictionary[i-1], dictionary[i]
		if compareKey(prev, this) >= 0 {
			t.Fatalf("dictionary not ordered at %d: %#U/%s before %#U/%s",
				i, prev.ch, prev.form, this.ch, this.form)
		}
	}
}

func TestDictionaryRows(t *testing.T) {
	for i, r := range dictionary {
		require.LessOrEqual(t, uint8(r.form), uint8(Postfix), "row %d has invalid form", i)
		require.LessOrEqual(t, r.lspace, uint8(7), "row %d: lspace out of range", i)
		require.LessOrEqual(t, r.rspace, uint8(7), "row %d: rspace out of range", i)
		require.Zero(t, r.flags&^AllFlags, "row %d has unknown flags", i)
		require.NotZero(t, r.ch, "row %d has character 0", i)
	}
	assert.Equal(t, 1061, Len())
}

func TestHorizontalOperatorsSorted(t *testing.T) {
	for i := 1; i < len(horizontalOperators); i++ {
		if horizontalOperators[i-1] >= horizontalOperators[i] {
			t.Fatalf("horizontal operators not ordered at %d", i)
		}
	}
}

func TestExactMatch(t *testing.T) {
	for e := range Entries() {
		p, ok := Search(e.Char, e.Form, true)
		if !ok || p != e.Property {
			t.Fatalf("Search(%#U, %s, true) = %v, %v; want %v", e.Char, e.Form, p, ok, e.Property)
		}
		p, ok = Search(e.Char, e.Form, false)
		if !ok || p != e.Property {
			t.Fatalf("Search(%#U, %s, false) = %v, %v; want %v", e.Char, e.Form, p, ok, e.Property)
		}
	}
}

func TestExplicitFormIsStrict(t *testing.T) {
	for e := range Entries() {
		present := Forms(e.Char)
		for _, f := range []Form{Infix, Prefix, Postfix} {
			if contains(present, f) {
				continue
			}
			if p, ok := Search(e.Char, f, true); ok {
				t.Fatalf("Search(%#U, %s, true) = %v; want not found", e.Char, f, p)
			}
		}
	}
}

func TestFallbackPrecedence(t *testing.T) {
	for e := range Entries() {
		present := Forms(e.Char)
		for _, f := range []Form{Infix, Prefix, Postfix} {
			if contains(present, f) {
				continue
			}
			p, ok := Search(e.Char, f, false)
			require.True(t, ok, "expected fallback for %#U/%s", e.Char, f)
			assert.Equal(t, present[0], p.Form, "fallback form for %#U", e.Char)
			for _, better := range []Form{Infix, Prefix, Postfix} {
				if better == p.Form {
					break
				}
				assert.NotContains(t, present, better, "fallback for %#U skipped %s", e.Char, better)
			}
		}
	}
}

func TestZeroCharacter(t *testing.T) {
	for _, f := range []Form{Infix, Prefix, Postfix} {
		for _, explicit := range []bool{true, false} {
			_, ok := Search(0, f, explicit)
			assert.False(t, ok, "character 0 must never be found (%s, %v)", f, explicit)
		}
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name     string
		ch       rune
		form     Form
		explicit bool
		found    bool
		want     Property
	}{
		{"left parenthesis", '(', Prefix, true, true,
			Property{Prefix, 0, 0, Symmetric | Fence | Stretchy}},
		{"plus infix", '+', Infix, true, true, Property{Infix, 4, 4, 0}},
		{"plus prefix", '+', Prefix, true, true, Property{Prefix, 0, 1, 0}},
		{"plus postfix explicit", '+', Postfix, true, false, Property{}},
		{"plus postfix fallback", '+', Postfix, false, true, Property{Infix, 4, 4, 0}},
		{"letter", 'A', Infix, false, false, Property{}},
		{"sum", 0x2211, Prefix, true, true,
			Property{Prefix, 1, 2, Symmetric | LargeOp | MovableLimits}},
		{"vertical line postfix", '|', Postfix, true, true,
			Property{Postfix, 0, 0, Symmetric | Fence | Stretchy}},
		{"circumflex prefers infix", '^', Prefix, false, true, Property{Infix, 1, 1, 0}},
		{"low line postfix", '_', Postfix, true, true, Property{Postfix, 0, 0, Accent | Stretchy}},
		{"right parenthesis as prefix", ')', Prefix, false, true,
			Property{Postfix, 0, 0, Symmetric | Fence | Stretchy}},
		{"supplementary plane", 0x1EEF0, Infix, false, true, Property{Prefix, 0, 0, Stretchy}},
		{"beyond table", 0x10FFFF, Infix, false, false, Property{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Search(tt.ch, tt.form, tt.explicit)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestIsVertical(t *testing.T) {
	assert.False(t, IsVertical(0x2192), "rightwards arrow stretches horizontally")
	assert.True(t, IsVertical(0x2191), "upwards arrow stretches vertically")
	assert.True(t, IsVertical('('))
	assert.True(t, IsVertical('A'), "non-operators default to vertical")
	assert.False(t, IsVertical(0x1EEF1))
	for r := range HorizontalOperators() {
		require.False(t, IsVertical(r), "%#U is horizontal", r)
		require.Equal(t, IsVertical(r), IsVertical(r))
	}
}

func TestForms(t *testing.T) {
	assert.Equal(t, []Form{Infix, Prefix, Postfix}, Forms('|'))
	assert.Equal(t, []Form{Infix, Prefix}, Forms('+'))
	assert.Equal(t, []Form{Infix, Postfix}, Forms('^'))
	assert.Nil(t, Forms('x'))
}

func TestEntriesStopEarly(t *testing.T) {
	n := 0
	for range Entries() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func contains(forms []Form, f Form) bool {
	for _, g := range forms {
		if g == f {
			return true
		}
	}
	return false
}
