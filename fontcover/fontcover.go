/*
Package fontcover checks which MathML operators a font is able to display.

A font covers an operator if its character map contains a nominal glyph for
the operator character. Coverage is reported for the distinct characters of
the operator dictionary of package opdict.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontcover

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/mathml/internal/fontload"
	"github.com/npillmayer/mathml/opdict"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mathml.fonts'
func tracer() tracing.Trace {
	return tracing.Select("mathml.fonts")
}

// Font is a font to check operators against. It is safe for concurrent use.
type Font struct {
	Name string
	font *font.Font
}

// Load loads a font from an OpenType file.
func Load(path string) (*Font, error) {
	sf, err := fontload.LoadOpenTypeFont(path)
	if err != nil {
		tracer().Errorf("cannot load font %s: %v", path, err)
		return nil, err
	}
	return parse(sf)
}

// Parse parses a font from OpenType data.
func Parse(data []byte) (*Font, error) {
	sf, err := fontload.ParseOpenTypeFont(data)
	if err != nil {
		return nil, err
	}
	return parse(sf)
}

func parse(sf *fontload.ScalableFont) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(sf.Binary))
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", sf.Fontname, err)
	}
	tracer().Infof("font %s ready for coverage checks", sf.Fontname)
	return &Font{Name: sf.Fontname, font: face.Font}, nil
}

// Glyph is the result of checking a single operator character.
type Glyph struct {
	Char    rune
	Present bool
	GID     font.GID
	Advance float32 // horizontal advance in font units
}

// Check looks up the nominal glyph for ch.
func (f *Font) Check(ch rune) Glyph {
	return check(font.NewFace(f.font), ch)
}

func check(face *font.Face, ch rune) Glyph {
	g := Glyph{Char: ch}
	if g.GID, g.Present = face.NominalGlyph(ch); g.Present {
		g.Advance = face.HorizontalAdvance(g.GID)
	}
	return g
}

// Report is the coverage of the operator dictionary by a font.
type Report struct {
	Font       string
	Operators  []Glyph // one per distinct dictionary character, ascending
	Horizontal []Glyph // horizontally stretching operators, ascending
}

// Report checks every distinct operator character of the dictionary.
func (f *Font) Report() Report {
	face := font.NewFace(f.font)
	r := Report{Font: f.Name}
	last := rune(-1)
	for e := range opdict.Entries() {
		if e.Char == last {
			continue
		}
		last = e.Char
		r.Operators = append(r.Operators, check(face, e.Char))
	}
	for ch := range opdict.HorizontalOperators() {
		r.Horizontal = append(r.Horizontal, check(face, ch))
	}
	tracer().Debugf("font %s covers %d of %d operators", f.Name,
		len(r.Operators)-len(r.Missing()), len(r.Operators))
	return r
}

// Missing returns the operator characters without a glyph.
func (r Report) Missing() []rune {
	var missing []rune
	for _, g := range r.Operators {
		if !g.Present {
			missing = append(missing, g.Char)
		}
	}
	return missing
}

// Ratio returns the fraction of operators covered, between 0 and 1.
func (r Report) Ratio() float64 {
	if len(r.Operators) == 0 {
		return 0
	}
	return 1 - float64(len(r.Missing()))/float64(len(r.Operators))
}

// MissingByScript groups missing operators by Unicode script. Scripts are
// returned in ascending order.
func (r Report) MissingByScript() ([]language.Script, map[language.Script][]rune) {
	groups := make(map[language.Script][]rune)
	for _, ch := range r.Missing() {
		s := language.LookupScript(ch)
		groups[s] = append(groups[s], ch)
	}
	scripts := make([]language.Script, 0, len(groups))
	for s := range groups {
		scripts = append(scripts, s)
	}
	slices.Sort(scripts)
	return scripts, groups
}
