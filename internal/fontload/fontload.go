/*
Package fontload loads OpenType fonts from disk or memory.

Fonts are kept as raw bytes together with an SFNT view, which is used for
reading font names. Clients parse the bytes again with the font library of
their choice.
*/
package fontload

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'mathml.fonts'
func tracer() tracing.Trace {
	return tracing.Select("mathml.fonts")
}

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Filepath string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
//
// The font name is the full name of the font, or the family name if the
// font has no full name. Fonts without any name are accepted and get the
// name "unnamed".
func ParseOpenTypeFont(fbytes []byte) (*ScalableFont, error) {
	f := &ScalableFont{Binary: fbytes}
	var err error
	if f.SFNT, err = sfnt.Parse(f.Binary); err != nil {
		return nil, err
	}
	for _, id := range []sfnt.NameID{sfnt.NameIDFull, sfnt.NameIDFamily} {
		if f.Fontname, err = f.SFNT.Name(nil, id); err == nil && f.Fontname != "" {
			break
		}
	}
	if f.Fontname == "" {
		f.Fontname = "unnamed"
	}
	tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	return f, nil
}
