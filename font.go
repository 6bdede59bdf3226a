package mathml

import (
	"github.com/npillmayer/mathml/fontcover"
)

// FontCoverage loads an OpenType font (TTF or OTF) from a file and reports
// which dictionary operators it contains glyphs for.
func FontCoverage(fontfile string) (fontcover.Report, error) {
	f, err := fontcover.Load(fontfile)
	if err != nil {
		return fontcover.Report{}, err
	}
	r := f.Report()
	tracer().Infof("font %s covers %.1f%% of operators", r.Font, 100*r.Ratio())
	return r, nil
}
