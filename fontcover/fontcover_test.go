package fontcover

import (
	"iter"
	"testing"

	"github.com/npillmayer/mathml/opdict"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

type CoverageTestEnviron struct {
	suite.Suite
	font *Font
}

// listen for 'go test' command --> run test methods
func TestCoverageFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathml.fonts")
	defer teardown()
	suite.Run(t, new(CoverageTestEnviron))
}

// run once, before test suite methods
func (env *CoverageTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("mathml.fonts").SetTraceLevel(tracing.LevelError)
	f, err := Parse(goregular.TTF)
	env.Require().NoError(err)
	env.font = f
	tracing.Select("mathml.fonts").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *CoverageTestEnviron) TestCheck() {
	g := env.font.Check('+')
	env.True(g.Present, "expected Go Regular to contain '+'")
	env.NotZero(g.GID)
	env.Greater(g.Advance, float32(0))
	//
	g = env.font.Check(0x1EEF0)
	env.False(g.Present, "expected Go Regular to miss Arabic math operators")
	env.Zero(g.Advance)
}

func (env *CoverageTestEnviron) TestReport() {
	r := env.font.Report()
	env.Equal(env.font.Name, r.Font)
	env.Len(r.Horizontal, countSeq(opdict.HorizontalOperators()))
	env.Less(len(r.Operators), opdict.Len(), "operators are deduplicated")
	for i := 1; i < len(r.Operators); i++ {
		env.Require().Less(r.Operators[i-1].Char, r.Operators[i].Char)
	}
	missing := r.Missing()
	env.NotEmpty(missing)
	env.Contains(missing, rune(0x1EEF0))
	env.NotContains(missing, '=')
	ratio := r.Ratio()
	env.Greater(ratio, 0.0)
	env.Less(ratio, 1.0)
}

func (env *CoverageTestEnviron) TestMissingByScript() {
	r := env.font.Report()
	scripts, groups := r.MissingByScript()
	env.Len(groups, len(scripts))
	n := 0
	for _, s := range scripts {
		n += len(groups[s])
	}
	env.Equal(len(r.Missing()), n)
}

func (env *CoverageTestEnviron) TestEmptyReport() {
	env.Zero(Report{}.Ratio())
	env.Empty(Report{}.Missing())
}

func (env *CoverageTestEnviron) TestParseGarbage() {
	_, err := Parse([]byte{0, 1, 0, 0})
	env.Error(err)
}

func countSeq[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
