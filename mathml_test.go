package mathml

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/mathml/mathop"
	"github.com/npillmayer/mathml/opdict"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLookupOperator(t *testing.T) {
	p, ok := LookupOperator("+", opdict.Prefix)
	require.True(t, ok)
	assert.Equal(t, opdict.Property{Form: opdict.Prefix, LeadingSpace: 0, TrailingSpace: 1}, p)
	//
	p, ok = LookupOperator(" - ", opdict.Infix)
	require.True(t, ok, "hyphen-minus is looked up as minus sign")
	assert.Equal(t, uint8(4), p.LeadingSpace)
	//
	_, ok = LookupOperator("sin", opdict.Prefix)
	assert.False(t, ok)
	_, ok = LookupOperator("A", opdict.Infix)
	assert.False(t, ok)
}

func TestResolveOperator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathml")
	defer teardown()
	//
	op, err := ResolveOperator("∑", map[string]string{"movablelimits": "false"}, 0, 2)
	require.NoError(t, err)
	assert.True(t, op.Flags.Has(opdict.LargeOp))
	assert.False(t, op.Flags.Has(opdict.MovableLimits))
	//
	op, err = ResolveOperator("|", map[string]string{"fence": "maybe"}, 1, 3)
	assert.True(t, errors.Is(err, mathop.ErrInvalidBool))
	assert.Equal(t, opdict.Infix, op.Form)
	assert.True(t, op.Flags.Has(opdict.Fence), "malformed attribute is ignored")
}

func TestFontCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathml")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "go.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	r, err := FontCoverage(path)
	require.NoError(t, err)
	assert.NotEmpty(t, r.Operators)
	//
	_, err = FontCoverage(filepath.Join(t.TempDir(), "none.ttf"))
	assert.Error(t, err)
}
