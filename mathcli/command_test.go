package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathml.cli")
	defer teardown()
	//
	cmd, err := parseCommand("lookup:2B:prefix:explicit vertical:2192")
	require.NoError(t, err)
	require.Len(t, cmd.ops, 2)
	assert.Equal(t, LOOKUP, cmd.ops[0].code)
	assert.Equal(t, "prefix", cmd.ops[0].arg(1))
	assert.Equal(t, "explicit", cmd.ops[0].arg(2))
	assert.Equal(t, "", cmd.ops[0].arg(3))
	assert.Equal(t, VERTICAL, cmd.ops[1].code)
	//
	cmd, err = parseCommand("frobnicate")
	require.NoError(t, err)
	assert.Equal(t, HELP, cmd.ops[0].code)
	//
	cmd, err = parseCommand("quit list")
	require.NoError(t, err)
	assert.Len(t, cmd.ops, 1, "nothing is parsed after quit")
	//
	_, err = parseCommand("   ")
	assert.Error(t, err)
}

func TestExecuteStops(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathml.cli")
	defer teardown()
	//
	intp := &Intp{}
	cmd, _ := parseCommand("vertical:2192 quit")
	err, stop := intp.execute(cmd)
	assert.NoError(t, err)
	assert.True(t, stop)
	//
	cmd, _ = parseCommand("cover")
	err, stop = intp.execute(cmd)
	assert.ErrorIs(t, err, errNoFont)
	assert.False(t, stop)
	//
	cmd, _ = parseCommand("resolve:+:5/3")
	err, _ = intp.execute(cmd)
	assert.Error(t, err)
}

func TestResolveArgs(t *testing.T) {
	tests := []struct {
		line         string
		text         string
		index, count int
	}{
		{"resolve:+", "+", 1, 3},
		{"resolve:+:0/2", "+", 0, 2},
		{"resolve:::1/3", ":", 1, 3},
		{"resolve::", ":", 1, 3},
		{"resolve:/", "/", 1, 3},
		{"resolve:/:2/3", "/", 2, 3},
	}
	for _, tt := range tests {
		cmd, err := parseCommand(tt.line)
		require.NoError(t, err)
		text, index, count, err := resolveArgs(cmd.ops[0].args)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.text, text, tt.line)
		assert.Equal(t, tt.index, index, tt.line)
		assert.Equal(t, tt.count, count, tt.line)
	}
	cmd, _ := parseCommand("resolve:+:x/3")
	_, _, _, err := resolveArgs(cmd.ops[0].args)
	assert.Error(t, err)
}
