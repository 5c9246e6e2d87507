package protocol

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/encodeous/dvsim/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pair(a, b state.NodeId) state.Pair[state.NodeId, state.NodeId] {
	return state.Pair[state.NodeId, state.NodeId]{V1: a, V2: b}
}

func TestParseTopology(t *testing.T) {
	input := "1 2 1\r\n\n2\t3 4\n  \n10 1 0\n"
	links, err := ParseTopology(strings.NewReader(input), "topo")
	require.NoError(t, err)
	assert.Equal(t, []state.Link{
		state.NewLink("1", "2", 1),
		state.NewLink("2", "3", 4),
		state.NewLink("10", "1", 0),
	}, links)
}

func TestParseTopologyErrors(t *testing.T) {
	cases := map[string]string{
		"missing cost":  "1 2 1\n1 2\n",
		"extra field":   "1 2 1\n1 2 3 4\n",
		"negative cost": "1 2 1\n1 2 -5\n",
		"removal":       "1 2 1\n1 2 -999\n",
		"infinite cost": "1 2 1\n1 2 4294967295\n",
		"not a number":  "1 2 1\n1 2 x\n",
		"self link":     "1 2 1\n2 2 3\n",
		"bad id":        "1 2 1\n1 -3 3\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTopology(strings.NewReader(input), "topo.txt")
			require.ErrorIs(t, err, ErrSyntax)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, 2, perr.Line)
			assert.True(t, strings.HasPrefix(err.Error(), "topo.txt:2: "), err.Error())
		})
	}
}

func TestParseChanges(t *testing.T) {
	input := "1 2 -999\n3 4 2\n2 1 0\n"
	changes, err := ParseChanges(strings.NewReader(input), "changes")
	require.NoError(t, err)
	assert.Equal(t, []state.Change{
		{Pair: pair("1", "2"), Remove: true},
		{Pair: pair("3", "4"), Metric: 2},
		{Pair: pair("2", "1"), Metric: 0},
	}, changes)

	_, err = ParseChanges(strings.NewReader("1 2 -1\n"), "changes")
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = ParseChanges(strings.NewReader("1 2 -9990\n"), "changes")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseMessages(t *testing.T) {
	input := "1 3 hello world\n3   1    spaced  out  \n2 1\n"
	msgs, err := ParseMessages(strings.NewReader(input), "messages")
	require.NoError(t, err)
	assert.Equal(t, []state.Message{
		{Src: "1", Dst: "3", Content: "hello world"},
		{Src: "3", Dst: "1", Content: "spaced  out  "},
		{Src: "2", Dst: "1", Content: ""},
	}, msgs)

	_, err = ParseMessages(strings.NewReader("1\n"), "messages")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "topology.txt")
	require.NoError(t, os.WriteFile(p, []byte("1 2 1\n"), 0o644))
	links, err := ReadTopologyFile(p)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	_, err = ReadChangesFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = ReadMessagesFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
