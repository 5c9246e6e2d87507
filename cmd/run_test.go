package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	topo := writeInput(t, dir, "topology.txt", "1 2 3\n")
	msgs := writeInput(t, dir, "messages.txt", "2 1 back\n")
	changes := writeInput(t, dir, "changes.txt", "1 2 -999\n")
	output := filepath.Join(dir, "trace.txt")

	_, err := execute(t, "run", topo, msgs, changes, output)
	require.NoError(t, err)

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, `1 1 0
2 2 3

1 1 3
2 2 0

from 2 to 1 cost 3 hops 2 message back

1 1 0
2 -1 9999

1 -1 9999
2 2 0

from 2 to 1 cost infinite hops unreachable message back

`, string(b))
}
