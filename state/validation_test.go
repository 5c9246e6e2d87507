package state

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameValidator_Valid(t *testing.T) {
	assert.NoError(t, NameValidator("1"))
	assert.NoError(t, NameValidator("1A"))
	assert.NoError(t, NameValidator("ab_cd"))
	assert.NoError(t, NameValidator("abcd-a.com"))
}

func TestNameValidator_Invalid(t *testing.T) {
	assert.Error(t, NameValidator("-1"))
	assert.Error(t, NameValidator("node name"))
	assert.Error(t, NameValidator(""))
	assert.Error(t, NameValidator("\t"))
	assert.Error(t, NameValidator("abcd-a.com\\hi"))
	assert.Error(t, NameValidator(strings.Repeat("a", 200)))
}

func TestTieBreakValidator(t *testing.T) {
	assert.NoError(t, TieBreakValidator(TieBreakFirst))
	assert.NoError(t, TieBreakValidator(TieBreakLowestId))
	assert.Error(t, TieBreakValidator("random"))
	assert.Error(t, TieBreakValidator(""))
}

func TestInputValidator(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, InputValidator(dir))
	assert.Error(t, InputValidator(filepath.Join(dir, "nope.txt")))
	assert.NoError(t, InputValidator(writeFile(t, dir, "topo.txt", "1 2 1\n")))
}

func TestSimConfigValidator(t *testing.T) {
	dir := t.TempDir()
	cfg := &SimCfg{
		TopologyPath: writeFile(t, dir, "topo.txt", "1 2 1\n"),
		MessagesPath: writeFile(t, dir, "msg.txt", ""),
		ChangesPath:  writeFile(t, dir, "chg.txt", ""),
		OutputPath:   filepath.Join(dir, "output.txt"),
		TieBreak:     TieBreakFirst,
	}
	assert.NoError(t, SimConfigValidator(cfg))

	bad := *cfg
	bad.ChangesPath = ""
	assert.ErrorContains(t, SimConfigValidator(&bad), "required")

	bad = *cfg
	bad.OutputPath = filepath.Join(dir, "missing", "output.txt")
	bad.TieBreak = "random"
	bad.MaxSweeps = -1
	err := SimConfigValidator(&bad)
	assert.ErrorContains(t, err, "output")
	assert.ErrorContains(t, err, "random")
	assert.ErrorContains(t, err, "max_sweeps")
}
