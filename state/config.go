package state

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type TieBreak string

const (
	// TieBreakFirst keeps the incumbent route when a neighbour offers an equal cost.
	TieBreakFirst TieBreak = "first"
	// TieBreakLowestId moves an equal cost route to the lowest neighbour id that does not route back through us.
	TieBreakLowestId TieBreak = "lowest-id"
)

var TieBreaks = []TieBreak{TieBreakFirst, TieBreakLowestId}

// SimCfg describes a single simulation run
type SimCfg struct {
	TopologyPath string   `yaml:"topology"`
	MessagesPath string   `yaml:"messages"`
	ChangesPath  string   `yaml:"changes"`
	OutputPath   string   `yaml:"output,omitempty"`
	TieBreak     TieBreak `yaml:"tie_break,omitempty"`
	MaxSweeps    int      `yaml:"max_sweeps,omitempty"` // 0 selects a bound from the node count
	LogPath      string   `yaml:"log_path,omitempty"`   // if not empty, logs are also written to this file
}

func ReadSimConfig(path string) (*SimCfg, error) {
	var cfg SimCfg
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(file, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ExpandSimConfig fills in defaults for unset fields
func ExpandSimConfig(cfg *SimCfg) {
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	if cfg.TieBreak == "" {
		cfg.TieBreak = DefaultTieBreak
	}
}
