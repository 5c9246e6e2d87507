package cmd

import (
	"fmt"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/protocol"
	"github.com/encodeous/dvsim/state"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// prepareState converges the topology at topoPath, with engine flags applied.
func prepareState(cmd *cobra.Command, topoPath string) (*state.State, func() error, error) {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return nil, nil, err
	}
	cfg.TopologyPath = topoPath
	state.ExpandSimConfig(&cfg)
	if err := state.TieBreakValidator(cfg.TieBreak); err != nil {
		return nil, nil, err
	}
	links, err := protocol.ReadTopologyFile(cfg.TopologyPath)
	if err != nil {
		return nil, nil, err
	}
	env, closeLog, err := core.NewEnv(cfg, logLevel())
	if err != nil {
		return nil, nil, err
	}
	s, _, err := core.NewState(env, links)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return s, closeLog, nil
}

var inspectChanges string

var inspectCmd = &cobra.Command{
	Use:     "inspect <topology>",
	Aliases: []string{"i"},
	Short:   "Prints converged routing tables as yaml",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeLog, err := prepareState(cmd, args[0])
		if err != nil {
			return err
		}
		defer closeLog()

		if inspectChanges != "" {
			changes, err := protocol.ReadChangesFile(inspectChanges)
			if err != nil {
				return err
			}
			r := &core.SimRouter{State: s}
			for _, c := range changes {
				if _, err := core.ApplyChange(s, r, c); err != nil {
					return err
				}
			}
		}

		tables, err := s.Snapshot()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(tables)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
		return err
	},
	GroupID: "tools",
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	addEngineFlags(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectChanges, "changes", "", "apply every change in this file before printing")
}
