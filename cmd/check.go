package cmd

import (
	"errors"
	"fmt"

	"github.com/encodeous/dvsim/protocol"
	"github.com/encodeous/dvsim/state"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [topology messages changes]",
	Short: "Parses and validates simulation inputs without running them",
	Args:  cobra.RangeArgs(0, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		state.ExpandSimConfig(&cfg)
		if err := state.SimConfigValidator(&cfg); err != nil {
			return err
		}

		links, err := protocol.ReadTopologyFile(cfg.TopologyPath)
		if err != nil {
			return err
		}
		msgs, err := protocol.ReadMessagesFile(cfg.MessagesPath)
		if err != nil {
			return err
		}
		changes, err := protocol.ReadChangesFile(cfg.ChangesPath)
		if err != nil {
			return err
		}
		topo, err := state.NewTopologyFromLinks(links)
		if err != nil {
			return err
		}

		// messages are first resolved against the initial topology
		var errs []error
		for i, m := range msgs {
			for _, id := range []state.NodeId{m.Src, m.Dst} {
				if !topo.HasNode(id) {
					errs = append(errs, fmt.Errorf("%s: message %d: %w: node %s not in topology", cfg.MessagesPath, i+1, state.ErrInconsistentTopology, id))
				}
			}
		}
		if len(errs) > 0 {
			return errors.Join(errs...)
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d nodes, %d links, %d messages, %d changes\n",
			len(topo.Nodes()), len(topo.Links()), len(msgs), len(changes))
		return err
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
