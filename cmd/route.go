package cmd

import (
	"fmt"
	"strings"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/protocol"
	"github.com/encodeous/dvsim/state"
	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route <topology> <src> <dst> [message...]",
	Short: "Resolves the path of a single message over the converged topology",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeLog, err := prepareState(cmd, args[0])
		if err != nil {
			return err
		}
		defer closeLog()

		d, err := core.Resolve(s, state.Message{
			Src:     state.NodeId(args[1]),
			Dst:     state.NodeId(args[2]),
			Content: strings.Join(args[3:], " "),
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), protocol.FormatDelivery(d))
		return err
	},
	GroupID: "tools",
}

func init() {
	rootCmd.AddCommand(routeCmd)

	addEngineFlags(routeCmd)
}
