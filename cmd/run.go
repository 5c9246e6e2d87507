package cmd

import (
	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/state"
	"github.com/spf13/cobra"
)

var printStats bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [topology messages changes [output]]",
	Short: "Run a simulation and write its trace",
	Long: `Converges the topology, reports tables and message paths, then applies every change
in order and reports again. The trace is written to output (default output.txt).`,
	Args: cobra.RangeArgs(0, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		return core.Bootstrap(cfg, logLevel(), printStats)
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(runCmd)

	addEngineFlags(runCmd)
	runCmd.Flags().BoolVarP(&printStats, "stats", "s", false, "Log convergence statistics at exit")
	runCmd.Flags().BoolVarP(&state.DBG_log_router, "lroute", "r", false, "Write router events to console")
	runCmd.Flags().BoolVarP(&state.DBG_log_route_table, "ltable", "t", false, "Outputs route tables to the console")
	runCmd.Flags().BoolVarP(&state.DBG_log_route_changes, "lrchange", "g", false, "Outputs route changes to the console")
}
