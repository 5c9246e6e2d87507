package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logPath    string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dvsim",
	Short: "Distance-vector routing simulator",
	Long: `dvsim converges distance-vector routing tables over a file-described network,
replays topology changes against them and reports how every message would be routed.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sim",
		Title: "Simulation Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "tools",
		Title: "Inspection Tools",
	})
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "simulation config (yaml)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-path", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}
