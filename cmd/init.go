package cmd

import (
	"fmt"
	"os"

	"github.com/encodeous/dvsim/state"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

const DefaultSimConfigPath = "sim.yaml"

var newCmd = &cobra.Command{
	Use:   "new [config]",
	Short: "Create a simulation config",
	Long: `Writes a simulation config that names the three input files, for use with --config.
The inputs themselves are not created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := DefaultSimConfigPath
		if len(args) == 1 {
			outPath = args[0]
		}
		if err := state.PathValidator(outPath); err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(outPath); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite it", outPath)
		}

		simCfg := state.SimCfg{
			TopologyPath: cmd.Flag("topology").Value.String(),
			MessagesPath: cmd.Flag("messages").Value.String(),
			ChangesPath:  cmd.Flag("changes").Value.String(),
			OutputPath:   cmd.Flag("output").Value.String(),
			TieBreak:     state.TieBreak(cmd.Flag("tie-break").Value.String()),
		}
		if err := state.TieBreakValidator(simCfg.TieBreak); err != nil {
			return err
		}

		out, err := yaml.Marshal(&simCfg)
		if err != nil {
			return err
		}
		err = os.WriteFile(outPath, out, 0644)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
		return err
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().String("topology", "topology.txt", "topology file path")
	newCmd.Flags().String("messages", "message.txt", "messages file path")
	newCmd.Flags().String("changes", "changes.txt", "changes file path")
	newCmd.Flags().StringP("output", "o", state.DefaultOutputPath, "trace output file path")
	newCmd.Flags().String("tie-break", string(state.DefaultTieBreak), "equal cost policy: first or lowest-id")
	newCmd.Flags().BoolP("force", "f", false, "overwrite an existing config")
}
