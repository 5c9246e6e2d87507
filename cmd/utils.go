package cmd

import (
	"log/slog"

	"github.com/encodeous/dvsim/state"
	"github.com/spf13/cobra"
)

// loadConfig reads --config if given, then lets positional args and flags override it.
// args are, in order: topology, messages, changes, output.
func loadConfig(cmd *cobra.Command, args []string) (state.SimCfg, error) {
	cfg := state.SimCfg{}
	if configPath != "" {
		c, err := state.ReadSimConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = *c
	}
	fields := []*string{&cfg.TopologyPath, &cfg.MessagesPath, &cfg.ChangesPath, &cfg.OutputPath}
	for i, arg := range args {
		if i < len(fields) {
			*fields[i] = arg
		}
	}
	if logPath != "" {
		cfg.LogPath = logPath
	}
	if f := cmd.Flags().Lookup("tie-break"); f != nil && f.Changed {
		cfg.TieBreak = state.TieBreak(f.Value.String())
	}
	if f := cmd.Flags().Lookup("max-sweeps"); f != nil && f.Changed {
		n, err := cmd.Flags().GetInt("max-sweeps")
		if err != nil {
			return cfg, err
		}
		cfg.MaxSweeps = n
	}
	return cfg, nil
}

func logLevel() slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().String("tie-break", string(state.DefaultTieBreak), "equal cost policy: first or lowest-id")
	cmd.Flags().Int("max-sweeps", 0, "sweep bound before giving up, 0 picks one from the node count")
}
