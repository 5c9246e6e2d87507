package core

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/encodeous/dvsim/perf"
	"github.com/encodeous/dvsim/protocol"
	"github.com/encodeous/dvsim/state"
	"github.com/encodeous/tint"
	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
)

// NewLogger writes to stderr, and also to logPath when it is set. The returned func closes the log file.
func NewLogger(level slog.Level, prefix string, logPath string) (*slog.Logger, func() error, error) {
	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        level,
			AddSource:    false,
			CustomPrefix: prefix,
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	closer := func() error { return nil }
	if logPath != "" {
		err := os.MkdirAll(path.Dir(logPath), 0700)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

func NewEnv(cfg state.SimCfg, level slog.Level) (*state.Env, func() error, error) {
	runId := uuid.New()
	logger, closer, err := NewLogger(level, runId.String()[:8], cfg.LogPath)
	if err != nil {
		return nil, nil, err
	}
	return &state.Env{
		SimCfg: cfg,
		RunId:  runId,
		Log:    logger.With("run", runId.String()),
	}, closer, nil
}

// NewState builds the initial topology and converges it.
func NewState(env *state.Env, links []state.Link) (*state.State, *SimRouter, error) {
	topo, err := state.NewTopologyFromLinks(links)
	if err != nil {
		return nil, nil, err
	}
	s := &state.State{
		Env:      env,
		Topology: topo,
	}
	r := &SimRouter{State: s}
	if _, err := Prepare(s, r); err != nil {
		return nil, nil, err
	}
	return s, r, nil
}

// Bootstrap runs one complete simulation described by cfg and writes its trace to cfg.OutputPath.
func Bootstrap(cfg state.SimCfg, level slog.Level, stats bool) error {
	state.ExpandSimConfig(&cfg)
	err := state.SimConfigValidator(&cfg)
	if err != nil {
		return err
	}

	env, closeLog, err := NewEnv(cfg, level)
	if err != nil {
		return err
	}
	defer closeLog()

	links, err := protocol.ReadTopologyFile(cfg.TopologyPath)
	if err != nil {
		return fmt.Errorf("cannot read topology: %w", err)
	}
	msgs, err := protocol.ReadMessagesFile(cfg.MessagesPath)
	if err != nil {
		return fmt.Errorf("cannot read messages: %w", err)
	}
	changes, err := protocol.ReadChangesFile(cfg.ChangesPath)
	if err != nil {
		return fmt.Errorf("cannot read changes: %w", err)
	}
	env.Log.Info("loaded inputs", "links", len(links), "messages", len(msgs), "changes", len(changes), "tie_break", cfg.TieBreak)

	topo, err := state.NewTopologyFromLinks(links)
	if err != nil {
		return err
	}
	s := &state.State{
		Env:      env,
		Topology: topo,
	}
	r := &SimRouter{State: s}

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("cannot open output: %w", err)
	}
	defer out.Close()
	w := protocol.NewTraceWriter(out)

	err = Simulate(s, r, msgs, changes, func(round Round) error {
		r.LogTables()
		args := []any{"round", round.Index, "sweeps", round.Result.Sweeps, "updates", round.Result.Updates}
		if round.Change != nil {
			args = append(args, "change", round.Change.String())
		}
		env.Log.Info("converged", args...)
		if err := w.WriteTables(round.Tables); err != nil {
			return err
		}
		return w.WriteDeliveries(round.Deliveries)
	})
	if err != nil {
		env.Log.Error("simulation failed", "error", err)
		return err
	}
	err = w.Flush()
	if err != nil {
		return err
	}
	env.Log.Info("wrote trace", "output", cfg.OutputPath)
	if stats {
		env.Log.Info("stats", perf.Summary()...)
	}
	return out.Close()
}
