package state

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// State access must be done only on a single Goroutine
type State struct {
	*Env
	Topology *Topology
	// Nodes is rebuilt from Topology on every change, see core.Rebuild
	Nodes map[NodeId]*Node
}

// GetNode fails rather than inventing a node that the topology does not know about.
func (s *State) GetNode(id NodeId) (*Node, error) {
	n, ok := s.Nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: node %s not found", ErrInconsistentTopology, id)
	}
	return n, nil
}

// Snapshot returns every node's table in ascending node order.
func (s *State) Snapshot() ([]NodeTable, error) {
	ids := s.Topology.Nodes()
	out := make([]NodeTable, 0, len(ids))
	for _, id := range ids {
		n, err := s.GetNode(id)
		if err != nil {
			return nil, err
		}
		out = append(out, n.Snapshot())
	}
	return out, nil
}

type Env struct {
	SimCfg
	RunId uuid.UUID
	Log   *slog.Logger
}
