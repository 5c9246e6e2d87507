package core

import (
	"github.com/encodeous/dvsim/state"
)

// Rebuild discards every node and creates fresh tables from the topology, then
// seeds each link as a direct route on both endpoints. Nothing learned before
// the rebuild survives it.
func Rebuild(s *state.State, r Router) {
	ids := s.Topology.Nodes()
	nodes := make(map[state.NodeId]*state.Node, len(ids))
	for _, id := range ids {
		nodes[id] = state.NewNode(id, ids)
	}
	links := s.Topology.Links()
	for _, link := range links {
		nodes[link.V1].AddRoute(link.V2, link.V2, link.Metric)
		nodes[link.V2].AddRoute(link.V1, link.V1, link.Metric)
	}
	s.Nodes = nodes
	r.Log(NodesRebuilt, "rebuilt nodes", "nodes", len(ids), "links", len(links))
}

// ApplyChange edits the topology and reconverges from scratch.
// Both endpoints become known nodes, even when the change removes a link.
func ApplyChange(s *state.State, r Router, change state.Change) (ConvergeResult, error) {
	s.Topology.AddNode(change.V1)
	s.Topology.AddNode(change.V2)

	if change.Remove {
		if s.Topology.RemoveLink(change.V1, change.V2) {
			r.Log(LinkRemoved, "link removed", "a", change.V1, "b", change.V2)
		} else {
			r.Log(MissingLink, "removal of a link that does not exist", "a", change.V1, "b", change.V2)
		}
	} else {
		err := s.Topology.SetLink(change.V1, change.V2, change.Metric)
		if err != nil {
			return ConvergeResult{}, err
		}
		r.Log(LinkUpdated, "link updated", "a", change.V1, "b", change.V2, "metric", change.Metric)
	}

	Rebuild(s, r)
	return Converge(s, r)
}
