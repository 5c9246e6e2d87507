package core

import (
	"errors"
	"fmt"

	"github.com/encodeous/dvsim/state"
)

type RouterEvent int

// trace events

const (
	RouteImproved RouterEvent = iota
	RouteTieBroken
	NodesRebuilt
	LinkUpdated
	LinkRemoved
	Converged
)

// warn events

const (
	InconsistentState RouterEvent = iota + 1000
	NonConvergent
	MissingLink
)

func (e RouterEvent) String() string {
	switch e {
	case RouteImproved:
		return "RouteImproved"
	case RouteTieBroken:
		return "RouteTieBroken"
	case NodesRebuilt:
		return "NodesRebuilt"
	case LinkUpdated:
		return "LinkUpdated"
	case LinkRemoved:
		return "LinkRemoved"
	case Converged:
		return "Converged"
	case InconsistentState:
		return "InconsistentState"
	case NonConvergent:
		return "NonConvergent"
	case MissingLink:
		return "MissingLink"
	}
	return fmt.Sprintf("RouterEvent(%d)", int(e))
}

var ErrNonConvergent = errors.New("routing tables did not converge")

// Router observes the engine. It never influences route selection.
type Router interface {
	TableUpdateRoute(node state.NodeId, dst state.NodeId, route state.Route)
	Log(event RouterEvent, desc string, args ...any)
}

type ConvergeResult struct {
	Sweeps  int
	Updates int
}

// Converge runs Bellman-Ford sweeps with split horizon until a sweep changes nothing.
// Every node must already be seeded with itself and its direct links, see Rebuild.
func Converge(s *state.State, r Router) (ConvergeResult, error) {
	ids := s.Topology.Nodes()
	nodes := make([]*state.Node, 0, len(ids))
	neighs := make(map[state.NodeId][]state.Adjacency, len(ids))
	for _, id := range ids {
		n, err := s.GetNode(id)
		if err != nil {
			r.Log(InconsistentState, "node missing from node set", "node", id)
			return ConvergeResult{}, err
		}
		nodes = append(nodes, n)
		neighs[id] = s.Topology.Neighbours(id)
	}

	limit := s.MaxSweeps
	if limit <= 0 {
		limit = SweepBound(len(ids))
	}

	res := ConvergeResult{}
	for {
		if res.Sweeps >= limit {
			r.Log(NonConvergent, "sweep bound exceeded", "sweeps", res.Sweeps, "updates", res.Updates)
			return res, fmt.Errorf("%w after %d sweeps", ErrNonConvergent, res.Sweeps)
		}
		res.Sweeps++
		changed := 0
		for _, node := range nodes {
			for _, dst := range ids {
				if dst == node.Id() {
					continue // route to self is fixed at cost 0
				}
				updated, err := relax(s, r, node, dst, neighs[node.Id()])
				if err != nil {
					return res, err
				}
				if updated {
					changed++
				}
			}
		}
		res.Updates += changed
		if changed == 0 {
			break
		}
	}
	r.Log(Converged, "routing tables converged", "sweeps", res.Sweeps, "updates", res.Updates)
	return res, nil
}

// relax selects the best route from node to dst over all neighbour advertisements.
func relax(s *state.State, r Router, node *state.Node, dst state.NodeId, neighs []state.Adjacency) (bool, error) {
	cur, ok := node.Route(dst)
	if !ok {
		r.Log(InconsistentState, "destination missing from table", "node", node.Id(), "dst", dst)
		return false, fmt.Errorf("%w: %s has no entry for %s", state.ErrInconsistentTopology, node.Id(), dst)
	}
	best := cur

	for _, adj := range neighs {
		if adj.Id == dst {
			continue // the direct link was seeded by Rebuild
		}
		neigh, err := s.GetNode(adj.Id)
		if err != nil {
			r.Log(InconsistentState, "neighbour missing from node set", "node", node.Id(), "neigh", adj.Id)
			return false, err
		}
		adv, ok := neigh.Route(dst)
		if !ok {
			r.Log(InconsistentState, "destination missing from neighbour table", "neigh", adj.Id, "dst", dst)
			return false, fmt.Errorf("%w: %s has no entry for %s", state.ErrInconsistentTopology, adj.Id, dst)
		}

		// split horizon: the neighbour learned this route from us
		if adv.Nh == node.Id() {
			continue
		}
		if adv.Metric == state.INF {
			continue // neighbour cannot reach dst either
		}

		newRoute := state.Route{
			Nh:     adj.Id,
			Metric: AddMetric(adj.Metric, adv.Metric),
		}
		if ShouldSwitch(s, node.Id(), dst, best, newRoute) {
			if newRoute.Metric == best.Metric {
				r.Log(RouteTieBroken, "equal cost route moved to lower neighbour", "node", node.Id(), "dst", dst, "from", best.Nh, "to", newRoute.Nh)
			}
			best = newRoute
		}
	}

	if best == cur {
		return false, nil
	}
	node.AddRoute(dst, best.Nh, best.Metric)
	r.TableUpdateRoute(node.Id(), dst, best)
	r.Log(RouteImproved, "route improved", "node", node.Id(), "dst", dst, "nh", best.Nh, "metric", best.Metric)
	return true, nil
}

// ShouldSwitch decides whether newRoute replaces curRoute for self's route to dst.
// A strictly cheaper route always wins. Equal costs only move under TieBreakLowestId.
func ShouldSwitch(s *state.State, self, dst state.NodeId, curRoute, newRoute state.Route) bool {
	if newRoute.Metric == state.INF {
		return false
	}
	if newRoute.Metric < curRoute.Metric {
		return true
	}
	if newRoute.Metric > curRoute.Metric || s.TieBreak != state.TieBreakLowestId {
		return false
	}
	if curRoute.Nh == state.NoHop || newRoute.Nh.Compare(curRoute.Nh) >= 0 {
		return false
	}
	return !routesThrough(s, newRoute.Nh, dst, self)
}

// routesThrough reports whether the next-hop chain from `from` towards dst visits via.
// A chain that cannot be followed is treated as passing through via.
func routesThrough(s *state.State, from, dst, via state.NodeId) bool {
	cur := from
	for range len(s.Nodes) {
		if cur == via {
			return true
		}
		if cur == dst {
			return false
		}
		n, ok := s.Nodes[cur]
		if !ok {
			return true
		}
		cur = n.GetNextHop(dst)
		if cur == state.NoHop {
			return true
		}
	}
	return true
}
