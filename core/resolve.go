package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/encodeous/dvsim/state"
)

var ErrRoutingLoop = errors.New("routing loop")

// Resolve follows next hops from the message source to its destination.
// An unreachable destination is a normal outcome, a broken chain is not.
func Resolve(s *state.State, msg state.Message) (state.Delivery, error) {
	d := state.Delivery{Message: msg}
	src, err := s.GetNode(msg.Src)
	if err != nil {
		return d, err
	}
	if _, err := s.GetNode(msg.Dst); err != nil {
		return d, err
	}

	metric, ok := src.GetPathCost(msg.Dst)
	if !ok {
		return d, fmt.Errorf("%w: %s has no entry for %s", state.ErrInconsistentTopology, msg.Src, msg.Dst)
	}
	if metric == state.INF {
		d.Metric = state.INF
		return d, nil
	}

	hops := make([]state.NodeId, 0)
	cur := msg.Src
	for cur != msg.Dst {
		if slices.Contains(hops, cur) || len(hops) >= len(s.Nodes) {
			return d, fmt.Errorf("%w: %s -> %s revisits %s via %v", ErrRoutingLoop, msg.Src, msg.Dst, cur, hops)
		}
		hops = append(hops, cur)
		n, err := s.GetNode(cur)
		if err != nil {
			return d, err
		}
		cur = n.GetNextHop(msg.Dst)
		if cur == state.NoHop {
			return d, fmt.Errorf("%w: %s -> %s dead ends at %s", ErrRoutingLoop, msg.Src, msg.Dst, n.Id())
		}
	}

	d.Reachable = true
	d.Metric = metric
	d.Hops = hops
	return d, nil
}

func ResolveAll(s *state.State, msgs []state.Message) ([]state.Delivery, error) {
	out := make([]state.Delivery, 0, len(msgs))
	for _, msg := range msgs {
		d, err := Resolve(s, msg)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
