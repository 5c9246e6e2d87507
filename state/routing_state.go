package state

import (
	"maps"
	"slices"
)

// RoutingTable maps every known destination to a single selected route.
// Unreachable destinations are kept as {NoHop, INF} rather than removed.
type RoutingTable struct {
	routes map[NodeId]Route
}

func NewRoutingTable(self NodeId, ids []NodeId) *RoutingTable {
	t := &RoutingTable{
		routes: make(map[NodeId]Route, len(ids)),
	}
	for _, id := range ids {
		if id == self {
			t.routes[id] = Route{Nh: self, Metric: 0}
		} else {
			t.routes[id] = Route{Nh: NoHop, Metric: INF}
		}
	}
	return t
}

// AddRoute replaces the entry for dst, creating it if needed.
func (t *RoutingTable) AddRoute(dst, nh NodeId, metric uint32) {
	t.routes[dst] = Route{Nh: nh, Metric: metric}
}

func (t *RoutingTable) Contains(dst NodeId) bool {
	_, ok := t.routes[dst]
	return ok
}

func (t *RoutingTable) Get(dst NodeId) (Route, bool) {
	r, ok := t.routes[dst]
	return r, ok
}

// GetNextHop returns NoHop for an unknown destination.
func (t *RoutingTable) GetNextHop(dst NodeId) NodeId {
	r, ok := t.routes[dst]
	if !ok {
		return NoHop
	}
	return r.Nh
}

// GetPathCost returns false for an unknown destination. A known destination
// that cannot be reached reports INF.
func (t *RoutingTable) GetPathCost(dst NodeId) (uint32, bool) {
	r, ok := t.routes[dst]
	if !ok {
		return 0, false
	}
	return r.Metric, true
}

func (t *RoutingTable) Len() int {
	return len(t.routes)
}

// Snapshot returns a copy of the table ordered by destination.
func (t *RoutingTable) Snapshot() []TableEntry {
	dsts := slices.Collect(maps.Keys(t.routes))
	SortNodeIds(dsts)
	out := make([]TableEntry, 0, len(dsts))
	for _, dst := range dsts {
		out = append(out, TableEntry{Dst: dst, Route: t.routes[dst]})
	}
	return out
}

type Node struct {
	id    NodeId
	table *RoutingTable
}

func NewNode(id NodeId, ids []NodeId) *Node {
	return &Node{
		id:    id,
		table: NewRoutingTable(id, ids),
	}
}

func (n *Node) Id() NodeId {
	return n.id
}

func (n *Node) AddRoute(dst, nh NodeId, metric uint32) {
	n.table.AddRoute(dst, nh, metric)
}

func (n *Node) Contains(dst NodeId) bool {
	return n.table.Contains(dst)
}

func (n *Node) Route(dst NodeId) (Route, bool) {
	return n.table.Get(dst)
}

func (n *Node) GetNextHop(dst NodeId) NodeId {
	return n.table.GetNextHop(dst)
}

func (n *Node) GetPathCost(dst NodeId) (uint32, bool) {
	return n.table.GetPathCost(dst)
}

func (n *Node) Snapshot() NodeTable {
	return NodeTable{
		Id:      n.id,
		Entries: n.table.Snapshot(),
	}
}
