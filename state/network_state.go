package state

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	ErrInconsistentTopology = errors.New("inconsistent topology")
	ErrSelfLink             = errors.New("link endpoints must differ")
)

// Link is an undirected, weighted edge. V1 sorts before V2 when produced by a Topology.
type Link struct {
	Pair[NodeId, NodeId]
	Metric uint32
}

func NewLink(a, b NodeId, metric uint32) Link {
	return Link{Pair: Pair[NodeId, NodeId]{V1: a, V2: b}, Metric: metric}
}

func (l Link) String() string {
	return fmt.Sprintf("%s-%s(%d)", l.V1, l.V2, l.Metric)
}

// Adjacency is one side of a link, as seen from the other endpoint.
type Adjacency struct {
	Id     NodeId
	Metric uint32
}

// Topology holds every node id ever seen and the symmetric link set between them.
// Node ids are never removed, even once all of their links are gone.
type Topology struct {
	adj map[NodeId]map[NodeId]uint32
}

func NewTopology() *Topology {
	return &Topology{
		adj: make(map[NodeId]map[NodeId]uint32),
	}
}

// NewTopologyFromLinks builds a topology, a repeated pair keeps the last cost.
func NewTopologyFromLinks(links []Link) (*Topology, error) {
	t := NewTopology()
	for _, l := range links {
		if err := t.SetLink(l.V1, l.V2, l.Metric); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Topology) AddNode(id NodeId) {
	if _, ok := t.adj[id]; !ok {
		t.adj[id] = make(map[NodeId]uint32)
	}
}

func (t *Topology) HasNode(id NodeId) bool {
	_, ok := t.adj[id]
	return ok
}

// SetLink inserts the link or updates its cost, adding unknown endpoints.
func (t *Topology) SetLink(a, b NodeId, metric uint32) error {
	if a == b {
		return fmt.Errorf("%w: %s", ErrSelfLink, a)
	}
	if metric == INF {
		return fmt.Errorf("link %s-%s: metric must be finite", a, b)
	}
	t.AddNode(a)
	t.AddNode(b)
	t.adj[a][b] = metric
	t.adj[b][a] = metric
	return nil
}

// RemoveLink deletes the link in either direction. It reports whether a link existed.
func (t *Topology) RemoveLink(a, b NodeId) bool {
	if _, ok := t.LinkCost(a, b); !ok {
		return false
	}
	delete(t.adj[a], b)
	delete(t.adj[b], a)
	return true
}

func (t *Topology) LinkCost(a, b NodeId) (uint32, bool) {
	m, ok := t.adj[a][b]
	return m, ok
}

// Nodes returns all known ids in ascending order.
func (t *Topology) Nodes() []NodeId {
	ids := slices.Collect(maps.Keys(t.adj))
	SortNodeIds(ids)
	return ids
}

// Neighbours returns the adjacencies of id ordered by neighbour id.
func (t *Topology) Neighbours(id NodeId) []Adjacency {
	out := make([]Adjacency, 0, len(t.adj[id]))
	for n, m := range t.adj[id] {
		out = append(out, Adjacency{Id: n, Metric: m})
	}
	slices.SortFunc(out, func(a, b Adjacency) int {
		return a.Id.Compare(b.Id)
	})
	return out
}

// Links returns every link once, ordered by (V1, V2).
func (t *Topology) Links() []Link {
	out := make([]Link, 0)
	for _, a := range t.Nodes() {
		for _, n := range t.Neighbours(a) {
			if a.Compare(n.Id) < 0 {
				out = append(out, NewLink(a, n.Id, n.Metric))
			}
		}
	}
	return out
}
