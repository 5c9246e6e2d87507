package state

import "fmt"

type Message struct {
	Src     NodeId
	Dst     NodeId
	Content string
}

// Change is one topology edit. Remove deletes the link between V1 and V2, otherwise the link is set to Metric.
type Change struct {
	Pair[NodeId, NodeId]
	Metric uint32
	Remove bool
}

func (c Change) String() string {
	if c.Remove {
		return fmt.Sprintf("remove %s-%s", c.V1, c.V2)
	}
	return fmt.Sprintf("set %s-%s %d", c.V1, c.V2, c.Metric)
}

// Delivery is the resolved path of a Message over converged tables.
// Hops lists the source and every intermediate node, but not the destination.
type Delivery struct {
	Message
	Reachable bool
	Metric    uint32
	Hops      []NodeId
}
