package state

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

type NodeId string

// NoHop is the next hop of a destination that cannot be reached.
const NoHop NodeId = ""

// Compare orders integer ids numerically and before any non-integer id, then falls back to byte order.
func (n NodeId) Compare(o NodeId) int {
	a, aErr := strconv.ParseInt(string(n), 10, 64)
	b, bErr := strconv.ParseInt(string(o), 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		if c := cmp.Compare(a, b); c != 0 {
			return c
		}
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return strings.Compare(string(n), string(o))
}

func SortNodeIds(ids []NodeId) {
	slices.SortFunc(ids, NodeId.Compare)
}

type Route struct {
	Nh     NodeId `yaml:"nh"` // next hop node
	Metric uint32 `yaml:"metric"`
}

func (r Route) Reachable() bool {
	return r.Metric != INF && r.Nh != NoHop
}

type TableEntry struct {
	Dst   NodeId `yaml:"dst"`
	Route `yaml:",inline"`
}

// NodeTable is the reported routing table of a single node.
type NodeTable struct {
	Id      NodeId       `yaml:"id"`
	Entries []TableEntry `yaml:"routes"`
}
