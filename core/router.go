package core

import (
	"fmt"

	"github.com/encodeous/dvsim/perf"
	"github.com/encodeous/dvsim/state"
)

// SimRouter is the Router used by real runs. It counts updates and logs events.
type SimRouter struct {
	*state.State
}

func (r *SimRouter) TableUpdateRoute(node state.NodeId, dst state.NodeId, route state.Route) {
	perf.RouteUpdates.Add(1)
	if state.DBG_log_route_changes {
		r.Env.Log.Debug("route change", "node", node, "dst", dst, "nh", route.Nh, "metric", route.Metric)
	}
}

func (r *SimRouter) Log(event RouterEvent, desc string, args ...any) {
	if event >= InconsistentState {
		r.Env.Log.Warn(fmt.Sprintf("%s %s", event.String(), desc), args...)
		return
	}
	if state.DBG_log_router {
		r.Env.Log.Debug(fmt.Sprintf("%s %s", event.String(), desc), args...)
	}
}

func (r *SimRouter) LogTables() {
	if !state.DBG_log_route_table {
		return
	}
	tables, err := r.Snapshot()
	if err != nil {
		r.Env.Log.Warn("cannot snapshot tables", "error", err)
		return
	}
	for _, t := range tables {
		for _, e := range t.Entries {
			r.Env.Log.Debug("table", "node", t.Id, "dst", e.Dst, "nh", e.Nh, "metric", e.Metric)
		}
	}
}
