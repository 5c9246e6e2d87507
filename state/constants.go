package state

const (
	INF = ^(uint32)(0)
	// INFM is the maximum value for a metric that is not unreachable.
	INFM = INF - 1
)

var (
	DefaultOutputPath = "output.txt"
	DefaultTieBreak   = TieBreakFirst

	// MinSweeps is the floor of the default sweep bound; convergence needs at least one quiet sweep.
	MinSweeps = 2
)

// debug output toggles, set from the command line

var (
	DBG_log_router        = false
	DBG_log_route_table   = false
	DBG_log_route_changes = false
)
