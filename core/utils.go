package core

import (
	"github.com/encodeous/dvsim/state"
)

func AddMetric(a, b uint32) uint32 {
	if a == state.INF || b == state.INF {
		return state.INF
	} else {
		return uint32(min(uint64(state.INFM), uint64(a)+uint64(b)))
	}
}

// SweepBound is the default number of sweeps allowed before convergence is declared failed.
func SweepBound(nodes int) int {
	return max(nodes*nodes*nodes+1, state.MinSweeps)
}
