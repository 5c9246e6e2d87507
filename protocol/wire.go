package protocol

import (
	"strconv"

	"github.com/encodeous/dvsim/state"
)

// sentinels of the line format, they never leave this package

const (
	WireInfinite = "9999"
	WireNoHop    = "-1"
	WireRemove   = -999
)

func FormatMetric(m uint32) string {
	if m == state.INF {
		return WireInfinite
	}
	return strconv.FormatUint(uint64(m), 10)
}

func FormatNodeId(id state.NodeId) string {
	if id == state.NoHop {
		return WireNoHop
	}
	return string(id)
}
