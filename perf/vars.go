package perf

import (
	"expvar"
	"strings"

	"github.com/encodeous/metric"
)

var (
	ConvergenceSweeps = metric.NewHistogram("1m1s")
	RouteUpdates      = metric.NewCounter("1m1s")
	Rounds            = metric.NewCounter("1m1s")
	MessagesResolved  = metric.NewCounter("1m1s")
	Unreachable       = metric.NewCounter("1m1s")
)

func init() {
	expvar.Publish("dvsim:ConvergenceSweeps", ConvergenceSweeps)
	expvar.Publish("dvsim:RouteUpdates", RouteUpdates)
	expvar.Publish("dvsim:Rounds", Rounds)
	expvar.Publish("dvsim:MessagesResolved", MessagesResolved)
	expvar.Publish("dvsim:Unreachable", Unreachable)
}

// Summary returns slog-style key/value pairs of every published metric.
func Summary() []any {
	out := make([]any, 0)
	expvar.Do(func(kv expvar.KeyValue) {
		if name, ok := strings.CutPrefix(kv.Key, "dvsim:"); ok {
			out = append(out, name, kv.Value.String())
		}
	})
	return out
}
