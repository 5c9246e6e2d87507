package protocol

import (
	"bufio"
	"io"
	"strings"

	"github.com/encodeous/dvsim/state"
)

// TraceWriter writes the table and message blocks of each simulation round.
type TraceWriter struct {
	w *bufio.Writer
}

func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{w: bufio.NewWriter(w)}
}

func FormatEntry(e state.TableEntry) string {
	return string(e.Dst) + " " + FormatNodeId(e.Nh) + " " + FormatMetric(e.Metric)
}

func FormatDelivery(d state.Delivery) string {
	sb := strings.Builder{}
	sb.WriteString("from " + string(d.Src) + " to " + string(d.Dst))
	if !d.Reachable {
		sb.WriteString(" cost infinite hops unreachable message " + d.Content)
		return sb.String()
	}
	sb.WriteString(" cost " + FormatMetric(d.Metric) + " hops ")
	for _, hop := range d.Hops {
		sb.WriteString(string(hop) + " ")
	}
	sb.WriteString("message " + d.Content)
	return sb.String()
}

// WriteTables writes one line per destination and a blank line after each node.
func (t *TraceWriter) WriteTables(tables []state.NodeTable) error {
	for _, table := range tables {
		for _, e := range table.Entries {
			if _, err := t.w.WriteString(FormatEntry(e) + "\n"); err != nil {
				return err
			}
		}
		if err := t.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// WriteDeliveries writes each report followed by a blank line.
func (t *TraceWriter) WriteDeliveries(ds []state.Delivery) error {
	for _, d := range ds {
		if _, err := t.w.WriteString(FormatDelivery(d) + "\n\n"); err != nil {
			return err
		}
	}
	return nil
}

func (t *TraceWriter) Flush() error {
	return t.w.Flush()
}
