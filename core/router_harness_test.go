package core

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/encodeous/dvsim/state"
	"github.com/google/go-cmp/cmp"
)

type HarnessEvent struct {
	Message string
	Args    []any
}

func MakeEvent(msg string, args ...any) HarnessEvent {
	return HarnessEvent{
		Message: msg,
		Args:    args,
	}
}

type RouterHarness struct {
	actions []HarnessEvent
}

func (h *RouterHarness) TableUpdateRoute(node state.NodeId, dst state.NodeId, route state.Route) {
	h.actions = append(h.actions, MakeEvent("UPDATE_ROUTE", node, dst, route))
}

func (h *RouterHarness) Log(event RouterEvent, desc string, args ...any) {
	x := make([]any, 0)
	x = append(x, event)
	x = append(x, desc)
	x = append(x, args...)
	h.actions = append(h.actions, MakeEvent("LOG", x...))
}

type HarnessEvents []HarnessEvent

func (h HarnessEvents) String() string {
	out := make([]string, 0)
	for _, action := range h {
		cur := action.Message
		for _, arg := range action.Args {
			cur += " " + fmt.Sprint(arg)
		}
		out = append(out, cur)
	}
	slices.Sort(out)
	return strings.Join(out, "\n")
}

// GetActions returns and clears the recorded route updates
func (h *RouterHarness) GetActions() HarnessEvents {
	x := make([]HarnessEvent, 0)
	for _, action := range h.actions {
		if action.Message != "LOG" {
			x = append(x, action)
		}
	}

	h.actions = make([]HarnessEvent, 0)
	return x
}

// GetLogs returns the recorded router events without clearing them
func (h *RouterHarness) GetLogs() HarnessEvents {
	x := make([]HarnessEvent, 0)
	for _, action := range h.actions {
		if action.Message == "LOG" {
			x = append(x, action)
		}
	}
	return x
}

func (e HarnessEvents) contains(msg string, args ...any) bool {
	for _, event := range e {
		if event.Message == msg {
			if len(event.Args) >= len(args) {
				match := true
				for i, arg := range args {
					if !cmp.Equal(event.Args[i], arg) {
						match = false
						break
					}
				}
				if match {
					return true
				}
			}
		}
	}
	return false
}

func (e HarnessEvents) AssertContains(t *testing.T, msg string, args ...any) {
	t.Helper()
	if e.contains(msg, args...) {
		return
	}
	t.Fatal("Expected event not found: ", msg, " with args: ", args, " in ", e)
}

func (e HarnessEvents) AssertNotContains(t *testing.T, msg string, args ...any) {
	t.Helper()
	if e.contains(msg, args...) {
		t.Fatal("Unexpected event found: ", msg, " with args: ", args, " in ", e)
	}
}

func L(a, b state.NodeId, metric uint32) state.Link {
	return state.NewLink(a, b, metric)
}

func NewTestState(t *testing.T, tb state.TieBreak, links ...state.Link) *state.State {
	t.Helper()
	topo, err := state.NewTopologyFromLinks(links)
	if err != nil {
		t.Fatal(err)
	}
	return &state.State{
		Env: &state.Env{
			SimCfg: state.SimCfg{TieBreak: tb},
			Log:    slog.New(slog.DiscardHandler),
		},
		Topology: topo,
	}
}

// MustConverge seeds and converges s, failing the test on error.
func MustConverge(t *testing.T, s *state.State, h *RouterHarness) ConvergeResult {
	t.Helper()
	res, err := Prepare(s, h)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func route(t *testing.T, s *state.State, node, dst state.NodeId) state.Route {
	t.Helper()
	n, err := s.GetNode(node)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := n.Route(dst)
	if !ok {
		t.Fatalf("%s has no entry for %s", node, dst)
	}
	return r
}
