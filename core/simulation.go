package core

import (
	"github.com/encodeous/dvsim/perf"
	"github.com/encodeous/dvsim/state"
)

// Round is the outcome of one convergence: the initial topology, or the topology after Change.
type Round struct {
	Index      int
	Change     *state.Change
	Result     ConvergeResult
	Tables     []state.NodeTable
	Deliveries []state.Delivery
}

// Prepare seeds and converges the initial topology.
func Prepare(s *state.State, r Router) (ConvergeResult, error) {
	Rebuild(s, r)
	return Converge(s, r)
}

func collectRound(s *state.State, idx int, change *state.Change, res ConvergeResult, msgs []state.Message) (Round, error) {
	tables, err := s.Snapshot()
	if err != nil {
		return Round{}, err
	}
	ds, err := ResolveAll(s, msgs)
	if err != nil {
		return Round{}, err
	}
	perf.Rounds.Add(1)
	perf.ConvergenceSweeps.Add(float64(res.Sweeps))
	for _, d := range ds {
		perf.MessagesResolved.Add(1)
		if !d.Reachable {
			perf.Unreachable.Add(1)
		}
	}
	return Round{
		Index:      idx,
		Change:     change,
		Result:     res,
		Tables:     tables,
		Deliveries: ds,
	}, nil
}

// Simulate converges the initial topology, then applies each change in order.
// emit receives every round as soon as it is complete; an error from emit stops the run.
func Simulate(s *state.State, r Router, msgs []state.Message, changes []state.Change, emit func(Round) error) error {
	res, err := Prepare(s, r)
	if err != nil {
		return err
	}
	round, err := collectRound(s, 0, nil, res, msgs)
	if err != nil {
		return err
	}
	if err := emit(round); err != nil {
		return err
	}

	for i := range changes {
		change := changes[i]
		res, err := ApplyChange(s, r, change)
		if err != nil {
			return err
		}
		round, err := collectRound(s, i+1, &change, res, msgs)
		if err != nil {
			return err
		}
		if err := emit(round); err != nil {
			return err
		}
	}
	return nil
}
