package analysis

import "github.com/LaBackDoor/fsm-extractor/internal/fsm"

// Statistics is the aggregate report for one function block: counts,
// averages, and the results of the reachability, dead-state, and cycle
// passes.
type Statistics struct {
	TotalStates              int      `json:"total_states" yaml:"total_states"`
	TotalTransitions          int      `json:"total_transitions" yaml:"total_transitions"`
	AvgTransitionsPerState    float64  `json:"avg_transitions_per_state" yaml:"avg_transitions_per_state"`
	MaxTransitionsFromState   int      `json:"max_transitions_from_state" yaml:"max_transitions_from_state"`
	UnreachableStates         []string `json:"unreachable_states" yaml:"unreachable_states"`
	DeadStates                []string `json:"dead_states" yaml:"dead_states"`
	Cycles                    [][]string `json:"cycles" yaml:"cycles"`
}

// Options selects which of the reachability, dead-state, and cycle
// passes Analyze runs, mirroring the original tool's AnalysisOptions
// (its `--cycles`/`--unreachable`/`--dead-states`/`--all` CLI flags).
type Options struct {
	CheckCycles      bool
	CheckUnreachable bool
	CheckDeadStates  bool
}

// AllOptions enables every check; it is what Analyze/AnalyzeMachine use
// when called without an explicit Options value.
func AllOptions() Options {
	return Options{CheckCycles: true, CheckUnreachable: true, CheckDeadStates: true}
}

// Analyze runs every analysis pass over fb and folds the results into one
// Statistics value.
func Analyze(fb *fsm.FunctionBlock) Statistics {
	return AnalyzeWithOptions(fb, AllOptions())
}

// AnalyzeWithOptions is Analyze, but skips whichever of the reachability,
// dead-state, or cycle passes opts disables, leaving the corresponding
// Statistics field nil rather than computing and then discarding it.
func AnalyzeWithOptions(fb *fsm.FunctionBlock, opts Options) Statistics {
	totalStates := fb.StateCount()
	totalTransitions := fb.TransitionCount()

	avg := 0.0
	if totalStates > 0 {
		avg = float64(totalTransitions) / float64(totalStates)
	}

	maxOut := 0
	for _, id := range fb.StateIDs() {
		if n := len(fb.TransitionsFrom(id)); n > maxOut {
			maxOut = n
		}
	}

	stats := Statistics{
		TotalStates:             totalStates,
		TotalTransitions:        totalTransitions,
		AvgTransitionsPerState:  avg,
		MaxTransitionsFromState: maxOut,
	}
	if opts.CheckUnreachable {
		stats.UnreachableStates = FindUnreachableStates(fb)
	}
	if opts.CheckDeadStates {
		stats.DeadStates = FindDeadStates(fb)
	}
	if opts.CheckCycles {
		stats.Cycles = FindCycles(fb)
	}
	return stats
}

// AnalyzeMachine runs Analyze over every function block in m, keyed by
// function block name.
func AnalyzeMachine(m *fsm.Machine) map[string]Statistics {
	return AnalyzeMachineWithOptions(m, AllOptions())
}

// AnalyzeMachineWithOptions is AnalyzeMachine using opts to select which
// checks run.
func AnalyzeMachineWithOptions(m *fsm.Machine, opts Options) map[string]Statistics {
	results := make(map[string]Statistics, len(m.FunctionBlocks))
	for _, fb := range m.FunctionBlocks {
		results[fb.Name] = AnalyzeWithOptions(fb, opts)
	}
	return results
}
