package signature

import (
	"github.com/LaBackDoor/fsm-extractor/internal/fsm"
	"github.com/LaBackDoor/fsm-extractor/internal/guard"
)

// Build enumerates paths over fb and composes them into a Table: one
// StateSignature per state, in the function block's state-insertion
// order.
func Build(fb *fsm.FunctionBlock) *Table {
	paths := EnumeratePaths(fb)
	table := newTable(fb.Name, fb.CaseVariable)

	for _, stateID := range fb.StateIDs() {
		table.set(composeState(fb, stateID, paths[stateID]))
	}

	return table
}

func composeState(fb *fsm.FunctionBlock, stateID string, statePaths []Path) *StateSignature {
	sourceCount := len(statePaths)

	// Cross-product every path's per-transition DNFs, then canonicalise
	// each resulting conjunction. DNF size has no artificial cap here:
	// a pathological guard can make this grow large, and that is
	// accepted rather than silently truncated, per the engine's design.
	var conjunctions [][]guard.AtomicCondition
	for _, p := range statePaths {
		// A path that crosses no transition only reaches its own
		// initial state and contributes no path signature.
		if len(p) < 2 {
			continue
		}
		running := guard.DNF{{}}
		for _, step := range p {
			if step.TransitionIndex < 0 {
				continue
			}
			t := fb.Transitions[step.TransitionIndex]
			running = guard.CrossProduct(running, guard.ParseGuard(t.Guard))
		}
		conjunctions = append(conjunctions, running...)
	}

	var pathSignatures []PathSignature
	seen := make(map[string]bool, len(conjunctions))
	nextID := 1
	for _, raw := range conjunctions {
		conj := guard.Canonicalize(raw)
		key := FormatConjunction(conj)
		id := nextID
		nextID++
		if seen[key] {
			continue
		}
		seen[key] = true
		pathSignatures = append(pathSignatures, PathSignature{ID: id, Conjunction: conj})
	}

	return &StateSignature{
		StateID:         stateID,
		Paths:           pathSignatures,
		SourcePathCount: sourceCount,
	}
}
