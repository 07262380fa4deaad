// Package analysis inspects a function block's state graph: reachability,
// dead ends, cycles, and aggregate statistics. It mirrors the validator,
// cycle-detector, and statistics passes of the engine this one was derived
// from, expressed over internal/fsm.FunctionBlock.
package analysis

import (
	"fmt"

	"github.com/LaBackDoor/fsm-extractor/internal/fsm"
)

// FindUnreachableStates returns, in state-insertion order, every state that
// a breadth-first walk from the inferred initial states never reaches. An
// empty function block has no unreachable states.
func FindUnreachableStates(fb *fsm.FunctionBlock) []string {
	ids := fb.StateIDs()
	if len(ids) == 0 {
		return nil
	}

	reachable := make(map[string]bool, len(ids))
	queue := initialQueue(fb, ids)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if reachable[id] {
			continue
		}
		reachable[id] = true
		for _, t := range fb.TransitionsFrom(id) {
			if !reachable[t.To] {
				queue = append(queue, t.To)
			}
		}
	}

	var unreachable []string
	for _, id := range ids {
		if !reachable[id] {
			unreachable = append(unreachable, id)
		}
	}
	return unreachable
}

func initialQueue(fb *fsm.FunctionBlock, ids []string) []string {
	var initials []string
	for _, id := range ids {
		if !fb.HasIncoming(id) {
			initials = append(initials, id)
		}
	}
	if len(initials) > 0 {
		return initials
	}
	if _, ok := fb.State("100"); ok {
		return []string{"100"}
	}
	if _, ok := fb.State("10"); ok {
		return []string{"10"}
	}
	return []string{ids[0]}
}

// FindDeadStates returns, in state-insertion order, every state with no
// outgoing transitions — a case arm that never reassigns the case
// variable.
func FindDeadStates(fb *fsm.FunctionBlock) []string {
	var dead []string
	for _, id := range fb.StateIDs() {
		if len(fb.TransitionsFrom(id)) == 0 {
			dead = append(dead, id)
		}
	}
	return dead
}

// ValidateReferences reports the first transition, if any, whose From or To
// names a state the function block never registered. AddTransition always
// registers both endpoints, so this only ever fires against a
// FunctionBlock assembled by hand (tests, or a future ingestion path that
// bypasses AddTransition).
func ValidateReferences(fb *fsm.FunctionBlock) error {
	for _, t := range fb.Transitions {
		if _, ok := fb.State(t.From); !ok {
			return fmt.Errorf("invalid state reference in transition %s: from_state %q", t.ID, t.From)
		}
		if _, ok := fb.State(t.To); !ok {
			return fmt.Errorf("invalid state reference in transition %s: to_state %q", t.ID, t.To)
		}
	}
	return nil
}
