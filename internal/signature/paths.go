// Package signature enumerates acyclic paths through a function
// block's state graph and composes them into per-state symbolic path
// signatures: the combinations of guard conditions that must have
// held for control to reach that state. It also implements the
// runtime matcher that evaluates a signature against a variable
// assignment.
package signature

import "github.com/LaBackDoor/fsm-extractor/internal/fsm"

// Step is one hop of a path: the state reached and the index into the
// function block's transition list of the transition taken to arrive
// there. TransitionIndex is -1 for a path's first step, which arrives
// by fiat at an initial state rather than via any transition.
type Step struct {
	StateID         string
	TransitionIndex int
}

// Path is an ordered, acyclic sequence of steps from an initial state
// to the state the path is recorded against.
type Path []Step

// EnumeratePaths runs a depth-first walk from every inferred initial
// state and records, for every state the walk touches, every simple
// (non-revisiting) path that reaches it. A state with no incoming
// transitions is initial; if none exist, state "100" is used if
// present, else "10", else the first state in insertion order. An
// empty function block yields no paths.
func EnumeratePaths(fb *fsm.FunctionBlock) map[string][]Path {
	result := make(map[string][]Path)

	ids := fb.StateIDs()
	if len(ids) == 0 {
		return result
	}

	initials := inferInitialStates(fb, ids)

	for _, start := range initials {
		visited := make(map[string]bool, len(ids))
		walk(fb, start, Path{{StateID: start, TransitionIndex: -1}}, visited, result)
	}

	return result
}

func inferInitialStates(fb *fsm.FunctionBlock, ids []string) []string {
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

func walk(fb *fsm.FunctionBlock, current string, path Path, visited map[string]bool, result map[string][]Path) {
	visited[current] = true
	defer func() { visited[current] = false }()

	recorded := make(Path, len(path))
	copy(recorded, path)
	result[current] = append(result[current], recorded)

	for idx, t := range fb.Transitions {
		if t.From != current || visited[t.To] {
			continue
		}
		next := append(append(Path{}, path...), Step{StateID: t.To, TransitionIndex: idx})
		walk(fb, t.To, next, visited, result)
	}
}
