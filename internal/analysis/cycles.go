package analysis

import "github.com/LaBackDoor/fsm-extractor/internal/fsm"

// FindCycles returns every strongly connected component of size greater
// than one, plus any single state with a self-loop, in discovery order.
// No example repo in reach of this module carries a graph library with an
// SCC algorithm, so this is a hand-rolled iterative Tarjan over
// fsm.FunctionBlock — recursive in the original, rewritten here with an
// explicit stack so a pathological function block can't blow the Go
// goroutine stack on a long chain of states.
func FindCycles(fb *fsm.FunctionBlock) [][]string {
	ids := fb.StateIDs()
	if len(ids) == 0 {
		return nil
	}

	adjacency := make(map[string][]string, len(ids))
	for _, id := range ids {
		for _, t := range fb.TransitionsFrom(id) {
			adjacency[id] = append(adjacency[id], t.To)
		}
	}

	t := &tarjan{
		adjacency: adjacency,
		index:     make(map[string]int),
		lowlink:   make(map[string]int),
		onStack:   make(map[string]bool),
	}

	for _, id := range ids {
		if _, visited := t.index[id]; !visited {
			t.strongConnect(id)
		}
	}

	var cycles [][]string
	for _, scc := range t.sccs {
		if len(scc) > 1 {
			cycles = append(cycles, scc)
			continue
		}
		node := scc[0]
		for _, to := range adjacency[node] {
			if to == node {
				cycles = append(cycles, scc)
				break
			}
		}
	}
	return cycles
}

// IsAcyclic reports whether fb has no cycles at all.
func IsAcyclic(fb *fsm.FunctionBlock) bool {
	return len(FindCycles(fb)) == 0
}

type tarjan struct {
	adjacency map[string][]string
	index     map[string]int
	lowlink   map[string]int
	onStack   map[string]bool
	stack     []string
	counter   int
	sccs      [][]string
}

// frame is one level of the explicit call stack standing in for
// strongConnect's recursion: the node being visited and how far through
// its neighbor list the simulated call has progressed.
type frame struct {
	node    string
	neigh   []string
	pos     int
}

func (t *tarjan) strongConnect(start string) {
	var work []*frame
	t.visit(start)
	work = append(work, &frame{node: start, neigh: t.adjacency[start]})

	for len(work) > 0 {
		top := work[len(work)-1]

		if top.pos < len(top.neigh) {
			w := top.neigh[top.pos]
			top.pos++

			if _, visited := t.index[w]; !visited {
				t.visit(w)
				work = append(work, &frame{node: w, neigh: t.adjacency[w]})
				continue
			}
			if t.onStack[w] {
				if t.index[w] < t.lowlink[top.node] {
					t.lowlink[top.node] = t.index[w]
				}
			}
			continue
		}

		work = work[:len(work)-1]
		if len(work) > 0 {
			parent := work[len(work)-1]
			if t.lowlink[top.node] < t.lowlink[parent.node] {
				t.lowlink[parent.node] = t.lowlink[top.node]
			}
		}

		if t.lowlink[top.node] == t.index[top.node] {
			var scc []string
			for {
				n := t.pop()
				scc = append(scc, n)
				if n == top.node {
					break
				}
			}
			t.sccs = append(t.sccs, scc)
		}
	}
}

func (t *tarjan) visit(id string) {
	t.index[id] = t.counter
	t.lowlink[id] = t.counter
	t.counter++
	t.stack = append(t.stack, id)
	t.onStack[id] = true
}

func (t *tarjan) pop() string {
	n := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	t.onStack[n] = false
	return n
}
