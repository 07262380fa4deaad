package signature

import "github.com/LaBackDoor/fsm-extractor/internal/guard"

// PathSignature is one conjunction of atomic conditions describing
// the guards traversed along one acyclic path from an initial state
// to the state it is recorded against. ID is a monotonically
// increasing number assigned within the owning state, before
// cross-path merging — two PathSignatures that merge into one
// representative keep the lower (first-seen) id.
type PathSignature struct {
	ID          int
	Conjunction []guard.AtomicCondition
}

// StateSignature is the disjunction of all of a state's (post-merge)
// path signatures: the predicate the state's incoming control flow
// must have satisfied. SourcePathCount is the number of paths that
// fed the composition, recorded before conjunction-level merging.
type StateSignature struct {
	StateID         string
	Paths           []PathSignature
	SourcePathCount int
}

// Table is the signature table for one function block: an ordered
// map (insertion order preserved, the way fsm.FunctionBlock keeps its
// state order) from state id to StateSignature.
type Table struct {
	FunctionBlock string
	CaseVariable  string

	signatures map[string]*StateSignature
	order      []string
}

func newTable(functionBlock, caseVariable string) *Table {
	return &Table{
		FunctionBlock: functionBlock,
		CaseVariable:  caseVariable,
		signatures:    make(map[string]*StateSignature),
	}
}

func (t *Table) set(sig *StateSignature) {
	if _, exists := t.signatures[sig.StateID]; !exists {
		t.order = append(t.order, sig.StateID)
	}
	t.signatures[sig.StateID] = sig
}

// Get looks up a state's signature.
func (t *Table) Get(stateID string) (*StateSignature, bool) {
	sig, ok := t.signatures[stateID]
	return sig, ok
}

// StateIDs returns state ids in insertion order.
func (t *Table) StateIDs() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
