// Package extract ingests a PLCopen-style XML source file and builds
// the internal/fsm data model from it: a case-statement dispatch on one
// variable becomes a FunctionBlock, each case arm becomes a State, and
// each assignment to the case variable inside an if-statement becomes a
// Transition guarded by that if's condition. Grounded on the xml_parser
// module this engine was derived from, rewritten over the standard
// library's encoding/xml instead of a third-party XML tree library —
// no example repo in reach of this module carries one.
package extract

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/LaBackDoor/fsm-extractor/internal/fsm"
	fsmerrors "github.com/LaBackDoor/fsm-extractor/internal/pkg/errors"
)

// Document wraps a parsed XML source, ready to have function blocks
// listed or extracted from it.
type Document struct {
	path string
	root node
}

// ParseFile reads and parses the XML file at path. The raw content is
// preprocessed the same way the original parser did: a handful of
// PLCopen XML quirks around bare literals nested directly under
// <expression> are normalized to a <value> wrapper before parsing, since
// neither form changes the guard text this package reconstructs.
func ParseFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fsmerrors.WrapExtractError(path, "read", err)
	}

	content := string(raw)
	content = strings.ReplaceAll(content, "<expression><integer-literal>", "<value><integer-literal>")
	content = strings.ReplaceAll(content, "<expression><boolean-literal>", "<value><boolean-literal>")

	var root node
	if err := xml.Unmarshal([]byte(content), &root); err != nil {
		return nil, fsmerrors.WrapExtractError(path, "parse", fmt.Errorf("%w: %v", fsmerrors.ErrXMLParse, err))
	}

	return &Document{path: path, root: root}, nil
}

// FindFunctionBlocks returns the name of every function-block-declaration
// or program-declaration found in the document, in document order.
func (d *Document) FindFunctionBlocks() []string {
	var names []string
	for _, n := range d.root.descendants() {
		switch n.XMLName.Local {
		case "function-block-declaration":
			if name, ok := functionBlockName(n); ok {
				names = append(names, name)
			}
		case "program-declaration":
			if name, ok := programName(n); ok {
				names = append(names, name)
			}
		}
	}
	return names
}

func functionBlockName(n *node) (string, bool) {
	if nameNode, ok := n.find("derived-function-block-name"); ok {
		return nameNode.text(), true
	}
	return "", false
}

func programName(n *node) (string, bool) {
	if nameNode, ok := n.find("program-type-name"); ok {
		return nameNode.text(), true
	}
	return "", false
}

// ExtractFunctionBlock finds the named function block or program, walks
// its single case-statement, and builds the corresponding fsm.FunctionBlock.
func (d *Document) ExtractFunctionBlock(name string) (*fsm.FunctionBlock, error) {
	fbNode, ok := d.findDeclaration(name)
	if !ok {
		return nil, fsmerrors.NewFunctionBlockNotFoundError(name)
	}

	caseStmt, ok := fbNode.find("case-statement")
	if !ok {
		return nil, fsmerrors.WrapExtractError(name, "find-case-statement", fsmerrors.ErrNoCaseStatement)
	}

	caseVarNode, ok := caseStmt.find("variable-name")
	if !ok {
		return nil, fsmerrors.WrapExtractError(name, "case-variable", fsmerrors.ErrXMLParse)
	}
	caseVariable := caseVarNode.text()

	fb := fsm.NewFunctionBlock(name, caseVariable)

	for _, elemNode := range caseStmt.findAll("case-element") {
		stateID, ok := stateID(elemNode)
		if !ok {
			continue
		}
		fb.AddState(fsm.NewState(stateID))

		for _, ifNode := range elemNode.findAll("if-statement") {
			condition := ifCondition(ifNode)
			for _, a := range assignments(ifNode) {
				if a.variable != caseVariable {
					continue
				}
				guard := condition
				if guard == "" {
					guard = fsm.NoCheckGuard
				}
				fb.AddTransition(fsm.NewTransition(stateID, a.value, guard))
			}
		}
	}

	return fb, nil
}

func (d *Document) findDeclaration(name string) (*node, bool) {
	for _, n := range d.root.descendants() {
		switch n.XMLName.Local {
		case "function-block-declaration":
			if got, ok := functionBlockName(n); ok && got == name {
				return n, true
			}
		case "program-declaration":
			if got, ok := programName(n); ok && got == name {
				return n, true
			}
		}
	}
	return nil, false
}

func stateID(elemNode *node) (string, bool) {
	for _, listElem := range elemNode.findAll("case-list-element") {
		if lit, ok := listElem.find("integer-literal"); ok {
			return lit.text(), true
		}
	}
	return "", false
}

type assignment struct {
	variable string
	value    string
}

func assignments(ifNode *node) []assignment {
	var out []assignment
	for _, assignNode := range ifNode.findAll("assignment-statement") {
		varNode, ok := assignNode.find("variable-name")
		if !ok {
			continue
		}
		var value string
		if lit, ok := assignNode.find("integer-literal"); ok {
			value = lit.text()
		} else if lit, ok := assignNode.find("boolean-literal"); ok {
			value = lit.text()
		}
		out = append(out, assignment{variable: varNode.text(), value: value})
	}
	return out
}

// ifCondition reconstructs the guard text from an if-statement's
// <expression> subtree, walking its descendants in document order the
// same way the original expression-to-text pass did: logical and
// comparison operator nodes become the corresponding infix text, a
// leading logical-not flips the next variable-name into a "NOT <var>"
// atom.
func ifCondition(ifNode *node) string {
	exprNode, ok := ifNode.find("expression")
	if !ok {
		return ""
	}

	var b strings.Builder
	inNot := false
	for _, n := range exprNode.descendants() {
		switch n.XMLName.Local {
		case "logical-not":
			inNot = true
		case "logical-and":
			b.WriteString(" AND ")
		case "logical-or":
			b.WriteString(" OR ")
		case "equal":
			b.WriteString(" = ")
		case "not-equal":
			b.WriteString(" <> ")
		case "less-than":
			b.WriteString(" < ")
		case "less-or-equal":
			b.WriteString(" <= ")
		case "greater-than":
			b.WriteString(" > ")
		case "greater-or-equal":
			b.WriteString(" >= ")
		case "adding":
			b.WriteString(" + ")
		case "subtracting":
			b.WriteString(" - ")
		case "variable-name":
			if inNot {
				b.WriteString("NOT ")
				inNot = false
			}
			b.WriteString(n.text())
		case "integer-literal", "boolean-literal":
			b.WriteString(n.text())
		}
	}

	return strings.TrimSpace(b.String())
}

// BuildMachine extracts every function block or program declaration
// found in the document into a single fsm.Machine. Declarations whose
// case-statement cannot be located are skipped rather than aborting the
// whole extraction — one malformed unit never forfeits the rest of the
// file.
func (d *Document) BuildMachine() *fsm.Machine {
	m := &fsm.Machine{Metadata: fsm.Metadata{SourceFile: d.path}}

	for _, name := range d.FindFunctionBlocks() {
		fb, err := d.ExtractFunctionBlock(name)
		if err != nil {
			continue
		}
		m.FunctionBlocks = append(m.FunctionBlocks, fb)
		m.Metadata.TotalStates += fb.StateCount()
		m.Metadata.TotalTransitions += fb.TransitionCount()
	}
	m.Metadata.ExtractedAt = extractionTime()

	return m
}

// extractionTime is isolated in its own function so a future caller
// that needs reproducible output (tests, golden files) can override it;
// production callers get the real wall clock.
var extractionTime = time.Now
