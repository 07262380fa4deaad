package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/LaBackDoor/fsm-extractor/internal/analysis"
	"github.com/LaBackDoor/fsm-extractor/internal/fsm"
	"github.com/LaBackDoor/fsm-extractor/internal/signature"
)

func sampleFB() *fsm.FunctionBlock {
	fb := fsm.NewFunctionBlock("Valve", "STATE")
	fb.AddTransition(fsm.NewTransition("10", "20", "sensor = low"))
	return fb
}

func TestTextFunctionBlock(t *testing.T) {
	var buf bytes.Buffer
	tx := &Text{Out: &buf, Color: false}
	tx.FunctionBlock(sampleFB())

	out := buf.String()
	if !strings.Contains(out, "Valve") {
		t.Error("expected function block name in output")
	}
	if !strings.Contains(out, "sensor = low") {
		t.Error("expected transition guard in output")
	}
}

func TestTextNoTransitions(t *testing.T) {
	var buf bytes.Buffer
	tx := &Text{Out: &buf, Color: false}
	tx.FunctionBlock(fsm.NewFunctionBlock("Empty", "STATE"))

	if !strings.Contains(buf.String(), "No transitions found.") {
		t.Error("expected the no-transitions message")
	}
}

func TestJSONReport(t *testing.T) {
	m := &fsm.Machine{FunctionBlocks: []*fsm.FunctionBlock{sampleFB()}}
	var buf bytes.Buffer
	if err := JSON(&buf, m); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\"from_state\": \"10\"") {
		t.Errorf("unexpected JSON output: %s", buf.String())
	}
}

func TestMarkdownReport(t *testing.T) {
	m := &fsm.Machine{FunctionBlocks: []*fsm.FunctionBlock{sampleFB()}}
	md := NewMarkdown("FSM Extraction Report", m)
	md.FunctionBlock(m.FunctionBlocks[0])

	out := md.String()
	if !strings.Contains(out, "## Function Block: Valve") {
		t.Error("expected a function block heading")
	}
	if !strings.Contains(out, "| 10 | 20 | sensor = low |") {
		t.Error("expected a transition row")
	}
}

func TestDOTReport(t *testing.T) {
	m := &fsm.Machine{FunctionBlocks: []*fsm.FunctionBlock{sampleFB()}}
	var buf bytes.Buffer
	if err := DOT(&buf, m); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `digraph "Valve"`) {
		t.Error("expected a digraph declaration")
	}
	if !strings.Contains(out, `"10" -> "20"`) {
		t.Error("expected an edge from 10 to 20")
	}
}

func TestTextAnalysisSection(t *testing.T) {
	var buf bytes.Buffer
	tx := &Text{Out: &buf, Color: false}
	tx.Analysis(analysis.Statistics{UnreachableStates: []string{"99"}})

	if !strings.Contains(buf.String(), "99") {
		t.Error("expected the unreachable state to be listed")
	}
}

func TestTextAnalysisWithOptionsOmitsDisabledSections(t *testing.T) {
	var buf bytes.Buffer
	tx := &Text{Out: &buf, Color: false}
	tx.AnalysisWithOptions(analysis.Statistics{UnreachableStates: []string{"99"}, DeadStates: []string{"50"}},
		analysis.Options{CheckUnreachable: true})

	out := buf.String()
	if !strings.Contains(out, "99") {
		t.Error("expected the unreachable state to be listed")
	}
	if strings.Contains(out, "Dead-end states") {
		t.Error("expected the dead-state section to be omitted when CheckDeadStates is false")
	}
	if strings.Contains(out, "Cycles") {
		t.Error("expected the cycles section to be omitted when CheckCycles is false")
	}
}

func TestTextSignaturesSection(t *testing.T) {
	table := signature.Build(sampleFB())
	var buf bytes.Buffer
	tx := &Text{Out: &buf, Color: false}
	tx.Signatures(table)

	if !strings.Contains(buf.String(), "STATE") {
		t.Error("expected the case variable header in the output")
	}
}
