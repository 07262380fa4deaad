// Package render formats a fsm.Machine — plus the optional analysis
// statistics and signature tables built over it — for display, grounded
// on the text/json/markdown/dot output modules of the engine this one
// was derived from.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/LaBackDoor/fsm-extractor/internal/analysis"
	"github.com/LaBackDoor/fsm-extractor/internal/fsm"
	"github.com/LaBackDoor/fsm-extractor/internal/signature"
)

// Text renders a plain, colorized table report. No pack repo carries a
// table-rendering library with column-width negotiation, so this uses
// the standard library's text/tabwriter for layout and fatih/color —
// pulled from signadot-tony-format's go.mod, the one pack repo that
// carries it — for emphasis.
type Text struct {
	Out   io.Writer
	Color bool
}

// NewText returns a Text renderer with Color enabled; callers that
// already know their output destination can override via the Color
// field. No terminal check is made on out itself — fatih/color only
// suppresses escape codes when the process's stdout is not a terminal.
func NewText(out io.Writer) *Text {
	return &Text{Out: out, Color: true}
}

func (t *Text) colorize(c *color.Color, s string) string {
	if !t.Color {
		return s
	}
	return c.Sprint(s)
}

// Machine renders every function block in m.
func (t *Text) Machine(m *fsm.Machine) {
	for _, fb := range m.FunctionBlocks {
		t.FunctionBlock(fb)
	}
}

// FunctionBlock renders one function block's transition table.
func (t *Text) FunctionBlock(fb *fsm.FunctionBlock) {
	fmt.Fprintf(t.Out, "\n%s\n", t.colorize(color.New(color.Bold, color.FgCyan), fmt.Sprintf("Function Block: %s", fb.Name)))
	fmt.Fprintf(t.Out, "Case Variable: %s\n", t.colorize(color.New(color.FgYellow), fb.CaseVariable))
	fmt.Fprintf(t.Out, "\nStates: %s | Transitions: %s\n\n",
		t.colorize(color.New(color.FgGreen), fmt.Sprint(fb.StateCount())),
		t.colorize(color.New(color.FgGreen), fmt.Sprint(fb.TransitionCount())))

	if len(fb.Transitions) == 0 {
		fmt.Fprintln(t.Out, "No transitions found.")
		return
	}

	w := tabwriter.NewWriter(t.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CURRENT STATE\tNEXT STATE\tTRANSITION CONDITION")
	for _, tr := range fb.Transitions {
		fmt.Fprintf(w, "%s\t%s\t%s\n", tr.From, tr.To, tr.Guard)
	}
	w.Flush()
}

// Analysis renders an analysis.Statistics section.
func (t *Text) Analysis(stat analysis.Statistics) {
	t.AnalysisWithOptions(stat, analysis.AllOptions())
}

// AnalysisWithOptions renders only the sections opts enabled, so a
// disabled check is omitted rather than printed as "None" (which would
// misleadingly read as "checked, nothing found").
func (t *Text) AnalysisWithOptions(stat analysis.Statistics, opts analysis.Options) {
	fmt.Fprintf(t.Out, "\n%s\n", t.colorize(color.New(color.Bold), "Analysis Results:"))
	if opts.CheckUnreachable {
		fmt.Fprintf(t.Out, "  Unreachable states: %s\n", t.listOrNone(stat.UnreachableStates))
	}
	if opts.CheckDeadStates {
		fmt.Fprintf(t.Out, "  Dead-end states: %s\n", t.listOrNone(stat.DeadStates))
	}
	if opts.CheckCycles {
		if len(stat.Cycles) == 0 {
			fmt.Fprintf(t.Out, "  Cycles: %s\n", t.colorize(color.New(color.FgGreen), "None"))
		} else {
			fmt.Fprintf(t.Out, "  Cycles: %s\n", t.colorize(color.New(color.FgYellow), fmt.Sprintf("%d found", len(stat.Cycles))))
		}
	}
}

func (t *Text) listOrNone(states []string) string {
	if len(states) == 0 {
		return t.colorize(color.New(color.FgGreen), "None")
	}
	return t.colorize(color.New(color.FgRed), fmt.Sprint(states))
}

// Signatures renders a signature.Table.
func (t *Text) Signatures(table *signature.Table) {
	fmt.Fprintf(t.Out, "\n%s\n", t.colorize(color.New(color.Bold, color.FgCyan), "State Signatures:"))
	fmt.Fprintf(t.Out, "Case Variable: %s\n", t.colorize(color.New(color.FgYellow), table.CaseVariable))

	ids := table.StateIDs()
	if len(ids) == 0 {
		fmt.Fprintln(t.Out, "No signatures generated.")
		return
	}

	w := tabwriter.NewWriter(t.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tSIGNATURE CONDITIONS\tPATHS")
	for _, id := range ids {
		sig, _ := table.Get(id)
		fmt.Fprintf(w, "%s\t%s\t%d\n", id, signature.FormatSignature(sig), sig.SourcePathCount)
	}
	w.Flush()
}
