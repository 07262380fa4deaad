package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/LaBackDoor/fsm-extractor/internal/analysis"
	"github.com/LaBackDoor/fsm-extractor/internal/fsm"
	"github.com/LaBackDoor/fsm-extractor/internal/signature"
)

// Markdown builds a Markdown report by hand with strings.Builder, the
// way the original exporter assembled one string and wrote it out —
// no pack repo wires a Markdown-generation library, so there is nothing
// to prefer over direct composition here.
type Markdown struct {
	b strings.Builder
}

// NewMarkdown returns a Markdown writer preloaded with the report
// header and the machine's metadata.
func NewMarkdown(title string, m *fsm.Machine) *Markdown {
	md := &Markdown{}
	md.b.WriteString(fmt.Sprintf("# %s\n\n", title))
	md.b.WriteString(fmt.Sprintf("**Source File:** %s\n", m.Metadata.SourceFile))
	md.b.WriteString(fmt.Sprintf("**Extraction Date:** %s\n", m.Metadata.ExtractedAt.Format("2006-01-02T15:04:05Z07:00")))
	md.b.WriteString(fmt.Sprintf("**Total States:** %d\n", m.Metadata.TotalStates))
	md.b.WriteString(fmt.Sprintf("**Total Transitions:** %d\n\n", m.Metadata.TotalTransitions))
	return md
}

// FunctionBlock appends one function block's transition table.
func (md *Markdown) FunctionBlock(fb *fsm.FunctionBlock) {
	md.b.WriteString(fmt.Sprintf("## Function Block: %s\n\n", fb.Name))
	md.b.WriteString(fmt.Sprintf("**Case Variable:** `%s`\n\n", fb.CaseVariable))
	md.b.WriteString(fmt.Sprintf("**States:** %d | **Transitions:** %d\n\n", fb.StateCount(), fb.TransitionCount()))

	if len(fb.Transitions) == 0 {
		return
	}

	md.b.WriteString("### State Transitions\n\n")
	md.b.WriteString("| Current State | Next State | Transition Condition |\n")
	md.b.WriteString("|---------------|------------|---------------------|\n")
	for _, t := range fb.Transitions {
		md.b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", t.From, t.To, escapePipes(t.Guard)))
	}
	md.b.WriteString("\n")
}

// Analysis appends an analysis.Statistics section.
func (md *Markdown) Analysis(stat analysis.Statistics) {
	md.b.WriteString("### Analysis Results\n\n")
	md.b.WriteString(fmt.Sprintf("- **Total States:** %d\n", stat.TotalStates))
	md.b.WriteString(fmt.Sprintf("- **Total Transitions:** %d\n", stat.TotalTransitions))
	md.b.WriteString(fmt.Sprintf("- **Avg Transitions/State:** %.2f\n", stat.AvgTransitionsPerState))
	md.b.WriteString(fmt.Sprintf("- **Max Transitions from State:** %d\n", stat.MaxTransitionsFromState))
	if len(stat.UnreachableStates) > 0 {
		md.b.WriteString(fmt.Sprintf("- **Unreachable States:** %v\n", stat.UnreachableStates))
	}
	if len(stat.DeadStates) > 0 {
		md.b.WriteString(fmt.Sprintf("- **Dead-end States:** %v\n", stat.DeadStates))
	}
	if len(stat.Cycles) > 0 {
		md.b.WriteString(fmt.Sprintf("- **Cycles Found:** %d\n", len(stat.Cycles)))
	}
	md.b.WriteString("\n")
}

// Signatures appends a signature.Table section.
func (md *Markdown) Signatures(table *signature.Table) {
	md.b.WriteString("### State Signatures\n\n")
	md.b.WriteString(fmt.Sprintf("**Case Variable:** `%s`\n\n", table.CaseVariable))
	md.b.WriteString("| State | Signature Conditions | Paths |\n")
	md.b.WriteString("|-------|---------------------|-------|\n")
	for _, id := range table.StateIDs() {
		sig, _ := table.Get(id)
		md.b.WriteString(fmt.Sprintf("| %s | %s | %d |\n", id, escapePipes(signature.FormatSignature(sig)), sig.SourcePathCount))
	}
	md.b.WriteString("\n")
}

// String returns the accumulated report.
func (md *Markdown) String() string {
	return md.b.String()
}

// WriteTo writes the accumulated report to out.
func (md *Markdown) WriteTo(out io.Writer) (int64, error) {
	n, err := io.WriteString(out, md.b.String())
	return int64(n), err
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
