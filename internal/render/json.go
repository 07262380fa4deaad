package render

import (
	"encoding/json"
	"io"

	"github.com/LaBackDoor/fsm-extractor/internal/analysis"
	"github.com/LaBackDoor/fsm-extractor/internal/fsm"
	"github.com/LaBackDoor/fsm-extractor/internal/signature"
)

// JSONReport is the full exportable payload: the extracted machine plus
// optional per-function-block analysis and signature tables, mirroring
// the original exporter's FsmWithAnalysis envelope.
type JSONReport struct {
	Machine    *fsm.Machine                   `json:"fsm"`
	Analysis   map[string]analysis.Statistics  `json:"analysis,omitempty"`
	Signatures map[string]*signatureJSON       `json:"signatures,omitempty"`
}

type signatureJSON struct {
	FunctionBlock string                  `json:"function_block"`
	CaseVariable  string                  `json:"case_variable"`
	States        []stateSignatureJSON    `json:"states"`
}

type stateSignatureJSON struct {
	StateID    string `json:"state_id"`
	Conditions string `json:"conditions"`
	Paths      int    `json:"paths"`
}

// JSON writes a JSONReport to out, pretty-printed with the standard
// library's encoding/json — no pack repo wires a third-party JSON
// library, and the teacher's own API layer also uses encoding/json
// directly.
func JSON(out io.Writer, m *fsm.Machine) error {
	return writeJSON(out, JSONReport{Machine: m})
}

// JSONWithAnalysis writes a machine plus its per-function-block statistics.
func JSONWithAnalysis(out io.Writer, m *fsm.Machine, stats map[string]analysis.Statistics) error {
	return writeJSON(out, JSONReport{Machine: m, Analysis: stats})
}

// JSONFull writes a machine plus statistics and signature tables.
func JSONFull(out io.Writer, m *fsm.Machine, stats map[string]analysis.Statistics, tables map[string]*signature.Table) error {
	sigs := make(map[string]*signatureJSON, len(tables))
	for name, table := range tables {
		sj := &signatureJSON{FunctionBlock: name, CaseVariable: table.CaseVariable}
		for _, id := range table.StateIDs() {
			sig, _ := table.Get(id)
			sj.States = append(sj.States, stateSignatureJSON{
				StateID:    id,
				Conditions: signature.FormatSignature(sig),
				Paths:      sig.SourcePathCount,
			})
		}
		sigs[name] = sj
	}
	return writeJSON(out, JSONReport{Machine: m, Analysis: stats, Signatures: sigs})
}

func writeJSON(out io.Writer, report JSONReport) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
