package fsm

import "time"

// Machine is the aggregate root the extractor hands downstream: every
// function block recovered from one source file, plus metadata about
// the extraction run.
type Machine struct {
	FunctionBlocks []*FunctionBlock `json:"function_blocks"`
	Metadata       Metadata         `json:"metadata"`
}

// Metadata records provenance for an extraction run. It has no effect
// on the symbolic engine, which only ever consumes FunctionBlocks.
type Metadata struct {
	SourceFile       string    `json:"source_file"`
	ExtractedAt      time.Time `json:"extraction_date"`
	TotalStates      int       `json:"total_states"`
	TotalTransitions int       `json:"total_transitions"`
}
