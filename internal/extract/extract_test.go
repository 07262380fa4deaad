package extract

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleXML = `<pous>
  <function-block-declaration>
    <derived-function-block-name>Valve</derived-function-block-name>
    <case-statement>
      <variable-name>STATE</variable-name>
      <case-element>
        <case-list-element><integer-literal>10</integer-literal></case-list-element>
        <if-statement>
          <expression><variable-name>sensor</variable-name><equal/><variable-name>low</variable-name></expression>
          <assignment-statement>
            <variable-name>STATE</variable-name>
            <integer-literal>20</integer-literal>
          </assignment-statement>
        </if-statement>
      </case-element>
      <case-element>
        <case-list-element><integer-literal>20</integer-literal></case-list-element>
      </case-element>
    </case-statement>
  </function-block-declaration>
</pous>`

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.xml")
	if err := os.WriteFile(path, []byte(sampleXML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindFunctionBlocks(t *testing.T) {
	doc, err := ParseFile(writeSample(t))
	if err != nil {
		t.Fatal(err)
	}
	names := doc.FindFunctionBlocks()
	if len(names) != 1 || names[0] != "Valve" {
		t.Fatalf("FindFunctionBlocks = %v, want [Valve]", names)
	}
}

func TestExtractFunctionBlock(t *testing.T) {
	doc, err := ParseFile(writeSample(t))
	if err != nil {
		t.Fatal(err)
	}

	fb, err := doc.ExtractFunctionBlock("Valve")
	if err != nil {
		t.Fatal(err)
	}

	if fb.CaseVariable != "STATE" {
		t.Errorf("CaseVariable = %q, want STATE", fb.CaseVariable)
	}
	if fb.StateCount() != 2 {
		t.Fatalf("StateCount = %d, want 2", fb.StateCount())
	}
	if fb.TransitionCount() != 1 {
		t.Fatalf("TransitionCount = %d, want 1", fb.TransitionCount())
	}

	tr := fb.Transitions[0]
	if tr.From != "10" || tr.To != "20" {
		t.Errorf("transition = %s -> %s, want 10 -> 20", tr.From, tr.To)
	}
	if tr.Guard != "sensor = low" {
		t.Errorf("Guard = %q, want %q", tr.Guard, "sensor = low")
	}
}

func TestExtractFunctionBlockNotFound(t *testing.T) {
	doc, err := ParseFile(writeSample(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.ExtractFunctionBlock("DoesNotExist"); err == nil {
		t.Fatal("expected an error for a missing function block")
	}
}

func TestBuildMachine(t *testing.T) {
	doc, err := ParseFile(writeSample(t))
	if err != nil {
		t.Fatal(err)
	}
	m := doc.BuildMachine()
	if len(m.FunctionBlocks) != 1 {
		t.Fatalf("expected one function block, got %d", len(m.FunctionBlocks))
	}
	if m.Metadata.TotalStates != 2 {
		t.Errorf("TotalStates = %d, want 2", m.Metadata.TotalStates)
	}
}
