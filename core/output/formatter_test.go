package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"modcheck/core/engine"
	"modcheck/core/output"
	"modcheck/core/types"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"cli", "json"} {
		if _, err := output.ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	if _, err := output.ParseFormat("yaml"); err == nil {
		t.Error("unknown format should be rejected")
	}
}

func TestCLIRender(t *testing.T) {
	eng := engine.Default()
	report := eng.Check(types.NewSelection("coilovers-track", "lowering-springs"))

	var buf bytes.Buffer
	f, err := output.New(output.FormatCLI)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := f.Render(&buf, report); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "coilovers-track") {
		t.Errorf("output missing selection keys:\n%s", out)
	}
	if !strings.Contains(out, "Conflicts") {
		t.Errorf("output missing conflicts section:\n%s", out)
	}
	if !strings.Contains(out, "HARD") {
		t.Errorf("hard conflicts not marked:\n%s", out)
	}
}

func TestCLIRenderCleanBuild(t *testing.T) {
	eng := engine.Default()
	report := eng.Check(types.NewSelection("tires-performance"))

	var buf bytes.Buffer
	f, _ := output.New(output.FormatCLI)
	if err := f.Render(&buf, report); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if report.HasFindings() {
		t.Skipf("built-in data changed, selection no longer clean: %+v", report)
	}
	if !strings.Contains(buf.String(), "No conflicts") {
		t.Errorf("clean build message missing:\n%s", buf.String())
	}
}

func TestJSONRenderRoundTrips(t *testing.T) {
	eng := engine.Default()
	report := eng.Check(types.NewSelection("headers"))

	var buf bytes.Buffer
	f, err := output.New(output.FormatJSON)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := f.Render(&buf, report); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["selection"]; !ok {
		t.Errorf("JSON output missing selection field: %v", decoded)
	}
}
