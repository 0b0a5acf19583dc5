package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mj1618/axtree/internal/model"
	"gopkg.in/yaml.v3"
)

func sampleSnapshot() *model.Snapshot {
	return &model.Snapshot{
		App:    model.AppInfo{Name: "TextEdit", PID: 501},
		Window: model.WindowInfo{Title: model.StringPtr("Untitled"), Role: model.StringPtr("AXWindow")},
		Tree: model.Node{
			Ref: "n0", Role: model.StringPtr("AXWindow"), Name: model.StringPtr("Untitled"),
			Actions: []string{},
			Children: []model.Node{
				{
					Ref: "n0.0", Role: model.StringPtr("AXButton"), Name: model.StringPtr("Save"),
					Enabled: model.BoolPtr(false), Actions: []string{"AXPress"}, Children: []model.Node{},
				},
			},
		},
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, Success(sampleSnapshot()), false); err != nil {
		t.Fatal(err)
	}
	output := buf.String()

	// Compact output should be a single line (plus newline from Encode)
	if strings.Count(output, "\n") > 1 {
		t.Errorf("compact output should be single line, got:\n%s", output)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["success"] != true {
		t.Errorf("success: got %v", decoded["success"])
	}
	data := decoded["data"].(map[string]interface{})
	tree := data["tree"].(map[string]interface{})
	if tree["ref"] != "n0" {
		t.Errorf("tree.ref: got %v", tree["ref"])
	}
	if _, ok := decoded["error"]; ok {
		t.Error("success envelope should not carry an error")
	}
}

func TestPrintJSON_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, Success(sampleSnapshot()), true); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", buf.String())
	}
}

func TestPrintJSON_NoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, Success(map[string]string{"name": "<Save & Close>"}), false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<Save & Close>") {
		t.Errorf("expected unescaped HTML characters, got %s", buf.String())
	}
}

func TestPrintJSON_NodeValueNotEscaped(t *testing.T) {
	node := model.Node{
		Ref:     "n0",
		Name:    model.StringPtr("<b>"),
		Value:   model.StringValue("<AXTextMarker>"),
		Actions: []string{},
	}
	var buf bytes.Buffer
	if err := PrintJSON(&buf, Success(node), false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"name":"<b>"`) || !strings.Contains(out, `"value":"<AXTextMarker>"`) {
		t.Errorf("name and value should both be unescaped, got %s", out)
	}
}

func TestFailureEnvelope(t *testing.T) {
	env := Failure(model.NotFound("element not found: n0.9"), nil)
	s, err := JSON(env)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"success":false,"error":"NotFound","message":"element not found: n0.9"}`
	if s != want {
		t.Errorf("got %s, want %s", s, want)
	}
}

func TestFailureEnvelope_PlainError(t *testing.T) {
	env := Failure(errors.New("boom"), nil)
	if env.Error != model.CodeExecutionError {
		t.Errorf("code: got %q, want ExecutionError", env.Error)
	}
	if env.Message != "boom" {
		t.Errorf("message: got %q", env.Message)
	}
}

func TestFailureEnvelope_KeepsData(t *testing.T) {
	env := Failure(model.NotActionable("x"), []string{"partial"})
	s, _ := JSON(env)
	if !strings.Contains(s, `"data":["partial"]`) {
		t.Errorf("expected partial data, got %s", s)
	}
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintYAML(&buf, Success(sampleSnapshot())); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["success"] != true {
		t.Errorf("success: got %v", decoded["success"])
	}
}

func TestPrintText_Snapshot(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintText(&buf, Success(sampleSnapshot())); err != nil {
		t.Fatal(err)
	}
	want := "TextEdit (pid 501) \"Untitled\"\n" +
		"n0 window \"Untitled\"\n" +
		"  n0.0 btn \"Save\" [disabled] (AXPress)\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrintText_Failure(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintText(&buf, Failure(model.NotFound("element not found: n0.3"), nil)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "error: NotFound: element not found: n0.3\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestPrintText_Action(t *testing.T) {
	v := "hello"
	var buf bytes.Buffer
	if err := PrintText(&buf, Success(&model.ActionResult{Cmd: "set-value", Ref: "n0.1", Value: &v})); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "ok: set-value n0.1 \"hello\"\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestPrintText_Flat(t *testing.T) {
	flat := model.FlattenNodes(sampleSnapshot().Tree)
	var buf bytes.Buffer
	if err := PrintText(&buf, Success(flat)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[1], "window > btn") {
		t.Errorf("expected breadcrumb suffix, got %q", lines[1])
	}
}

func TestPrintText_FallsBackToYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintText(&buf, Success(map[string]int{"count": 3})); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "count: 3") {
		t.Errorf("expected YAML fallback, got %q", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "JSON", " yaml", "text"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
	if f, err := ParseFormat("auto"); err != nil || (f != FormatJSON && f != FormatText) {
		t.Errorf("ParseFormat(auto) = %q, %v", f, err)
	}
}

func TestFprint_UnknownFormat(t *testing.T) {
	if err := Fprint(&bytes.Buffer{}, Format("xml"), false, 1); err == nil {
		t.Error("expected error")
	}
}
