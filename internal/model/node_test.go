package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNode_JSONShape(t *testing.T) {
	n := Node{
		Ref:      "n0.3",
		Role:     StringPtr("AXButton"),
		Name:     StringPtr("Save"),
		Enabled:  BoolPtr(true),
		Actions:  []string{"AXPress"},
		Children: []Node{},
	}
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"ref":"n0.3","role":"AXButton","name":"Save","value":null,"enabled":true,"actions":["AXPress"],"children":[]}`
	if string(data) != want {
		t.Errorf("json =\n%s\nwant\n%s", data, want)
	}
}

func TestNode_TruncatedOnlyWhenSet(t *testing.T) {
	n := Node{Ref: "n0", Actions: []string{}, Children: []Node{}, Truncated: true}
	data, _ := json.Marshal(n)
	if !strings.Contains(string(data), `"truncated":true`) {
		t.Errorf("expected truncated flag, got %s", data)
	}
	if !strings.Contains(string(data), `"role":null`) {
		t.Errorf("expected null role, got %s", data)
	}
}

func TestNode_HasActionAndCount(t *testing.T) {
	root := testTree()
	if root.Count() != 5 {
		t.Errorf("Count = %d, want 5", root.Count())
	}
	if !root.Children[0].Children[0].HasAction("AXPress") {
		t.Error("button should have AXPress")
	}
	if root.HasAction("AXPress") {
		t.Error("window should not have AXPress")
	}
}
