// Package recipe parses and runs ordered lists of UI steps.
package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/axtree/internal/model"
)

// Step commands.
const (
	CmdSnapshot = "snapshot"
	CmdClick    = "click"
	CmdFocus    = "focus"
	CmdSetValue = "set_value"
	CmdPress    = "press"
)

// Step is one entry of a recipe. Optional fields are nil when absent so a
// missing value can be told apart from an empty one.
type Step struct {
	Cmd   string  `yaml:"cmd"             json:"cmd"`
	Ref   *string `yaml:"ref,omitempty"   json:"ref,omitempty"`
	Value *string `yaml:"value,omitempty" json:"value,omitempty"`
	Key   *string `yaml:"key,omitempty"   json:"key,omitempty"`
}

// Parse decodes a recipe document: a JSON array of step objects. YAML input
// with the same structure is accepted too. A document that is empty, fails
// to decode, or has the wrong shape is an ExecutionError and no step runs.
func Parse(data []byte) ([]Step, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, model.ExecutionError("empty recipe: expected a JSON array of steps")
	}

	doc, err := decode(data)
	if err != nil {
		return nil, model.ExecutionError("failed to parse recipe: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, model.ExecutionError("invalid recipe: %w", err)
	}

	var steps []Step
	if err := remarshal(doc, &steps); err != nil {
		return nil, model.ExecutionError("failed to decode recipe steps: %w", err)
	}
	return steps, nil
}

// decode returns the generic JSON value of data. Non-JSON input is read as
// YAML and normalized to JSON types.
func decode(data []byte) (any, error) {
	if data[0] == '[' || data[0] == '{' {
		return decodeJSON(data)
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return decodeJSON(normalized)
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after offset %d", dec.InputOffset())
	}
	return doc, nil
}

func remarshal(doc any, out any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
