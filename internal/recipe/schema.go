package recipe

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://axtree.schemas.local/recipe.schema.json"

// recipeSchema checks the document shape only. Per-command requirements are
// enforced by the executor so they fail a single step, not the whole recipe.
const recipeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "cmd":   {"type": "string"},
      "ref":   {"type": "string"},
      "value": {"type": "string"},
      "key":   {"type": "string"}
    }
  }
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, strings.NewReader(recipeSchema)); err != nil {
		return nil, fmt.Errorf("recipe schema load failed: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("recipe schema compile failed: %w", err)
	}
	return compiled, nil
})

// validate checks a decoded JSON document against the recipe schema.
func validate(doc any) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}
	return schema.Validate(doc)
}
