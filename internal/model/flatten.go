package model

// FlatNode is a node with a role breadcrumb instead of children.
type FlatNode struct {
	Ref     string   `yaml:"ref"               json:"ref"`
	Role    *string  `yaml:"role"              json:"role"`
	Name    *string  `yaml:"name"              json:"name"`
	Value   *Value   `yaml:"value"             json:"value"`
	Enabled *bool    `yaml:"enabled"           json:"enabled"`
	Actions []string `yaml:"actions"           json:"actions"`
	Path    string   `yaml:"path"              json:"path"`
	Depth   int      `yaml:"depth"             json:"depth"`
}

// FlattenNodes converts a tree into a pre-order list. Each entry gets a path
// string showing its location using compact role codes joined with " > ".
func FlattenNodes(root Node) []FlatNode {
	var result []FlatNode
	flattenRecursive(root, "", 0, &result)
	return result
}

func flattenRecursive(n Node, parentPath string, depth int, result *[]FlatNode) {
	currentPath := ShortRole(n.RoleString())
	if parentPath != "" {
		currentPath = parentPath + " > " + currentPath
	}

	*result = append(*result, FlatNode{
		Ref:     n.Ref,
		Role:    n.Role,
		Name:    n.Name,
		Value:   n.Value,
		Enabled: n.Enabled,
		Actions: n.Actions,
		Path:    currentPath,
		Depth:   depth,
	})

	for _, child := range n.Children {
		flattenRecursive(child, currentPath, depth+1, result)
	}
}

// FlatSnapshot is a snapshot whose tree has been flattened.
type FlatSnapshot struct {
	App    AppInfo    `yaml:"app"    json:"app"`
	Window WindowInfo `yaml:"window" json:"window"`
	Nodes  []FlatNode `yaml:"nodes"  json:"nodes"`
}
