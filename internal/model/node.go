package model

// Node is one element of a serialized UI tree.
//
// Ref encodes the index path used to reach the node during the traversal that
// produced it. It is only meaningful against the same UI state: once the UI
// mutates, a ref may resolve to a different element or to none.
type Node struct {
	Ref       string   `yaml:"ref"                 json:"ref"`
	Role      *string  `yaml:"role"                json:"role"`
	Name      *string  `yaml:"name"                json:"name"`
	Value     *Value   `yaml:"value"               json:"value"`
	Enabled   *bool    `yaml:"enabled"             json:"enabled"`
	Actions   []string `yaml:"actions"             json:"actions"`
	Children  []Node   `yaml:"children"            json:"children"`
	Truncated bool     `yaml:"truncated,omitempty" json:"truncated,omitempty"`
}

// RoleString returns the role or "" when absent.
func (n Node) RoleString() string { return deref(n.Role) }

// NameString returns the name or "" when absent.
func (n Node) NameString() string { return deref(n.Name) }

// HasAction reports whether n lists the given action.
func (n Node) HasAction(action string) bool {
	for _, a := range n.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// Count returns the number of nodes in the subtree rooted at n.
func (n Node) Count() int {
	c := 1
	for _, child := range n.Children {
		c += child.Count()
	}
	return c
}

// AppInfo identifies the application a snapshot was taken from.
type AppInfo struct {
	Name string `yaml:"name" json:"name"`
	PID  int    `yaml:"pid"  json:"pid"`
}

// WindowInfo describes the root element of a snapshot.
type WindowInfo struct {
	Title *string `yaml:"title" json:"title"`
	Role  *string `yaml:"role"  json:"role"`
}

// Snapshot is the payload of the snapshot operation.
type Snapshot struct {
	App    AppInfo    `yaml:"app"    json:"app"`
	Window WindowInfo `yaml:"window" json:"window"`
	Tree   Node       `yaml:"tree"   json:"tree"`
}

// ActionResult is the payload of a successful click, focus, set-value or
// press operation.
type ActionResult struct {
	Cmd   string  `yaml:"cmd"             json:"cmd"`
	Ref   string  `yaml:"ref,omitempty"   json:"ref,omitempty"`
	Key   string  `yaml:"key,omitempty"   json:"key,omitempty"`
	Value *string `yaml:"value,omitempty" json:"value,omitempty"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }
