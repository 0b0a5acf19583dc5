package model

// HasWebContent reports whether the tree contains an AXWebArea, which marks
// a browser or embedded web view.
func HasWebContent(n Node) bool {
	if ShortRole(n.RoleString()) == "web" {
		return true
	}
	for _, child := range n.Children {
		if HasWebContent(child) {
			return true
		}
	}
	return false
}

// ExpandRolesForWeb adds "other" to a role list holding "input" when the
// tree has web content: browsers expose some web input fields without a
// role. The second result reports whether the list was expanded.
func ExpandRolesForWeb(roles []string, hasWeb bool) ([]string, bool) {
	if !hasWeb {
		return roles, false
	}
	hasInput := false
	hasOther := false
	for _, r := range ExpandRoles(roles) {
		switch r {
		case "input":
			hasInput = true
		case "other":
			hasOther = true
		}
	}
	if hasInput && !hasOther {
		return append(roles[:len(roles):len(roles)], "other"), true
	}
	return roles, false
}
