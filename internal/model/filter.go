package model

import "strings"

// FilterNodes prunes the tree rooted at root down to nodes whose role is in
// roles and whose name or value contains text (case-insensitive). Every
// ancestor of a kept node is kept too, so the surviving refs still describe
// real paths. Refs are never rewritten. The root itself is always returned.
//
// roles may mix raw roles ("AXButton"), compact codes ("btn") and meta-roles
// ("interactive"). Empty roles and empty text disable the respective filter.
func FilterNodes(root Node, roles []string, text string) Node {
	if len(roles) == 0 && text == "" {
		return root
	}

	roleSet := make(map[string]bool, len(roles))
	for _, r := range ExpandRoles(roles) {
		roleSet[r] = true
	}
	textLower := strings.ToLower(text)

	if kept, ok := filterNode(root, roleSet, textLower); ok {
		return kept
	}
	out := root
	out.Children = []Node{}
	return out
}

func filterNode(n Node, roleSet map[string]bool, textLower string) (Node, bool) {
	kept := []Node{}
	for _, child := range n.Children {
		if k, ok := filterNode(child, roleSet, textLower); ok {
			kept = append(kept, k)
		}
	}
	if len(kept) == 0 && !nodeMatches(n, roleSet, textLower) {
		return Node{}, false
	}
	out := n
	out.Children = kept
	return out, true
}

func nodeMatches(n Node, roleSet map[string]bool, textLower string) bool {
	if len(roleSet) > 0 && !roleMatches(n.RoleString(), roleSet) {
		return false
	}
	if textLower == "" {
		return true
	}
	if strings.Contains(strings.ToLower(n.NameString()), textLower) {
		return true
	}
	return n.Value != nil && strings.Contains(strings.ToLower(n.Value.String()), textLower)
}
