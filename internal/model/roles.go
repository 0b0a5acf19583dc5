package model

import "strings"

// RoleMap maps macOS AXRole values to compact role codes.
var RoleMap = map[string]string{
	"AXButton":      "btn",
	"AXStaticText":  "txt",
	"AXLink":        "lnk",
	"AXImage":       "img",
	"AXTextField":   "input",
	"AXTextArea":    "input",
	"AXComboBox":    "input",
	"AXCheckBox":    "chk",
	"AXSwitch":      "toggle",
	"AXRadioButton": "radio",
	"AXSlider":      "slider",
	"AXPopUpButton": "popup",
	"AXMenu":        "menu",
	"AXMenuBar":     "menu",
	"AXMenuItem":    "menuitem",
	"AXMenuBarItem": "menuitem",
	"AXTabGroup":    "tab",
	"AXList":        "list",
	"AXTable":       "list",
	"AXOutline":     "list",
	"AXRow":         "row",
	"AXCell":        "cell",
	"AXGroup":       "group",
	"AXSplitGroup":  "group",
	"AXScrollArea":  "scroll",
	"AXToolbar":     "toolbar",
	"AXWebArea":     "web",
	"AXWindow":      "window",
	"AXSheet":       "window",
	"AXApplication": "app",
}

// MetaRoles maps meta-role names to the concrete roles they expand to.
// "interactive" matches roles that are likely to accept user input.
var MetaRoles = map[string][]string{
	"interactive": {"btn", "lnk", "input", "chk", "toggle", "radio", "slider", "popup", "menuitem"},
}

// ExpandRoles expands any meta-roles in the given list to their concrete roles.
// Non-meta roles are passed through unchanged. Duplicates are removed.
func ExpandRoles(roles []string) []string {
	seen := make(map[string]bool, len(roles))
	var expanded []string
	for _, r := range roles {
		if concrete, ok := MetaRoles[r]; ok {
			for _, c := range concrete {
				if !seen[c] {
					seen[c] = true
					expanded = append(expanded, c)
				}
			}
		} else if !seen[r] {
			seen[r] = true
			expanded = append(expanded, r)
		}
	}
	return expanded
}

// ShortRole converts a raw accessibility role to a compact code. Unmapped
// roles lose their "AX" prefix and are lowercased.
func ShortRole(axRole string) string {
	if short, ok := RoleMap[axRole]; ok {
		return short
	}
	if axRole == "" {
		return "other"
	}
	return strings.ToLower(strings.TrimPrefix(axRole, "AX"))
}

// roleMatches reports whether a raw role is selected by a role set holding
// raw roles, compact codes, or both.
func roleMatches(axRole string, set map[string]bool) bool {
	return set[axRole] || set[ShortRole(axRole)]
}
