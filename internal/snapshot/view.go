package snapshot

import (
	"log/slog"
	"strings"

	"github.com/mj1618/axtree/internal/model"
)

// ViewOptions shapes a snapshot for output. Filtering happens after the
// traversal, so refs always describe positions in the full tree.
type ViewOptions struct {
	Roles []string
	Text  string
	Flat  bool

	Logger *slog.Logger
}

// ParseRoles splits a comma-separated role list, dropping blanks.
func ParseRoles(s string) []string {
	var roles []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

// View applies opts to s and returns either a *model.Snapshot or a
// *model.FlatSnapshot. In trees with web content an "input" filter also
// keeps role-less nodes.
func View(s *model.Snapshot, opts ViewOptions) any {
	roles := opts.Roles
	if len(roles) > 0 {
		var expanded bool
		roles, expanded = model.ExpandRolesForWeb(roles, model.HasWebContent(s.Tree))
		if expanded && opts.Logger != nil {
			opts.Logger.Debug("expanded roles for web content", "roles", roles)
		}
	}
	tree := model.FilterNodes(s.Tree, roles, opts.Text)
	if opts.Flat {
		return &model.FlatSnapshot{App: s.App, Window: s.Window, Nodes: model.FlattenNodes(tree)}
	}
	out := *s
	out.Tree = tree
	return &out
}
