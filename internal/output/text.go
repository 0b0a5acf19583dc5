package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mj1618/axtree/internal/model"
)

// PrintText renders v for a human at a terminal. Envelopes, snapshots, trees
// and flat lists get dedicated layouts; anything else falls back to YAML.
func PrintText(w io.Writer, v interface{}) error {
	var b strings.Builder
	if !writeText(&b, v) {
		return PrintYAML(w, v)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeText(b *strings.Builder, v interface{}) bool {
	switch x := v.(type) {
	case Envelope:
		return writeEnvelope(b, x)
	case *Envelope:
		return writeEnvelope(b, *x)
	case *model.Snapshot:
		writeSnapshot(b, x)
	case model.Snapshot:
		writeSnapshot(b, &x)
	case model.Node:
		writeTree(b, x, 0)
	case []model.FlatNode:
		writeFlat(b, x)
	case *model.FlatSnapshot:
		writeHeader(b, x.App, x.Window)
		writeFlat(b, x.Nodes)
	case *model.ActionResult:
		writeAction(b, x)
	case fmt.Stringer:
		b.WriteString(x.String())
		b.WriteByte('\n')
	default:
		return false
	}
	return true
}

func writeEnvelope(b *strings.Builder, env Envelope) bool {
	if env.Success {
		if env.Data == nil {
			b.WriteString("ok\n")
			return true
		}
		return writeText(b, env.Data)
	}
	fmt.Fprintf(b, "error: %s: %s\n", env.Error, env.Message)
	if env.Data != nil {
		writeText(b, env.Data)
	}
	return true
}

func writeSnapshot(b *strings.Builder, s *model.Snapshot) {
	writeHeader(b, s.App, s.Window)
	writeTree(b, s.Tree, 0)
}

func writeHeader(b *strings.Builder, app model.AppInfo, win model.WindowInfo) {
	fmt.Fprintf(b, "%s (pid %d)", app.Name, app.PID)
	if win.Title != nil && *win.Title != "" {
		fmt.Fprintf(b, " %q", *win.Title)
	}
	b.WriteByte('\n')
}

func writeFlat(b *strings.Builder, nodes []model.FlatNode) {
	for _, n := range nodes {
		fmt.Fprintf(b, "%s  %s\n", nodeLine(n.Ref, n.Role, n.Name, n.Value, n.Enabled, n.Actions, false), n.Path)
	}
}

func writeTree(b *strings.Builder, n model.Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(nodeLine(n.Ref, n.Role, n.Name, n.Value, n.Enabled, n.Actions, n.Truncated))
	b.WriteByte('\n')
	for _, c := range n.Children {
		writeTree(b, c, depth+1)
	}
}

// nodeLine formats one node as: n0.2 btn "Save" = "x" [disabled] (AXPress)
func nodeLine(ref string, role, name *string, value *model.Value, enabled *bool, actions []string, truncated bool) string {
	parts := []string{ref, model.ShortRole(deref(role))}
	if name != nil {
		parts = append(parts, fmt.Sprintf("%q", *name))
	}
	if value != nil {
		parts = append(parts, "= "+fmt.Sprintf("%q", value.String()))
	}
	if enabled != nil && !*enabled {
		parts = append(parts, "[disabled]")
	}
	if len(actions) > 0 {
		parts = append(parts, "("+strings.Join(actions, ", ")+")")
	}
	if truncated {
		parts = append(parts, "[truncated]")
	}
	return strings.Join(parts, " ")
}

func writeAction(b *strings.Builder, r *model.ActionResult) {
	b.WriteString("ok: ")
	b.WriteString(r.Cmd)
	if r.Ref != "" {
		b.WriteString(" " + r.Ref)
	}
	if r.Key != "" {
		b.WriteString(" " + r.Key)
	}
	if r.Value != nil {
		fmt.Fprintf(b, " %q", *r.Value)
	}
	b.WriteByte('\n')
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
