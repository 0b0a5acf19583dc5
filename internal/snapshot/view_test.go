package snapshot

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/axtree/internal/model"
)

func viewSnapshot() *model.Snapshot {
	return &model.Snapshot{
		App: model.AppInfo{Name: "A", PID: 1},
		Tree: model.Node{
			Ref: "n0", Role: model.StringPtr("AXWindow"), Actions: []string{},
			Children: []model.Node{
				{Ref: "n0.0", Role: model.StringPtr("AXStaticText"), Actions: []string{}, Children: []model.Node{}},
				{Ref: "n0.1", Role: model.StringPtr("AXButton"), Name: model.StringPtr("OK"), Actions: []string{"AXPress"}, Children: []model.Node{}},
			},
		},
	}
}

func TestParseRoles(t *testing.T) {
	assert.Equal(t, []string{"btn", "AXLink"}, ParseRoles(" btn, ,AXLink,"))
	assert.Nil(t, ParseRoles(""))
}

func TestView_Filtered(t *testing.T) {
	s := viewSnapshot()
	got, ok := View(s, ViewOptions{Roles: []string{"btn"}}).(*model.Snapshot)
	require.True(t, ok)
	require.Len(t, got.Tree.Children, 1)
	assert.Equal(t, "n0.1", got.Tree.Children[0].Ref)
	assert.Len(t, s.Tree.Children, 2, "input snapshot must not change")
}

func TestView_Flat(t *testing.T) {
	got, ok := View(viewSnapshot(), ViewOptions{Flat: true, Text: "ok"}).(*model.FlatSnapshot)
	require.True(t, ok)
	require.Len(t, got.Nodes, 2)
	assert.Equal(t, "n0.1", got.Nodes[1].Ref)
	assert.Equal(t, "window > btn", got.Nodes[1].Path)
}

func TestView_WebInputKeepsRolelessNodes(t *testing.T) {
	s := &model.Snapshot{
		Tree: model.Node{
			Ref: "n0", Role: model.StringPtr("AXWindow"), Actions: []string{},
			Children: []model.Node{
				{Ref: "n0.0", Role: model.StringPtr("AXWebArea"), Actions: []string{}, Children: []model.Node{
					{Ref: "n0.0.0", Value: model.StringValue("query"), Actions: []string{}, Children: []model.Node{}},
					{Ref: "n0.0.1", Role: model.StringPtr("AXStaticText"), Actions: []string{}, Children: []model.Node{}},
				}},
			},
		},
	}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	out, ok := View(s, ViewOptions{Roles: []string{"input"}, Flat: true, Logger: logger}).(*model.FlatSnapshot)
	require.True(t, ok)
	assert.Contains(t, logs.String(), "expanded roles for web content")
	refs := make([]string, len(out.Nodes))
	for i, n := range out.Nodes {
		refs[i] = n.Ref
	}
	assert.Equal(t, []string{"n0", "n0.0", "n0.0.0"}, refs)
}
