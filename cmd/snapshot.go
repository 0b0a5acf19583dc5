package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/axtree/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the accessibility tree of the frontmost application",
	Long: `Print the accessibility tree of the frontmost application's focused window
(or first window, or the application itself when it has none).

Every node has a ref that the click, focus, set-value and recipe commands
accept. Filters prune the output only; refs keep their full-tree positions.

Examples:
  axtree snapshot
  axtree snapshot --roles interactive
  axtree snapshot --text save --flat
  axtree snapshot --app-root --max-depth 3`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().String("roles", "", "Comma-separated roles to keep (e.g. AXButton, btn, interactive)")
	snapshotCmd.Flags().String("text", "", "Keep nodes whose name or value contains this text (case-insensitive)")
	snapshotCmd.Flags().Bool("flat", false, "Output a flat list with role breadcrumbs instead of a tree")
	addAppRootFlag(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	p, err := provider()
	if err != nil {
		return emit(nil, err)
	}

	roles, _ := cmd.Flags().GetString("roles")
	text, _ := cmd.Flags().GetString("text")
	flat, _ := cmd.Flags().GetBool("flat")

	snap, err := snapshot.Take(p, acquireOptions(cmd), buildOptions())
	if err != nil {
		return emit(nil, err)
	}
	logger.Debug("snapshot taken", "app", snap.App.Name, "pid", snap.App.PID, "nodes", snap.Tree.Count())

	return emit(snapshot.View(snap, snapshot.ViewOptions{
		Roles:  snapshot.ParseRoles(roles),
		Text:   text,
		Flat:   flat,
		Logger: logger,
	}), nil)
}
