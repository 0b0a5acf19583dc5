package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/axtree/internal/action"
	"github.com/mj1618/axtree/internal/model"
)

var clickCmd = &cobra.Command{
	Use:   "click <ref>",
	Short: "Press the element at a ref",
	Long: `Invoke AXPress on the element at ref. Fails with NotActionable when the
element does not support it.

Example:
  axtree click n0.2.1`,
	Args: cobra.ExactArgs(1),
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	addAppRootFlag(clickCmd)
}

func runClick(cmd *cobra.Command, args []string) error {
	return runAction(cmd, func(d *action.Dispatcher) (*model.ActionResult, error) {
		return d.Click(args[0])
	})
}
