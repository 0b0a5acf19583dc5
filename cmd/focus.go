package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/axtree/internal/action"
	"github.com/mj1618/axtree/internal/model"
)

var focusCmd = &cobra.Command{
	Use:   "focus <ref>",
	Short: "Give keyboard focus to the element at a ref",
	Args:  cobra.ExactArgs(1),
	RunE:  runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	addAppRootFlag(focusCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	return runAction(cmd, func(d *action.Dispatcher) (*model.ActionResult, error) {
		return d.Focus(args[0])
	})
}
