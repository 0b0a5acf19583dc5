package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/axtree/internal/action"
	"github.com/mj1618/axtree/internal/model"
)

var setValueCmd = &cobra.Command{
	Use:   "set-value <ref> <value>",
	Short: "Set the value of the element at a ref",
	Long: `Write value to the AXValue attribute of the element at ref. Unlike typing,
this replaces the whole value in one step. An empty string clears it.

Example:
  axtree set-value n0.0.3 "hello world"`,
	Args: cobra.ExactArgs(2),
	RunE: runSetValue,
}

func init() {
	rootCmd.AddCommand(setValueCmd)
	addAppRootFlag(setValueCmd)
}

func runSetValue(cmd *cobra.Command, args []string) error {
	return runAction(cmd, func(d *action.Dispatcher) (*model.ActionResult, error) {
		return d.SetValue(args[0], args[1])
	})
}
