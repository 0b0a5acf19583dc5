package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/axtree/internal/action"
	"github.com/mj1618/axtree/internal/model"
)

var pressCmd = &cobra.Command{
	Use:   "press <key>",
	Short: "Press a key in whatever has keyboard focus",
	Long: `Post a key-down and key-up event for a named key. Names are
case-insensitive.

Supported keys: a-z, 0-9, return/enter, tab, space, delete/backspace,
forwarddelete, escape/esc, up, down, left, right, home, end, pageup,
pagedown, f1-f12, and - = [ ] ; ' , . / \ ` + "`" + `

Example:
  axtree press Enter`,
	Args: cobra.ExactArgs(1),
	RunE: runPress,
}

func init() {
	rootCmd.AddCommand(pressCmd)
}

func runPress(cmd *cobra.Command, args []string) error {
	return runAction(cmd, func(d *action.Dispatcher) (*model.ActionResult, error) {
		return d.Press(args[0])
	})
}
