package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/axtree/internal/action"
	"github.com/mj1618/axtree/internal/model"
	"github.com/mj1618/axtree/internal/recipe"
	"github.com/mj1618/axtree/internal/snapshot"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe [file|-]",
	Short: "Run a sequence of steps, stopping at the first failure",
	Long: `Run a recipe: a JSON (or YAML) array of steps executed in order. Each step
has a cmd (snapshot, click, focus, set_value, press) and the fields that
command needs (ref, value, key). The first failing step ends the run; the
report lists every step that ran.

Examples:
  axtree recipe steps.json
  echo '[{"cmd":"click","ref":"n0.1"},{"cmd":"press","key":"return"}]' | axtree recipe
  axtree recipe --steps '[{"cmd":"set_value","ref":"n0.0","value":"hi"}]'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecipe,
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.Flags().String("steps", "", "Inline recipe document (instead of a file or stdin)")
	addAppRootFlag(recipeCmd)
}

func runRecipe(cmd *cobra.Command, args []string) error {
	data, err := readRecipe(cmd, args)
	if err != nil {
		return emit(nil, model.ExecutionError("%w", err))
	}
	steps, err := recipe.Parse(data)
	if err != nil {
		return emit(nil, err)
	}

	p, err := provider()
	if err != nil {
		return emit(nil, err)
	}
	acquire := acquireOptions(cmd)
	snaps := recipe.SnapshotFunc(func() (*model.Snapshot, error) {
		return snapshot.Take(p, acquire, buildOptions())
	})

	report := recipe.NewExecutor(action.NewDispatcher(p, acquire, logger), snaps, logger).Run(steps)
	return emit(report, report.Err())
}

func readRecipe(cmd *cobra.Command, args []string) ([]byte, error) {
	inline, _ := cmd.Flags().GetString("steps")
	switch {
	case inline != "" && len(args) > 0:
		return nil, fmt.Errorf("use either --steps or a file argument, not both")
	case inline != "":
		return []byte(inline), nil
	case len(args) == 0 || args[0] == "-":
		return io.ReadAll(cmd.InOrStdin())
	default:
		return os.ReadFile(args[0])
	}
}
