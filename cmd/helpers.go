package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mj1618/axtree/internal/action"
	"github.com/mj1618/axtree/internal/model"
	"github.com/mj1618/axtree/internal/output"
	"github.com/mj1618/axtree/internal/platform"
	"github.com/mj1618/axtree/internal/snapshot"
)

// errReported marks a failure whose envelope has already been printed.
var errReported = errors.New("failure reported")

// emit prints the success envelope for data, or the failure envelope for err
// (keeping data as partial results) and returns errReported.
func emit(data interface{}, err error) error {
	if err != nil {
		if perr := output.Print(output.Failure(err, data)); perr != nil {
			return perr
		}
		return errReported
	}
	return output.Print(output.Success(data))
}

func provider() (*platform.Provider, error) {
	p, err := newProvider()
	if err != nil {
		return nil, model.ExecutionError("%w", err)
	}
	return p, nil
}

func acquireOptions(cmd *cobra.Command) snapshot.AcquireOptions {
	appRoot, _ := cmd.Flags().GetBool("app-root")
	return snapshot.AcquireOptions{Prompt: cfg.Prompt, AppRoot: appRoot}
}

func buildOptions() snapshot.BuildOptions {
	return snapshot.BuildOptions{MaxDepth: cfg.MaxDepth, Logger: logger}
}

func newDispatcher(cmd *cobra.Command) (*action.Dispatcher, error) {
	p, err := provider()
	if err != nil {
		return nil, err
	}
	return action.NewDispatcher(p, acquireOptions(cmd), logger), nil
}

// addAppRootFlag registers --app-root on commands that resolve refs.
func addAppRootFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("app-root", false, "Use the application element as the root instead of its focused window")
}

// runAction wraps a single ref or key action in the envelope.
func runAction(cmd *cobra.Command, fn func(d *action.Dispatcher) (*model.ActionResult, error)) error {
	d, err := newDispatcher(cmd)
	if err != nil {
		return emit(nil, err)
	}
	res, err := fn(d)
	if err != nil {
		return emit(nil, err)
	}
	return emit(res, nil)
}
