package recipe

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mj1618/axtree/internal/model"
)

// Actions performs single UI actions.
type Actions interface {
	Click(ref string) (*model.ActionResult, error)
	Focus(ref string) (*model.ActionResult, error)
	SetValue(ref, text string) (*model.ActionResult, error)
	Press(key string) (*model.ActionResult, error)
}

// Snapshotter captures the current UI tree.
type Snapshotter interface {
	Snapshot() (*model.Snapshot, error)
}

// SnapshotFunc adapts a function to Snapshotter.
type SnapshotFunc func() (*model.Snapshot, error)

func (f SnapshotFunc) Snapshot() (*model.Snapshot, error) { return f() }

// StepResult is the outcome of one executed step.
type StepResult struct {
	Step    int             `yaml:"step"              json:"step"`
	Cmd     string          `yaml:"cmd"               json:"cmd"`
	Success bool            `yaml:"success"           json:"success"`
	Data    any             `yaml:"data,omitempty"    json:"data,omitempty"`
	Error   model.ErrorCode `yaml:"error,omitempty"   json:"error,omitempty"`
	Message string          `yaml:"message,omitempty" json:"message,omitempty"`
}

// Report is the outcome of a recipe run. Results holds one entry per
// executed step, in order; a failed run ends with the failing step.
type Report struct {
	RunID     string       `yaml:"run_id"    json:"run_id"`
	Steps     int          `yaml:"steps"     json:"steps"`
	Completed int          `yaml:"completed" json:"completed"`
	Results   []StepResult `yaml:"results"   json:"results"`

	err error
}

// Success reports whether every step ran and succeeded.
func (r *Report) Success() bool { return r.err == nil }

// Err returns the failure of the step that halted the run, or nil. Its code
// is the code of that step's error.
func (r *Report) Err() error { return r.err }

// Executor runs recipes one step at a time and stops at the first failure.
type Executor struct {
	actions   Actions
	snapshots Snapshotter
	logger    *slog.Logger
}

// NewExecutor returns an Executor. A nil logger discards output.
func NewExecutor(actions Actions, snapshots Snapshotter, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{actions: actions, snapshots: snapshots, logger: logger}
}

// Run executes steps in order. Step N+1 starts only after step N succeeded;
// the first failing step is recorded and ends the run.
func (e *Executor) Run(steps []Step) *Report {
	report := &Report{
		RunID:   uuid.NewString(),
		Steps:   len(steps),
		Results: make([]StepResult, 0, len(steps)),
	}
	logger := e.logger.With("run_id", report.RunID)
	logger.Debug("recipe started", "steps", len(steps))

	for i, step := range steps {
		num := i + 1
		logger.Debug("step started", "step", num, "cmd", step.Cmd)

		data, err := e.execute(step)
		if err != nil {
			code := model.CodeOf(err)
			msg := model.MessageOf(err)
			report.Results = append(report.Results, StepResult{
				Step: num, Cmd: step.Cmd, Success: false, Error: code, Message: msg,
			})
			report.err = model.Errorf(code, "step %d (%s): %s", num, step.Cmd, msg)
			logger.Warn("step failed", "step", num, "cmd", step.Cmd, "code", code, "err", msg)
			return report
		}

		report.Results = append(report.Results, StepResult{Step: num, Cmd: step.Cmd, Success: true, Data: data})
		report.Completed++
	}

	logger.Debug("recipe completed", "steps", len(steps))
	return report
}

func (e *Executor) execute(s Step) (any, error) {
	switch s.Cmd {
	case "":
		return nil, model.ExecutionError("missing cmd")
	case CmdSnapshot:
		return e.snapshots.Snapshot()
	case CmdClick:
		ref, err := required(s, "ref", s.Ref)
		if err != nil {
			return nil, err
		}
		return e.actions.Click(ref)
	case CmdFocus:
		ref, err := required(s, "ref", s.Ref)
		if err != nil {
			return nil, err
		}
		return e.actions.Focus(ref)
	case CmdSetValue, "set-value":
		ref, err := required(s, "ref", s.Ref)
		if err != nil {
			return nil, err
		}
		value, err := required(s, "value", s.Value)
		if err != nil {
			return nil, err
		}
		return e.actions.SetValue(ref, value)
	case CmdPress:
		key, err := required(s, "key", s.Key)
		if err != nil {
			return nil, err
		}
		return e.actions.Press(key)
	default:
		return nil, model.ExecutionError("unknown cmd %q (supported: snapshot, click, focus, set_value, press)", s.Cmd)
	}
}

func required(s Step, field string, v *string) (string, error) {
	if v == nil {
		return "", model.ExecutionError("%s requires %q", s.Cmd, field)
	}
	return *v, nil
}

// String summarizes the report, one line per executed step.
func (r *Report) String() string {
	var b strings.Builder
	for _, s := range r.Results {
		if s.Success {
			fmt.Fprintf(&b, "%d. %s ok\n", s.Step, s.Cmd)
		} else {
			fmt.Fprintf(&b, "%d. %s %s: %s\n", s.Step, s.Cmd, s.Error, s.Message)
		}
	}
	if r.err != nil {
		fmt.Fprintf(&b, "failed after %d/%d steps (run %s)", r.Completed, r.Steps, r.RunID)
	} else {
		fmt.Fprintf(&b, "completed %d steps (run %s)", r.Steps, r.RunID)
	}
	return b.String()
}
