package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/axtree/internal/output"
	"github.com/mj1618/axtree/internal/platform"
	"github.com/mj1618/axtree/internal/platform/platformtest"
)

// envelope mirrors output.Envelope with raw data for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func testBackend() *platformtest.Backend {
	btn := platformtest.NewElement("AXButton", platform.AttrTitle, "Save")
	btn.Actions = []string{"AXPress"}
	win := platformtest.NewElement("AXWindow", platform.AttrTitle, "Untitled").Add(
		platformtest.NewElement("AXTextField", platform.AttrValue, ""),
		btn,
	)
	app := platformtest.NewElement("AXApplication", platform.AttrFocusedWindow, win)
	return platformtest.NewBackend("TextEdit", 501, app)
}

// execute runs the root command against b and decodes the printed envelope.
func execute(t *testing.T, b *platformtest.Backend, stdin string, args ...string) (envelope, error) {
	t.Helper()
	for _, k := range []string{"AXTREE_FORMAT", "AXTREE_MAX_DEPTH", "AXTREE_LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	var buf bytes.Buffer
	origStdout, origProvider := output.Stdout, newProvider
	output.Stdout = &buf
	newProvider = func() (*platform.Provider, error) {
		if b == nil {
			return nil, platform.ErrUnsupported
		}
		return b.Provider(), nil
	}
	t.Cleanup(func() {
		output.Stdout, newProvider = origStdout, origProvider
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--format", "json"}, args...))
	err := rootCmd.Execute()

	var env envelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env), "stdout: %s", buf.String())
	return env, err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestSnapshotCommand(t *testing.T) {
	env, err := execute(t, testBackend(), "", "snapshot")
	require.NoError(t, err)
	require.True(t, env.Success)

	var data struct {
		App struct {
			Name string `json:"name"`
			PID  int    `json:"pid"`
		} `json:"app"`
		Tree struct {
			Ref      string `json:"ref"`
			Children []struct {
				Ref  string  `json:"ref"`
				Name *string `json:"name"`
			} `json:"children"`
		} `json:"tree"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "TextEdit", data.App.Name)
	assert.Equal(t, 501, data.App.PID)
	assert.Equal(t, "n0", data.Tree.Ref)
	require.Len(t, data.Tree.Children, 2)
	assert.Equal(t, "n0.1", data.Tree.Children[1].Ref)
	assert.Equal(t, "Save", *data.Tree.Children[1].Name)
}

func TestSnapshotCommand_FlatFiltered(t *testing.T) {
	env, err := execute(t, testBackend(), "", "snapshot", "--flat", "--roles", "btn")
	require.NoError(t, err)

	var data struct {
		Nodes []struct {
			Ref  string `json:"ref"`
			Path string `json:"path"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Nodes, 2)
	assert.Equal(t, "n0", data.Nodes[0].Ref)
	assert.Equal(t, "n0.1", data.Nodes[1].Ref)
	assert.Equal(t, "window > btn", data.Nodes[1].Path)
}

func TestSnapshotCommand_PermissionDenied(t *testing.T) {
	b := testBackend()
	b.Trusted = false
	env, err := execute(t, b, "", "snapshot")
	assert.True(t, errors.Is(err, errReported))
	assert.False(t, env.Success)
	assert.Equal(t, "ExecutionError", env.Error)
}

func TestSnapshotCommand_NoProvider(t *testing.T) {
	env, err := execute(t, nil, "", "snapshot")
	assert.ErrorIs(t, err, errReported)
	assert.Equal(t, "ExecutionError", env.Error)
	assert.Contains(t, env.Message, "not supported")
}

func TestClickCommand(t *testing.T) {
	b := testBackend()
	env, err := execute(t, b, "", "click", "n0.1")
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, []string{"AXPress"}, b.Performed)
}

func TestClickCommand_Errors(t *testing.T) {
	tests := []struct {
		ref  string
		code string
	}{
		{"n0.9", "NotFound"},
		{"bogus", "NotFound"},
		{"n0.0", "NotActionable"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			b := testBackend()
			env, err := execute(t, b, "", "click", tt.ref)
			assert.ErrorIs(t, err, errReported)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Error)
			assert.NotEmpty(t, env.Message)
			assert.Empty(t, b.Performed)
		})
	}
}

func TestSetValueCommand(t *testing.T) {
	b := testBackend()
	env, err := execute(t, b, "", "set-value", "n0.0", "hello")
	require.NoError(t, err)
	assert.True(t, env.Success)
	require.Len(t, b.Sets, 1)
	assert.Equal(t, platform.AttrValue, b.Sets[0].Name)
	assert.Equal(t, "hello", b.Sets[0].Value)
}

func TestFocusCommand(t *testing.T) {
	b := testBackend()
	_, err := execute(t, b, "", "focus", "n0.0")
	require.NoError(t, err)
	require.Len(t, b.Sets, 1)
	assert.Equal(t, platform.AttrFocused, b.Sets[0].Name)
}

func TestPressCommand(t *testing.T) {
	b := testBackend()
	_, err := execute(t, b, "", "press", "Return")
	require.NoError(t, err)
	assert.Equal(t, []platformtest.KeyEvent{{Code: 36, Down: true}, {Code: 36, Down: false}}, b.Keys)

	b = testBackend()
	env, err := execute(t, b, "", "press", "hyper")
	assert.ErrorIs(t, err, errReported)
	assert.Equal(t, "NotActionable", env.Error)
	assert.Empty(t, b.Keys)
}

func TestRecipeCommand_StopsAtFirstFailure(t *testing.T) {
	b := testBackend()
	steps := `[{"cmd":"click","ref":"n0.1"},{"cmd":"click","ref":"n0.7"},{"cmd":"press","key":"tab"}]`
	env, err := execute(t, b, steps, "recipe")
	assert.ErrorIs(t, err, errReported)
	assert.False(t, env.Success)
	assert.Equal(t, "NotFound", env.Error)
	assert.Contains(t, env.Message, "step 2")

	var report struct {
		Completed int               `json:"completed"`
		Results   []json.RawMessage `json:"results"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, 1, report.Completed)
	assert.Len(t, report.Results, 2)
	assert.Equal(t, []string{"AXPress"}, b.Performed)
	assert.Empty(t, b.Keys)
}

func TestRecipeCommand_InlineSteps(t *testing.T) {
	b := testBackend()
	env, err := execute(t, b, "", "recipe", "--steps", `[{"cmd":"set_value","ref":"n0.0","value":"x"},{"cmd":"snapshot"}]`)
	require.NoError(t, err)
	assert.True(t, env.Success)
	require.Len(t, b.Sets, 1)
}

func TestRecipeCommand_Malformed(t *testing.T) {
	b := testBackend()
	env, err := execute(t, b, `{"cmd":"click"}`, "recipe")
	assert.ErrorIs(t, err, errReported)
	assert.Equal(t, "ExecutionError", env.Error)
	assert.Empty(t, b.Performed)
}
