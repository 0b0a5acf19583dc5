package cmd

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"snapshot", "click", "focus", "set-value", "press", "recipe", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestCommands_HaveFlags(t *testing.T) {
	tests := []struct {
		cmd   string
		flags []string
	}{
		{"snapshot", []string{"roles", "text", "flat", "app-root"}},
		{"click", []string{"app-root"}},
		{"focus", []string{"app-root"}},
		{"set-value", []string{"app-root"}},
		{"recipe", []string{"steps", "app-root"}},
		{"serve", []string{"transport", "port", "rate"}},
	}
	for _, tt := range tests {
		c, _, err := rootCmd.Find([]string{tt.cmd})
		if err != nil || c.Name() != tt.cmd {
			t.Errorf("command %q not found: %v", tt.cmd, err)
			continue
		}
		for _, name := range tt.flags {
			if c.Flags().Lookup(name) == nil {
				t.Errorf("%s: flag --%s not registered", tt.cmd, name)
			}
		}
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	for _, name := range []string{"format", "max-depth", "log-level", "pretty"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s not registered", name)
		}
	}
}
