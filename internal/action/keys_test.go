package action

import "testing"

func TestKeyCode_CaseInsensitive(t *testing.T) {
	pairs := [][2]string{
		{"Enter", "enter"},
		{"ENTER", "enter"},
		{"Tab", "tab"},
		{"  Escape ", "escape"},
		{"PageDown", "pagedown"},
		{"F5", "f5"},
		{"A", "a"},
	}
	for _, p := range pairs {
		a, okA := KeyCode(p[0])
		b, okB := KeyCode(p[1])
		if !okA || !okB {
			t.Errorf("KeyCode(%q)/KeyCode(%q): expected both mapped", p[0], p[1])
			continue
		}
		if a != b {
			t.Errorf("KeyCode(%q) = %#x, KeyCode(%q) = %#x", p[0], a, p[1], b)
		}
	}
}

func TestKeyCode_Known(t *testing.T) {
	tests := []struct {
		name string
		want uint16
	}{
		{"return", 0x24},
		{"space", 0x31},
		{"escape", 0x35},
		{"up", 0x7E},
		{"a", 0x00},
	}
	for _, tt := range tests {
		got, ok := KeyCode(tt.name)
		if !ok || got != tt.want {
			t.Errorf("KeyCode(%q) = %#x, %v; want %#x", tt.name, got, ok, tt.want)
		}
	}
}

func TestKeyCode_Unknown(t *testing.T) {
	for _, name := range []string{"", "unmapped-key", "cmd", "f13", "enter enter"} {
		if _, ok := KeyCode(name); ok {
			t.Errorf("KeyCode(%q): expected unmapped", name)
		}
	}
}
